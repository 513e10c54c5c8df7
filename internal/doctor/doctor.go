// Package doctor runs non-interactive health checks over the config, the
// catalog document and the stored preferences.
package doctor

// Status is the outcome of a single check.
type Status int

// Check outcomes, from best to worst.
const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// Result is one line of doctor output.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// Worst returns the most severe status in results, or StatusOK when empty.
func Worst(results []Result) Status {
	worst := StatusOK
	for _, r := range results {
		if r.Status > worst {
			worst = r.Status
		}
	}
	return worst
}
