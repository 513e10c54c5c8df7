// Package loader retrieves the hosted data document and decodes the catalog
// embedded in it.
package loader

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/conn-castle/pricebook/internal/catalog"
	"github.com/conn-castle/pricebook/internal/messages"
)

// Stage identifies the step of a load that failed.
type Stage string

// Load stages, in the order they run.
const (
	StageFetch  Stage = "fetch"
	StageLocate Stage = "locate"
	StageDecode Stage = "decode"
)

// LoadError reports any failure to produce a catalog. Callers treat every
// stage the same way; Stage exists for diagnostics.
type LoadError struct {
	Stage Stage
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf(messages.LoadErrorFmt, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader reads DocumentName from a Source and decodes its catalog.
type Loader struct {
	source Source
	logger *log.Logger
}

// New returns a Loader. A nil logger discards diagnostics.
func New(source Source, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{source: source, logger: logger}
}

// Source returns the configured source.
func (l *Loader) Source() Source {
	return l.source
}

// Load fetches and decodes the catalog. Each call re-fetches; nothing is cached.
// On error no products are returned.
func (l *Loader) Load(ctx context.Context) ([]catalog.Product, error) {
	doc, err := l.source.Fetch(ctx, DocumentName)
	if err != nil {
		return nil, l.fail(StageFetch, err)
	}
	text, err := Extract(doc)
	if err != nil {
		return nil, l.fail(StageLocate, err)
	}
	products, err := Decode(text)
	if err != nil {
		return nil, l.fail(StageDecode, err)
	}
	l.logger.Debug("catalog loaded", "location", l.source.Location(), "products", len(products))
	return products, nil
}

func (l *Loader) fail(stage Stage, err error) error {
	l.logger.Error("catalog load failed", "stage", stage, "location", l.source.Location(), "err", err)
	return &LoadError{Stage: stage, Err: err}
}
