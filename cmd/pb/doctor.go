package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/pricebook/internal/doctor"
	"github.com/conn-castle/pricebook/internal/loader"
	"github.com/conn-castle/pricebook/internal/logging"
	"github.com/conn-castle/pricebook/internal/messages"
	"github.com/conn-castle/pricebook/internal/theme"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			paths, err := resolvePaths(cmd)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, paths.ConfigPath)

			configResults, cfg := doctor.CheckConfig(paths.ConfigPath)
			allResults := configResults

			if cfg != nil {
				source := newSource(cfg.Source)
				l := loader.New(source, logging.New(cmd.ErrOrStderr(), cfg.Log.Level))
				docResults, products := doctor.CheckDocument(cmd.Context(), l, source.Location())
				allResults = append(allResults, docResults...)
				if doctor.Worst(docResults) == doctor.StatusOK {
					allResults = append(allResults, doctor.CheckCatalog(products)...)
				}
			}

			allResults = append(allResults, doctor.CheckPreferences(theme.NewPreferenceFile(paths.PreferencesPath))...)

			for _, r := range allResults {
				printResult(out, r)
			}
			_, _ = fmt.Fprintln(out)

			switch doctor.Worst(allResults) {
			case doctor.StatusFail:
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return errors.New(messages.DoctorFailureError)
			case doctor.StatusWarn:
				_, _ = fmt.Fprintln(out, color.YellowString(messages.DoctorWarnSummary))
			default:
				_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			}
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		if line == "" {
			_, _ = fmt.Fprintf(out, "%s\n", messages.DoctorRecommendationIndent)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}
