package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/pricebook/internal/messages"
	"github.com/conn-castle/pricebook/internal/theme"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       messages.ThemeUse,
		Short:     messages.ThemeShort,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(theme.Dark), string(theme.Light), messages.ThemeToggleArg},
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := resolvePaths(cmd)
			if err != nil {
				return err
			}
			prefs := theme.NewPreferenceFile(paths.PreferencesPath)
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				current, err := theme.Effective(prefs)
				if err != nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), messages.ThemeReadWarningFmt, err)
				}
				_, _ = fmt.Fprintf(out, messages.ThemeCurrentFmt, current)
				return nil
			}

			var next theme.Theme
			if args[0] == messages.ThemeToggleArg {
				next, err = prefs.Toggle()
			} else {
				next, err = theme.Parse(args[0])
				if err == nil {
					err = prefs.Save(next)
				}
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, messages.ThemeSavedFmt, next, prefs.Path())
			return nil
		},
	}
}
