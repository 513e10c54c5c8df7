package main

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/conn-castle/pricebook/internal/auth"
	"github.com/conn-castle/pricebook/internal/config"
	"github.com/conn-castle/pricebook/internal/export"
	"github.com/conn-castle/pricebook/internal/loader"
	"github.com/conn-castle/pricebook/internal/logging"
	"github.com/conn-castle/pricebook/internal/messages"
	"github.com/conn-castle/pricebook/internal/session"
	"github.com/conn-castle/pricebook/internal/terminal"
	"github.com/conn-castle/pricebook/internal/theme"
	"github.com/conn-castle/pricebook/internal/view"
)

const flagConfig = "config"

var (
	isInteractiveFunc = terminal.IsInteractive
	runProgramFunc    = runProgram
	newClipboardFunc  = func() export.Clipboard { return export.SystemClipboard{} }
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runApp,
	}
	cmd.Flags().BoolP("version", "v", false, messages.RootVersionFlag)
	cmd.PersistentFlags().String(flagConfig, "", messages.RootConfigFlag)
	cmd.AddCommand(newDoctorCmd(), newDigestCmd(), newThemeCmd())
	return cmd
}

// environment is everything a command needs, built from the config file.
type environment struct {
	paths  config.Paths
	cfg    *config.Config
	logger *log.Logger
	loader *loader.Loader
	prefs  *theme.PreferenceFile
}

// resolvePaths honors --config and otherwise uses the home directory.
func resolvePaths(cmd *cobra.Command) (config.Paths, error) {
	path, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return config.Paths{}, err
	}
	if path == "" {
		return config.DefaultPaths()
	}
	return config.PathsForConfigFile(path)
}

func newEnvironment(cmd *cobra.Command) (*environment, error) {
	paths, err := resolvePaths(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadConfigOrDefault(paths.ConfigPath)
	if err != nil {
		return nil, err
	}
	logger := logging.New(cmd.ErrOrStderr(), cfg.Log.Level)
	return &environment{
		paths:  paths,
		cfg:    cfg,
		logger: logger,
		loader: loader.New(newSource(cfg.Source), logger),
		prefs:  theme.NewPreferenceFile(paths.PreferencesPath),
	}, nil
}

func newSource(src config.SourceConfig) loader.Source {
	if src.IsRemote() {
		return loader.NewHTTPSource(src.URL, src.Timeout())
	}
	return loader.NewDirSource(src.Dir)
}

func runApp(cmd *cobra.Command, _ []string) error {
	if !isInteractiveFunc() {
		return errors.New(messages.RootRequiresTTY)
	}
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	current, err := theme.Effective(env.prefs)
	if err != nil {
		env.logger.Warn(messages.ViewThemeLoadFailed, "path", env.prefs.Path(), "err", err)
	}
	app := view.NewApp(view.Options{
		Authenticator: session.NewAuthenticator(auth.NewVerifier(), env.loader),
		Exporter:      export.New(newClipboardFunc()),
		Preferences:   env.prefs,
		Theme:         current,
		Logger:        env.logger,
		Context:       cmd.Context(),
	})
	if err := runProgramFunc(app, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf(messages.RootProgramFailedFmt, err)
	}
	return nil
}

func runProgram(model tea.Model, in io.Reader, out io.Writer) error {
	_, err := tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen()).Run()
	return err
}
