// Package cli builds the tada command line.
package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/directory"
	"github.com/idilsaglam/tada/internal/logger"
	"github.com/idilsaglam/tada/internal/router"
	"github.com/idilsaglam/tada/internal/session"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// Version is set at build time.
var Version = "dev"

// Options are the root flags. Flags left unset do not override the config file.
type Options struct {
	ConfigPath   string
	Theme        string
	LogFile      string
	LogLevel     string
	RequireLogin bool
	NoProbe      bool
	NoPointer    bool
}

// runFunc starts the UI; replaced in tests.
type runFunc func(m tea.Model) error

func runProgram(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// NewRootCommand returns the tada command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(runProgram)
}

func newRootCommand(run runFunc) *cobra.Command {
	var opt Options

	cmd := &cobra.Command{
		Use:           "tada",
		Short:         "A tiny todo list behind a pretend login",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opt)
			if err != nil {
				return err
			}
			return start(cfg, run)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opt.ConfigPath, "config", config.DefaultPath, "config file")
	f.StringVar(&opt.Theme, "theme", "", "theme: classic | neon | mono")
	f.StringVar(&opt.LogFile, "log-file", "", "diagnostic log file (empty string disables)")
	f.StringVar(&opt.LogLevel, "log-level", "", "debug | info | warn | error")
	f.BoolVar(&opt.RequireLogin, "require-login", false, "refuse the todo view until logged in")
	f.BoolVar(&opt.NoProbe, "no-probe", false, "skip the directory request")
	f.BoolVar(&opt.NoPointer, "no-pointer", false, "do not track pointer motion")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "tada "+Version)
		},
	})
	return cmd
}

func resolveConfig(cmd *cobra.Command, opt Options) (*config.Config, error) {
	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		return nil, err
	}
	f := cmd.Flags()
	if f.Changed("theme") {
		cfg.Theme = opt.Theme
	}
	if f.Changed("log-file") {
		cfg.Log.File = opt.LogFile
	}
	if f.Changed("log-level") {
		cfg.Log.Level = opt.LogLevel
	}
	if opt.RequireLogin {
		cfg.RequireLogin = true
	}
	if opt.NoProbe {
		cfg.Probe.Enabled = false
	}
	if opt.NoPointer {
		cfg.TrackPointer = false
	}
	return cfg, nil
}

// buildApp wires the UI model from cfg.
func buildApp(cfg *config.Config, log *zap.Logger) tui.App {
	ui.SetTheme(cfg.Theme)

	sess := session.New()
	var opts []router.Option
	if cfg.RequireLogin {
		opts = append(opts, router.WithGuard(sess.Status))
	}

	var dir *directory.Client
	if cfg.Probe.Enabled && cfg.Probe.Endpoint != "" {
		dir = directory.NewClient(cfg.Probe.Endpoint, cfg.Probe.Timeout(), cfg.Probe.MaxRetries)
	}

	return tui.New(tui.Deps{
		Session:      sess,
		Router:       router.New(opts...),
		Directory:    dir,
		TrackPointer: cfg.TrackPointer,
		Log:          log,
	})
}

func start(cfg *config.Config, run runFunc) error {
	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting", zap.String("version", Version), zap.String("theme", cfg.Theme),
		zap.Bool("require_login", cfg.RequireLogin))
	if err := run(buildApp(cfg, log)); err != nil {
		log.Error("ui exited", zap.Error(err))
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// Execute runs the root command with args and returns an exit code
// (0 ok, 1 error).
func Execute(args []string, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return execute(cmd, stderr)
}

func execute(cmd *cobra.Command, stderr io.Writer) int {
	if stderr == nil {
		stderr = os.Stderr
	}
	if err := cmd.Execute(); err != nil {
		ui.Fail(stderr, err.Error())
		return 1
	}
	return 0
}
