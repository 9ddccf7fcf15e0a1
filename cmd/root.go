// Package cmd implements the hallo CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/theirongolddev/hallo/internal/config"
	"github.com/theirongolddev/hallo/internal/logging"
	"github.com/theirongolddev/hallo/internal/model"
	"github.com/theirongolddev/hallo/internal/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagToday   string
	flagNoColor bool
	flagVerbose bool
	flagStrict  bool
)

// Resolved by the root PersistentPreRunE before any command runs.
var (
	cfg    config.Config
	clock  model.Clock
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hallo",
	Short: "Plan time-bounded projects",
	Long:  "Model projects with an approximate value and a date allocation, and see what they contribute on a given day.",
	RunE:  runDemo,

	PersistentPreRunE: initRuntime,
	SilenceUsage:      true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", config.ConfigPath(), "Config file path")
	rootCmd.PersistentFlags().StringVar(&flagToday, "today", "", "Pretend today is this day (YYYY-MM-DD)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Reject zero-length and reversed date ranges")
}

func initRuntime(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded

	level := cfg.Logging.Level
	if flagVerbose {
		level = "debug"
	}
	logger = logging.New(level, cfg.Logging.Format, cmd.ErrOrStderr())

	theme.SetActive(cfg.Appearance.Theme)
	if flagNoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	clock = model.SystemClock{}
	if flagToday != "" {
		today, err := model.ParseDate(flagToday)
		if err != nil {
			return fmt.Errorf("--today: %w", err)
		}
		clock = model.NewFixedClock(today)
	}

	logger.Debug("runtime ready",
		slog.String("config", flagConfig),
		slog.Bool("config_found", config.Exists(flagConfig)),
		slog.String("today", clock.Today().Format(model.DateLayout)),
		slog.Bool("strict", strictMode()),
	)
	return nil
}

func strictMode() bool {
	return flagStrict || cfg.Validation.Strict
}

// newBuilder returns a builder seeded from config and the resolved clock.
func newBuilder() model.ProjectBuilder {
	return model.NewProjectBuilder(clock, cfg.ProjectDefaults())
}

// build finishes a builder, applying the duration check in strict mode.
func build(b model.ProjectBuilder) (model.Project, error) {
	if !strictMode() {
		p := b.Build()
		logger.Debug("built project", slog.String("project", p.String()))
		return p, nil
	}
	p, err := b.BuildStrict()
	if err != nil {
		return model.Project{}, err
	}
	logger.Debug("built project", slog.String("project", p.String()), slog.Bool("strict", true))
	return p, nil
}
