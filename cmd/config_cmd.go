package cmd

import (
	"fmt"

	"github.com/theirongolddev/hallo/internal/cli"
	"github.com/theirongolddev/hallo/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  Config file: %s\n", flagConfig)
	if config.Exists(flagConfig) {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Defaults]")
	fmt.Fprintf(out, "    Project name: %s\n", cfg.Defaults.ProjectName)
	fmt.Fprintf(out, "    Value:        %s\n", cli.FormatValue(cfg.Defaults.ApproxValue))
	fmt.Fprintf(out, "    Lead time:    %s\n", cli.FormatDays(7*cfg.Defaults.LeadWeeks))
	fmt.Fprintf(out, "    Length:       %s\n", cli.FormatDays(7*cfg.Defaults.LengthWeeks))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Validation]")
	fmt.Fprintf(out, "    Strict: %v\n", cfg.Validation.Strict)
	if flagStrict && !cfg.Validation.Strict {
		fmt.Fprintln(out, "    (forced on by --strict)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Logging]")
	fmt.Fprintf(out, "    Level:  %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "    Format: %s\n", cfg.Logging.Format)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `hallo setup` to reconfigure.")
	return nil
}
