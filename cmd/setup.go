package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/theirongolddev/hallo/internal/config"
	"github.com/theirongolddev/hallo/internal/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactively edit project defaults and save them",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues holds form state; numeric fields are edited as text.
type setupValues struct {
	name   string
	value  string
	lead   int
	length int
	strict bool
	theme  string
}

func newSetupValues(c config.Config) setupValues {
	return setupValues{
		name:   c.Defaults.ProjectName,
		value:  strconv.FormatUint(uint64(c.Defaults.ApproxValue), 10),
		lead:   c.Defaults.LeadWeeks,
		length: c.Defaults.LengthWeeks,
		strict: c.Validation.Strict,
		theme:  c.Appearance.Theme,
	}
}

// applyTo copies the form values onto c.
func (v setupValues) applyTo(c config.Config) (config.Config, error) {
	value, err := parseValue(v.value)
	if err != nil {
		return c, err
	}
	c.Defaults.ProjectName = v.name
	c.Defaults.ApproxValue = value
	c.Defaults.LeadWeeks = v.lead
	c.Defaults.LengthWeeks = v.length
	c.Validation.Strict = v.strict
	c.Appearance.Theme = v.theme
	return c, c.Validate()
}

func parseValue(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("value must be a whole number up to %d", uint32(math.MaxUint32))
	}
	return uint32(n), nil
}

func weekOptions(weeks ...int) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(weeks))
	for _, w := range weeks {
		label := fmt.Sprintf("%d weeks", w)
		if w == 1 {
			label = "1 week"
		}
		opts = append(opts, huh.NewOption(label, w))
	}
	return opts
}

func newSetupForm(v *setupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default project name").
				Value(&v.name),
			huh.NewInput().
				Title("Default approximate value").
				Validate(func(s string) error {
					_, err := parseValue(s)
					return err
				}).
				Value(&v.value),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Lead time before a new project starts").
				Options(weekOptions(0, 1, 2, 3, 4, 6, 8)...).
				Value(&v.lead),
			huh.NewSelect[int]().
				Title("Default project length").
				Options(weekOptions(1, 2, 3, 4, 6, 8, 12)...).
				Value(&v.length),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reject zero-length and reversed date ranges?").
				Value(&v.strict),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&v.theme),
		),
	)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	vals := newSetupValues(cfg)
	if err := newSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "  Setup canceled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	updated, err := vals.applyTo(cfg)
	if err != nil {
		return err
	}
	if err := config.Save(flagConfig, updated); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	logger.Debug("saved config", slog.String("path", flagConfig))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", flagConfig)
	fmt.Fprintln(out, "  Run `hallo setup` anytime to reconfigure.")
	fmt.Fprintln(out)
	return nil
}
