package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/hallo/internal/cli"
	"github.com/theirongolddev/hallo/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagsContribution projectFlags
	flagOn            string
)

var contributionCmd = &cobra.Command{
	Use:   "contribution",
	Short: "Show what a project contributes on a given day",
	RunE:  runContribution,
}

func init() {
	flagsContribution.register(contributionCmd.Flags())
	contributionCmd.Flags().StringVar(&flagOn, "on", "", "Day to evaluate, YYYY-MM-DD (default: today)")
	rootCmd.AddCommand(contributionCmd)
}

func runContribution(cmd *cobra.Command, _ []string) error {
	b, err := flagsContribution.apply(cmd.Flags(), newBuilder())
	if err != nil {
		return err
	}
	p, err := build(b)
	if err != nil {
		return err
	}

	on := clock.Today()
	if flagOn != "" {
		on, err = model.ParseDate(flagOn)
		if err != nil {
			return fmt.Errorf("--on: %w", err)
		}
	}

	var c model.Contribution = p
	value := c.ContributionOn(on)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n\n", p)
	fmt.Fprintln(out, cli.RenderLabel("Contribution on "+cli.FormatDate(on), cli.FormatValue(value)))
	fmt.Fprintln(out, cli.RenderLabel("Status", cli.FormatActive(p.Allocation().IsActiveOn(on))))

	if err := p.Allocation().Validate(); errors.Is(err, model.ErrInvalidDates) {
		fmt.Fprintln(out, cli.RenderWarning(err.Error()))
	}
	return nil
}
