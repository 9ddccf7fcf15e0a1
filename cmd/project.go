package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/hallo/internal/cli"
	"github.com/theirongolddev/hallo/internal/model"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// projectFlags are the builder overrides shared by project-building commands.
type projectFlags struct {
	name  string
	value uint32
	start string
	weeks int
	days  int
}

func (f *projectFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "Project name (default from config)")
	fs.Uint32Var(&f.value, "value", 0, "Approximate value (default from config)")
	fs.StringVar(&f.start, "start", "", "Start day, YYYY-MM-DD (default: lead time after today)")
	fs.IntVar(&f.weeks, "weeks", 0, "Length in weeks")
	fs.IntVar(&f.days, "days", 0, "Length in days")
}

// apply layers the flags that were set onto b. Length is applied before the
// start day; each keeps the other intact.
func (f *projectFlags) apply(fs *pflag.FlagSet, b model.ProjectBuilder) (model.ProjectBuilder, error) {
	if fs.Changed("weeks") && fs.Changed("days") {
		return b, errors.New("use either --weeks or --days, not both")
	}
	if fs.Changed("name") {
		b = b.Name(f.name)
	}
	if fs.Changed("value") {
		b = b.Value(f.value)
	}
	if fs.Changed("weeks") {
		b = b.DurationWeeks(f.weeks)
	}
	if fs.Changed("days") {
		b = b.DurationDays(f.days)
	}
	if fs.Changed("start") {
		start, err := model.ParseDate(f.start)
		if err != nil {
			return b, fmt.Errorf("--start: %w", err)
		}
		b = b.StartDate(start)
	}
	return b, nil
}

var flagsProject projectFlags

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Build a single project and show its allocation",
	RunE:  runProject,
}

func init() {
	flagsProject.register(projectCmd.Flags())
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
	b, err := flagsProject.apply(cmd.Flags(), newBuilder())
	if err != nil {
		return err
	}
	p, err := build(b)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	a := p.Allocation()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n\n", p)
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Headers: []string{"Field", "Value"},
		Rows: [][]string{
			{"Name", p.Name()},
			{"Value", cli.FormatValue(p.Value())},
			{"---"},
			{"Start", cli.FormatDate(a.StartDate()) + " " + cli.FormatDayOfWeek(a.StartDate())},
			{"End", cli.FormatDate(a.EndDate()) + " " + cli.FormatDayOfWeek(a.EndDate())},
			{"Length", cli.FormatDays(a.Days())},
		},
	}))

	if err := a.Validate(); errors.Is(err, model.ErrInvalidDates) {
		fmt.Fprintln(out, cli.RenderWarning(err.Error()))
	}
	return nil
}
