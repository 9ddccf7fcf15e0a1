package cmd

import (
	"fmt"

	"github.com/theirongolddev/hallo/internal/cli"
	"github.com/theirongolddev/hallo/internal/model"

	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build three sample projects relative to today",
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// demoProjects is the sample pipeline: three projects starting 2, 8 and 4 weeks out.
func demoProjects(b model.ProjectBuilder, c model.Clock) []model.ProjectBuilder {
	t := c.Today()
	return []model.ProjectBuilder{
		b.Name("p1").
			DurationWeeks(3).
			StartDate(t.Add(model.Weeks(2))),
		b.Name("p2").
			DurationWeeks(5).
			Value(5000).
			StartDate(t.Add(model.Weeks(8))),
		b.Name("p3").
			DurationWeeks(5).
			Value(1000).
			StartDate(t.Add(model.Weeks(4))),
	}
}

func runDemo(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	builders := demoProjects(newBuilder(), clock)
	projects := make([]model.Project, 0, len(builders))
	for _, b := range builders {
		p, err := build(b)
		if err != nil {
			return err
		}
		projects = append(projects, p)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle(fmt.Sprintf("PROJECTS  from %s", cli.FormatDate(clock.Today()))))
	fmt.Fprintln(out)
	for _, p := range projects {
		fmt.Fprintf(out, "  %s\n", p)
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderProjects("", projects))

	return nil
}
