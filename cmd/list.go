package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/acedergren/agentic-tools/internal/artifact"
	"github.com/acedergren/agentic-tools/internal/catalog"
	"github.com/acedergren/agentic-tools/internal/lister"
	"github.com/acedergren/agentic-tools/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available skills and agents",
	Long: `Show every catalog skill and agent with a marker for whether it is present in
the source tree (+ present, - missing), followed by the hook examples.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

var listYAML bool

func init() {
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Print the active catalog as a manifest instead")
}

func runList(cmd *cobra.Command, args []string) {
	cat := loadCatalog()

	if listYAML {
		out, err := yaml.Marshal(catalog.ToManifest(cat))
		if err != nil {
			exitWithError(fmt.Sprintf("failed to encode catalog: %v", err))
		}
		fmt.Print(string(out))
		return
	}

	report, err := lister.Build(cat, settings.SourceRoot)
	if err != nil {
		// The report is still usable; the markers reflect what could be read.
		fmt.Fprintln(os.Stderr, ui.Render(ui.Warning, err.Error()))
	}
	printReport(os.Stdout, report)
}

func printReport(w io.Writer, report *lister.Report) {
	fmt.Fprintln(w)
	printStatuses(w, artifact.TypeSkill, "Skills:", report.Skills, report.Present(artifact.TypeSkill))
	printStatuses(w, artifact.TypeAgent, "Agents:", report.Agents, report.Present(artifact.TypeAgent))

	if n := report.Present(artifact.TypeHook); n > 0 {
		fmt.Fprintln(w, "  "+ui.Badge(artifact.TypeHook)+" "+ui.Render(ui.Subtitle, fmt.Sprintf("Hooks: %d examples", n)))
		for _, h := range report.Hooks {
			fmt.Fprintln(w, ui.AddedLine(h))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, ui.PageFooter())
}

func printStatuses(w io.Writer, kind artifact.Type, heading string, statuses []lister.Status, present int) {
	if len(statuses) == 0 {
		return
	}
	fmt.Fprintln(w, "  "+ui.Badge(kind)+" "+ui.Render(ui.Subtitle, heading))

	width := 0
	for _, s := range statuses {
		width = max(width, len(displayName(s.Entry)))
	}
	for _, s := range statuses {
		name := displayName(s.Entry)
		line := name
		if s.Description != "" {
			line = fmt.Sprintf("%-*s  %s", width, name, ui.Render(ui.Muted, s.Description))
		}
		if s.Present {
			fmt.Fprintln(w, ui.AddedLine(line))
		} else {
			fmt.Fprintln(w, ui.MissingLine(name))
		}
	}
	fmt.Fprintln(w, ui.Render(ui.Dim, fmt.Sprintf("    %d of %d %s present", present, len(statuses), kind.Plural())))
	fmt.Fprintln(w)
}

// displayName is how an entry is invoked: skills are slash commands
func displayName(e catalog.Entry) string {
	if e.Kind == artifact.TypeSkill {
		return "/" + e.Name
	}
	return e.Name
}
