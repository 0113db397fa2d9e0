package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/acedergren/agentic-tools/internal/artifact"
	"github.com/acedergren/agentic-tools/internal/catalog"
	"github.com/acedergren/agentic-tools/internal/installer"
	"github.com/acedergren/agentic-tools/internal/ui"
)

var initCmd = &cobra.Command{
	Use:     "init [target-dir]",
	Aliases: []string{"install"},
	Short:   "Install all skills, agents, and hooks",
	Long: `Copy every catalog skill, agent, and hook example found in the source tree
into <target-dir>/.claude. The target directory defaults to the current
directory and must already exist. Existing files are overwritten.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runInit,
}

var installHeadings = map[artifact.Type]string{
	artifact.TypeSkill: "Installing skills...",
	artifact.TypeAgent: "Installing agents...",
	artifact.TypeHook:  "Installing hook examples...",
}

func runInit(cmd *cobra.Command, args []string) {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	if err := installTo(os.Stdout, loadCatalog(), settings.SourceRoot, target); err != nil {
		exitWithError(err.Error())
	}
}

// installTo installs cat from sourceRoot into target, writing progress to w.
// Nothing is printed when the target does not exist.
func installTo(w io.Writer, cat catalog.Catalog, sourceRoot, target string) error {
	abs, err := installer.CheckTarget(target)
	if err != nil {
		if errors.Is(err, installer.ErrTargetNotFound) {
			return errors.Errorf("Target directory does not exist: %s", absPath(target))
		}
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.SectionHeader(cat.Title()))
	fmt.Fprintln(w, ui.InfoLine("Target: "+abs))

	var current artifact.Type
	progress := func(kind artifact.Type, name string) {
		if kind != current {
			current = kind
			fmt.Fprintln(w)
			fmt.Fprintln(w, "  "+ui.Badge(kind)+" "+ui.Render(ui.Subtitle, installHeadings[kind]))
		}
		if kind == artifact.TypeSkill {
			name = "/" + name
		}
		fmt.Fprintln(w, ui.AddedLine(name))
	}

	result, err := installer.New(cat, sourceRoot, installer.WithProgress(progress)).Install(abs)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.SuccessLine("Done! "+result.Summary()))
	if hints := cat.Hints(); len(hints) > 0 {
		fmt.Fprintln(w)
		for _, h := range hints {
			fmt.Fprintln(w, ui.Render(ui.Muted, "  "+h))
		}
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, ui.PageFooter())
	return nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
