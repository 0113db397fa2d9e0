package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/acedergren/agentic-tools/internal/links"
	"github.com/acedergren/agentic-tools/internal/ui"
)

var resolveLinksCmd = &cobra.Command{
	Use:   "resolve-links",
	Short: "Replace linked skills and agents with real copies before packing",
	Long: `Replace every symbolic link directly inside the catalog's linked directories
with a full copy of its target, so a packaging step that drops links still
ships the content. A dangling link aborts the run.`,
	Args: cobra.NoArgs,
	Run:  runResolveLinks,
}

var restoreLinksCmd = &cobra.Command{
	Use:   "restore-links",
	Short: "Restore the skill and agent links after packing",
	Long: `Re-create the symbolic link for every linked catalog entry that exists in the
source tree but is no longer a link. Entries that are missing or already
links are left alone.`,
	Args: cobra.NoArgs,
	Run:  runRestoreLinks,
}

var resolveDryRun bool

func init() {
	resolveLinksCmd.Flags().BoolVar(&resolveDryRun, "dry-run", false, "List the links that would be resolved")
}

func runResolveLinks(cmd *cobra.Command, args []string) {
	cat := loadCatalog()
	dirs := cat.Layout().LinkedDirs()

	if resolveDryRun {
		found, err := links.Scan(settings.SourceRoot, dirs)
		if err != nil {
			exitWithError(err.Error())
		}
		for _, l := range found {
			fmt.Printf("  %s -> %s\n", filepath.ToSlash(l.Path), l.Target)
		}
		return
	}

	fmt.Println("Resolving symlinks for npm pack...")
	resolved, err := links.Resolve(settings.SourceRoot, dirs)
	for _, p := range resolved {
		fmt.Println(ui.Render(ui.Muted, "  resolved: "+filepath.ToSlash(p)))
	}
	if err != nil {
		exitWithError(err.Error())
	}
	fmt.Println(ui.Render(ui.Success, "Done."))
}

func runRestoreLinks(cmd *cobra.Command, args []string) {
	cat := loadCatalog()

	restored, err := links.Restore(settings.SourceRoot, cat)
	for _, p := range restored {
		fmt.Println(ui.Render(ui.Muted, "  restored: "+filepath.ToSlash(p)))
	}
	if err != nil {
		exitWithError(err.Error())
	}
}
