package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/acedergren/agentic-tools/internal/catalog"
	"github.com/acedergren/agentic-tools/internal/config"
	"github.com/acedergren/agentic-tools/internal/logger"
	"github.com/acedergren/agentic-tools/internal/ui"
)

var (
	// Version is set at build time
	Version = "dev"
)

var (
	v        = viper.New()
	settings *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "agentic-tools",
	Short: "Claude Code skills, agents, and hooks",
	Long: `agentic-tools installs a catalog of Claude Code skills, agents, and hook
examples into a project's .claude directory.`,
	Example: `  agentic-tools init                Install to current directory
  agentic-tools init ./my-project   Install to specific project
  agentic-tools list                List available skills and agents`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle (setup refers to rootCmd).
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return setup()
	}

	flags := rootCmd.PersistentFlags()
	flags.String("root", "", "Source tree holding skills and agents (default: the package root)")
	flags.String("variant", "", fmt.Sprintf("Built-in catalog to use %v", catalog.Variants()))
	flags.String("catalog", "", "Catalog manifest (YAML) to use instead of the built-in catalog")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("log-format", "", "Log format (fmt, text, json)")

	bindFlags(flags)

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(resolveLinksCmd)
	rootCmd.AddCommand(restoreLinksCmd)
	rootCmd.AddCommand(versionCmd)
}

// bindFlags lets the persistent flags override config and environment
func bindFlags(flags *pflag.FlagSet) {
	v.BindPFlag(config.KeyRoot, flags.Lookup("root"))
	v.BindPFlag(config.KeyVariant, flags.Lookup("variant"))
	v.BindPFlag(config.KeyCatalog, flags.Lookup("catalog"))
	v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))
}

// setup loads settings and configures logging before any subcommand runs
func setup() error {
	if err := config.Init(v); err != nil {
		return err
	}
	s, err := config.Load(v)
	if err != nil {
		return err
	}
	if err := logger.SetLogLevel(s.LogLevel); err != nil {
		return err
	}
	logger.SetLogFormat(s.LogFormat)
	logger.SetLogOutput(rootCmd.ErrOrStderr())
	settings = s

	logger.L.WithField("root", s.SourceRoot).
		WithField("variant", s.Variant).
		WithField("catalog", s.CatalogFile).
		Debug("settings loaded")
	return nil
}

// loadCatalog returns the active catalog or exits
func loadCatalog() catalog.Catalog {
	c, err := settings.Catalog()
	if err != nil {
		exitWithError(err.Error())
	}
	return c
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "agentic-tools %s\n", Version)
	},
}

// exitWithError prints an error and exits
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, ui.Error.Render("Error: "+msg))
	os.Exit(1)
}
