// Package cmd is the md-splice command tree, grounded on
// cmd/beans/root.go's package-level rootCmd + PersistentPreRunE +
// Execute() idiom.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdsplice/mdsplice/internal/config"
	"github.com/mdsplice/mdsplice/internal/frontmatter"
)

var (
	cfgPath string
	cfg     *config.Config

	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:           "md-splice",
	SilenceErrors: true,
	SilenceUsage:  true,
	Short: "An AST-aware Markdown editor for scripted, selector-driven edits",
	Long: `md-splice parses a Markdown document into its block/inline structure and
frontmatter, lets batches of operations locate and splice nodes by
semantic selector rather than line number, and re-renders clean
Markdown — built for pipelines and agents, not interactive editing.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded

		level := slog.LevelInfo
		switch {
		case verbose:
			level = slog.LevelDebug
		case quiet:
			level = slog.LevelError
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		return nil
	},
}

// Execute runs the command tree, exiting with status 1 on any error.
// Commands report their own errors via reportError before returning;
// because rootCmd.SilenceErrors is set, Execute also prints every returned
// error to stderr, including errors cobra itself raises (bad flags,
// unknown subcommands).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if rootCmd.SilenceErrors {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// configuredFrontmatterFormat translates cfg's string setting into the
// frontmatter.Format docsplice.Document consumes.
func configuredFrontmatterFormat() frontmatter.Format {
	if cfg != nil && cfg.Printer.DefaultFrontmatterFormat == "toml" {
		return frontmatter.TOML
	}
	return frontmatter.YAML
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "path to md-splice.toml or its containing directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "error-level logging only")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}
