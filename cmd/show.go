package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdsplice/mdsplice/internal/docsplice"
	"github.com/mdsplice/mdsplice/internal/jsonout"
	"github.com/mdsplice/mdsplice/internal/ui"
)

var (
	showRaw  bool
	showJSON bool
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a Markdown document, optionally through a styled preview",
	Long: `Prints the document. By default, renders through glamour for a styled
terminal preview when stdout is a terminal; --raw always prints the plain
re-rendered Markdown instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		src, err := os.ReadFile(path)
		if err != nil {
			return reportError(fmt.Errorf("reading %s: %w", path, err), showJSON)
		}

		doc, err := docsplice.Parse(string(src))
		if err != nil {
			return reportError(err, showJSON)
		}

		rendered, err := doc.Render()
		if err != nil {
			return reportError(err, showJSON)
		}

		if showJSON {
			out, err := jsonout.Plain(map[string]interface{}{"markdown": rendered})
			if err != nil {
				return reportError(err, true)
			}
			fmt.Println(out)
			return nil
		}

		if showRaw || !ui.IsTerminal(os.Stdout) {
			fmt.Print(rendered)
			return nil
		}

		preview, err := ui.Preview(rendered, 80)
		if err != nil {
			fmt.Print(rendered)
			return nil
		}
		fmt.Print(preview)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print plain Markdown, skipping the styled preview")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
	showCmd.MarkFlagsMutuallyExclusive("raw", "json")
	rootCmd.AddCommand(showCmd)
}
