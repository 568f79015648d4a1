package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdsplice/mdsplice/internal/docsplice"
	"github.com/mdsplice/mdsplice/internal/jsonout"
	"github.com/mdsplice/mdsplice/internal/locator"
	"github.com/mdsplice/mdsplice/internal/mdast"
	"github.com/mdsplice/mdsplice/internal/spliceerr"
	"github.com/mdsplice/mdsplice/internal/ui"
)

var (
	locateSelectorPath string
	locateJSON         bool
)

var locateCmd = &cobra.Command{
	Use:   "locate <file>",
	Short: "Resolve a single selector against a Markdown file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		sel, err := loadSelector(locateSelectorPath)
		if err != nil {
			return reportError(err, locateJSON)
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return reportError(fmt.Errorf("reading %s: %w", path, err), locateJSON)
		}

		doc, err := docsplice.Parse(string(src))
		if err != nil {
			return reportError(err, locateJSON)
		}

		found, ambiguous, err := doc.Locate(sel)
		if err != nil {
			if spliceerr.Of(err, spliceerr.NodeNotFound) {
				return reportNotFound(locateJSON)
			}
			return reportError(err, locateJSON)
		}

		text := foundText(doc, found)

		if locateJSON {
			out, err := jsonout.Plain(map[string]interface{}{
				"found":        true,
				"is_list_item": found.IsListItem,
				"ambiguous":    ambiguous,
				"text":         text,
			})
			if err != nil {
				return reportError(err, true)
			}
			fmt.Println(out)
			return nil
		}

		fmt.Println(ui.Bold.Render(text))
		if ambiguous {
			fmt.Println(ui.Ambiguous("selector matched more than one candidate"))
		}
		return nil
	},
}

func reportNotFound(asJSON bool) error {
	if asJSON {
		out, err := jsonout.Plain(map[string]interface{}{"found": false})
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}
	fmt.Println(ui.Muted.Render("(no match)"))
	return nil
}

func foundText(doc *docsplice.Document, found locator.FoundNode) string {
	b := doc.Blocks[found.BlockIndex]
	if !found.IsListItem {
		return locator.BlockText(b)
	}
	if list, ok := b.(*mdast.List); ok && found.ItemIndex >= 0 && found.ItemIndex < len(list.Items) {
		return locator.ListItemText(list.Items[found.ItemIndex])
	}
	return locator.BlockText(b)
}

func init() {
	locateCmd.Flags().StringVar(&locateSelectorPath, "selector", "", "path to a selector file (.yaml or .json)")
	locateCmd.Flags().BoolVar(&locateJSON, "json", false, "output as JSON")
	_ = locateCmd.MarkFlagRequired("selector")
	rootCmd.AddCommand(locateCmd)
}
