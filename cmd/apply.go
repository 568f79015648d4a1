package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdsplice/mdsplice/internal/atomicfile"
	"github.com/mdsplice/mdsplice/internal/diffrender"
	"github.com/mdsplice/mdsplice/internal/docsplice"
	"github.com/mdsplice/mdsplice/internal/jsonout"
	"github.com/mdsplice/mdsplice/internal/txnid"
	"github.com/mdsplice/mdsplice/internal/ui"
)

var (
	applyOpsPath string
	applyDryRun  bool
	applyJSON    bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <file>",
	Short: "Run a batch of operations against a Markdown file",
	Long: `Applies a batch of selector-driven operations to a Markdown file,
committing the rewrite atomically only if every operation in the batch
succeeds. With --dry-run, prints the unified diff instead of writing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		ops, err := loadOperations(applyOpsPath)
		if err != nil {
			return reportError(err, applyJSON)
		}

		before, err := os.ReadFile(path)
		if err != nil {
			return reportError(fmt.Errorf("reading %s: %w", path, err), applyJSON)
		}

		doc, err := docsplice.Parse(string(before))
		if err != nil {
			return reportError(err, applyJSON)
		}
		doc.DefaultFrontmatterFormat = configuredFrontmatterFormat()

		ambiguous, err := doc.Apply(ops)
		if err != nil {
			return reportError(err, applyJSON)
		}

		after, err := doc.Render()
		if err != nil {
			return reportError(err, applyJSON)
		}

		id := txnid.New()

		if applyDryRun {
			diff := diffrender.Unified(path, string(before), after)
			if applyJSON {
				out, err := jsonout.Plain(map[string]interface{}{
					"diff":      diff,
					"ambiguous": ambiguous,
					"txn_id":    id,
				})
				if err != nil {
					return reportError(err, true)
				}
				fmt.Println(out)
				return nil
			}
			if diff == "" {
				fmt.Println(ui.Muted.Render("(no changes)"))
			} else {
				fmt.Print(diff)
			}
			return nil
		}

		info, statErr := os.Stat(path)
		perm := os.FileMode(0o644)
		if statErr == nil {
			perm = info.Mode().Perm()
		}
		if err := atomicfile.Write(path, []byte(after), perm); err != nil {
			return reportError(fmt.Errorf("writing %s: %w", path, err), applyJSON)
		}

		if applyJSON {
			out, err := jsonout.Plain(map[string]interface{}{
				"ambiguous": ambiguous,
				"txn_id":    id,
				"path":      path,
			})
			if err != nil {
				return reportError(err, true)
			}
			fmt.Println(out)
			return nil
		}

		msg := fmt.Sprintf("applied %d operation(s) to %s (%s)", len(ops), path, id)
		if ambiguous {
			fmt.Println(ui.Ambiguous(msg + " — at least one selector matched ambiguously"))
		} else {
			fmt.Println(ui.OK(msg))
		}
		return nil
	},
}

func init() {
	applyCmd.Flags().StringVar(&applyOpsPath, "ops", "", "path to a batch file (.yaml or .json)")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "print the diff instead of writing")
	applyCmd.Flags().BoolVar(&applyJSON, "json", false, "output as JSON")
	_ = applyCmd.MarkFlagRequired("ops")
	rootCmd.AddCommand(applyCmd)
}
