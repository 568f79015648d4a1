package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mdsplice/mdsplice/internal/atomicfile"
	"github.com/mdsplice/mdsplice/internal/docsplice"
	"github.com/mdsplice/mdsplice/internal/jsonout"
	"github.com/mdsplice/mdsplice/internal/transaction"
	"github.com/mdsplice/mdsplice/internal/ui"
)

var getJSON bool

var getCmd = &cobra.Command{
	Use:   "get <file> <path>",
	Short: "Read a single frontmatter value by path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, fmPath := args[0], args[1]

		src, err := os.ReadFile(path)
		if err != nil {
			return reportError(fmt.Errorf("reading %s: %w", path, err), getJSON)
		}

		doc, err := docsplice.Parse(string(src))
		if err != nil {
			return reportError(err, getJSON)
		}

		node, err := doc.GetFrontmatterPath(fmPath)
		if err != nil {
			return reportError(err, getJSON)
		}

		var value interface{}
		if err := node.Decode(&value); err != nil {
			return reportError(err, getJSON)
		}

		if getJSON {
			out, err := jsonout.Plain(map[string]interface{}{"path": fmPath, "value": value})
			if err != nil {
				return reportError(err, true)
			}
			fmt.Println(out)
			return nil
		}

		fmt.Println(node.Value)
		return nil
	},
}

var (
	setFormat  string
	setJSON    bool
	setDryRun  bool
)

var setCmd = &cobra.Command{
	Use:   "set <file> <path> <value>",
	Short: "Set a frontmatter value by path, creating intermediate mappings",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFrontmatterOp(args[0], transaction.Operation{
			Op:                transaction.SetFrontmatter,
			Path:              args[1],
			Value:             decodeCLIValue(args[2]),
			FrontmatterFormat: setFormat,
		}, setJSON, setDryRun)
	},
}

var deleteFrontmatterJSON bool
var deleteFrontmatterDryRun bool

var deleteFrontmatterCmd = &cobra.Command{
	Use:   "delete-frontmatter <file> <path>",
	Short: "Delete a frontmatter value by path, pruning emptied containers",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFrontmatterOp(args[0], transaction.Operation{
			Op:   transaction.DeleteFrontmatter,
			Path: args[1],
		}, deleteFrontmatterJSON, deleteFrontmatterDryRun)
	},
}

var (
	replaceFrontmatterContent string
	replaceFrontmatterFormat  string
	replaceFrontmatterJSON    bool
	replaceFrontmatterDryRun  bool
)

var replaceFrontmatterCmd = &cobra.Command{
	Use:   "replace-frontmatter <file>",
	Short: "Replace the entire frontmatter block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readContentArg(replaceFrontmatterContent)
		if err != nil {
			return reportError(err, replaceFrontmatterJSON)
		}

		var value interface{}
		if err := yaml.Unmarshal([]byte(content), &value); err != nil {
			return reportError(fmt.Errorf("parsing replacement frontmatter: %w", err), replaceFrontmatterJSON)
		}

		return runFrontmatterOp(args[0], transaction.Operation{
			Op:                transaction.ReplaceFrontmatter,
			Value:             value,
			FrontmatterFormat: replaceFrontmatterFormat,
		}, replaceFrontmatterJSON, replaceFrontmatterDryRun)
	},
}

// runFrontmatterOp runs a single frontmatter operation through the same
// atomic-write/dry-run conventions as apply.
func runFrontmatterOp(path string, op transaction.Operation, asJSON, dryRun bool) error {
	before, err := os.ReadFile(path)
	if err != nil {
		return reportError(fmt.Errorf("reading %s: %w", path, err), asJSON)
	}

	doc, err := docsplice.Parse(string(before))
	if err != nil {
		return reportError(err, asJSON)
	}
	doc.DefaultFrontmatterFormat = configuredFrontmatterFormat()

	if _, err := doc.Apply([]transaction.Operation{op}); err != nil {
		return reportError(err, asJSON)
	}

	after, err := doc.Render()
	if err != nil {
		return reportError(err, asJSON)
	}

	if dryRun {
		if asJSON {
			out, err := jsonout.Plain(map[string]interface{}{"before": string(before), "after": after})
			if err != nil {
				return reportError(err, true)
			}
			fmt.Println(out)
			return nil
		}
		fmt.Print(after)
		return nil
	}

	info, statErr := os.Stat(path)
	perm := os.FileMode(0o644)
	if statErr == nil {
		perm = info.Mode().Perm()
	}
	if err := atomicfile.Write(path, []byte(after), perm); err != nil {
		return reportError(fmt.Errorf("writing %s: %w", path, err), asJSON)
	}

	if asJSON {
		out, err := jsonout.Plain(map[string]interface{}{"path": path})
		if err != nil {
			return reportError(err, true)
		}
		fmt.Println(out)
		return nil
	}
	fmt.Println(ui.OK(fmt.Sprintf("updated frontmatter in %s", path)))
	return nil
}

// decodeCLIValue parses a CLI-supplied value string as YAML, so "42"/
// "true"/"null" become their scalar types rather than always a string.
func decodeCLIValue(raw string) interface{} {
	var v interface{}
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

func init() {
	getCmd.Flags().BoolVar(&getJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(getCmd)

	setCmd.Flags().StringVar(&setFormat, "format", "", "frontmatter format to create if none exists (yaml|toml)")
	setCmd.Flags().BoolVar(&setJSON, "json", false, "output as JSON")
	setCmd.Flags().BoolVar(&setDryRun, "dry-run", false, "print the result instead of writing")
	rootCmd.AddCommand(setCmd)

	deleteFrontmatterCmd.Flags().BoolVar(&deleteFrontmatterJSON, "json", false, "output as JSON")
	deleteFrontmatterCmd.Flags().BoolVar(&deleteFrontmatterDryRun, "dry-run", false, "print the result instead of writing")
	rootCmd.AddCommand(deleteFrontmatterCmd)

	replaceFrontmatterCmd.Flags().StringVar(&replaceFrontmatterContent, "content", "", "replacement frontmatter, as YAML text, or '-' for stdin")
	replaceFrontmatterCmd.Flags().StringVar(&replaceFrontmatterFormat, "format", "", "frontmatter format to create if none exists (yaml|toml); an existing fence keeps its format")
	replaceFrontmatterCmd.Flags().BoolVar(&replaceFrontmatterJSON, "json", false, "output as JSON")
	replaceFrontmatterCmd.Flags().BoolVar(&replaceFrontmatterDryRun, "dry-run", false, "print the result instead of writing")
	_ = replaceFrontmatterCmd.MarkFlagRequired("content")
	rootCmd.AddCommand(replaceFrontmatterCmd)
}
