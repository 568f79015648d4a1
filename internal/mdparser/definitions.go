package mdparser

import (
	"regexp"
	"strings"

	"github.com/mdsplice/mdsplice/internal/mdast"
)

// linkDefRe matches a single-line, unindented link reference definition:
// `[label]: url "optional title"`. Goldmark consumes these during block
// parsing and doesn't surface them as AST nodes, so they're pulled out of
// the source before it reaches goldmark and reinserted as Definition
// blocks at their original line (§3's Definition block has no analogue in
// goldmark's own tree).
var linkDefRe = regexp.MustCompile(`^\[([^\]]+)\]:\s*(\S+)(?:\s+"([^"]*)")?\s*$`)

// extractLinkDefinitions scans src line by line, blanking out lines that
// match a link reference definition and returning them separately so the
// line count (and therefore every other block's line number) is
// unaffected by the removal.
func extractLinkDefinitions(src string) (string, []extractedDefinition) {
	lines := strings.Split(src, "\n")
	var defs []extractedDefinition
	for i, line := range lines {
		m := linkDefRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		defs = append(defs, extractedDefinition{
			line: i,
			def:  &mdast.Definition{Label: m[1], URL: m[2], Title: m[3]},
		})
		lines[i] = ""
	}
	return strings.Join(lines, "\n"), defs
}
