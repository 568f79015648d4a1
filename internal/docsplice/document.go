// Package docsplice wires the engine's collaborators — frontmatter,
// mdparser, mdprinter, splicer, fmpath and transaction — behind a single
// Document type, the entry point a CLI or HTTP handler actually calls.
package docsplice

import (
	"gopkg.in/yaml.v3"

	"github.com/mdsplice/mdsplice/internal/fmpath"
	"github.com/mdsplice/mdsplice/internal/frontmatter"
	"github.com/mdsplice/mdsplice/internal/locator"
	"github.com/mdsplice/mdsplice/internal/mdast"
	"github.com/mdsplice/mdsplice/internal/mdparser"
	"github.com/mdsplice/mdsplice/internal/mdprinter"
	"github.com/mdsplice/mdsplice/internal/transaction"
)

// Document is a parsed Markdown file: its optional frontmatter and its
// block tree, ready to be queried, spliced or re-rendered.
type Document struct {
	Frontmatter *frontmatter.Frontmatter
	Blocks      []mdast.Block

	// DefaultFrontmatterFormat is the fence format used when a batch
	// creates frontmatter on a document that had none and no operation in
	// the batch names a format of its own. Zero value (frontmatter.YAML)
	// is the engine default; callers with a config default (§11.1) should
	// set this before calling Apply.
	DefaultFrontmatterFormat frontmatter.Format
}

// Parse parses src into a Document.
func Parse(src string) (*Document, error) {
	fm, body, _, err := frontmatter.Parse(src)
	if err != nil {
		return nil, err
	}
	return &Document{
		Frontmatter: fm,
		Blocks:      mdparser.Parse(body),
	}, nil
}

// Render serializes the Document back to Markdown source, frontmatter
// fence first if present.
func (d *Document) Render() (string, error) {
	body := mdprinter.Print(d.Blocks)
	if d.Frontmatter == nil {
		return body, nil
	}
	return frontmatter.Render(d.Frontmatter, body)
}

// Locate resolves a selector against the document's current blocks,
// without mutating it.
func (d *Document) Locate(sel *transaction.SelectorDTO) (locator.FoundNode, bool, error) {
	resolved, err := transaction.ResolveSelector(sel)
	if err != nil {
		return locator.FoundNode{}, false, err
	}
	return locator.Locate(d.Blocks, resolved)
}

// Apply runs a batch of operations against the document, committing the
// result only if every operation succeeds (§4.7).
func (d *Document) Apply(ops []transaction.Operation) (bool, error) {
	var fm *yaml.Node
	if d.Frontmatter != nil {
		fm = d.Frontmatter.Value
	}

	work := &transaction.Document{Blocks: d.Blocks, Frontmatter: fm}
	result, ambiguous, err := transaction.Apply(work, ops)
	if err != nil {
		return false, err
	}

	d.Blocks = result.Blocks
	if result.Frontmatter == nil {
		d.Frontmatter = nil
	} else {
		if d.Frontmatter == nil {
			d.Frontmatter = &frontmatter.Frontmatter{Format: d.requestedFormat(ops)}
		}
		d.Frontmatter.Value = result.Frontmatter
	}
	return ambiguous, nil
}

// requestedFormat picks the frontmatter format named by the last
// frontmatter-touching operation in the batch that names one, falling
// back to d.DefaultFrontmatterFormat, for a document that had no
// frontmatter before this batch.
func (d *Document) requestedFormat(ops []transaction.Operation) frontmatter.Format {
	format := d.DefaultFrontmatterFormat
	for _, op := range ops {
		switch op.FrontmatterFormat {
		case "toml":
			format = frontmatter.TOML
		case "yaml":
			format = frontmatter.YAML
		}
	}
	return format
}

// FrontmatterValue returns the document's frontmatter value tree,
// creating an empty YAML mapping if the document had no frontmatter.
func (d *Document) FrontmatterValue() *yaml.Node {
	if d.Frontmatter == nil {
		d.Frontmatter = &frontmatter.Frontmatter{Format: frontmatter.YAML, Value: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}}
	}
	return d.Frontmatter.Value
}

// GetFrontmatterPath reads a single frontmatter value by path, for the
// read-only `get` CLI command and HTTP route.
func (d *Document) GetFrontmatterPath(path string) (*yaml.Node, error) {
	return fmpath.Get(d.FrontmatterValue(), path)
}
