// Package fmpath implements the dotted/indexed path grammar used to
// address a value inside frontmatter (§4.6), operating directly on a
// gopkg.in/yaml.v3 Node tree so comments and key order survive edits that
// don't touch them.
package fmpath

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mdsplice/mdsplice/internal/spliceerr"
)

// Segment is one step of a parsed path: either a mapping Key or a
// zero-based sequence Index.
type Segment struct {
	Key      string
	Index    int
	IsIndex  bool
}

// Parse splits a path like "a.b[0].c" into its Segments. A leading bare
// key or "[N]", then any run of ".key" or "[N]" suffixes; a key directly
// followed by "[N]" yields two Segments, the key and then the index.
func Parse(path string) ([]Segment, error) {
	if path == "" {
		return nil, spliceerr.Newf(spliceerr.OperationParse, "empty frontmatter path")
	}

	var segs []Segment
	i := 0
	n := len(path)
	expectKey := true

	for i < n {
		switch {
		case path[i] == '.':
			if expectKey {
				return nil, spliceerr.Newf(spliceerr.OperationParse, path)
			}
			i++
			expectKey = true
		case path[i] == '[':
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				return nil, spliceerr.Newf(spliceerr.OperationParse, path)
			}
			numStr := path[i+1 : i+end]
			idx, err := strconv.Atoi(numStr)
			if err != nil || idx < 0 {
				return nil, spliceerr.Newf(spliceerr.OperationParse, path)
			}
			segs = append(segs, Segment{Index: idx, IsIndex: true})
			i += end + 1
			expectKey = false
		default:
			if !expectKey {
				return nil, spliceerr.Newf(spliceerr.OperationParse, path)
			}
			start := i
			for i < n && path[i] != '.' && path[i] != '[' {
				if path[i] == ']' {
					return nil, spliceerr.Newf(spliceerr.OperationParse, path)
				}
				i++
			}
			key := path[start:i]
			if key == "" {
				return nil, spliceerr.Newf(spliceerr.OperationParse, path)
			}
			segs = append(segs, Segment{Key: key})
			expectKey = false
		}
	}
	if expectKey {
		return nil, spliceerr.Newf(spliceerr.OperationParse, path)
	}
	return segs, nil
}

func newMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

// mapEntry finds the value node for key inside a mapping node, returning
// nil if absent.
func mapEntry(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func mapSetEntry(m *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content[i+1] = value
			return
		}
	}
	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	m.Content = append(m.Content, keyNode, value)
}

func mapDeleteEntry(m *yaml.Node, key string) bool {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content = append(m.Content[:i], m.Content[i+2:]...)
			return true
		}
	}
	return false
}

// Get walks root along path and returns the node found there.
func Get(root *yaml.Node, path string) (*yaml.Node, error) {
	segs, err := Parse(path)
	if err != nil {
		return nil, err
	}
	cur := unwrap(root)
	for _, seg := range segs {
		cur, err = step(cur, seg)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

func step(cur *yaml.Node, seg Segment) (*yaml.Node, error) {
	if seg.IsIndex {
		if cur.Kind != yaml.SequenceNode || seg.Index >= len(cur.Content) {
			return nil, spliceerr.New(spliceerr.FrontmatterKeyNotFound)
		}
		return cur.Content[seg.Index], nil
	}
	if cur.Kind != yaml.MappingNode {
		return nil, spliceerr.New(spliceerr.FrontmatterKeyNotFound)
	}
	v := mapEntry(cur, seg.Key)
	if v == nil {
		return nil, spliceerr.New(spliceerr.FrontmatterKeyNotFound)
	}
	return v, nil
}

// Set walks root along path, autovivifying missing MappingNode
// intermediates (never sequences — indexing into a missing or too-short
// sequence is an error), and assigns value at the final segment.
func Set(root *yaml.Node, path string, value *yaml.Node) error {
	segs, err := Parse(path)
	if err != nil {
		return err
	}
	cur := unwrap(root)
	for i, seg := range segs {
		last := i == len(segs)-1
		if seg.IsIndex {
			if cur.Kind != yaml.SequenceNode || seg.Index >= len(cur.Content) {
				return spliceerr.New(spliceerr.FrontmatterKeyNotFound)
			}
			if last {
				cur.Content[seg.Index] = value
				return nil
			}
			cur = cur.Content[seg.Index]
			continue
		}

		if cur.Kind != yaml.MappingNode {
			return spliceerr.New(spliceerr.FrontmatterKeyNotFound)
		}
		if last {
			mapSetEntry(cur, seg.Key, value)
			return nil
		}
		next := mapEntry(cur, seg.Key)
		if next == nil {
			next = newMapping()
			mapSetEntry(cur, seg.Key, next)
		}
		cur = next
	}
	return nil
}

// Delete removes the value at path, then prunes any mapping or sequence
// left empty by the removal, walking back up toward root.
func Delete(root *yaml.Node, path string) error {
	segs, err := Parse(path)
	if err != nil {
		return err
	}

	cur := unwrap(root)
	chain := []*yaml.Node{cur}
	for _, seg := range segs[:len(segs)-1] {
		cur, err = step(cur, seg)
		if err != nil {
			return err
		}
		chain = append(chain, cur)
	}

	last := segs[len(segs)-1]
	if last.IsIndex {
		if cur.Kind != yaml.SequenceNode || last.Index >= len(cur.Content) {
			return spliceerr.New(spliceerr.FrontmatterKeyNotFound)
		}
		cur.Content = append(cur.Content[:last.Index], cur.Content[last.Index+1:]...)
	} else {
		if cur.Kind != yaml.MappingNode || !mapDeleteEntry(cur, last.Key) {
			return spliceerr.New(spliceerr.FrontmatterKeyNotFound)
		}
	}

	for i := len(chain) - 1; i > 0; i-- {
		parent := chain[i-1]
		child := chain[i]
		if len(child.Content) > 0 {
			break
		}
		seg := segs[i-1]
		if seg.IsIndex {
			if parent.Kind == yaml.SequenceNode && seg.Index < len(parent.Content) {
				parent.Content = append(parent.Content[:seg.Index], parent.Content[seg.Index+1:]...)
			}
		} else if parent.Kind == yaml.MappingNode {
			mapDeleteEntry(parent, seg.Key)
		}
	}
	return nil
}

// CloneNode deep-copies a yaml.Node tree so a failed batch can be
// discarded without mutating the caller's frontmatter value.
func CloneNode(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	cp := *n
	if n.Content != nil {
		cp.Content = make([]*yaml.Node, len(n.Content))
		for i, c := range n.Content {
			cp.Content[i] = CloneNode(c)
		}
	}
	if n.Alias != nil {
		cp.Alias = CloneNode(n.Alias)
	}
	return &cp
}

// unwrap descends through a DocumentNode wrapper, if present, and
// initializes root in place as an empty mapping if it is currently null.
func unwrap(root *yaml.Node) *yaml.Node {
	n := root
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	if n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null") {
		n.Kind = yaml.MappingNode
		n.Tag = "!!map"
		n.Content = nil
	}
	return n
}
