// Package frontmatter detects, parses and re-serializes a document's
// frontmatter fence, keeping the parsed value as a yaml.Node tree so
// internal/fmpath can edit it directly regardless of source format (§10.2).
package frontmatter

import (
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/mdsplice/mdsplice/internal/spliceerr"
)

// Format is the serialization used by a frontmatter fence.
type Format int

const (
	YAML Format = iota
	TOML
)

func (f Format) fence() string {
	if f == TOML {
		return "+++"
	}
	return "---"
}

// Frontmatter holds a parsed frontmatter block: its original fence format
// and its value as a yaml.Node tree (a MappingNode at the root, in the
// common case).
type Frontmatter struct {
	Format Format
	Value  *yaml.Node
}

// Split locates a leading frontmatter fence in src and returns the raw
// fenced text (without the fence lines) plus the detected format and the
// remaining document body. ok is false if src has no frontmatter fence.
func Split(src string) (raw string, format Format, body string, ok bool) {
	for _, f := range []Format{YAML, TOML} {
		fence := f.fence()
		var rest string
		switch {
		case strings.HasPrefix(src, fence+"\n"):
			rest = src[len(fence)+1:]
		case strings.HasPrefix(src, fence+"\r\n"):
			rest = src[len(fence)+2:]
		default:
			continue
		}
		closeIdx := findClosingFence(rest, fence)
		if closeIdx < 0 {
			continue
		}
		raw = rest[:closeIdx]
		afterFence := rest[closeIdx+len(fence):]
		afterFence = strings.TrimPrefix(afterFence, "\r\n")
		afterFence = strings.TrimPrefix(afterFence, "\n")
		return raw, f, afterFence, true
	}
	return "", YAML, src, false
}

// findClosingFence returns the index, within rest, of a line that is
// exactly fence (optionally followed by \r), or -1 if none exists.
func findClosingFence(rest, fence string) int {
	offset := 0
	for {
		nl := strings.IndexByte(rest[offset:], '\n')
		var line string
		if nl < 0 {
			line = rest[offset:]
		} else {
			line = rest[offset : offset+nl]
		}
		trimmed := strings.TrimSuffix(line, "\r")
		if trimmed == fence {
			return offset
		}
		if nl < 0 {
			return -1
		}
		offset += nl + 1
	}
}

// Parse parses a document's frontmatter, if any. ok is false when src has
// no frontmatter fence, in which case fm is nil and body equals src.
func Parse(src string) (fm *Frontmatter, body string, ok bool, err error) {
	raw, format, rest, found := Split(src)
	if !found {
		return nil, src, false, nil
	}

	var node yaml.Node
	switch format {
	case YAML:
		if err := yaml.Unmarshal([]byte(raw), &node); err != nil {
			return nil, "", true, spliceerr.Wrap(spliceerr.FrontmatterParse, err)
		}
		if node.Kind == 0 {
			node = yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		} else if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
			node = *node.Content[0]
		}
	case TOML:
		var generic map[string]interface{}
		if err := toml.Unmarshal([]byte(raw), &generic); err != nil {
			return nil, "", true, spliceerr.Wrap(spliceerr.FrontmatterParse, err)
		}
		converted := anyToNode(generic)
		node = *converted
	}

	return &Frontmatter{Format: format, Value: &node}, rest, true, nil
}

// Render serializes fm back to a fenced block followed by body, preserving
// fm.Format.
func Render(fm *Frontmatter, body string) (string, error) {
	var raw string
	switch fm.Format {
	case YAML:
		out, err := yaml.Marshal(fm.Value)
		if err != nil {
			return "", spliceerr.Wrap(spliceerr.FrontmatterSerialize, err)
		}
		raw = string(out)
	case TOML:
		generic := nodeToAny(fm.Value)
		out, err := toml.Marshal(generic)
		if err != nil {
			return "", spliceerr.Wrap(spliceerr.FrontmatterSerialize, err)
		}
		raw = string(out)
	}

	fence := fm.Format.fence()
	var sb strings.Builder
	sb.WriteString(fence)
	sb.WriteByte('\n')
	sb.WriteString(raw)
	if !strings.HasSuffix(raw, "\n") {
		sb.WriteByte('\n')
	}
	sb.WriteString(fence)
	sb.WriteByte('\n')
	if !strings.HasPrefix(body, "\n") && body != "" {
		sb.WriteByte('\n')
	}
	sb.WriteString(body)
	return sb.String(), nil
}

// nodeToAny flattens a yaml.Node tree into plain Go values suitable for
// toml.Marshal.
func nodeToAny(n *yaml.Node) interface{} {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 1 {
			return nodeToAny(n.Content[0])
		}
		return nil
	case yaml.MappingNode:
		m := make(map[string]interface{}, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			m[n.Content[i].Value] = nodeToAny(n.Content[i+1])
		}
		return m
	case yaml.SequenceNode:
		s := make([]interface{}, 0, len(n.Content))
		for _, c := range n.Content {
			s = append(s, nodeToAny(c))
		}
		return s
	case yaml.ScalarNode:
		var v interface{}
		_ = n.Decode(&v)
		return v
	default:
		return nil
	}
}

// anyToNode builds a yaml.Node tree from a decoded TOML value (maps,
// slices, and scalars only).
func anyToNode(v interface{}) *yaml.Node {
	node := &yaml.Node{}
	_ = node.Encode(v)
	return node
}
