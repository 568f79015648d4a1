// Package transaction is the batch applier (§4.7): it decodes an
// Operation DTO, resolves its selector tree (aliases, *_ref indirection,
// regex compilation), then drives internal/locator, internal/splicer and
// internal/fmpath to carry out each operation against a cloned copy of the
// document, committing only if every operation in the batch succeeds.
package transaction

// Position mirrors splicer.Position in the wire vocabulary operations are
// authored with.
type Position string

const (
	Before       Position = "before"
	After        Position = "after"
	PrependChild Position = "prepend_child"
	AppendChild  Position = "append_child"
)

// Kind is the operation verb.
type Kind string

const (
	Insert             Kind = "insert"
	Replace            Kind = "replace"
	Delete             Kind = "delete"
	SetFrontmatter     Kind = "set_frontmatter"
	DeleteFrontmatter  Kind = "delete_frontmatter"
	ReplaceFrontmatter Kind = "replace_frontmatter"
)

// SelectorDTO is the wire shape of a selector, inlined or aliased (§3).
// JSON and YAML batch files (§11.3) share the snake_case wire vocabulary.
// The `toml` tags carry the same keys, but no batch loader in this
// repository decodes TOML.
type SelectorDTO struct {
	Type     *string      `json:"select_type,omitempty" yaml:"select_type,omitempty" toml:"select_type,omitempty"`
	Contains *string      `json:"select_contains,omitempty" yaml:"select_contains,omitempty" toml:"select_contains,omitempty"`
	Regex    *string      `json:"select_regex,omitempty" yaml:"select_regex,omitempty" toml:"select_regex,omitempty"`
	Ordinal  int          `json:"select_ordinal,omitempty" yaml:"select_ordinal,omitempty" toml:"select_ordinal,omitempty"`
	After    *SelectorDTO `json:"after,omitempty" yaml:"after,omitempty" toml:"after,omitempty"`
	Within   *SelectorDTO `json:"within,omitempty" yaml:"within,omitempty" toml:"within,omitempty"`

	Alias       string `json:"alias,omitempty" yaml:"alias,omitempty" toml:"alias,omitempty"`
	SelectorRef string `json:"selector_ref,omitempty" yaml:"selector_ref,omitempty" toml:"selector_ref,omitempty"`
	AfterRef    string `json:"after_ref,omitempty" yaml:"after_ref,omitempty" toml:"after_ref,omitempty"`
	WithinRef   string `json:"within_ref,omitempty" yaml:"within_ref,omitempty" toml:"within_ref,omitempty"`
}

// Operation is one step of a batch, decoded from JSON or YAML input.
type Operation struct {
	Op       Kind         `json:"op" yaml:"op" toml:"op"`
	Selector *SelectorDTO `json:"selector,omitempty" yaml:"selector,omitempty" toml:"selector,omitempty"`
	Until    *SelectorDTO `json:"until,omitempty" yaml:"until,omitempty" toml:"until,omitempty"`
	UntilRef string       `json:"until_ref,omitempty" yaml:"until_ref,omitempty" toml:"until_ref,omitempty"`
	Position Position     `json:"position,omitempty" yaml:"position,omitempty" toml:"position,omitempty"`
	Content  string       `json:"content,omitempty" yaml:"content,omitempty" toml:"content,omitempty"`
	Section  bool         `json:"section,omitempty" yaml:"section,omitempty" toml:"section,omitempty"`

	Path              string      `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`
	Value             interface{} `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	FrontmatterFormat string      `json:"frontmatter_format,omitempty" yaml:"frontmatter_format,omitempty" toml:"frontmatter_format,omitempty"`
}
