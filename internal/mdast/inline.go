package mdast

// Inline is an inline-level span within a Paragraph or Heading. Concrete
// types are *Text, *Emphasis, *Strong, *Strikethrough, *Link,
// *LinkReference, *Image, *Code, *LineBreak, *HTML, *Autolink, and
// *FootnoteReference.
type Inline interface {
	inlineNode()
}

// Text is a literal run of text.
type Text struct {
	Literal string
}

func (*Text) inlineNode() {}

// Emphasis is `*text*`/`_text_` content.
type Emphasis struct {
	Children []Inline
}

func (*Emphasis) inlineNode() {}

// Strong is `**text**`/`__text__` content.
type Strong struct {
	Children []Inline
}

func (*Strong) inlineNode() {}

// Strikethrough is `~~text~~` content (GFM extension).
type Strikethrough struct {
	Children []Inline
}

func (*Strikethrough) inlineNode() {}

// Link is `[text](url "title")`.
type Link struct {
	Destination string
	Title       string
	Children    []Inline
}

func (*Link) inlineNode() {}

// LinkReference is `[text][label]`, resolved against a Definition elsewhere
// in the document.
type LinkReference struct {
	Label    string
	Children []Inline
}

func (*LinkReference) inlineNode() {}

// Image is `![alt](url "title")`; its alt text is carried in Children so
// text extraction can recurse into it uniformly with Link.
type Image struct {
	Destination string
	Title       string
	Children    []Inline
}

func (*Image) inlineNode() {}

// Code is an inline code span (`` `literal` ``).
type Code struct {
	Literal string
}

func (*Code) inlineNode() {}

// LineBreak is a hard line break; it contributes no text.
type LineBreak struct {
	Hard bool
}

func (*LineBreak) inlineNode() {}

// HTML is a raw inline HTML span; it contributes no text.
type HTML struct {
	Literal string
}

func (*HTML) inlineNode() {}

// Autolink is a bare `<https://...>` link; it contributes no text.
type Autolink struct {
	Destination string
}

func (*Autolink) inlineNode() {}

// FootnoteReference is a `[^label]` marker; it contributes no text.
type FootnoteReference struct {
	Label string
}

func (*FootnoteReference) inlineNode() {}
