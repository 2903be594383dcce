// Package dom records a tokenizer.Parser's event stream into an in-memory
// tree: the collaborator described by the tokenizer as its natural
// consumer, and the shape most callers actually want instead of handling
// raw lexical events themselves.
package dom

import "github.com/arturoeanton/go-xmltok/tokenizer"

// Attribute is a single name/value pair on an Element, in document order.
type Attribute struct {
	Name  string
	Value string
}

// Child is one entry of an Element's ordered content: either a nested
// Element or a run of text, never both. Keeping mixed content as an
// ordered slice (rather than splitting text and elements into separate
// slices) is what lets InnerHTML reproduce document order faithfully.
type Child struct {
	Element *Element
	Text    string
}

// Element is one opened tag, with a non-owning back-reference to its
// parent (nil for the root) so callers can walk upward without the tree
// owning a cycle.
type Element struct {
	Tag      string
	Parent   *Element
	Attrs    []Attribute
	Children []Child
}

// TagName returns the element's tag name.
func (e *Element) TagName() string { return e.Tag }

// ChildElementCount returns the number of element (non-text) children.
func (e *Element) ChildElementCount() int {
	n := 0
	for _, c := range e.Children {
		if c.Element != nil {
			n++
		}
	}
	return n
}

// Elements returns the element-only children, in document order.
func (e *Element) Elements() []*Element {
	out := make([]*Element, 0, e.ChildElementCount())
	for _, c := range e.Children {
		if c.Element != nil {
			out = append(out, c.Element)
		}
	}
	return out
}

// Attributes returns the element's attributes in document order.
func (e *Element) Attributes() []Attribute { return e.Attrs }

// GetAttribute returns the value of the first attribute named name. A
// well-formed document never repeats an attribute name on one element, so
// "first match" only matters for malformed or hand-built trees; it is
// still the deliberate, documented behaviour rather than a last-wins map.
func (e *Element) GetAttribute(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// FirstChildByTag returns the first direct child element with the given
// tag name, or nil.
func (e *Element) FirstChildByTag(tag string) *Element {
	for _, c := range e.Children {
		if c.Element != nil && c.Element.Tag == tag {
			return c.Element
		}
	}
	return nil
}

// ChildrenByTag returns every direct child element with the given tag
// name, in document order.
func (e *Element) ChildrenByTag(tag string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Element != nil && c.Element.Tag == tag {
			out = append(out, c.Element)
		}
	}
	return out
}

// TextContent returns the concatenation of every text run in the subtree
// rooted at e, in document order, descending into child elements.
func (e *Element) TextContent() string {
	var b []byte
	e.collectText(&b)
	return string(b)
}

func (e *Element) collectText(b *[]byte) {
	for _, c := range e.Children {
		if c.Element != nil {
			c.Element.collectText(b)
		} else {
			*b = append(*b, c.Text...)
		}
	}
}

// InnerHTML serialises e's children back to markup. It does not escape
// text runs or attribute values: the tokenizer already resolved entity and
// character references into their literal bytes on the way in, and
// re-escaping them here would be a lossy, asymmetric round-trip rather
// than a faithful one. Callers that need escaped output should walk the
// tree themselves.
func (e *Element) InnerHTML() string {
	var b []byte
	for _, c := range e.Children {
		if c.Element != nil {
			b = append(b, c.Element.outerHTML()...)
		} else {
			b = append(b, c.Text...)
		}
	}
	return string(b)
}

func (e *Element) outerHTML() []byte {
	var b []byte
	b = append(b, '<')
	b = append(b, e.Tag...)
	for _, a := range e.Attrs {
		b = append(b, ' ')
		b = append(b, a.Name...)
		b = append(b, '=', '"')
		b = append(b, a.Value...)
		b = append(b, '"')
	}
	if len(e.Children) == 0 {
		b = append(b, '/', '>')
		return b
	}
	b = append(b, '>')
	b = append(b, []byte((&Element{Tag: e.Tag, Attrs: nil, Children: e.Children}).InnerHTML())...)
	b = append(b, '<', '/')
	b = append(b, e.Tag...)
	b = append(b, '>')
	return b
}

// GetElementsByTagName returns every descendant element (not including e
// itself) whose tag matches name, in pre-order. The tokenizer's own design
// notes leave this traversal order as an open choice for the host
// language; pre-order document order is the one made explicit here, since
// it is what every caller walking a parsed tree actually expects.
func (e *Element) GetElementsByTagName(name string) []*Element {
	var out []*Element
	e.walkPreOrder(name, &out)
	return out
}

func (e *Element) walkPreOrder(name string, out *[]*Element) {
	for _, c := range e.Children {
		if c.Element == nil {
			continue
		}
		if c.Element.Tag == name {
			*out = append(*out, c.Element)
		}
		c.Element.walkPreOrder(name, out)
	}
}

// Document wraps a parsed tree together with the outcome of parsing it.
type Document struct {
	root *Element
	err  *ParseError
}

// ParseError reports where and why parsing stopped.
type ParseError struct {
	Event  tokenizer.Event
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	return e.Event.String()
}

// Root returns the document's single root element, or nil if parsing
// never got far enough to open one.
func (d *Document) Root() *Element { return d.root }

// IsError reports whether parsing failed.
func (d *Document) IsError() bool { return d.err != nil }

// ErrorMessage returns the tokenizer's error string, or "" if parsing
// succeeded.
func (d *Document) ErrorMessage() string {
	if d.err == nil {
		return ""
	}
	return d.err.Error()
}

// Err returns the underlying *ParseError, or nil.
func (d *Document) Err() *ParseError {
	if d.err == nil {
		return nil
	}
	return d.err
}
