package vdom

import (
	"strings"
)

// Node is a renderable tree member. The set is closed: only *Element and
// *Text implement it.
type Node interface {
	writeHTML(w *htmlWriter, pretty bool, depth int)
}

// Text is a literal text leaf. It is rendered verbatim, never escaped or
// interpreted as markup.
type Text struct {
	text string
}

// NewText wraps s as a text node.
func NewText(s string) *Text {
	return &Text{text: s}
}

// Text returns the wrapped string.
func (t *Text) Text() string { return t.text }

// String returns the wrapped string.
func (t *Text) String() string { return t.text }

// Element is a tag node: a tag name, ordered attributes and ordered children.
//
// An Element owns its attribute and child lists. Children can only be
// replaced as a whole through SetChildren, which re-runs validation.
// Elements are not safe for concurrent mutation; rendering only reads.
type Element struct {
	kind        Kind
	tag         string
	selfClosing bool
	attrs       []Attribute
	children    []Node
}

// New creates an element of a table kind.
//
// Attributes are validated first, then content is flattened, checked and
// stored, with plain strings wrapped as *Text. The first invalid item is
// reported as a *BuildError matching ErrInvalidAttributeKind,
// ErrInvalidChildKind or, for self-closing kinds given content,
// ErrNestingViolation.
func New(kind Kind, attrs []Attribute, content ...any) (*Element, error) {
	if !kind.Valid() {
		return nil, unknownElementError(kind.String())
	}
	e := &Element{
		kind:        kind,
		tag:         kind.String(),
		selfClosing: kind.SelfClosing(),
	}
	if err := e.init(attrs, content); err != nil {
		return nil, err
	}
	return e, nil
}

// NewCustom creates an element whose tag is not in the element table. The
// tag is lower-cased.
func NewCustom(tag string, selfClosing bool, attrs []Attribute, content ...any) (*Element, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return nil, unknownElementError("custom element tag must not be empty")
	}
	e := &Element{
		tag:         tag,
		selfClosing: selfClosing,
	}
	if k, ok := KindByName(tag); ok {
		e.kind = k
	}
	if err := e.init(attrs, content); err != nil {
		return nil, err
	}
	return e, nil
}

// Must panics if err is non-nil and returns e otherwise.
func Must(e *Element, err error) *Element {
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Element) init(attrs []Attribute, content []any) error {
	if err := validateAttributes(attrs); err != nil {
		return err
	}
	children, err := e.ingest(content)
	if err != nil {
		return err
	}
	e.attrs = append([]Attribute(nil), attrs...)
	e.children = children
	return nil
}

// ingest flattens and validates content as one batch. Nothing is stored.
func (e *Element) ingest(content []any) ([]Node, error) {
	items := Flatten(content...)
	if err := validateChildren(items); err != nil {
		return nil, err
	}

	children := make([]Node, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			children = append(children, NewText(v))
		case Node:
			children = append(children, v)
		}
	}

	if e.selfClosing && len(children) > 0 {
		return nil, nestingError(e.tag, children[0])
	}
	return children, nil
}

// SetChildren replaces the whole child list. Content is flattened and
// validated exactly as in New; on error the current children are kept.
func (e *Element) SetChildren(content ...any) error {
	children, err := e.ingest(content)
	if err != nil {
		return err
	}
	e.children = children
	return nil
}

// Kind returns the element kind, KindInvalid for custom tags outside the table.
func (e *Element) Kind() Kind { return e.kind }

// Tag returns the lower-case tag name.
func (e *Element) Tag() string { return e.tag }

// SelfClosing reports whether the element renders as <tag/>.
func (e *Element) SelfClosing() bool { return e.selfClosing }

// Attributes returns a copy of the attribute list.
func (e *Element) Attributes() []Attribute {
	return append([]Attribute(nil), e.attrs...)
}

// Children returns a copy of the child list.
func (e *Element) Children() []Node {
	return append([]Node(nil), e.children...)
}

// String renders the element compactly.
func (e *Element) String() string {
	return e.Render()
}
