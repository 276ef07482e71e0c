// Package vdom provides the tag tree model and its HTML renderer.
//
// # Core Types
//
// Element is a tag node with ordered attributes and ordered children.
// Text is a literal leaf rendered verbatim. Attribute is the name/value
// capability implemented by Attr (names from the attribute table),
// StyleAttr, InlineStyle, DataAttr, ClassList and NamedAttr.
//
// # Construction
//
// Content passed to New, NewCustom and SetChildren is flattened first:
// nested slices, iterators and channels are expanded in order, strings are
// kept whole. Every flattened item must then be a string, *Text or
// *Element. Self-closing kinds (br, img, input, ...) reject any content.
//
//	p, err := vdom.New(vdom.KindP, vdom.Attrs(vdom.NewClassList("lead")), "Hello")
//	root, err := vdom.New(vdom.KindDiv, nil, p, []any{"a", "b"})
//
// Construction errors are *BuildError values matching ErrInvalidAttributeKind,
// ErrInvalidChildKind or ErrNestingViolation with errors.Is.
//
// # Rendering
//
//	root.Render()                                 // <div><p class='lead'>Hello</p>ab</div>
//	root.Render(vdom.Pretty(), vdom.WithDoctype())
//
// Attribute values are single-quoted and, like text, inserted without escaping.
//
// # Placement
//
// The attribute table records which element kinds each attribute belongs to.
// Construction does not enforce it; CheckPlacement reports mismatches on demand.
package vdom
