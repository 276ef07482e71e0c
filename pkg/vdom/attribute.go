package vdom

import (
	"sort"
	"strings"
)

// Attribute is a name/value pair serialized inside an opening tag.
//
// Implementations must be immutable and report a non-empty Name. String
// returns the canonical form name='value'.
type Attribute interface {
	Name() string
	Value() string
	String() string
}

// Attrs collects attributes into the slice expected by element constructors.
func Attrs(attrs ...Attribute) []Attribute {
	return attrs
}

// formatAttr renders name='value'. The value is inserted verbatim.
func formatAttr(name, value string) string {
	return name + "='" + value + "'"
}

// Attr is an attribute whose name is derived from its kind.
type Attr struct {
	kind  AttrKind
	value string
}

// NewAttr creates an attribute of the given kind.
func NewAttr(kind AttrKind, value string) Attr {
	return Attr{kind: kind, value: value}
}

// Kind returns the attribute kind.
func (a Attr) Kind() AttrKind { return a.kind }

// Name returns the canonical attribute name. It is empty for AttrInvalid.
func (a Attr) Name() string { return a.kind.String() }

// Value returns the attribute value.
func (a Attr) Value() string { return a.value }

// String returns name='value'.
func (a Attr) String() string { return formatAttr(a.Name(), a.value) }

// NamedAttr is an attribute with an explicit name, for names outside the
// attribute table (aria-*, custom elements, ...).
type NamedAttr struct {
	name  string
	value string
}

// Named creates an attribute with an explicit name.
func Named(name, value string) NamedAttr {
	return NamedAttr{name: name, value: value}
}

func (a NamedAttr) Name() string   { return a.name }
func (a NamedAttr) Value() string  { return a.value }
func (a NamedAttr) String() string { return formatAttr(a.name, a.value) }

// Property is a single CSS property/value pair.
type Property struct {
	Key   string
	Value string
}

// Properties is an ordered list of CSS properties. Keys may use
// underscores, they are serialized with hyphens.
type Properties []Property

// Props pairs up its arguments as key, value, key, value. A trailing key
// without a value gets an empty value.
func Props(kv ...string) Properties {
	props := make(Properties, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		p := Property{Key: kv[i]}
		if i+1 < len(kv) {
			p.Value = kv[i+1]
		}
		props = append(props, p)
	}
	return props
}

// PropsFromMap converts a map into Properties sorted by key.
func PropsFromMap(m map[string]string) Properties {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	props := make(Properties, 0, len(keys))
	for _, k := range keys {
		props = append(props, Property{Key: k, Value: m[k]})
	}
	return props
}

func cssKey(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// StyleAttr is the style attribute, either a literal CSS string or one
// synthesized from properties as "prop: value; prop: value".
type StyleAttr struct {
	value string
}

// NewStyle creates a style attribute from a literal CSS string.
func NewStyle(css string) StyleAttr {
	return StyleAttr{value: css}
}

// NewStyleProps creates a style attribute from ordered properties.
func NewStyleProps(props Properties) StyleAttr {
	parts := make([]string, 0, len(props))
	for _, p := range props {
		parts = append(parts, cssKey(p.Key)+": "+p.Value)
	}
	return StyleAttr{value: strings.Join(parts, "; ")}
}

func (s StyleAttr) Name() string   { return "style" }
func (s StyleAttr) Value() string  { return s.value }
func (s StyleAttr) String() string { return formatAttr("style", s.value) }

// InlineStyle is a compact style attribute serialized as "prop:value;"
// for every property with no separator between pairs.
type InlineStyle struct {
	props Properties
}

// NewInlineStyle creates an inline style from ordered properties.
func NewInlineStyle(props Properties) InlineStyle {
	return InlineStyle{props: append(Properties(nil), props...)}
}

// Properties returns a copy of the style properties.
func (s InlineStyle) Properties() Properties {
	return append(Properties(nil), s.props...)
}

func (s InlineStyle) Name() string { return "style" }

// Value serializes the properties.
func (s InlineStyle) Value() string {
	var b strings.Builder
	for _, p := range s.props {
		b.WriteString(cssKey(p.Key))
		b.WriteByte(':')
		b.WriteString(p.Value)
		b.WriteByte(';')
	}
	return b.String()
}

func (s InlineStyle) String() string { return formatAttr("style", s.Value()) }

// DataAttr is a custom data-* attribute.
type DataAttr struct {
	suffix string
	value  string
}

// NewData creates the attribute data-<suffix>.
func NewData(suffix, value string) DataAttr {
	return DataAttr{suffix: suffix, value: value}
}

// Suffix returns the part of the name after "data-".
func (d DataAttr) Suffix() string { return d.suffix }

func (d DataAttr) Name() string   { return "data-" + d.suffix }
func (d DataAttr) Value() string  { return d.value }
func (d DataAttr) String() string { return formatAttr(d.Name(), d.value) }

// ClassList is the class attribute built from selector tokens.
type ClassList struct {
	tokens []string
}

// NewClassList creates a class attribute. Tokens keep their order.
func NewClassList(tokens ...string) ClassList {
	return ClassList{tokens: append([]string(nil), tokens...)}
}

// Tokens returns a copy of the selector tokens.
func (c ClassList) Tokens() []string {
	return append([]string(nil), c.tokens...)
}

func (c ClassList) Name() string   { return "class" }
func (c ClassList) Value() string  { return strings.Join(c.tokens, " ") }
func (c ClassList) String() string { return formatAttr("class", c.Value()) }
