package attr

import "github.com/vango-dev/htmlbuilder/pkg/vdom"

// Style sets a literal CSS style string.
func Style(css string) vdom.StyleAttr { return vdom.NewStyle(css) }

// StyleProps builds the style attribute from key, value pairs:
//
//	attr.StyleProps("font_size", "12px", "color", "red") // font-size: 12px; color: red
func StyleProps(kv ...string) vdom.StyleAttr { return vdom.NewStyleProps(vdom.Props(kv...)) }

// StyleMap builds the style attribute from a map, ordered by key.
func StyleMap(m map[string]string) vdom.StyleAttr { return vdom.NewStyleProps(vdom.PropsFromMap(m)) }

// Inline builds a compact inline style ("prop:value;prop:value;") from
// key, value pairs.
func Inline(kv ...string) vdom.InlineStyle { return vdom.NewInlineStyle(vdom.Props(kv...)) }

// Data creates a data-* attribute: Data("id", "7") is data-id='7'.
func Data(suffix, value string) vdom.DataAttr { return vdom.NewData(suffix, value) }

// DataURL sets the data attribute of <object>.
func DataURL(url string) vdom.Attr { return vdom.NewAttr(vdom.AttrData, url) }

// Class joins selector tokens with single spaces.
func Class(tokens ...string) vdom.ClassList { return vdom.NewClassList(tokens...) }

// Named creates an attribute with an explicit name.
func Named(name, value string) vdom.NamedAttr { return vdom.Named(name, value) }
