// Package attr provides one constructor per HTML attribute kind plus the
// computed attributes (style, inline style, data-*, class).
//
//	el.A(vdom.Attrs(attr.Href("/docs"), attr.Class("nav", "active"), attr.Data("id", "7")), "Docs")
package attr
