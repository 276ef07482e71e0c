// Package el provides one constructor per HTML element kind.
//
// Constructors take the attribute list first and the content after it:
//
//	page := el.Html(nil,
//	    el.Head(nil, el.Title(nil, "Home")),
//	    el.Body(vdom.Attrs(attr.Class("main")),
//	        el.H1(nil, "Hello"),
//	        el.Br(nil),
//	        items,
//	    ),
//	)
//
// Constructors panic with a *vdom.BuildError on invalid input so trees can
// be written as nested expressions. Wrap tree building in Build to get the
// error back, or call vdom.New directly.
package el
