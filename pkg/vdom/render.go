package vdom

import (
	"io"
	"strings"
)

// Doctype is the declaration emitted before the root when WithDoctype is set.
const Doctype = "<!DOCTYPE html>"

const indentUnit = "  "

// RenderOption configures Render and RenderTo.
type RenderOption func(*renderOptions)

type renderOptions struct {
	pretty  bool
	doctype bool
}

// Pretty enables indented output: two spaces per nesting level and a
// newline after every emitted line.
func Pretty() RenderOption {
	return func(o *renderOptions) { o.pretty = true }
}

// WithDoctype prefixes the output with the HTML5 doctype declaration.
func WithDoctype() RenderOption {
	return func(o *renderOptions) { o.doctype = true }
}

// Render renders the tree rooted at e. By default the output is compact
// and has no doctype.
func (e *Element) Render(opts ...RenderOption) string {
	var b strings.Builder
	_ = e.RenderTo(&b, opts...)
	return b.String()
}

// RenderTo writes the same bytes Render returns to w. It stops at the
// first write error and returns it.
func (e *Element) RenderTo(w io.Writer, opts ...RenderOption) error {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}

	hw := &htmlWriter{w: w}
	if o.doctype {
		writeDoctype(hw, o.pretty)
	}
	e.writeHTML(hw, o.pretty, 0)
	return hw.err
}

// htmlWriter keeps the first write error and turns later writes into no-ops.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (w *htmlWriter) write(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *htmlWriter) indent(depth int) {
	for i := 0; i < depth; i++ {
		w.write(indentUnit)
	}
}

func (w *htmlWriter) newline(pretty bool) {
	if pretty {
		w.write("\n")
	}
}

// writeDoctype ignores attributes and children entirely; the declaration
// is never nested.
func writeDoctype(w *htmlWriter, pretty bool) {
	w.write(Doctype)
	w.newline(pretty)
}

func (t *Text) writeHTML(w *htmlWriter, pretty bool, depth int) {
	if pretty {
		w.indent(depth)
	}
	w.write(t.text)
	w.newline(pretty)
}

func (e *Element) writeHTML(w *htmlWriter, pretty bool, depth int) {
	if pretty {
		w.indent(depth)
	}

	w.write("<")
	w.write(e.tag)
	for _, a := range e.attrs {
		w.write(" ")
		w.write(formatAttr(a.Name(), a.Value()))
	}

	if e.selfClosing {
		w.write("/>")
		w.newline(pretty)
		return
	}

	w.write(">")

	hasChildren := len(e.children) > 0
	if hasChildren {
		w.newline(pretty)
	}

	for _, child := range e.children {
		child.writeHTML(w, pretty, depth+1)
	}

	if pretty && hasChildren {
		w.indent(depth)
	}

	w.write("</")
	w.write(e.tag)
	w.write(">")
	w.newline(pretty)
}
