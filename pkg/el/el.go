package el

import (
	stderrors "errors"

	"github.com/vango-dev/htmlbuilder/pkg/vdom"
)

func build(kind vdom.Kind, attrs []vdom.Attribute, content []any) *vdom.Element {
	return vdom.Must(vdom.New(kind, attrs, content...))
}

// Custom creates an element with a tag outside the element table.
func Custom(tag string, attrs []vdom.Attribute, content ...any) *vdom.Element {
	return vdom.Must(vdom.NewCustom(tag, false, attrs, content...))
}

// CustomSelfClosing creates a self-closing element with a tag outside the
// element table.
func CustomSelfClosing(tag string, attrs []vdom.Attribute) *vdom.Element {
	return vdom.Must(vdom.NewCustom(tag, true, attrs))
}

// Text wraps s as a text node.
func Text(s string) *vdom.Text {
	return vdom.NewText(s)
}

// Build runs fn and returns the element it builds. A *vdom.BuildError
// panic raised by a constructor inside fn is returned as err; any other
// panic is propagated.
func Build(fn func() *vdom.Element) (root *vdom.Element, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			var be *vdom.BuildError
			if !ok || !stderrors.As(rerr, &be) {
				panic(r)
			}
			root, err = nil, be
		}
	}()
	return fn(), nil
}
