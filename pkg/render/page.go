package render

import (
	"context"
	"io"

	"github.com/vango-dev/htmlbuilder/pkg/attr"
	"github.com/vango-dev/htmlbuilder/pkg/el"
	"github.com/vango-dev/htmlbuilder/pkg/vdom"
)

// PageData contains everything needed to assemble a complete HTML page.
type PageData struct {
	// Title is the page title
	Title string

	// Lang is the language attribute for the html element
	// Defaults to "en" if not specified
	Lang string

	// Charset is emitted as <meta charset>
	// Defaults to "utf-8" if not specified
	Charset string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Styles contains inline CSS, one <style> element each
	Styles []string

	// Scripts contains script tags appended to the body
	Scripts []ScriptTag

	// Body is the body content. Items are flattened like any element content.
	Body []any
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string // name attribute
	Content   string // content attribute
	HTTPEquiv string // http-equiv attribute
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Defer  bool   // defer attribute
	Async  bool   // async attribute
	Module bool   // type='module'
	Inline string // inline script content
}

// BuildPage assembles an <html> tree from page. Invalid body content is
// reported as a *vdom.BuildError.
func BuildPage(page PageData) (*vdom.Element, error) {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}
	charset := page.Charset
	if charset == "" {
		charset = "utf-8"
	}

	return el.Build(func() *vdom.Element {
		head := []any{
			el.Meta(vdom.Attrs(attr.Charset(charset))),
		}
		for _, m := range page.Meta {
			head = append(head, metaElement(m))
		}
		if page.Title != "" {
			head = append(head, el.Title(nil, page.Title))
		}
		for _, href := range page.StyleSheets {
			head = append(head, el.Link(vdom.Attrs(attr.Rel("stylesheet"), attr.Href(href))))
		}
		for _, css := range page.Styles {
			head = append(head, el.Style(nil, css))
		}

		body := append([]any{}, page.Body...)
		for _, s := range page.Scripts {
			body = append(body, scriptElement(s))
		}

		return el.Html(vdom.Attrs(attr.Lang(lang)),
			el.Head(nil, head...),
			el.Body(nil, body...),
		)
	})
}

func metaElement(m MetaTag) *vdom.Element {
	var attrs []vdom.Attribute
	if m.Name != "" {
		attrs = append(attrs, attr.Name(m.Name))
	}
	if m.HTTPEquiv != "" {
		attrs = append(attrs, attr.HttpEquiv(m.HTTPEquiv))
	}
	attrs = append(attrs, attr.Content(m.Content))
	return el.Meta(attrs)
}

func scriptElement(s ScriptTag) *vdom.Element {
	var attrs []vdom.Attribute
	if s.Module {
		attrs = append(attrs, attr.Type("module"))
	}
	if s.Src != "" {
		attrs = append(attrs, attr.Src(s.Src))
	}
	if s.Defer {
		attrs = append(attrs, attr.Defer("defer"))
	}
	if s.Async {
		attrs = append(attrs, attr.Async("async"))
	}
	if s.Inline != "" {
		return el.Script(attrs, s.Inline)
	}
	return el.Script(attrs)
}

// RenderPage assembles page and writes it, always with a doctype.
func (r *Renderer) RenderPage(ctx context.Context, w io.Writer, page PageData) error {
	root, err := BuildPage(page)
	if err != nil {
		return err
	}
	return r.render(ctx, w, root, true, nil)
}
