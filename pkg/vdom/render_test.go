package vdom

import (
	"errors"
	"strings"
	"testing"
	"unicode"
)

func TestEmptyElementsRender(t *testing.T) {
	for _, k := range Kinds() {
		if k.SelfClosing() {
			continue
		}
		e := Must(New(k, nil))
		want := "<" + k.String() + "></" + k.String() + ">"
		if got := e.Render(); got != want {
			t.Errorf("%s: Render() = %q, want %q", k, got, want)
		}
		if got := e.Render(Pretty()); got != want+"\n" {
			t.Errorf("%s: Render(Pretty()) = %q, want %q", k, got, want+"\n")
		}
	}
}

func TestOneLevelNesting(t *testing.T) {
	for _, outer := range []Kind{KindDiv, KindUl, KindTable, KindSpan} {
		for _, inner := range []Kind{KindP, KindLi, KindTr, KindB} {
			e := Must(New(outer, nil, Must(New(inner, nil))))
			want := "<" + outer.String() + "><" + inner.String() + "></" + inner.String() + "></" + outer.String() + ">"
			if got := e.Render(); got != want {
				t.Errorf("Render() = %q, want %q", got, want)
			}
		}
	}
}

func TestAttributeRendering(t *testing.T) {
	tests := []struct {
		name string
		el   *Element
		want string
	}{
		{
			name: "kind attribute",
			el:   Must(New(KindA, Attrs(NewAttr(AttrHref, "test")))),
			want: "<a href='test'></a>",
		},
		{
			name: "attribute order kept",
			el:   Must(New(KindInput, Attrs(NewAttr(AttrType, "text"), NewAttr(AttrName, "q"), NewAttr(AttrAutofocus, "")))),
			want: "<input type='text' name='q' autofocus=''/>",
		},
		{
			name: "style synthesized",
			el:   Must(New(KindDiv, Attrs(NewStyleProps(Props("custom_param1", "test", "custom_param2", "test"))))),
			want: "<div style='custom-param1: test; custom-param2: test'></div>",
		},
		{
			name: "inline style",
			el:   Must(New(KindDiv, Attrs(NewInlineStyle(Props("margin_top", "0", "color", "red"))))),
			want: "<div style='margin-top:0;color:red;'></div>",
		},
		{
			name: "data attribute",
			el:   Must(New(KindDiv, Attrs(NewData("test-value", "Testing")))),
			want: "<div data-test-value='Testing'></div>",
		},
		{
			name: "class list",
			el:   Must(New(KindP, Attrs(NewClassList("a", "b", "c")), "x")),
			want: "<p class='a b c'>x</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttributeOnEveryAllowedKind(t *testing.T) {
	for _, ak := range AttrKinds() {
		for _, k := range ak.BelongsTo() {
			e := Must(New(k, Attrs(NewAttr(ak, "test"))))
			want := "<" + k.String() + " " + ak.String() + "='test'"
			if k.SelfClosing() {
				want += "/>"
			} else {
				want += "></" + k.String() + ">"
			}
			if got := e.Render(); got != want {
				t.Errorf("Render() = %q, want %q", got, want)
			}
		}
	}
}

func TestMixedContentOrder(t *testing.T) {
	child := Must(NewCustom("childtag", false, nil))
	div := Must(New(KindDiv, nil, []any{"a", child, "b"}))
	if got, want := div.Render(), "<div>a<childtag></childtag>b</div>"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestTextIsVerbatim(t *testing.T) {
	p := Must(New(KindP, nil, "<b>not bold</b> & more"))
	if got, want := p.Render(), "<p><b>not bold</b> & more</p>"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func buildPage() *Element {
	return Must(New(KindHtml, nil,
		Must(New(KindHead, nil,
			Must(New(KindTitle, nil, "Home")),
			Must(New(KindMeta, Attrs(NewAttr(AttrCharset, "utf-8")))),
		)),
		Must(New(KindBody, Attrs(NewClassList("main")),
			Must(New(KindH1, nil, "Hello")),
			Must(New(KindP, nil)),
			"tail",
		)),
	))
}

func TestPrettyRender(t *testing.T) {
	want := strings.Join([]string{
		"<html>",
		"  <head>",
		"    <title>",
		"      Home",
		"    </title>",
		"    <meta charset='utf-8'/>",
		"  </head>",
		"  <body class='main'>",
		"    <h1>",
		"      Hello",
		"    </h1>",
		"    <p></p>",
		"    tail",
		"  </body>",
		"</html>",
		"",
	}, "\n")

	if got := buildPage().Render(Pretty()); got != want {
		t.Errorf("Render(Pretty()) =\n%s\nwant\n%s", got, want)
	}
}

func TestCompactRender(t *testing.T) {
	want := "<html><head><title>Home</title><meta charset='utf-8'/></head>" +
		"<body class='main'><h1>Hello</h1><p></p>tail</body></html>"
	if got := buildPage().Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func stripLayout(s string) string {
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		b.WriteString(strings.TrimLeftFunc(line, unicode.IsSpace))
	}
	return b.String()
}

func TestPrettyMatchesCompact(t *testing.T) {
	trees := []*Element{
		buildPage(),
		Must(New(KindUl, nil, Must(New(KindLi, nil, "1")), Must(New(KindLi, nil, "2")))),
		Must(New(KindDiv, nil)),
		Must(New(KindImg, Attrs(NewAttr(AttrSrc, "x.png")))),
	}
	for _, tree := range trees {
		if got, want := stripLayout(tree.Render(Pretty())), tree.Render(); got != want {
			t.Errorf("pretty output differs beyond layout:\n%q\n%q", got, want)
		}
	}
}

func TestDoctype(t *testing.T) {
	page := buildPage()
	if got, want := page.Render(WithDoctype()), Doctype+page.Render(); got != want {
		t.Errorf("Render(WithDoctype()) = %q, want %q", got, want)
	}
	if got, want := page.Render(WithDoctype(), Pretty()), Doctype+"\n"+page.Render(Pretty()); got != want {
		t.Errorf("Render(WithDoctype(), Pretty()) = %q, want %q", got, want)
	}
}

func TestSharedChildRendersIdentically(t *testing.T) {
	shared := Must(New(KindSpan, nil, "s"))
	a := Must(New(KindDiv, nil, shared))
	b := Must(New(KindP, nil, shared))
	if a.Render() != "<div><span>s</span></div>" || b.Render() != "<p><span>s</span></p>" {
		t.Errorf("shared child rendered differently: %q %q", a.Render(), b.Render())
	}
}

type failingWriter struct {
	writes int
	after  int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes > w.after {
		return 0, errors.New("write failed")
	}
	return len(p), nil
}

func TestRenderToStopsOnWriteError(t *testing.T) {
	w := &failingWriter{after: 2}
	err := buildPage().RenderTo(w)
	if err == nil || err.Error() != "write failed" {
		t.Fatalf("RenderTo() error = %v, want write failed", err)
	}
	if w.writes != 3 {
		t.Errorf("writes after failure = %d, want 3", w.writes)
	}
}

func TestRenderToMatchesRender(t *testing.T) {
	var b strings.Builder
	page := buildPage()
	if err := page.RenderTo(&b, Pretty(), WithDoctype()); err != nil {
		t.Fatal(err)
	}
	if b.String() != page.Render(Pretty(), WithDoctype()) {
		t.Error("RenderTo and Render disagree")
	}
}

func TestElementString(t *testing.T) {
	e := Must(New(KindB, nil, "x"))
	if e.String() != "<b>x</b>" {
		t.Errorf("String() = %q", e.String())
	}
}
