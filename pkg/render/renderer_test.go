package render

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/htmlbuilder/pkg/el"
	"github.com/vango-dev/htmlbuilder/pkg/vdom"
)

func TestRenderToStringMatchesVdom(t *testing.T) {
	root := samplePage()

	tests := []struct {
		name   string
		config RendererConfig
		want   string
	}{
		{"compact", RendererConfig{}, root.Render()},
		{"pretty", RendererConfig{Pretty: true}, root.Render(vdom.Pretty())},
		{"doctype", RendererConfig{Doctype: true}, root.Render(vdom.WithDoctype())},
		{"pretty doctype", RendererConfig{Pretty: true, Doctype: true}, root.Render(vdom.Pretty(), vdom.WithDoctype())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(tt.config)
			got, err := r.RenderToString(root)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderCompactOutput(t *testing.T) {
	r := NewRenderer(RendererConfig{Doctype: true})
	got, err := r.RenderToString(samplePage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<!DOCTYPE html><html><head><title>Hi</title></head><body><div class='box'>hello<br/></div></body></html>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderNilRoot(t *testing.T) {
	r := NewRenderer(RendererConfig{Doctype: true})
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestRenderWriterError(t *testing.T) {
	r := NewRenderer(RendererConfig{})
	w := &failingWriter{limit: 2}
	err := r.RenderToWriter(w, samplePage())
	if !errors.Is(err, errWrite) {
		t.Fatalf("expected write error, got %v", err)
	}
	if w.writes != 2 {
		t.Errorf("expected writes to stop at the failure, got %d", w.writes)
	}
}

func TestRenderConfig(t *testing.T) {
	config := RendererConfig{Pretty: true}
	if got := NewRenderer(config).Config(); got != config {
		t.Errorf("Config() = %+v, want %+v", got, config)
	}
}

func TestRenderTracing(t *testing.T) {
	tracer := &recordingTracer{}
	r := NewRenderer(RendererConfig{Pretty: true}, WithTracer(tracer))

	out, err := r.RenderToString(el.P(nil, "x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tracer.spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(tracer.spans))
	}
	span := tracer.spans[0]
	if span.name != "htmlbuilder.render" {
		t.Errorf("span name = %q", span.name)
	}
	if !span.ended {
		t.Error("span was not ended")
	}
	if v, ok := span.attr("htmlbuilder.root"); !ok || v.AsString() != "p" {
		t.Errorf("root attribute = %v, %v", v.AsString(), ok)
	}
	if v, ok := span.attr("htmlbuilder.pretty"); !ok || !v.AsBool() {
		t.Errorf("pretty attribute = %v, %v", v.AsBool(), ok)
	}
	if v, ok := span.attr("htmlbuilder.bytes"); !ok || v.AsInt64() != int64(len(out)) {
		t.Errorf("bytes attribute = %d, want %d", v.AsInt64(), len(out))
	}
}

func TestRenderTracingRecordsError(t *testing.T) {
	tracer := &recordingTracer{}
	r := NewRenderer(RendererConfig{}, WithTracer(tracer))

	err := r.RenderContext(context.Background(), &failingWriter{}, el.P(nil, "x"))
	if err == nil {
		t.Fatal("expected error")
	}
	span := tracer.spans[0]
	if len(span.errs) != 1 {
		t.Errorf("expected recorded error, got %v", span.errs)
	}
	if span.status.String() != "Error" {
		t.Errorf("status = %v, want Error", span.status)
	}
}

func TestRenderPage(t *testing.T) {
	r := NewRenderer(RendererConfig{})
	var buf bytes.Buffer
	err := r.RenderPage(context.Background(), &buf, PageData{
		Title:       "Home",
		Meta:        []MetaTag{{Name: "viewport", Content: "width=device-width"}},
		StyleSheets: []string{"/site.css"},
		Styles:      []string{"body { margin: 0 }"},
		Scripts:     []ScriptTag{{Src: "/app.js", Defer: true}, {Inline: "go()"}},
		Body:        []any{el.H1(nil, "Welcome"), []string{"a", "b"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "<!DOCTYPE html><html lang='en'><head>" +
		"<meta charset='utf-8'/>" +
		"<meta name='viewport' content='width=device-width'/>" +
		"<title>Home</title>" +
		"<link rel='stylesheet' href='/site.css'/>" +
		"<style>body { margin: 0 }</style>" +
		"</head><body><h1>Welcome</h1>ab" +
		"<script src='/app.js' defer='defer'></script>" +
		"<script>go()</script>" +
		"</body></html>"
	if got := buf.String(); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestBuildPageInvalidBody(t *testing.T) {
	_, err := BuildPage(PageData{Body: []any{42}})
	if !errors.Is(err, vdom.ErrInvalidChildKind) {
		t.Fatalf("expected ErrInvalidChildKind, got %v", err)
	}
	if !strings.Contains(err.Error(), "int") {
		t.Errorf("error should describe the offending item: %v", err)
	}
}

func TestBuildPageDefaults(t *testing.T) {
	root, err := BuildPage(PageData{Lang: "fr", Charset: "latin1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := root.Render()
	if !strings.HasPrefix(got, "<html lang='fr'><head><meta charset='latin1'/></head>") {
		t.Errorf("unexpected head: %q", got)
	}
}
