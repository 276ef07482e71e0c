package document

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vango-dev/htmlbuilder/internal/errors"
	"github.com/vango-dev/htmlbuilder/pkg/vdom"
)

func TestDecodeYAML(t *testing.T) {
	src := `
tag: html
attrs:
  lang: en
children:
  - tag: body
    children:
      - tag: div
        attrs:
          id: main
        style:
          max-width: 40em
          color: red
        class: [card, wide]
        data:
          role: panel
        children:
          - Hello
          - tag: br
          - [a, b]
`
	root, err := Decode([]byte(src), FormatYAML, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<html lang='en'><body>" +
		"<div id='main' style='max-width: 40em; color: red' class='card wide' data-role='panel'>Hello<br/>ab</div>" +
		"</body></html>"
	if got := root.Render(); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestDecodeJSON(t *testing.T) {
	src := `{
  "tag": "p",
  "attrs": [
    {"name": "title", "value": "t"},
    {"name": "id", "value": "x"}
  ],
  "class": "a  b",
  "children": ["one", {"tag": "img", "attrs": {"src": "/i.png", "alt": "i"}}, "two"]
}`
	root, err := Decode([]byte(src), FormatJSON, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<p title='t' id='x' class='a b'>one<img src='/i.png' alt='i'/>two</p>"
	if got := root.Render(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDecodeCustomAndDataAttributes(t *testing.T) {
	src := `
tag: my-widget
attrs:
  data-id: "7"
children:
  - tag: x-icon
    selfClosing: true
  - "42"
`
	root, err := Decode([]byte(src), FormatYAML, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Kind() != vdom.KindInvalid {
		t.Errorf("Kind() = %v, want invalid for a custom tag", root.Kind())
	}
	want := "<my-widget data-id='7'><x-icon/>42</my-widget>"
	if got := root.Render(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDecodeStyleString(t *testing.T) {
	root, err := Decode([]byte(`{"tag": "span", "style": "color:blue;"}`), FormatJSON, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := root.Render(), "<span style='color:blue;'></span>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code string
		line int
	}{
		{"root scalar", `hello`, errors.CodeDocumentMalformed, 1},
		{"missing tag", "attrs:\n  id: x\n", errors.CodeDocumentMalformed, 1},
		{"unknown key", "tag: p\ncolour: red\n", errors.CodeDocumentMalformed, 2},
		{"unknown attribute", "tag: p\nattrs:\n  bogus: x\n", errors.CodeUnknownAttribute, 3},
		{"children not a list", "tag: p\nchildren: hi\n", errors.CodeDocumentMalformed, 2},
		{"attr list entry incomplete", "tag: p\nattrs:\n  - name: id\n", errors.CodeDocumentMalformed, 3},
		{"null child", "tag: p\nchildren:\n  - ~\n", errors.CodeInvalidChildKind, 1},
		{"self-closing with children", "tag: p\nchildren:\n  - tag: br\n    children: [x]\n", errors.CodeNestingViolation, 3},
		{"syntax error", "tag: [", errors.CodeDocumentMalformed, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.src), FormatYAML, "")
			var be *errors.BuildError
			if !stderrors.As(err, &be) {
				t.Fatalf("expected *BuildError, got %T %v", err, err)
			}
			if be.Code != tt.code {
				t.Errorf("Code = %s, want %s (%v)", be.Code, tt.code, err)
			}
			if tt.line > 0 && (be.Location == nil || be.Location.Line != tt.line) {
				t.Errorf("Location = %v, want line %d", be.Location, tt.line)
			}
		})
	}
}

func TestDecodeSurfacesVdomSentinels(t *testing.T) {
	_, err := Decode([]byte("tag: hr\nchildren: [x]\n"), FormatYAML, "")
	if !stderrors.Is(err, vdom.ErrNestingViolation) {
		t.Fatalf("expected ErrNestingViolation, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "page.yml")
	if err := os.WriteFile(yamlPath, []byte("tag: p\nchildren: [hi]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	root, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := root.Render(); got != "<p>hi</p>" {
		t.Errorf("got %q", got)
	}

	badPath := filepath.Join(dir, "page.yml")
	if err := os.WriteFile(badPath, []byte("tag: p\nattrs:\n  nope: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(badPath)
	var be *errors.BuildError
	if !stderrors.As(err, &be) || be.Location == nil || be.Location.File != badPath {
		t.Fatalf("expected located error, got %v", err)
	}
	if len(be.Context) == 0 {
		t.Error("expected source context lines")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "page.txt")); !stderrors.Is(err, errors.New(errors.CodeDocumentFormat)) {
		t.Errorf("expected %s, got %v", errors.CodeDocumentFormat, err)
	}
	if _, err := Load(filepath.Join(dir, "missing.json")); !stderrors.Is(err, errors.New(errors.CodeDocumentRead)) {
		t.Errorf("expected %s, got %v", errors.CodeDocumentRead, err)
	}
	if !stderrors.Is(func() error { _, err := Decode(nil, Format("toml"), ""); return err }(), errors.New(errors.CodeDocumentFormat)) {
		t.Error("expected unsupported format error")
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"a.json":    FormatJSON,
		"b.YAML":    FormatYAML,
		"dir/c.yml": FormatYAML,
	}
	for path, want := range tests {
		got, err := FormatOf(path)
		if err != nil || got != want {
			t.Errorf("FormatOf(%q) = %q, %v; want %q", path, got, err, want)
		}
	}
}
