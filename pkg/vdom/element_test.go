package vdom

import (
	"errors"
	"strings"
	"testing"
)

func TestNewStoresTextAndNodes(t *testing.T) {
	child := Must(New(KindSpan, nil))
	div, err := New(KindDiv, nil, "a", child, NewText("b"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	children := div.Children()
	if len(children) != 3 {
		t.Fatalf("len(Children()) = %d, want 3", len(children))
	}
	if txt, ok := children[0].(*Text); !ok || txt.Text() != "a" {
		t.Errorf("children[0] = %#v, want *Text(a)", children[0])
	}
	if children[1] != Node(child) {
		t.Errorf("children[1] should be the span element itself")
	}
	if div.Tag() != "div" || div.Kind() != KindDiv || div.SelfClosing() {
		t.Errorf("unexpected element identity: %s %v %v", div.Tag(), div.Kind(), div.SelfClosing())
	}
}

func TestNewRejectsInvalidAttributes(t *testing.T) {
	var nilAttr *InlineStyle

	tests := []struct {
		name  string
		attrs []Attribute
	}{
		{"nil interface", []Attribute{NewAttr(AttrId, "x"), nil}},
		{"typed nil pointer", []Attribute{nilAttr}},
		{"empty name", []Attribute{NewAttr(AttrInvalid, "x")}},
		{"empty named", []Attribute{Named("", "x")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(KindDiv, tt.attrs)
			if !errors.Is(err, ErrInvalidAttributeKind) {
				t.Fatalf("New() error = %v, want ErrInvalidAttributeKind", err)
			}
			var be *BuildError
			if !errors.As(err, &be) || !strings.Contains(be.Detail, "found") {
				t.Errorf("error should describe the offending value: %v", err)
			}
		})
	}
}

func TestNewRejectsInvalidChildren(t *testing.T) {
	var nilElement *Element
	ctor := func(attrs []Attribute, content ...any) (*Element, error) { return New(KindDiv, attrs, content...) }

	tests := []struct {
		name    string
		content []any
	}{
		{"int", []any{42}},
		{"constructor instead of instance", []any{ctor}},
		{"attribute as child", []any{NewAttr(AttrId, "x")}},
		{"nested invalid", []any{"ok", []any{"ok", 3.14}}},
		{"nil", []any{nil}},
		{"typed nil element", []any{nilElement}},
		{"bytes", []any{[]byte("x")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(KindDiv, nil, tt.content...)
			if !errors.Is(err, ErrInvalidChildKind) {
				t.Fatalf("New() error = %v, want ErrInvalidChildKind", err)
			}
		})
	}
}

func TestInvalidChildMessageNamesKind(t *testing.T) {
	_, err := New(KindDiv, nil, 42)
	if err == nil || !strings.Contains(err.Error(), "[42->int]") {
		t.Errorf("error = %v, want it to mention [42->int]", err)
	}
}

func TestAttributesValidatedBeforeContent(t *testing.T) {
	_, err := New(KindDiv, []Attribute{nil}, 42)
	if !errors.Is(err, ErrInvalidAttributeKind) {
		t.Errorf("error = %v, want ErrInvalidAttributeKind first", err)
	}
}

func TestSelfClosingRejectsContent(t *testing.T) {
	for _, k := range Kinds() {
		if !k.SelfClosing() {
			continue
		}
		t.Run(k.String(), func(t *testing.T) {
			_, err := New(k, nil, Must(New(KindDiv, nil)))
			if !errors.Is(err, ErrNestingViolation) {
				t.Fatalf("New(%s, div) error = %v, want ErrNestingViolation", k, err)
			}
			if !strings.Contains(err.Error(), "<"+k.String()+">") {
				t.Errorf("error should name the element: %v", err)
			}

			_, err = New(k, nil, "text")
			if !errors.Is(err, ErrNestingViolation) {
				t.Errorf("New(%s, text) error = %v, want ErrNestingViolation", k, err)
			}

			e, err := New(k, nil, []any{}, []string{})
			if err != nil {
				t.Fatalf("empty content should be accepted: %v", err)
			}
			if got, want := e.Render(), "<"+k.String()+"/>"; got != want {
				t.Errorf("Render() = %q, want %q", got, want)
			}
		})
	}
}

func TestMediaAndBreakKindsAcceptContent(t *testing.T) {
	for _, k := range []Kind{KindSource, KindTrack, KindWbr} {
		t.Run(k.String(), func(t *testing.T) {
			if k.SelfClosing() {
				t.Fatalf("%s should not be self-closing", k)
			}
			if got, want := Must(New(k, nil)).Render(), "<"+k.String()+"></"+k.String()+">"; got != want {
				t.Errorf("Render() = %q, want %q", got, want)
			}
			e, err := New(k, nil, "x")
			if err != nil {
				t.Fatalf("New(%s, x) error = %v", k, err)
			}
			if got, want := e.Render(), "<"+k.String()+">x</"+k.String()+">"; got != want {
				t.Errorf("Render() = %q, want %q", got, want)
			}
		})
	}
}

func TestSetChildrenReplacesAtomically(t *testing.T) {
	div := Must(New(KindDiv, nil, "old"))

	if err := div.SetChildren("a", []any{"b", 1}); !errors.Is(err, ErrInvalidChildKind) {
		t.Fatalf("SetChildren() error = %v, want ErrInvalidChildKind", err)
	}
	if got := div.Render(); got != "<div>old</div>" {
		t.Errorf("failed SetChildren changed state: %q", got)
	}

	if err := div.SetChildren("a", []any{"b", Must(New(KindI, nil))}); err != nil {
		t.Fatalf("SetChildren() error = %v", err)
	}
	if got := div.Render(); got != "<div>ab<i></i></div>" {
		t.Errorf("Render() = %q", got)
	}

	if err := div.SetChildren(); err != nil {
		t.Fatal(err)
	}
	if got := div.Render(); got != "<div></div>" {
		t.Errorf("Render() after clearing = %q", got)
	}
}

func TestSetChildrenOnSelfClosing(t *testing.T) {
	br := Must(New(KindBr, nil))
	if err := br.SetChildren("x"); !errors.Is(err, ErrNestingViolation) {
		t.Errorf("SetChildren() error = %v, want ErrNestingViolation", err)
	}
	if err := br.SetChildren(); err != nil {
		t.Errorf("SetChildren() with no content error = %v", err)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	div := Must(New(KindDiv, Attrs(NewAttr(AttrId, "x")), "a"))

	div.Children()[0] = NewText("changed")
	div.Attributes()[0] = NewAttr(AttrId, "changed")

	if got := div.Render(); got != "<div id='x'>a</div>" {
		t.Errorf("accessors exposed internal state: %q", got)
	}
}

func TestConstructionCopiesAttributeSlice(t *testing.T) {
	attrs := Attrs(NewAttr(AttrId, "x"))
	div := Must(New(KindDiv, attrs))
	attrs[0] = NewAttr(AttrId, "y")
	if got := div.Render(); got != "<div id='x'></div>" {
		t.Errorf("element shares caller attribute slice: %q", got)
	}
}

func TestNewCustom(t *testing.T) {
	e, err := NewCustom("My-Widget", false, nil, "x")
	if err != nil {
		t.Fatal(err)
	}
	if got := e.Render(); got != "<my-widget>x</my-widget>" {
		t.Errorf("Render() = %q", got)
	}
	if e.Kind() != KindInvalid {
		t.Errorf("custom tag should have no table kind")
	}

	known, _ := NewCustom("P", false, nil)
	if known.Kind() != KindP {
		t.Errorf("custom tag matching the table should report its kind")
	}

	_, err = NewCustom("x-icon", true, nil, "no")
	if !errors.Is(err, ErrNestingViolation) {
		t.Errorf("self-closing custom error = %v", err)
	}

	_, err = NewCustom("  ", false, nil)
	if !errors.Is(err, ErrUnknownElement) {
		t.Errorf("empty tag error = %v", err)
	}
}

func TestNewUnknownKind(t *testing.T) {
	if _, err := New(KindInvalid, nil); !errors.Is(err, ErrUnknownElement) {
		t.Errorf("New(KindInvalid) error = %v", err)
	}
	if _, err := New(Kind(250), nil); !errors.Is(err, ErrUnknownElement) {
		t.Errorf("New(250) error = %v", err)
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidChildKind) {
			t.Errorf("recover() = %v, want ErrInvalidChildKind", r)
		}
	}()
	Must(New(KindDiv, nil, 1))
}
