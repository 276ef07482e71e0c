package vdom

import "testing"

func TestAttributeNamesAndValues(t *testing.T) {
	tests := []struct {
		name      string
		attr      Attribute
		wantName  string
		wantValue string
	}{
		{"kind attr", NewAttr(AttrHref, "/page"), "href", "/page"},
		{"hyphenated kind", NewAttr(AttrHttpEquiv, "refresh"), "http-equiv", "refresh"},
		{"accept-charset", NewAttr(AttrAcceptCharset, "utf-8"), "accept-charset", "utf-8"},
		{"style literal", NewStyle("color: red"), "style", "color: red"},
		{"style props", NewStyleProps(Props("custom_param1", "test", "custom_param2", "test")), "style", "custom-param1: test; custom-param2: test"},
		{"style empty", NewStyleProps(nil), "style", ""},
		{"inline style", NewInlineStyle(Props("font_size", "12px", "color", "red")), "style", "font-size:12px;color:red;"},
		{"data", NewData("test-value", "Testing"), "data-test-value", "Testing"},
		{"class list", NewClassList("card", "active"), "class", "card active"},
		{"class single", NewClassList("card"), "class", "card"},
		{"named", Named("aria-label", "Close"), "aria-label", "Close"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.attr.Name(); got != tt.wantName {
				t.Errorf("Name() = %q, want %q", got, tt.wantName)
			}
			if got := tt.attr.Value(); got != tt.wantValue {
				t.Errorf("Value() = %q, want %q", got, tt.wantValue)
			}
			want := tt.wantName + "='" + tt.wantValue + "'"
			if got := tt.attr.String(); got != want {
				t.Errorf("String() = %q, want %q", got, want)
			}
		})
	}
}

func TestAttributeValueIsVerbatim(t *testing.T) {
	a := NewAttr(AttrTitle, `it's "quoted" & <raw>`)
	want := `title='it's "quoted" & <raw>'`
	if got := a.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestProps(t *testing.T) {
	p := Props("a", "1", "b")
	if len(p) != 2 || p[1] != (Property{Key: "b"}) {
		t.Errorf("Props() = %v", p)
	}

	m := PropsFromMap(map[string]string{"z_index": "2", "color": "red"})
	if len(m) != 2 || m[0].Key != "color" || m[1].Key != "z_index" {
		t.Errorf("PropsFromMap() = %v, want sorted keys", m)
	}
	if got := NewStyleProps(m).Value(); got != "color: red; z-index: 2" {
		t.Errorf("style from map = %q", got)
	}
}

func TestComputedAttributesAreImmutable(t *testing.T) {
	tokens := []string{"a", "b"}
	c := NewClassList(tokens...)
	tokens[0] = "changed"
	if c.Value() != "a b" {
		t.Errorf("ClassList shares caller slice: %q", c.Value())
	}
	c.Tokens()[0] = "changed"
	if c.Value() != "a b" {
		t.Errorf("Tokens() exposes internal slice: %q", c.Value())
	}

	props := Props("a", "1")
	s := NewInlineStyle(props)
	props[0].Value = "2"
	if s.Value() != "a:1;" {
		t.Errorf("InlineStyle shares caller slice: %q", s.Value())
	}
}

func TestKindTables(t *testing.T) {
	for _, k := range Kinds() {
		if k.String() == "" {
			t.Errorf("kind %d has no name", k)
		}
		got, ok := KindByName(k.String())
		if !ok || got != k {
			t.Errorf("KindByName(%q) = %v, %v", k.String(), got, ok)
		}
	}
	for _, k := range AttrKinds() {
		got, ok := AttrKindByName(k.String())
		if !ok || got != k {
			t.Errorf("AttrKindByName(%q) = %v, %v", k.String(), got, ok)
		}
	}

	if k, ok := KindByName("DIV"); !ok || k != KindDiv {
		t.Errorf("KindByName should be case-insensitive")
	}
	if _, ok := KindByName("blink"); ok {
		t.Errorf("KindByName(blink) should fail")
	}
	if KindInvalid.Valid() || KindInvalid.SelfClosing() {
		t.Errorf("KindInvalid must not be valid")
	}
	if AttrInvalid.String() != "" {
		t.Errorf("AttrInvalid must have no name")
	}
}

func TestSelfClosingKinds(t *testing.T) {
	want := map[Kind]bool{
		KindArea: true, KindBase: true, KindBr: true, KindCol: true,
		KindEmbed: true, KindHr: true, KindImg: true, KindInput: true,
		KindLink: true, KindMeta: true, KindParam: true,
	}
	for _, k := range Kinds() {
		if k.SelfClosing() != want[k] {
			t.Errorf("%s.SelfClosing() = %v, want %v", k, k.SelfClosing(), want[k])
		}
	}
}

func TestBelongsToIsACopy(t *testing.T) {
	b := AttrHref.BelongsTo()
	if len(b) == 0 {
		t.Fatal("href should have a BelongsTo list")
	}
	b[0] = KindDiv
	if AttrHref.BelongsTo()[0] == KindDiv {
		t.Error("BelongsTo exposes the table")
	}
	if AttrId.BelongsTo() != nil {
		t.Error("id should be global")
	}
}
