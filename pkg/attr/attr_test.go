package attr

import (
	"testing"

	"github.com/vango-dev/htmlbuilder/pkg/vdom"
)

func TestKindAttributes(t *testing.T) {
	tests := []struct {
		name  string
		attr  vdom.Attr
		key   string
		value string
	}{
		{"Href", Href("/page"), "href", "/page"},
		{"Target", Target("_blank"), "target", "_blank"},
		{"Id", Id("main"), "id", "main"},
		{"For", For("email"), "for", "email"},
		{"Type", Type("email"), "type", "email"},
		{"HttpEquiv", HttpEquiv("refresh"), "http-equiv", "refresh"},
		{"AcceptCharset", AcceptCharset("utf-8"), "accept-charset", "utf-8"},
		{"Onclick", Onclick("go()"), "onclick", "go()"},
		{"DataURL", DataURL("movie.swf"), "data", "movie.swf"},
		{"Kind", Kind("captions"), "kind", "captions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Name() != tt.key {
				t.Errorf("Name() = %v, want %v", tt.attr.Name(), tt.key)
			}
			if tt.attr.Value() != tt.value {
				t.Errorf("Value() = %v, want %v", tt.attr.Value(), tt.value)
			}
		})
	}

	if Kind("subtitles").Kind() != vdom.AttrTrackKind {
		t.Errorf("Kind() should build the track kind attribute")
	}
	if k, ok := vdom.AttrKindByName("kind"); !ok || k != vdom.AttrTrackKind {
		t.Errorf("AttrKindByName(kind) = %v, %v", k, ok)
	}
}

func TestComputedAttributes(t *testing.T) {
	tests := []struct {
		name string
		attr vdom.Attribute
		want string
	}{
		{"Style", Style("color: red"), "style='color: red'"},
		{"StyleProps", StyleProps("custom_param1", "test", "custom_param2", "test"), "style='custom-param1: test; custom-param2: test'"},
		{"StyleMap", StyleMap(map[string]string{"b_c": "2", "a": "1"}), "style='a: 1; b-c: 2'"},
		{"Inline", Inline("font_weight", "bold"), "style='font-weight:bold;'"},
		{"Data", Data("test-value", "Testing"), "data-test-value='Testing'"},
		{"Class", Class("btn", "btn-primary"), "class='btn btn-primary'"},
		{"Named", Named("aria-hidden", "true"), "aria-hidden='true'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.attr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
