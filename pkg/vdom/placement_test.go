package vdom

import (
	"strings"
	"testing"
)

func TestConstructionIgnoresPlacement(t *testing.T) {
	// href documented for a, area, base, link only
	if _, err := New(KindDiv, Attrs(NewAttr(AttrHref, "/x"))); err != nil {
		t.Fatalf("New() should not enforce placement: %v", err)
	}
}

func TestAllowed(t *testing.T) {
	tests := []struct {
		name string
		attr Attribute
		kind Kind
		want bool
	}{
		{"documented kind", NewAttr(AttrHref, "/"), KindA, true},
		{"other kind", NewAttr(AttrHref, "/"), KindDiv, false},
		{"global attribute", NewAttr(AttrId, "x"), KindDiv, true},
		{"computed attribute", NewData("x", "y"), KindBr, true},
		{"named attribute", Named("aria-label", "x"), KindImg, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.attr, tt.kind); got != tt.want {
				t.Errorf("Allowed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckPlacement(t *testing.T) {
	bad := Must(New(KindSpan, Attrs(NewAttr(AttrSrc, "x.png"))))
	root := Must(New(KindDiv, Attrs(NewAttr(AttrHref, "/")),
		Must(New(KindA, Attrs(NewAttr(AttrHref, "/ok")))),
		Must(New(KindP, nil, bad)),
	))

	issues := CheckPlacement(root)
	if len(issues) != 2 {
		t.Fatalf("CheckPlacement() = %v, want 2 issues", issues)
	}
	if issues[0].Element != root || issues[1].Element != bad {
		t.Errorf("issues out of tree order: %v", issues)
	}
	if !strings.Contains(issues[0].String(), `"href" is not expected on <div>`) {
		t.Errorf("String() = %q", issues[0].String())
	}
	if CheckPlacement(nil) != nil {
		t.Error("CheckPlacement(nil) should report nothing")
	}
}
