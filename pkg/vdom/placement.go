package vdom

import (
	"fmt"
	"slices"
)

// PlacementIssue reports an attribute whose kind is documented for other
// element kinds than the one carrying it.
type PlacementIssue struct {
	Element   *Element
	Attribute Attribute
	Allowed   []Kind
}

func (p PlacementIssue) String() string {
	return fmt.Sprintf("attribute %q is not expected on <%s> (allowed on %v)",
		p.Attribute.Name(), p.Element.Tag(), p.Allowed)
}

// kinded is implemented by attributes that come from the attribute table.
type kinded interface {
	Kind() AttrKind
}

// Allowed reports whether a belongs on elements of kind k. Attributes with
// no kind, or with an empty BelongsTo list, are allowed everywhere.
func Allowed(a Attribute, k Kind) bool {
	ka, ok := a.(kinded)
	if !ok {
		return true
	}
	belongsTo := ka.Kind().BelongsTo()
	return len(belongsTo) == 0 || slices.Contains(belongsTo, k)
}

// CheckPlacement walks the tree depth first and lists attributes placed on
// elements they do not belong to. It is never run during construction;
// tooling calls it explicitly.
func CheckPlacement(root *Element) []PlacementIssue {
	var issues []PlacementIssue
	var walk func(e *Element)
	walk = func(e *Element) {
		for _, a := range e.attrs {
			if !Allowed(a, e.kind) {
				issues = append(issues, PlacementIssue{
					Element:   e,
					Attribute: a,
					Allowed:   a.(kinded).Kind().BelongsTo(),
				})
			}
		}
		for _, child := range e.children {
			if ce, ok := child.(*Element); ok {
				walk(ce)
			}
		}
	}
	if root != nil {
		walk(root)
	}
	return issues
}
