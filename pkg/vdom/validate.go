package vdom

import "reflect"

// validateAttributes rejects nil entries and attributes without a name.
// Whether an attribute kind belongs on the element is not checked here.
func validateAttributes(attrs []Attribute) error {
	for _, a := range attrs {
		if isNil(a) || a.Name() == "" {
			return invalidAttributeError(a)
		}
	}
	return nil
}

// validateChildren accepts strings, *Text and *Element values only.
func validateChildren(items []any) error {
	for _, item := range items {
		switch v := item.(type) {
		case string:
			continue
		case *Text:
			if v != nil {
				continue
			}
		case *Element:
			if v != nil {
				continue
			}
		}
		return invalidChildError(item)
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
