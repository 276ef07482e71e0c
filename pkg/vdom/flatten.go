package vdom

import (
	"iter"
	"reflect"
)

// Flatten collapses nested content into one ordered list.
//
// Slices and arrays are expanded in place, depth first. Push iterators
// (any func(yield func(T) bool), e.g. iter.Seq) and receive channels are
// consumed exactly once, in order; a channel is drained until it is
// closed. Strings and []byte are atomic, as is every other value. Empty
// nested sequences contribute nothing. Nothing is rejected here.
func Flatten(items ...any) []any {
	return appendFlat(make([]any, 0, len(items)), items)
}

func appendFlat(out []any, items []any) []any {
	for _, item := range items {
		out = appendItem(out, item)
	}
	return out
}

func appendItem(out []any, item any) []any {
	switch v := item.(type) {
	case nil, string, []byte, Node:
		return append(out, item)
	case []any:
		return appendFlat(out, v)
	case []Node:
		for _, n := range v {
			out = append(out, n)
		}
		return out
	case []string:
		for _, s := range v {
			out = append(out, s)
		}
		return out
	case iter.Seq[any]:
		for x := range v {
			out = appendItem(out, x)
		}
		return out
	}

	rv := reflect.ValueOf(item)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			out = appendItem(out, rv.Index(i).Interface())
		}
		return out

	case reflect.Chan:
		if rv.IsNil() || rv.Type().ChanDir()&reflect.RecvDir == 0 {
			break
		}
		for {
			x, ok := rv.Recv()
			if !ok {
				return out
			}
			out = appendItem(out, x.Interface())
		}

	case reflect.Func:
		if rv.IsNil() || !isPushIterator(rv.Type()) {
			break
		}
		yield := reflect.MakeFunc(rv.Type().In(0), func(args []reflect.Value) []reflect.Value {
			out = appendItem(out, args[0].Interface())
			return []reflect.Value{reflect.ValueOf(true)}
		})
		rv.Call([]reflect.Value{yield})
		return out
	}

	return append(out, item)
}

// isPushIterator matches func(func(T) bool).
func isPushIterator(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() == 1 &&
		yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool
}
