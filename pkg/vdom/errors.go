package vdom

import (
	"fmt"

	"github.com/vango-dev/htmlbuilder/internal/errors"
)

// BuildError is the error type returned by construction and SetChildren.
type BuildError = errors.BuildError

// Sentinels for errors.Is. Matching is by error code.
var (
	ErrInvalidAttributeKind error = errors.InvalidAttributeKind
	ErrInvalidChildKind     error = errors.InvalidChildKind
	ErrNestingViolation     error = errors.NestingViolation
	ErrUnknownElement       error = errors.UnknownElement
)

func describe(v any) string {
	return fmt.Sprintf("[%v->%T]", v, v)
}

func invalidAttributeError(a Attribute) *BuildError {
	return errors.New(errors.CodeInvalidAttributeKind).
		WithDetailf("element attributes must be Attribute values with a non-empty name, %s found", describe(a)).
		WithSuggestion("Build attributes with the attr package or vdom.NewAttr")
}

func invalidChildError(item any) *BuildError {
	return errors.New(errors.CodeInvalidChildKind).
		WithDetailf("element content must be string, *vdom.Text or *vdom.Element values, %s found", describe(item)).
		WithSuggestion("Call element constructors instead of passing them, and convert other values with fmt.Sprint")
}

func nestingError(tag string, first Node) *BuildError {
	return errors.New(errors.CodeNestingViolation).
		WithDetailf("self-closing element <%s> must not have content, %s found", tag, describe(first))
}

func unknownElementError(what string) *BuildError {
	return errors.New(errors.CodeUnknownElement).WithDetail(what)
}
