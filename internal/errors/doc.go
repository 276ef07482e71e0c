// Package errors provides structured, actionable error messages for htmlbuilder.
//
// Every error carries a short code (e.g. "H001") that maps to a registered
// template holding the category, a one-line message and a longer detail.
// The tree builder in pkg/vdom raises the H0xx codes; configuration, document
// decoding, preview and publish failures use the higher ranges.
//
// # Error Categories
//
//   - build: tag tree construction errors (wrong attribute or child kinds, nesting)
//   - config: htmlbuilder.json problems
//   - document: JSON/YAML document description problems
//   - preview: live preview server problems
//   - publish: upload problems
//   - cli: command line usage problems
//
// # Usage
//
//	err := errors.New(errors.CodeInvalidChildKind).
//	    WithDetail("[42->int] found").
//	    WithSuggestion("Pass a string, *vdom.Text or *vdom.Element")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR H002: Invalid child kind
//	//
//	//   [42->int] found
//	//
//	//   Hint: Pass a string, *vdom.Text or *vdom.Element
//
// Errors compare with errors.Is by code, so callers can match any instance
// against the exported sentinels.
package errors
