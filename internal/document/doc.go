// Package document decodes JSON and YAML page descriptions into vdom trees.
//
// A description node is either a scalar, which becomes a text child, or a
// mapping describing an element:
//
//	tag: div
//	attrs:
//	  id: main
//	style:
//	  max-width: 40em
//	class: [card, wide]
//	data:
//	  role: panel
//	children:
//	  - Hello
//	  - tag: br
//
// attrs may also be a list of {name, value} pairs. Mapping order is
// preserved, so attributes render in the order they are written. Tags
// outside the element table become custom elements; attribute names outside
// the attribute table are rejected unless they start with "data-".
//
// Nested sequences inside children are flattened. Construction errors from
// vdom are returned unchanged apart from the source location.
package document
