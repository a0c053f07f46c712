// Package xmltree decodes XML documents into a generic, ordered key-value tree.
//
// A decoded document is a Tree whose values are one of four kinds:
//
//   - Null: an empty element (<Foo/>)
//   - String: an element carrying only text
//   - Mapping: an element with attributes or child elements (a nested Tree)
//   - Sequence: repeated sibling elements sharing a name
//
// Keys carry a Role that tells element, attribute and text content apart, so callers
// never have to inspect key names to know what a key is. The "@" and "#text" markers
// only appear in the JSON rendering produced by Tree.MarshalJSON.
package xmltree
