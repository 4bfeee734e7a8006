// Package document reads declarative layout documents, builds the box tree
// they describe and renders the computed results.
//
// A document is a tree of elements with sizes, gravity, bias and edge
// constraints. The same schema is accepted as TOML, YAML and JSON; the
// format is chosen from the file extension.
package document
