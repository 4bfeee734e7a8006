// Package boxlayout positions rectangular boxes from declarative constraints.
//
// Each box gets a preferred size, a gravity inside its parent, a bias between
// opposing constraints and up to four edge constraints against its parent or
// a sibling. An Engine resolves the whole subtree in one pass and writes the
// results back through the Box interface. Node is a ready-made Box, and
// OrderedLayout chains the children of a container into a row or column.
//
// Users import this single package for the public API. Documents in TOML,
// YAML or JSON can be laid out with the boxlayout command.
package boxlayout
