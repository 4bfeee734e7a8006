// Package layout implements a pure-Go constraint layout engine for box trees.
//
// Boxes are positioned by edge-to-edge constraints against their parent or a
// sibling, sized from fixed or percentage units, or sized dynamically from
// the extent of their children. Every recalculation runs four passes over a
// subtree (reset, init, resolve, write-back) and mirrors the results into the
// host boxes through the [Box] interface.
//
// The main entry point is [Engine.Recalculate]. Types are re-exported through
// the root boxlayout package for public consumption.
package layout
