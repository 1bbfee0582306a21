// Package dispatch maps a parsed argument tree to exactly one inference
// routine and its parameter list, then invokes it.
//
// Resolution and invocation are separate steps so that a configuration can
// be rejected before any output file is opened.
package dispatch
