// Package arguments declares the fixed argument tree of the command line and
// keeps a typed handle to every node the dispatcher reads, so no consumer
// has to look nodes up by name or assert their kind at runtime.
package arguments
