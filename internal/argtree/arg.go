package argtree

import (
	"io"
	"strings"
)

// Arg is implemented by *Leaf[T], *Selector and *Categorical only. The
// unexported attach method keeps the set closed, so a type switch over those
// three kinds is exhaustive.
type Arg interface {
	Name() string
	Description() string
	Parent() Arg
	Path() string

	// Print renders the current value (and the active children of
	// containers) as "name = value" lines, indented by depth.
	Print(w io.Writer, depth int, prefix string)
	// Help renders usage text for the node and everything below it,
	// including inactive selector branches.
	Help(w io.Writer, depth int)
	// Find resolves a path relative to the node. A path crossing a selector
	// names one of its keys. It returns nil when any segment is unknown.
	Find(path ...string) Arg

	attach(parent Arg)
}

// node carries the identity shared by all argument kinds.
type node struct {
	name        string
	description string
	parent      Arg
}

func (n *node) Name() string        { return n.name }
func (n *node) Description() string { return n.description }
func (n *node) Parent() Arg         { return n.parent }

func (n *node) attach(parent Arg) {
	if n.parent != nil {
		panic("argtree: argument " + n.name + " is already attached to " + n.parent.Path())
	}
	n.parent = parent
}

// pathOf joins the names from the root down to a, skipping the unnamed root.
func pathOf(a Arg) string {
	var segs []string
	for cur := a; cur != nil; cur = cur.Parent() {
		if cur.Name() != "" {
			segs = append(segs, cur.Name())
		}
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return strings.Join(segs, ".")
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

// enclosing returns the nearest Categorical above a, or nil at the root.
func enclosing(a Arg) *Categorical {
	for cur := a.Parent(); cur != nil; cur = cur.Parent() {
		if c, ok := cur.(*Categorical); ok {
			return c
		}
	}
	return nil
}
