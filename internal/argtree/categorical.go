package argtree

import (
	"fmt"
	"io"
	"strings"
)

// Categorical groups named children. It has no value of its own.
type Categorical struct {
	node
	children []Arg
	index    map[string]int
}

// NewCategorical creates a container holding children in the given order.
func NewCategorical(name, description string, children ...Arg) *Categorical {
	c := &Categorical{
		node:  node{name: name, description: description},
		index: make(map[string]int, len(children)),
	}
	c.Add(children...)
	return c
}

// NewRoot creates the unnamed top-level container of a tree.
func NewRoot(children ...Arg) *Categorical {
	return NewCategorical("", "", children...)
}

// Add appends children. Names must be unique within the container.
func (c *Categorical) Add(children ...Arg) {
	for _, child := range children {
		if _, exists := c.index[child.Name()]; exists {
			panic(fmt.Sprintf("argtree: %q already has a child named %q", c.Path(), child.Name()))
		}
		child.attach(c)
		c.index[child.Name()] = len(c.children)
		c.children = append(c.children, child)
	}
}

func (c *Categorical) Path() string { return pathOf(c) }

// Child returns the direct child called name, or nil.
func (c *Categorical) Child(name string) Arg {
	i, ok := c.index[name]
	if !ok {
		return nil
	}
	return c.children[i]
}

// Children returns the direct children in declaration order.
func (c *Categorical) Children() []Arg {
	return append([]Arg(nil), c.children...)
}

// Enclosing returns the nearest container above c. For a selector branch that
// is the container holding the selector. It is nil for the root.
func (c *Categorical) Enclosing() *Categorical {
	return enclosing(c)
}

// IsRoot reports whether c has no parent.
func (c *Categorical) IsRoot() bool {
	return c.parent == nil
}

func (c *Categorical) Find(path ...string) Arg {
	if len(path) == 0 {
		return c
	}
	child := c.Child(path[0])
	if child == nil {
		return nil
	}
	return child.Find(path[1:]...)
}

func (c *Categorical) Print(w io.Writer, depth int, prefix string) {
	if !c.IsRoot() {
		fmt.Fprintf(w, "%s%s%s\n", prefix, indent(depth), c.name)
		depth++
	}
	for _, child := range c.children {
		child.Print(w, depth, prefix)
	}
}

func (c *Categorical) Help(w io.Writer, depth int) {
	if !c.IsRoot() {
		fmt.Fprintf(w, "%s%s\n", indent(depth), c.name)
		fmt.Fprintf(w, "%s%s\n", indent(depth+1), c.description)
		if len(c.children) > 0 {
			names := make([]string, len(c.children))
			for i, child := range c.children {
				names[i] = child.Name()
			}
			fmt.Fprintf(w, "%sValid subarguments: %s\n", indent(depth+1), strings.Join(names, ", "))
		}
		fmt.Fprintln(w)
		depth++
	}
	for _, child := range c.children {
		child.Help(w, depth)
	}
}
