package argtree

import (
	"fmt"
	"io"
	"strings"
)

// Selector chooses one of a fixed set of keys. Each key owns a Categorical
// branch; the branches of unselected keys keep whatever values they were
// given but are not active.
type Selector struct {
	node
	keys     []string
	branches map[string]*Categorical
	def      string
	value    string
}

// NewSelector creates a selector over the given branches, whose names are the
// candidate keys, with def selected.
func NewSelector(name, description, def string, branches ...*Categorical) *Selector {
	s := &Selector{
		node:     node{name: name, description: description},
		branches: make(map[string]*Categorical, len(branches)),
		def:      def,
		value:    def,
	}
	for _, b := range branches {
		if _, exists := s.branches[b.name]; exists {
			panic(fmt.Sprintf("argtree: selector %s declares key %q twice", name, b.name))
		}
		b.attach(s)
		s.keys = append(s.keys, b.name)
		s.branches[b.name] = b
	}
	if _, ok := s.branches[def]; !ok {
		panic(fmt.Sprintf("argtree: selector %s default %q is not one of its keys", name, def))
	}
	return s
}

func (s *Selector) Path() string { return pathOf(s) }

// Value returns the selected key.
func (s *Selector) Value() string { return s.value }

// Default returns the schema default key.
func (s *Selector) Default() string { return s.def }

// IsDefault reports whether the default key is selected.
func (s *Selector) IsDefault() bool { return s.value == s.def }

// HasKey reports whether key is a candidate.
func (s *Selector) HasKey(key string) bool {
	_, ok := s.branches[key]
	return ok
}

// Branch returns the subtree owned by key, or nil for an unknown key.
func (s *Selector) Branch(key string) *Categorical {
	return s.branches[key]
}

// Active returns the subtree of the selected key.
func (s *Selector) Active() *Categorical {
	return s.branches[s.value]
}

// Select makes key the active branch. Unknown keys are rejected and leave the
// selection unchanged.
func (s *Selector) Select(key string) error {
	if _, ok := s.branches[key]; !ok {
		return &Error{Kind: KindSelector, Path: s.Path(), Token: key, Expected: strings.Join(s.keys, ", ")}
	}
	s.value = key
	return nil
}

func (s *Selector) Find(path ...string) Arg {
	if len(path) == 0 {
		return s
	}
	b, ok := s.branches[path[0]]
	if !ok {
		return nil
	}
	return b.Find(path[1:]...)
}

func (s *Selector) Print(w io.Writer, depth int, prefix string) {
	suffix := ""
	if s.IsDefault() {
		suffix = " (Default)"
	}
	fmt.Fprintf(w, "%s%s%s = %s%s\n", prefix, indent(depth), s.name, s.value, suffix)
	s.Active().Print(w, depth+1, prefix)
}

func (s *Selector) Help(w io.Writer, depth int) {
	fmt.Fprintf(w, "%s%s=<list element>\n", indent(depth), s.name)
	fmt.Fprintf(w, "%s%s\n", indent(depth+1), s.description)
	fmt.Fprintf(w, "%sValid values: %s\n", indent(depth+1), strings.Join(s.keys, ", "))
	fmt.Fprintf(w, "%sDefaults to %s\n", indent(depth+1), s.def)
	fmt.Fprintln(w)
	for _, key := range s.keys {
		s.branches[key].Help(w, depth+1)
	}
}
