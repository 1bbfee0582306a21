package argtree

import (
	"fmt"
	"io"
)

// LeafArg is the type-erased view of a Leaf[T], used by the parser and by
// printing code that does not care about the concrete value type.
type LeafArg interface {
	Arg
	Assign(raw string) error
	Format() string
	TypeName() string
	Validity() string
	IsDefault() bool
	IsFlag() bool
}

// Leaf is a single typed configuration value.
type Leaf[T Value] struct {
	node
	rule  Rule[T]
	def   T
	value T
}

// NewLeaf creates a leaf holding def. It panics when def itself violates the
// rule, since that is a mistake in the schema rather than in user input.
func NewLeaf[T Value](name, description string, def T, rule Rule[T]) *Leaf[T] {
	if !rule.allows(def) {
		panic(fmt.Sprintf("argtree: default %s for %s violates %s", format(def), name, rule.describe(name)))
	}
	return &Leaf[T]{
		node:  node{name: name, description: description},
		rule:  rule,
		def:   def,
		value: def,
	}
}

// Bool creates an unconstrained flag.
func Bool(name, description string, def bool) *Leaf[bool] {
	return NewLeaf(name, description, def, Unbounded[bool]())
}

// Int creates an integer leaf.
func Int(name, description string, def int, rule Rule[int]) *Leaf[int] {
	return NewLeaf(name, description, def, rule)
}

// Uint creates an unsigned integer leaf.
func Uint(name, description string, def uint, rule Rule[uint]) *Leaf[uint] {
	return NewLeaf(name, description, def, rule)
}

// Real creates a floating point leaf.
func Real(name, description string, def float64, rule Rule[float64]) *Leaf[float64] {
	return NewLeaf(name, description, def, rule)
}

// String creates an unconstrained string leaf.
func String(name, description, def string) *Leaf[string] {
	return NewLeaf(name, description, def, Unbounded[string]())
}

func (l *Leaf[T]) Path() string { return pathOf(l) }

// Value returns the current value.
func (l *Leaf[T]) Value() T { return l.value }

// Default returns the schema default.
func (l *Leaf[T]) Default() T { return l.def }

// IsDefault reports whether the current value equals the schema default.
func (l *Leaf[T]) IsDefault() bool { return l.value == l.def }

// IsFlag reports whether the leaf is boolean and may be set by presence.
func (l *Leaf[T]) IsFlag() bool {
	_, ok := any(l.value).(bool)
	return ok
}

// Validity returns the constraint text, e.g. "0 < stepsize".
func (l *Leaf[T]) Validity() string { return l.rule.describe(l.name) }

func (l *Leaf[T]) TypeName() string { return typeName[T]() }

func (l *Leaf[T]) Format() string { return format(l.value) }

// Set validates v and stores it. A rejected value leaves the leaf unchanged.
func (l *Leaf[T]) Set(v T) error {
	if !l.rule.allows(v) {
		return &Error{Kind: KindValidity, Path: l.Path(), Token: format(v), Expected: l.Validity()}
	}
	l.value = v
	return nil
}

// Assign coerces raw to T and stores it through Set.
func (l *Leaf[T]) Assign(raw string) error {
	v, err := coerce[T](raw)
	if err != nil {
		return &Error{Kind: KindCoercion, Path: l.Path(), Token: raw, Expected: l.expected(), Err: err}
	}
	return l.Set(v)
}

func (l *Leaf[T]) expected() string {
	if v := l.Validity(); v != "" {
		return fmt.Sprintf("%s with %s", l.TypeName(), v)
	}
	return l.TypeName()
}

func (l *Leaf[T]) Find(path ...string) Arg {
	if len(path) == 0 {
		return l
	}
	return nil
}

func (l *Leaf[T]) Print(w io.Writer, depth int, prefix string) {
	suffix := ""
	if l.IsDefault() {
		suffix = " (Default)"
	}
	fmt.Fprintf(w, "%s%s%s = %s%s\n", prefix, indent(depth), l.name, l.Format(), suffix)
}

func (l *Leaf[T]) Help(w io.Writer, depth int) {
	fmt.Fprintf(w, "%s%s=<%s>\n", indent(depth), l.name, l.TypeName())
	fmt.Fprintf(w, "%s%s\n", indent(depth+1), l.description)
	if v := l.Validity(); v != "" {
		fmt.Fprintf(w, "%sValid values: %s\n", indent(depth+1), v)
	} else {
		fmt.Fprintf(w, "%sValid values: All\n", indent(depth+1))
	}
	fmt.Fprintf(w, "%sDefaults to %s\n", indent(depth+1), format(l.def))
	fmt.Fprintln(w)
}
