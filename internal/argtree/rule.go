package argtree

import "fmt"

// Number is the set of leaf types that can carry a numeric bound.
type Number interface {
	int | uint | float64
}

// Rule is a leaf's validity predicate together with the human readable form
// of the constraint. Template may contain a single %s for the leaf name.
type Rule[T Value] struct {
	Template string
	Check    func(T) bool
}

// Unbounded accepts every value of the leaf's type.
func Unbounded[T Value]() Rule[T] {
	return Rule[T]{}
}

// Positive requires 0 < v.
func Positive[T Number]() Rule[T] {
	return Rule[T]{Template: "0 < %s", Check: func(v T) bool { return v > 0 }}
}

// NonNegative requires 0 <= v.
func NonNegative[T Number]() Rule[T] {
	return Rule[T]{Template: "0 <= %s", Check: func(v T) bool { return v >= 0 }}
}

// AtMost requires v <= limit.
func AtMost[T Number](limit T) Rule[T] {
	return Rule[T]{
		Template: fmt.Sprintf("%%s <= %v", limit),
		Check:    func(v T) bool { return v <= limit },
	}
}

// OpenUnit requires 0 < v < 1.
func OpenUnit() Rule[float64] {
	return Rule[float64]{Template: "0 < %s < 1", Check: func(v float64) bool { return v > 0 && v < 1 }}
}

// UnitInterval requires 0 <= v <= 1.
func UnitInterval() Rule[float64] {
	return Rule[float64]{Template: "0 <= %s <= 1", Check: func(v float64) bool { return v >= 0 && v <= 1 }}
}

func (r Rule[T]) describe(name string) string {
	if r.Template == "" {
		return ""
	}
	return fmt.Sprintf(r.Template, name)
}

func (r Rule[T]) allows(v T) bool {
	return r.Check == nil || r.Check(v)
}
