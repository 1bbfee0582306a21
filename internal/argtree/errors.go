package argtree

import (
	"fmt"
)

// Kind classifies a failed lookup or assignment.
type Kind int

const (
	// KindLookup is an unknown argument name or path segment.
	KindLookup Kind = iota + 1
	// KindCoercion is a raw token that cannot be converted to the leaf type.
	KindCoercion
	// KindValidity is a converted value rejected by the leaf's rule.
	KindValidity
	// KindSelector is a key that the selector does not declare.
	KindSelector
)

func (k Kind) String() string {
	switch k {
	case KindLookup:
		return "lookup"
	case KindCoercion:
		return "coercion"
	case KindValidity:
		return "validity"
	case KindSelector:
		return "selector"
	default:
		return "unknown"
	}
}

// Error reports a rejected token together with the dotted path of the node
// it was aimed at and the constraint it failed.
type Error struct {
	Kind     Kind
	Path     string
	Token    string
	Expected string
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindLookup:
		scope := e.Path
		if scope == "" {
			scope = "the top level"
		}
		return fmt.Sprintf("%q is not a valid argument in %s", e.Token, scope)
	case KindCoercion:
		return fmt.Sprintf("%s: cannot use %q, expected %s", e.Path, e.Token, e.Expected)
	case KindValidity:
		return fmt.Sprintf("%s: %s is out of range, expected %s", e.Path, e.Token, e.Expected)
	case KindSelector:
		return fmt.Sprintf("%s: %q is not a valid value, expected one of: %s", e.Path, e.Token, e.Expected)
	default:
		return fmt.Sprintf("%s: invalid token %q", e.Path, e.Token)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
