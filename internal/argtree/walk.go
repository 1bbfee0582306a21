package argtree

// Walk visits a and its descendants depth first in declaration order. With
// activeOnly set, only the selected branch of each selector is entered.
func Walk(a Arg, activeOnly bool, fn func(Arg)) {
	fn(a)
	switch n := a.(type) {
	case *Categorical:
		for _, child := range n.children {
			Walk(child, activeOnly, fn)
		}
	case *Selector:
		if activeOnly {
			Walk(n.Active(), activeOnly, fn)
			return
		}
		for _, key := range n.keys {
			Walk(n.branches[key], activeOnly, fn)
		}
	}
}

// Snapshot maps the path of every leaf and selector under root to its printed
// value. Two trees with equal snapshots resolve to the same configuration.
func Snapshot(root *Categorical, activeOnly bool) map[string]string {
	out := make(map[string]string)
	Walk(root, activeOnly, func(a Arg) {
		switch n := a.(type) {
		case *Selector:
			out[n.Path()] = n.Value()
		case LeafArg:
			out[n.Path()] = n.Format()
		}
	})
	return out
}

// Tokens renders the active configuration under root as parser tokens in
// print order. Feeding them back to the parser on a fresh tree reproduces
// the same configuration.
func Tokens(root *Categorical) []string {
	var out []string
	for _, child := range root.children {
		out = appendTokens(out, child)
	}
	return out
}

func appendTokens(out []string, a Arg) []string {
	switch n := a.(type) {
	case *Categorical:
		out = append(out, n.name)
		for _, child := range n.children {
			out = appendTokens(out, child)
		}
	case *Selector:
		out = append(out, n.name+"="+n.value)
		for _, child := range n.Active().children {
			out = appendTokens(out, child)
		}
	case LeafArg:
		out = append(out, n.Name()+"="+n.Format())
	}
	return out
}
