/*
Package argtree implements the typed argument tree that backs the command
line.

A tree is built once from three node kinds:

  - Leaf[T]: a single typed value (bool, int, uint, float64 or string) with a
    default, a validity rule and a printable constraint such as "0 < stepsize".
  - Selector: a choice among named keys. Every key owns a Categorical branch,
    and all branches stay in memory; only the selected one is active.
  - Categorical: an ordered container of uniquely named children.

The shape of a tree never changes after construction. Parsing only assigns
leaf values and selector keys, and every assignment is validated before the
node is mutated, so a node always holds a valid value.

Raw tokens are coerced with go-cty: the token becomes a cty string, is
converted to the cty type implied by the leaf's Go type, and is decoded back
with gocty, which rejects fractional integers and out-of-range unsigned
values.
*/
package argtree
