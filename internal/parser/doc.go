/*
Package parser applies command-line tokens to an argument tree.

Tokens are processed strictly left to right. A token is either a bare name
("sample", "adapt", "save_warmup"), a "name=value" pair, or a longer path
such as "adapt=engaged=0" or "adapt.engaged=0". The first name of a token is
looked up in the current scope and then in each enclosing scope up to the
root; a scope offers its children by name and, failing that, the keys of its
child selectors, so "sample" alone means "method=sample". Later segments of
a path follow the same rule, so "sample.hmc.engine=static" needs no
"algorithm". Only the selected branch of a selector can be reached.

After a token is applied, the scope moves to the deepest container the token
touched, which is what lets "algorithm=hmc engine=nuts max_depth=12" resolve
each name in turn.

The first token that cannot be applied stops parsing. Nothing after it is
looked at.
*/
package parser
