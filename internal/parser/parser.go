package parser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/stangrid/internal/argtree"
	"github.com/specialistvlad/stangrid/internal/ctxlog"
	"github.com/specialistvlad/stangrid/internal/errcode"
)

// Outcome describes a successful parse.
type Outcome struct {
	// HelpPrinted is set when a help token stopped parsing after the help
	// text was written.
	HelpPrinted bool
	// Applied is the number of tokens applied to the tree.
	Applied int
}

// TokenError wraps the failure of a single token with its position.
type TokenError struct {
	Index int
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("argument %d (%q): %v", e.Index+1, e.Token, e.Err)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// Parser mutates a tree in place while consuming tokens.
type Parser struct {
	root   *argtree.Categorical
	scope  *argtree.Categorical
	help   io.Writer
	logger *slog.Logger
}

// New returns a parser for root that writes help output to help.
func New(root *argtree.Categorical, help io.Writer) *Parser {
	return &Parser{root: root, scope: root, help: help}
}

// Run parses tokens into root. Failures are written to errW and reported as
// errcode.Config.
func Run(ctx context.Context, tokens []string, root *argtree.Categorical, info, errW io.Writer) (Outcome, int) {
	out, err := New(root, info).Parse(ctx, tokens)
	if err != nil {
		fmt.Fprintln(errW, err)
		return out, errcode.Config
	}
	return out, errcode.OK
}

// Parse applies tokens in order and stops at the first failure.
func (p *Parser) Parse(ctx context.Context, tokens []string) (Outcome, error) {
	p.logger = ctxlog.FromContext(ctx)
	p.scope = p.root

	var out Outcome
	for i, tok := range tokens {
		if isHelp(tok) {
			p.logger.Debug("Help requested, printing argument tree.", "position", i+1)
			p.root.Help(p.help, 0)
			out.HelpPrinted = true
			return out, nil
		}
		if err := p.apply(tok); err != nil {
			p.logger.Debug("Argument token rejected.", "position", i+1, "token", tok, "error", err)
			return out, &TokenError{Index: i, Token: tok, Err: err}
		}
		out.Applied++
		p.logger.Debug("Argument token applied.", "token", tok, "scope", p.scope.Path())
	}
	return out, nil
}

func isHelp(tok string) bool {
	switch tok {
	case "help", "--help", "help-all":
		return true
	}
	return false
}

// apply walks the segments of one token. Segments are separated by "=" or
// "."; once a leaf is reached, everything after the next "=" is its value.
func (p *Parser) apply(tok string) error {
	parts := strings.Split(tok, "=")

	var cur argtree.Arg
	for i, part := range parts {
		segs := strings.Split(part, ".")
		for j, seg := range segs {
			var err error
			if cur == nil {
				cur, err = p.resolve(seg)
			} else {
				cur, err = p.step(cur, seg)
			}
			if err != nil {
				return err
			}

			leaf, ok := cur.(argtree.LeafArg)
			if !ok {
				continue
			}
			if j < len(segs)-1 {
				return &argtree.Error{Kind: argtree.KindLookup, Path: leaf.Path(), Token: segs[j+1]}
			}
			return p.assign(leaf, parts[i+1:])
		}
	}

	p.enter(cur)
	return nil
}

// resolve finds the first segment of a token in the current scope or one of
// its enclosing scopes.
func (p *Parser) resolve(name string) (argtree.Arg, error) {
	for scope := p.scope; scope != nil; scope = scope.Enclosing() {
		if child := scope.Child(name); child != nil {
			return child, nil
		}
		if sel := keyOwner(scope, name); sel != nil {
			if err := p.selectKey(sel, name); err != nil {
				return nil, err
			}
			return sel.Active(), nil
		}
	}
	return nil, &argtree.Error{Kind: argtree.KindLookup, Path: p.scope.Path(), Token: name}
}

// step moves one segment down from cur.
func (p *Parser) step(cur argtree.Arg, seg string) (argtree.Arg, error) {
	switch n := cur.(type) {
	case *argtree.Categorical:
		if child := n.Child(seg); child != nil {
			return child, nil
		}
		if sel := keyOwner(n, seg); sel != nil {
			if err := p.selectKey(sel, seg); err != nil {
				return nil, err
			}
			return sel.Active(), nil
		}
		return nil, &argtree.Error{Kind: argtree.KindLookup, Path: n.Path(), Token: seg}
	case *argtree.Selector:
		if err := p.selectKey(n, seg); err != nil {
			return nil, err
		}
		return n.Active(), nil
	default:
		return nil, &argtree.Error{Kind: argtree.KindLookup, Path: cur.Path(), Token: seg}
	}
}

// keyOwner returns the child selector of c that declares key.
func keyOwner(c *argtree.Categorical, key string) *argtree.Selector {
	for _, child := range c.Children() {
		if sel, ok := child.(*argtree.Selector); ok && sel.HasKey(key) {
			return sel
		}
	}
	return nil
}

// selectKey selects key on sel. Values already given inside the branch
// being left are kept but no longer consulted.
func (p *Parser) selectKey(sel *argtree.Selector, key string) error {
	previous := sel.Value()
	if err := sel.Select(key); err != nil {
		return err
	}
	if previous != key && modified(sel.Branch(previous)) {
		p.logger.Warn("Selector switched away from a configured branch; its values are ignored.",
			"selector", sel.Path(), "from", previous, "to", key)
	}
	return nil
}

func (p *Parser) assign(leaf argtree.LeafArg, rest []string) error {
	var err error
	switch {
	case len(rest) > 0:
		err = leaf.Assign(strings.Join(rest, "="))
	case leaf.IsFlag():
		err = leaf.Assign("1")
	default:
		err = &argtree.Error{Kind: argtree.KindCoercion, Path: leaf.Path(), Token: "", Expected: "a value of type " + leaf.TypeName()}
	}
	if err != nil {
		return err
	}
	if parent, ok := leaf.Parent().(*argtree.Categorical); ok {
		p.scope = parent
	}
	return nil
}

// enter makes the container reached by a token the new scope.
func (p *Parser) enter(cur argtree.Arg) {
	switch n := cur.(type) {
	case *argtree.Categorical:
		p.scope = n
	case *argtree.Selector:
		p.scope = n.Active()
	}
}

// modified reports whether any node in the branch differs from its default.
func modified(branch *argtree.Categorical) bool {
	changed := false
	argtree.Walk(branch, false, func(a argtree.Arg) {
		switch n := a.(type) {
		case argtree.LeafArg:
			changed = changed || !n.IsDefault()
		case *argtree.Selector:
			changed = changed || !n.IsDefault()
		}
	})
	return changed
}
