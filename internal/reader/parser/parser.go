// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the lum language.
package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/lum/internal/common/errs"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/common/type/sym"
	"github.com/michaelmacinnis/lum/internal/reader/token"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	depth int             // Open lists and quotes.
	emit  func(*cell.T)   // Function to call to emit a parsed form.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
func New(emit func(*cell.T), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Depth returns the number of lists and quotes not yet completed.
func (p *T) Depth() int {
	return p.depth
}

// Parse consumes tokens and emits cells until there are no more tokens.
// A syntax error stops parsing and is returned.
func (p *T) Parse() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case error:
			err = errs.Syntax.Wrap(r, "syntax error")
		case string:
			err = errs.Syntax.New(r)
		default:
			panic(r)
		}
	}()

	for t := p.peek(); t != nil; t = p.peek() {
		p.emit(p.form())
	}

	return nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

func (p *T) unexpected(t *token.T) {
	if t == nil {
		panic("unexpected end of input")
	}

	loc := t.Source()

	panic(loc.String() + ": unexpected '" + t.Value() + "'")
}

// T state functions.

// <form> ::= '(' <form>* ')' | '\'' <form> | <atom> .
func (p *T) form() *cell.T {
	t := p.peek()

	switch {
	case t.Is('('):
		p.consume()

		return p.list()
	case t.Is('\''):
		p.consume()

		p.depth++

		if p.peek() == nil {
			p.unexpected(nil)
		}

		c := cell.NewQuote(p.form(), nil)

		p.depth--

		return c
	case t.Is(token.DollarSingleQuoted):
		p.consume()

		return quoted(t)
	case t.Is(token.Symbol):
		p.consume()

		return atom(t)
	}

	p.unexpected(t)

	return nil
}

func (p *T) list() *cell.T {
	p.depth++

	var cs []*cell.T

	for {
		t := p.peek()
		if t == nil {
			p.unexpected(nil)
		}

		if t.Is(')') {
			p.consume()

			break
		}

		cs = append(cs, p.form())
	}

	p.depth--

	return cell.NewList(cell.Chain(cs...), nil)
}

// Helper functions.

func atom(t *token.T) *cell.T {
	s := t.Value()

	if sym.Numeric(s) {
		return number(t)
	}

	if len(s) > 1 && s[0] == ':' {
		return cell.NewRef(cell.Keyword, sym.Intern("", s[1:]), nil)
	}

	return cell.NewRef(cell.Symbol, sym.New(s), nil)
}

func number(t *token.T) *cell.T {
	s := t.Value()

	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return cell.NewInt(i, nil)
	}

	if errors.Is(err, strconv.ErrRange) && !strings.ContainsAny(s, ".eE") {
		loc := t.Source()

		panic(loc.String() + ": integer out of range '" + s + "'")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		loc := t.Source()

		panic(loc.String() + ": malformed number '" + s + "'")
	}

	return cell.NewFloat(f, nil)
}

func quoted(t *token.T) *cell.T {
	text := t.Value()

	s, err := adapted.ActualBytes(text[2 : len(text)-1])
	if err != nil {
		panic(err)
	}

	return cell.NewRef(cell.Symbol, sym.New(s), nil)
}
