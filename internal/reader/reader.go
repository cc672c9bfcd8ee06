// Released under an MIT license. See LICENSE.

// Package reader turns lum source text into cells.
package reader

import (
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/reader/lexer"
	"github.com/michaelmacinnis/lum/internal/reader/parser"
	"github.com/michaelmacinnis/lum/internal/reader/token"
)

// T (reader) encapsulates the lum lexer and parser.
//
// The parser runs in its own goroutine and blocks when it runs out of
// tokens, so text can be passed to the reader a line at a time.
type T struct {
	e chan error
	i chan string
	o chan struct{}
	p *parser.T
	s *lexer.T

	err   error
	forms []*cell.T
	open  bool
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	r := &T{
		e: make(chan error, 1),
		i: make(chan string),
		o: make(chan struct{}),
		s: lexer.New(name),
	}

	r.p = parser.New(func(c *cell.T) {
		r.forms = append(r.forms, c)
	}, func() *token.T {
		t := r.s.Token()

		for t == nil {
			r.open = r.p.Depth() > 0 || r.s.Pending()
			r.o <- struct{}{}

			if !r.next() {
				return nil
			}

			t = r.s.Token()
		}

		return t
	})

	go r.start()

	return r
}

// Close terminates the reader. It returns an error if the text passed to
// the reader ended part way through a form.
func (r *reader) Close() error {
	if r.err != nil {
		return nil
	}

	close(r.i)

	return <-r.e
}

// Incomplete returns true if the text scanned so far ends inside a form.
func (r *reader) Incomplete() bool {
	return r.open
}

// Scan reads text and returns the forms it completes. Any forms completed
// before a syntax error are returned with the error. Once an error has
// been returned the reader is finished and returns it again.
func (r *reader) Scan(text string) ([]*cell.T, error) {
	if r.err != nil {
		return nil, r.err
	}

	r.i <- text

	select {
	case <-r.o:
	case r.err = <-r.e:
		r.open = false
	}

	forms := r.forms
	r.forms = nil

	return forms, r.err
}

func (r *reader) next() bool {
	line, ok := <-r.i
	if ok {
		r.s.Scan(line)
	}

	return ok
}

func (r *reader) start() {
	if !r.next() {
		r.e <- nil

		return
	}

	r.e <- r.p.Parse()
}
