// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import (
	"errors"
	"fmt"
	"io"

	"github.com/creachadair/mds/stack"
)

// Structural errors reported by a Machine.
var (
	// ErrUnbalanced reports a closing brace or bracket with nothing open.
	ErrUnbalanced = errors.New("unbalanced close")

	// ErrUnclosed reports the end of input with an open brace or bracket.
	ErrUnclosed = errors.New("unclosed open")

	// ErrMismatched reports a closing brace or bracket that does not match
	// the innermost open one. It is only reported when pair matching is
	// enabled (see Machine.MatchPairs).
	ErrMismatched = errors.New("mismatched close")
)

// A Machine tracks the nesting of braces and brackets in a stream of tokens.
// Its state is the stack of currently-open structural tokens, innermost last.
//
// The zero value is ready for use, and accepts a closing brace or bracket for
// any open one, so that "[1}" is balanced. Call MatchPairs to require that
// each closer matches the kind of its opener.
type Machine struct {
	stack stack.Stack[Kind]
	match bool
}

// MatchPairs configures m to require (true) or not require (false) that a
// closing token matches the kind of the innermost open token.
func (m *Machine) MatchPairs(ok bool) { m.match = ok }

// Depth reports the number of currently-open structural tokens.
func (m *Machine) Depth() int { return m.stack.Len() }

// Step advances the state of m by one token. It reports an error if tok is
// Invalid, or if tok closes a structure that is not open.  Tokens other than
// braces and brackets do not change the state, and their position is not
// checked. After an error, the state of m is unspecified until Reset.
func (m *Machine) Step(tok Token) error {
	switch {
	case tok.Kind == Invalid:
		return fmt.Errorf("%w %q", ErrInvalidValue, tok.Text)
	case tok.Kind.IsOpen():
		m.stack.Push(tok.Kind)
	case tok.Kind.IsClose():
		top, ok := m.stack.Pop()
		if !ok {
			return fmt.Errorf("%w %v", ErrUnbalanced, tok.Kind)
		}
		if m.match && closerOf(top) != tok.Kind {
			return fmt.Errorf("%w: got %v, want %v", ErrMismatched, tok.Kind, closerOf(top))
		}
	}
	return nil
}

// Close reports whether m is in an accepting state, that is, whether every
// open structure has been closed.
func (m *Machine) Close() error {
	if n := m.stack.Len(); n != 0 {
		return fmt.Errorf("%w (depth %d)", ErrUnclosed, n)
	}
	return nil
}

// Reset discards the state of m. Pair matching is unchanged.
func (m *Machine) Reset() { m.stack = stack.Stack[Kind]{} }

// Valid reports whether src is a valid JSON document: every token is
// well-formed and all braces and brackets are balanced.
func Valid(src string) bool { return Check(src) == nil }

// ValidBytes reports whether src is a valid JSON document.
// It is equivalent to Valid(string(src)) but does not copy src.
func ValidBytes(src []byte) bool { return CheckBytes(src) == nil }

// Check reports whether src is a valid JSON document. It returns nil in
// exactly the cases where Valid returns true; otherwise it returns an error
// of concrete type *SyntaxError describing the first problem found.
func Check(src string) error { return new(Machine).Check(NewScanner(src)) }

// CheckBytes is as Check, but operates on a slice without copying.
func CheckBytes(src []byte) error { return new(Machine).Check(NewScannerBytes(src)) }

// Check consumes all the tokens of s and reports whether they form a balanced
// document, starting from an empty state. Checking stops at the first error.
// If Check fails, the error has concrete type *SyntaxError.
func (m *Machine) Check(s *Scanner) error {
	m.Reset()
	for {
		err := s.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return syntaxError(s.Token().Span, err)
		}
		if err := m.Step(s.Token()); err != nil {
			return syntaxError(s.Token().Span, err)
		}
	}
	if err := m.Close(); err != nil {
		return syntaxError(s.Token().Span, err)
	}
	return nil
}

// SyntaxError is the concrete type of errors reported by Check.
type SyntaxError struct {
	Span    Span // the location of the offending token
	Message string

	err error
}

// syntaxError wraps err with the location span. The span replaces the offset
// carried by a lexical error in the message.
func syntaxError(span Span, err error) *SyntaxError {
	msg := err.Error()
	var perr posError
	if errors.As(err, &perr) {
		msg = perr.err.Error()
	}
	return &SyntaxError{Span: span, Message: msg, err: err}
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Span, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
