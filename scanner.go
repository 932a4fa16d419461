// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"go4.org/mem"
)

// Lexical errors reported by a Scanner. Errors returned by Next wrap one of
// these and can be matched with errors.Is.
var (
	// ErrUnterminatedString reports a quotation mark with no matching close
	// before the end of the input.
	ErrUnterminatedString = errors.New("unterminated string")

	// ErrInvalidValue reports a bare word that is not a number, a boolean,
	// or null.
	ErrInvalidValue = errors.New("invalid value")
)

// A Scanner reads lexical tokens from a buffered input.  Each call to Next
// advances the scanner to the next token, or reports an error.
//
// The scanner owns its read position, which only ever moves forward over the
// input. Once Next has reported an error, including io.EOF, the scanner is
// exhausted and every later call reports the same error.
type Scanner struct {
	src mem.RO
	pos int // offset of the next unread byte
	tok Token
	err error
}

// NewScanner constructs a new lexical scanner that consumes src.
func NewScanner(src string) *Scanner { return &Scanner{src: mem.S(src)} }

// NewScannerBytes constructs a new lexical scanner that consumes src.
// The scanner does not modify src, but the caller must not modify it while
// the scanner is in use.
func NewScannerBytes(src []byte) *Scanner { return &Scanner{src: mem.B(src)} }

// Next advances s to the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF.
//
// If the input at the current position is not a valid token, the current
// token has kind Invalid and Next reports an error wrapping one of
// ErrUnterminatedString or ErrInvalidValue.
func (s *Scanner) Next() error {
	if s.err != nil {
		return s.err
	}
	s.tok = Token{Kind: Invalid, Span: Span{Pos: s.pos, End: s.pos}}

	// Discard whitespace.
	for !s.atEnd() && isSpace(s.peek()) {
		s.advance()
	}
	if s.atEnd() {
		s.tok.Span = Span{Pos: s.pos, End: s.pos}
		return s.setErr(io.EOF)
	}

	start := s.pos
	ch := s.peek()
	s.advance()

	// Handle punctuation.
	if k, ok := selfDelim(ch); ok {
		s.tok = Token{Kind: k, Span: Span{Pos: start, End: s.pos}}
		return nil
	}

	// Handle string values.
	if isQuote(ch) {
		return s.scanString(start)
	}

	// Everything else is a bare word: a number, a constant, or an error.
	return s.scanBare(start)
}

// Token returns the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Offset returns the offset of the next unread byte of the input.
func (s *Scanner) Offset() int { return s.pos }

// Tokens returns a sequence of the remaining tokens of the input. The
// sequence ends at the end of the input, or after yielding the first Invalid
// token. Because the scanner does not rewind, the sequence can only be
// consumed once; check Err afterward to distinguish the two cases.
func (s *Scanner) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		if s.err != nil {
			return
		}
		for {
			err := s.Next()
			if err == io.EOF {
				return
			}
			if !yield(s.tok) || err != nil {
				return
			}
		}
	}
}

// scanString consumes a quoted string whose open quote is at start.  There are
// no escape sequences: the string ends at the next quotation mark.
func (s *Scanner) scanString(start int) error {
	for !s.atEnd() && !isQuote(s.peek()) {
		s.advance()
	}
	if s.atEnd() {
		s.tok = Token{
			Kind: Invalid,
			Text: s.src.SliceFrom(start).StringCopy(),
			Span: Span{Pos: start, End: s.pos},
		}
		return s.fail(start, ErrUnterminatedString)
	}
	text := s.src.Slice(start+1, s.pos)
	s.advance() // the closing quote
	s.tok = Token{
		Kind: String,
		Text: text.StringCopy(),
		Span: Span{Pos: start, End: s.pos},
	}
	return nil
}

// scanBare consumes a bare word whose first byte is at start, and classifies
// it. The word runs until whitespace, a comma, or a closing brace or bracket.
func (s *Scanner) scanBare(start int) error {
	for !s.atEnd() && !isBareStop(s.peek()) {
		s.advance()
	}
	word := s.src.Slice(start, s.pos)
	s.tok = Token{
		Kind: classify(word),
		Text: word.StringCopy(),
		Span: Span{Pos: start, End: s.pos},
	}
	if s.tok.Kind == Invalid {
		return s.fail(start, fmt.Errorf("%w %q", ErrInvalidValue, s.tok.Text))
	}
	return nil
}

func (s *Scanner) atEnd() bool { return s.pos >= s.src.Len() }
func (s *Scanner) peek() byte  { return s.src.At(s.pos) }
func (s *Scanner) advance()    { s.pos++ }

type posError struct {
	pos int
	err error
}

func (p posError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.err.Error(), p.pos)
}

func (p posError) Unwrap() error { return p.err }

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

func (s *Scanner) fail(pos int, err error) error {
	return s.setErr(posError{pos, err})
}

var (
	trueWord  = mem.S("true")
	falseWord = mem.S("false")
	nullWord  = mem.S("null")
)

// classify reports the kind of the bare word w.
func classify(w mem.RO) Kind {
	switch {
	case isValidNumber(w):
		return Number
	case w.Equal(trueWord), w.Equal(falseWord):
		return Boolean
	case w.Equal(nullWord):
		return Null
	default:
		return Invalid
	}
}

// isValidNumber reports whether w is an unsigned decimal number with an
// optional fraction. There must be at least one digit and at most one
// decimal point. A leading zero is only permitted as the entire value, so
// "0" is valid but "01" and "0.5" are not.
func isValidNumber(w mem.RO) bool {
	if w.Len() == 0 {
		return false
	} else if w.At(0) == '0' && w.Len() > 1 {
		return false
	}
	var digits bool
	var point bool
	for i := 0; i < w.Len(); i++ {
		switch ch := w.At(i); {
		case isDigit(ch):
			digits = true
		case ch == '.' && !point:
			point = true
		default:
			return false
		}
	}
	return digits
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
func isQuote(ch byte) bool { return ch == '"' }

// isBareStop reports whether ch ends a bare word.  Note that "{", "[", ":" and
// a quotation mark do not, so "null{" is a single (invalid) word.
func isBareStop(ch byte) bool {
	return isSpace(ch) || ch == ',' || ch == '}' || ch == ']'
}

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Colon, Comma}

func selfDelim(ch byte) (Kind, bool) {
	i := strings.IndexByte("{}[]:,", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
