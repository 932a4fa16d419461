// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

// Kind is the type of a lexical token recognized by the Scanner.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Colon               // colon ":"
	Comma               // comma ","
	String              // quoted string
	Number              // unsigned number with optional fraction
	Boolean             // constant: true or false
	Null                // constant: null
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Colon:   `":"`,
	Comma:   `","`,
	String:  "string",
	Number:  "number",
	Boolean: "boolean",
	Null:    "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// IsOpen reports whether k opens a nested structure.
func (k Kind) IsOpen() bool { return k == LBrace || k == LSquare }

// IsClose reports whether k closes a nested structure.
func (k Kind) IsClose() bool { return k == RBrace || k == RSquare }

// IsStructural reports whether k is one of the brace or bracket kinds.
func (k Kind) IsStructural() bool { return k.IsOpen() || k.IsClose() }

// closerOf returns the kind that closes the opener k.
func closerOf(k Kind) Kind {
	if k == LSquare {
		return RSquare
	}
	return RBrace
}

// A Token is a single lexical unit reported by a Scanner.
//
// Text holds the raw source of the token. For a String it is the content
// strictly between the quotation marks. Punctuation tokens have empty text.
// An Invalid token carries the rejected input, if any.
type Token struct {
	Kind Kind
	Text string
	Span Span
}
