// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jcheck implements a lightweight scanner and structural checker for
// JSON text. It reports whether a document is well-formed without decoding
// any values or building a tree.
//
// # Checking
//
// Call Valid to check a complete document:
//
//	if jcheck.Valid(input) {
//	   log.Print("Valid JSON")
//	}
//
// Check makes the same decision, but reports a *jcheck.SyntaxError
// describing the first problem found:
//
//	if err := jcheck.Check(input); err != nil {
//	   log.Printf("Invalid JSON: %v", err)
//	}
//
// The checker verifies that every token is well-formed and that braces and
// brackets are balanced. It does not check the placement of commas and
// colons, so inputs such as {"a":} and [,,] are accepted. By default a closer
// may close either kind of opener, so [1} is also accepted; use a Machine
// with MatchPairs enabled to require matching pairs.
//
// # Scanning
//
// The Scanner type implements the lexical scanner. Construct a scanner from
// a string or a byte slice and call its Next method to iterate over the
// input. Next advances to the next input token and returns nil, or reports an
// error:
//
//	s := jcheck.NewScanner(input)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other error
// indicates a lexical error in the input.
//
// The lexical grammar is deliberately small. Strings have no escape
// sequences, and end at the next quotation mark. Numbers are unsigned
// decimals with an optional fraction and no exponent. A bare word ends only
// at whitespace, a comma, or a closing brace or bracket.
package jcheck
