// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/creachadair/jcheck"
	"github.com/google/go-cmp/cmp"
)

const sampleDoc = `{"name":"John","age":30,"city":"New York","hobbies":["reading","traveling","cooking"],"address":{"street":"123 Main St","city":"New York","country":"USA"}}`

func TestValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		// Empty and blank inputs contain no tokens, and nothing is open.
		{"", true},
		{" \t\r\n", true},

		// Standalone values
		{"0", true},
		{"17", true},
		{"3.25", true},
		{"true", true},
		{"false", true},
		{"null", true},
		{`"x"`, true},
		{`""`, true},

		// Structures
		{"{}", true},
		{"[]", true},
		{"[[[]]]", true},
		{`{"a": [1, 2, {"b": null}]}`, true},
		{"{\n  \"a\": true\n}\n", true},
		{sampleDoc, true},

		// Commas and colons are not checked for position.
		{`{"a":}`, true},
		{`{,}`, true},
		{`[,,]`, true},
		{`{:}`, true},
		{`1 2 3`, true},
		{`{} {}`, true},
		{`["a" "b"]`, true},

		// A closer may close either kind of opener.
		{"[1}", true},
		{"{]", true},

		// Lexical errors
		{`"abc`, false},
		{`{"a": "b}`, false},
		{`{"a": 01}`, false},
		{"01", false},
		{"1.2.3", false},
		{"-5", false},
		{"1e10", false},
		{"0.5", false},
		{".", false},
		{"nil", false},
		{"TRUE", false},
		{"null{", false},
		{`{"a":1}x`, false},

		// Structural errors
		{"}", false},
		{"]", false},
		{"{", false},
		{"[", false},
		{"[[]", false},
		{`{"a":null}{`, false},
		{"[]]", false},
		{`{"a": [1, 2}`, false},
	}
	for _, test := range tests {
		if got := jcheck.Valid(test.input); got != test.want {
			t.Errorf("Valid(%#q): got %v, want %v", test.input, got, test.want)
		}
		if got := jcheck.ValidBytes([]byte(test.input)); got != test.want {
			t.Errorf("ValidBytes(%#q): got %v, want %v", test.input, got, test.want)
		}
		if got := jcheck.Check(test.input) == nil; got != test.want {
			t.Errorf("Check(%#q): got ok=%v, want %v", test.input, got, test.want)
		}
	}
}

func TestCheckErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
		span  jcheck.Span
	}{
		{"}", jcheck.ErrUnbalanced, jcheck.Span{Pos: 0, End: 1}},
		{"[] ]", jcheck.ErrUnbalanced, jcheck.Span{Pos: 3, End: 4}},
		{"{", jcheck.ErrUnclosed, jcheck.Span{Pos: 1, End: 1}},
		{"[{} ", jcheck.ErrUnclosed, jcheck.Span{Pos: 4, End: 4}},
		{`["abc`, jcheck.ErrUnterminatedString, jcheck.Span{Pos: 1, End: 5}},
		{`[1, -2]`, jcheck.ErrInvalidValue, jcheck.Span{Pos: 4, End: 6}},

		// Checking stops at the first error, so the unclosed bracket and the
		// stray close are not reached.
		{`[ 01 }}`, jcheck.ErrInvalidValue, jcheck.Span{Pos: 2, End: 4}},
	}
	for _, test := range tests {
		err := jcheck.Check(test.input)
		var serr *jcheck.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Check(%#q): got %v, want *SyntaxError", test.input, err)
			continue
		}
		if !errors.Is(err, test.want) {
			t.Errorf("Check(%#q): got %v, want %v", test.input, err, test.want)
		}
		if diff := cmp.Diff(test.span, serr.Span); diff != "" {
			t.Errorf("Check(%#q) span (-want, +got):\n%s", test.input, diff)
		}
		t.Logf("Check(%#q): %v", test.input, err)
	}
}

func TestSyntaxErrorString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"}", `at 0-1: unbalanced close "}"`},
		{"[[", `at 2-2: unclosed open (depth 2)`},
		{`{"count": -1}`, `at 10-12: invalid value "-1"`},
		{`["abc`, `at 1-5: unterminated string`},
	}
	for _, test := range tests {
		if err := jcheck.Check(test.input); err == nil || err.Error() != test.want {
			t.Errorf("Check(%#q) error: got %v, want %q", test.input, err, test.want)
		}
	}
}

func TestMachine(t *testing.T) {
	tok := func(k jcheck.Kind) jcheck.Token { return jcheck.Token{Kind: k} }

	t.Run("Depth", func(t *testing.T) {
		var m jcheck.Machine
		var got []int
		for _, k := range []jcheck.Kind{
			jcheck.LBrace, jcheck.String, jcheck.Colon, jcheck.LSquare,
			jcheck.Number, jcheck.RSquare, jcheck.RBrace,
		} {
			if err := m.Step(tok(k)); err != nil {
				t.Fatalf("Step(%v): unexpected error: %v", k, err)
			}
			got = append(got, m.Depth())
		}
		if diff := cmp.Diff([]int{1, 1, 1, 2, 2, 1, 0}, got); diff != "" {
			t.Errorf("Depths (-want, +got):\n%s", diff)
		}
		if err := m.Close(); err != nil {
			t.Errorf("Close: unexpected error: %v", err)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		var m jcheck.Machine
		bad := jcheck.Token{Kind: jcheck.Invalid, Text: "nope"}
		if err := m.Step(bad); !errors.Is(err, jcheck.ErrInvalidValue) {
			t.Errorf("Step(Invalid): got %v, want %v", err, jcheck.ErrInvalidValue)
		}
	})

	t.Run("Unclosed", func(t *testing.T) {
		var m jcheck.Machine
		m.Step(tok(jcheck.LSquare))
		m.Step(tok(jcheck.LBrace))
		if err := m.Close(); !errors.Is(err, jcheck.ErrUnclosed) {
			t.Errorf("Close: got %v, want %v", err, jcheck.ErrUnclosed)
		}
		m.Reset()
		if err := m.Close(); err != nil {
			t.Errorf("Close after Reset: unexpected error: %v", err)
		}
	})

	t.Run("MatchPairs", func(t *testing.T) {
		tests := []struct {
			input string
			want  error
		}{
			{"[1}", jcheck.ErrMismatched},
			{"{]", jcheck.ErrMismatched},
			{`{"a":[}]`, jcheck.ErrMismatched},
			{`{"a":[]}`, nil},
			{sampleDoc, nil},
			{"]", jcheck.ErrUnbalanced},
		}
		for _, test := range tests {
			var m jcheck.Machine
			m.MatchPairs(true)
			err := m.Check(jcheck.NewScanner(test.input))
			if test.want == nil {
				if err != nil {
					t.Errorf("Check(%#q): unexpected error: %v", test.input, err)
				}
			} else if !errors.Is(err, test.want) {
				t.Errorf("Check(%#q): got %v, want %v", test.input, err, test.want)
			}
		}
	})
}

func TestValidConcurrent(t *testing.T) {
	inputs := map[string]bool{
		sampleDoc: true,
		"[1}":     true,
		`{"a":}`:  true,
		"{":       false,
		`"abc`:    false,
	}
	var wg sync.WaitGroup
	for range 8 {
		for input, want := range inputs {
			wg.Go(func() {
				if got := jcheck.Valid(input); got != want {
					t.Errorf("Valid(%#q): got %v, want %v", input, got, want)
				}
			})
		}
	}
	wg.Wait()
}
