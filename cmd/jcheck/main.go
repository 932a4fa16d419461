// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jcheck reports whether its inputs are well-formed JSON.
//
// Usage:
//
//	jcheck [flags] [FILE ...]
//
// With no files, or a file named "-", jcheck reads standard input. For each
// input it prints "Valid JSON" or "Invalid JSON". The exit status is 0 if
// every input is valid, 1 if any input is invalid, and 2 if an input could
// not be read or the command line is incorrect.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jcheck"
	"github.com/tailscale/hujson"
)

// sampleDoc is the document checked by --example.
const sampleDoc = `{"name":"John","age":30,"city":"New York","hobbies":["reading","traveling","cooking"],"address":{"street":"123 Main St","city":"New York","country":"USA"}}`

type cli struct {
	Files      []string `arg:"" optional:"" help:"Input files to check; use - for stdin."`
	Example    bool     `help:"Check the built-in sample document instead of the inputs."`
	JWCC       bool     `name:"jwcc" help:"Convert JWCC input (comments, trailing commas) to standard JSON before checking."`
	MatchPairs bool     `help:"Require each closing brace or bracket to match its opener."`
	Quiet      bool     `short:"q" help:"Print nothing; report only through the exit status."`
	Verbose    bool     `short:"v" help:"Describe why each invalid input was rejected."`
}

// An input is a named document to check.
type input struct {
	name string
	data []byte
}

func main() { os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)) }

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var c cli
	exit := -1
	parser, err := kong.New(&c,
		kong.Name("jcheck"),
		kong.Description("Report whether inputs are well-formed JSON."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exit = code }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "jcheck: %v\n", err)
		return 2
	}
	_, err = parser.Parse(args)
	if exit >= 0 {
		return exit // e.g., --help
	} else if err != nil {
		fmt.Fprintf(stderr, "jcheck: %v\n", err)
		return 2
	}

	inputs, err := c.readInputs(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "jcheck: %v\n", err)
		return 2
	}

	status := 0
	for _, in := range inputs {
		err := c.check(in.data)
		if err != nil {
			status = 1
		}
		if c.Quiet {
			continue
		}
		msg := "Valid JSON"
		if err != nil {
			msg = "Invalid JSON"
		}
		if len(inputs) > 1 {
			fmt.Fprintf(stdout, "%s: %s\n", in.name, msg)
		} else {
			fmt.Fprintln(stdout, msg)
		}
		if err != nil && c.Verbose {
			fmt.Fprintf(stderr, "%s: %v\n", in.name, err)
		}
	}
	return status
}

// readInputs returns the documents selected by the command line.
func (c *cli) readInputs(stdin io.Reader) ([]input, error) {
	if c.Example {
		return []input{{name: "example", data: []byte(sampleDoc)}}, nil
	}
	files := c.Files
	if len(files) == 0 {
		files = []string{"-"}
	}
	var out []input
	for _, name := range files {
		var data []byte
		var err error
		if name == "-" {
			name = "<stdin>"
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		out = append(out, input{name: name, data: data})
	}
	return out, nil
}

// check reports whether data is valid under the settings of c.
func (c *cli) check(data []byte) error {
	if c.JWCC {
		std, err := hujson.Standardize(data)
		if err != nil {
			return fmt.Errorf("invalid JWCC: %w", err)
		}
		data = std
	}
	var m jcheck.Machine
	m.MatchPairs(c.MatchPairs)
	return m.Check(jcheck.NewScannerBytes(data))
}
