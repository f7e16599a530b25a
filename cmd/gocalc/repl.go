package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/gocalc"
)

type shell struct {
	in          io.Reader
	out         io.Writer
	errOut      io.Writer
	prompt      string
	interactive bool
	strict      bool
	postfix     bool
}

func (s *shell) help() {
	text, err := gocalc.Help()
	if err != nil {
		fmt.Fprintln(s.errOut, err)
		return
	}
	fmt.Fprint(s.out, text)
}

func (s *shell) run() error {
	if s.interactive {
		fmt.Fprintln(s.out, "\nWelcome to gocalc")
		fmt.Fprintln(s.out)
		s.help()
	}
	scanner := bufio.NewScanner(s.in)
	for {
		if s.interactive {
			fmt.Fprint(s.out, s.prompt)
		}
		if !scanner.Scan() {
			break
		}
		if !s.line(scanner.Text()) {
			break
		}
	}
	return scanner.Err()
}

// line handles one line of input and reports whether the loop should go on.
func (s *shell) line(text string) bool {
	args := strings.Fields(text)
	if len(args) == 0 {
		return true
	}

	switch strings.ToLower(args[0]) {
	case "quit", "q":
		fmt.Fprintln(s.out, "Goodbye!")
		return false
	case "help":
		s.help()
		return true
	}

	tokens, err := gocalc.Tokenize(args)
	if err != nil {
		fmt.Fprintln(s.errOut, err)
		return true
	}
	if s.strict {
		if err := gocalc.CheckWellFormed(tokens); err != nil {
			fmt.Fprintln(s.errOut, err)
			return true
		}
	}
	if s.postfix {
		fmt.Fprintf(s.out, "Postfix: %v\n", gocalc.Tokens(gocalc.ToPostfix(tokens)))
	}
	v, err := gocalc.Evaluate(tokens)
	if err != nil {
		fmt.Fprintf(s.out, "Error evaluating expression: %v\n", err)
		return true
	}
	fmt.Fprintf(s.out, "Result: %v\n", gocalc.Num(v))
	return true
}
