package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/damedic/rdf-toolbox-go/expression"
	"github.com/peterh/liner"
)

const (
	replPrompt = "rdflit> "
	replHelp   = `Enter an expression to evaluate it.
Commands:
  :functions  list the functions
  :help       show this help
  :quit       exit`
)

// ReplCmd reads expressions from the terminal and prints their results.
type ReplCmd struct {
	History string `help:"History file" type:"path" default:"~/.rdflit_history"`
}

func (c *ReplCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	defer s.close()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	names := expression.FunctionNames(s.ctx)
	ln.SetCompleter(func(line string) []string {
		return completions(names, line)
	})

	if f, err := os.Open(c.History); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(c.History); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	out := g.out()
	fmt.Fprintln(out, `rdflit, type ":help" for help`)
	for {
		line, err := ln.Prompt(replPrompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if quit := replCommand(out, s, names, line); quit {
			return nil
		}
	}
}

// replCommand handles one input line and reports whether the REPL should exit.
func replCommand(out io.Writer, s *session, names []string, line string) bool {
	switch strings.ToLower(line) {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprintln(out, replHelp)
		return false
	case ":functions":
		fmt.Fprintln(out, strings.Join(names, " "))
		return false
	}
	if strings.HasPrefix(line, ":") {
		fmt.Fprintf(out, "unknown command %s, type :help for help\n", line)
		return false
	}

	res, err := s.eval(line)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return false
	}
	fmt.Fprintln(out, res)
	return false
}

// completions completes the function name at the end of line.
func completions(names []string, line string) []string {
	start := strings.LastIndexFunc(line, func(r rune) bool {
		return !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	}) + 1
	prefix, word := line[:start], strings.ToUpper(line[start:])
	if word == "" {
		return nil
	}
	var out []string
	for _, name := range names {
		if strings.HasPrefix(name, word) {
			out = append(out, prefix+name+"(")
		}
	}
	return out
}
