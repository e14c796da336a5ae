package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const (
	replName    = "<repl>"
	historyFile = ".mspl_history"
	promptMain  = "mspl> "
	promptCont  = "  ... "
)

// repl reads, parses, and runs one program per entered line, printing the
// final stack. A line whose only parse problem is an unclosed block prompts
// for continuation lines until the blocks balance, so an if and its endif
// can span entries.
func repl(ctx context.Context, trace bool) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		lines, ok := readProgram(ln)
		if !ok {
			fmt.Println()
			return nil
		}
		if len(lines) == 0 {
			continue
		}

		src, err := Parse(tokenize(replName, lines))
		if err != nil {
			fmt.Fprintf(os.Stderr, "[Error] %v\n", err)
			continue
		}

		opts := []VMOption{
			WithSource(src),
			WithOutput(os.Stdout),
		}
		if trace {
			opts = append(opts, WithLogf(log.Printf))
		}
		vm := New(opts...)
		if err := vm.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "[Error] %v\n", err)
			continue
		}
		ln.AppendHistory(strings.Join(lines, " "))
	}
}

// readProgram collects prompt lines until they parse as something other
// than an unclosed block. Returns false once input is done (EOF or Ctrl-C).
func readProgram(ln *liner.State) ([]string, bool) {
	var lines []string
	for {
		prompt := promptMain
		if len(lines) > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil, len(lines) > 0
		}
		if err != nil {
			return nil, false
		}

		lines = append(lines, line)
		if len(lines) == 1 && strings.TrimSpace(line) == "" {
			return nil, true
		}

		var serr structureError
		if _, err := Parse(tokenize(replName, lines)); errors.As(err, &serr) && serr.unclosed {
			continue
		}
		return lines, true
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}
