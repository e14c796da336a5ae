// Package fileinput loads named, line-oriented source input: the tokenizer
// scans whole lines, so input arrives as a name plus its split lines rather
// than a rune stream.
package fileinput

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

// Input is a named batch of source lines, the unit the tokenizer consumes.
// Name is what diagnostics report as the source label.
type Input struct {
	Name  string
	Lines []string
}

// Load reads the file at path into an Input labeled by its basename.
func Load(path string) (Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return Input{}, err
	}
	defer f.Close()
	return ReadAll(filepath.Base(path), f)
}

// ReadAll reads r to exhaustion, splitting it into lines without their line
// endings.
func ReadAll(name string, r io.Reader) (Input, error) {
	in := Input{Name: name}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		in.Lines = append(in.Lines, sc.Text())
	}
	return in, sc.Err()
}
