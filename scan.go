package main

import (
	"strconv"
	"strings"
	"unicode"
)

// commentMarker introduces an end-of-line comment.
const commentMarker = "//"

// scanner splits named source lines into located tokens: per line, each
// maximal run of non-space runes in order. Classification priority is
// integer literal, then keyword, then comment marker (which drops the rest
// of the line), then plain word. Scanning is a one-way trip; build a new
// scanner to scan again.
type scanner struct {
	file  string
	lines []string
	line  int // number of lines consumed; 1-based line of cur
	cur   []rune
	col   int // rune index into cur
}

func newScanner(file string, lines []string) *scanner {
	return &scanner{file: file, lines: lines}
}

// tokenize materializes the full token sequence for the given lines.
func tokenize(file string, lines []string) []Token {
	var tokens []Token
	sc := newScanner(file, lines)
	for {
		tok, ok := sc.next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// next returns the next token, or false once all lines are exhausted.
func (sc *scanner) next() (Token, bool) {
	for {
		if sc.cur == nil {
			if sc.line >= len(sc.lines) {
				return Token{}, false
			}
			sc.cur = []rune(sc.lines[sc.line])
			sc.line++
			sc.col = 0
		}

		for sc.col < len(sc.cur) && unicode.IsSpace(sc.cur[sc.col]) {
			sc.col++
		}
		if sc.col >= len(sc.cur) {
			sc.nextLine()
			continue
		}

		start := sc.col
		for sc.col < len(sc.cur) && !unicode.IsSpace(sc.cur[sc.col]) {
			sc.col++
		}

		tok := Token{
			text: string(sc.cur[start:sc.col]),
			loc:  Location{File: sc.file, Line: sc.line, Col: start + 1},
		}

		if n, err := strconv.ParseInt(tok.text, 10, strconv.IntSize); err == nil {
			tok.kind = tokenInteger
			tok.num = int(n)
			return tok, true
		}

		if key, is := keywordNames[tok.text]; is {
			tok.kind = tokenKeyword
			tok.key = key
			return tok, true
		}

		if strings.HasPrefix(tok.text, commentMarker) {
			sc.nextLine()
			continue
		}

		tok.kind = tokenWord
		return tok, true
	}
}

func (sc *scanner) nextLine() {
	sc.cur = nil
	sc.col = 0
}
