package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_tokenize(t *testing.T) {
	const file = "test.mspl"
	at := func(line, col int) Location { return Location{File: file, Line: line, Col: col} }
	integer := func(text string, num int, line, col int) Token {
		return Token{kind: tokenInteger, text: text, num: num, loc: at(line, col)}
	}
	word := func(text string, line, col int) Token {
		return Token{kind: tokenWord, text: text, loc: at(line, col)}
	}
	keyw := func(text string, key keyword, line, col int) Token {
		return Token{kind: tokenKeyword, text: text, key: key, loc: at(line, col)}
	}

	for _, tc := range []struct {
		name  string
		lines []string
		want  []Token
	}{
		{
			name:  "empty input",
			lines: nil,
			want:  nil,
		},
		{
			name:  "blank lines only",
			lines: []string{"", "   ", "\t"},
			want:  nil,
		},
		{
			name:  "integers and an intrinsic",
			lines: []string{"5 3 -"},
			want: []Token{
				integer("5", 5, 1, 1),
				integer("3", 3, 1, 3),
				word("-", 1, 5),
			},
		},
		{
			name:  "signed integers",
			lines: []string{"-4 +7"},
			want: []Token{
				integer("-4", -4, 1, 1),
				integer("+7", 7, 1, 4),
			},
		},
		{
			name:  "keywords",
			lines: []string{"1 if 10 endif"},
			want: []Token{
				integer("1", 1, 1, 1),
				keyw("if", keywordIf, 1, 3),
				integer("10", 10, 1, 6),
				keyw("endif", keywordEndIf, 1, 9),
			},
		},
		{
			name:  "columns after leading whitespace",
			lines: []string{"  34 \t35"},
			want: []Token{
				integer("34", 34, 1, 3),
				integer("35", 35, 1, 7),
			},
		},
		{
			name:  "lines advance",
			lines: []string{"1", "", "2"},
			want: []Token{
				integer("1", 1, 1, 1),
				integer("2", 2, 3, 1),
			},
		},
		{
			name:  "comment drops rest of line",
			lines: []string{"1 // 2 3", "4"},
			want: []Token{
				integer("1", 1, 1, 1),
				integer("4", 4, 2, 1),
			},
		},
		{
			name:  "comment marker glued to text",
			lines: []string{"1 //note 2", "3"},
			want: []Token{
				integer("1", 1, 1, 1),
				integer("3", 3, 2, 1),
			},
		},
		{
			name:  "whole-line comment",
			lines: []string{"// nothing here"},
			want:  nil,
		},
		{
			name:  "unknown names scan as words",
			lines: []string{"bogus"},
			want: []Token{
				word("bogus", 1, 1),
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tokenize(file, tc.lines))
		})
	}
}

func Test_tokenize_deterministic(t *testing.T) {
	lines := []string{"1 2 + // sum", "0 if 3 endif"}
	first := tokenize("a.mspl", lines)
	assert.Equal(t, first, tokenize("a.mspl", lines), "rescanning the same input must match")
}

func Test_scanner_next_exhausts(t *testing.T) {
	sc := newScanner("a.mspl", []string{"1"})
	_, ok := sc.next()
	assert.True(t, ok)
	_, ok = sc.next()
	assert.False(t, ok)
	_, ok = sc.next()
	assert.False(t, ok, "an exhausted scanner stays exhausted")
}
