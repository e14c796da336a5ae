package main

import "fmt"

// Location names where a token started in its source file. Line and Col are
// 1-based. Its string form matches the diagnostic format that the original
// toolchain prints, so errors read like:
//
//	[Error] (if_example.mspl) on 3:5 - unclosed block
type Location struct {
	File string
	Line int
	Col  int
}

func (loc Location) String() string {
	return fmt.Sprintf("(%v) on %v:%v", loc.File, loc.Line, loc.Col)
}

type tokenKind uint8

const (
	tokenInteger tokenKind = iota
	tokenWord
	tokenKeyword
)

func (kind tokenKind) String() string {
	switch kind {
	case tokenInteger:
		return "integer"
	case tokenWord:
		return "word"
	case tokenKeyword:
		return "keyword"
	}
	return fmt.Sprintf("invalidTokenKind(%d)", kind)
}

// Token is one classified word of source text. Which value field is
// meaningful depends on kind: num for tokenInteger, key for tokenKeyword;
// a tokenWord's value is its text.
type Token struct {
	kind tokenKind
	text string
	loc  Location
	num  int
	key  keyword
}

func (tok Token) String() string {
	return fmt.Sprintf("%v(%q)", tok.kind, tok.text)
}

type keyword uint8

const (
	keywordIf keyword = iota
	keywordEndIf
)

var keywordNames = map[string]keyword{
	"if":    keywordIf,
	"endif": keywordEndIf,
}

func (key keyword) String() string {
	switch key {
	case keywordIf:
		return "if"
	case keywordEndIf:
		return "endif"
	}
	return fmt.Sprintf("invalidKeyword(%d)", key)
}

// An intrinsic is a built-in operation that consumes and produces values on
// the value stack.
type intrinsic uint8

const (
	intrinsicAdd intrinsic = iota
	intrinsicSub
	intrinsicMul
)

var intrinsicNames = map[string]intrinsic{
	"+": intrinsicAdd,
	"-": intrinsicSub,
	"*": intrinsicMul,
}

func (code intrinsic) String() string {
	switch code {
	case intrinsicAdd:
		return "+"
	case intrinsicSub:
		return "-"
	case intrinsicMul:
		return "*"
	}
	return fmt.Sprintf("invalidIntrinsic(%d)", code)
}
