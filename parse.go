package main

import "fmt"

type opKind uint8

const (
	opPushInt opKind = iota
	opIntrinsic
	opIf
	opEndIf
)

func (kind opKind) String() string {
	switch kind {
	case opPushInt:
		return "pushint"
	case opIntrinsic:
		return "intrinsic"
	case opIf:
		return "if"
	case opEndIf:
		return "endif"
	}
	return fmt.Sprintf("invalidOpKind(%d)", kind)
}

// operator is one instruction of a parsed program. The token back-reference
// is kept for diagnostics. Which operand field is meaningful depends on
// kind: lit for opPushInt, code for opIntrinsic, target for opIf and
// opEndIf. An opIf's target is written exactly once, by its matching endif.
type operator struct {
	kind   opKind
	token  Token
	lit    int
	code   intrinsic
	target int
}

func (op operator) String() string {
	switch op.kind {
	case opPushInt:
		return fmt.Sprintf("pushint(%v)", op.lit)
	case opIntrinsic:
		return fmt.Sprintf("intrinsic(%v)", op.code)
	case opIf:
		return fmt.Sprintf("if->%v", op.target)
	case opEndIf:
		return fmt.Sprintf("endif->%v", op.target)
	}
	return op.kind.String()
}

// Source is a parsed program: a dense, 0-indexed operator sequence with all
// jump targets resolved. Addresses are indices into this sequence. It is
// read-only once parse returns it.
type Source struct {
	ops []operator
}

// Len returns the operator count.
func (src *Source) Len() int { return len(src.ops) }

// parser owns the working state of one parse: the operators accumulated so
// far and the pending-block stack, a LIFO of if addresses whose matching
// endif has not been seen yet.
type parser struct {
	ops     []operator
	pending []int
}

// Parse consumes tokens strictly in order and produces a resolved Source.
// Errors are structural and fatal: no partial Source is returned.
func Parse(tokens []Token) (*Source, error) {
	var p parser
	for _, tok := range tokens {
		if err := p.feed(tok); err != nil {
			return nil, err
		}
	}
	return p.finish()
}

func (p *parser) feed(tok Token) error {
	switch tok.kind {
	case tokenInteger:
		p.ops = append(p.ops, operator{kind: opPushInt, token: tok, lit: tok.num})

	case tokenWord:
		code, known := intrinsicNames[tok.text]
		if !known {
			return structureError{tok.loc, fmt.Sprintf("unknown word %q", tok.text), false}
		}
		p.ops = append(p.ops, operator{kind: opIntrinsic, token: tok, code: code})

	case tokenKeyword:
		switch tok.key {
		case keywordIf:
			p.pending = append(p.pending, len(p.ops))
			p.ops = append(p.ops, operator{kind: opIf, token: tok})

		case keywordEndIf:
			// check before any pop, so the error path itself cannot underflow
			if len(p.pending) == 0 {
				return structureError{tok.loc, "'endif' has no matching 'if'", false}
			}
			open := p.pending[len(p.pending)-1]
			p.pending = p.pending[:len(p.pending)-1]
			if p.ops[open].kind != opIf {
				return structureError{p.ops[open].token.loc, "'endif' can only close an 'if' block", false}
			}
			addr := len(p.ops)
			p.ops = append(p.ops, operator{kind: opEndIf, token: tok, target: addr + 1})
			p.ops[open].target = addr

		default:
			return structureError{tok.loc, fmt.Sprintf("unknown keyword %q", tok.text), false}
		}

	default:
		return structureError{tok.loc, fmt.Sprintf("unknown token kind %v", tok.kind), false}
	}
	return nil
}

// finish fails if any block is still pending, reporting the oldest
// unmatched block start.
func (p *parser) finish() (*Source, error) {
	if len(p.pending) > 0 {
		open := p.pending[0]
		return nil, structureError{p.ops[open].token.loc, "unclosed block", true}
	}
	src := &Source{ops: p.ops}
	p.ops = nil
	return src, nil
}

// structureError reports a fatal block-structure parse failure, tagged with
// the source location it was detected at. unclosed marks the
// more-input-may-fix-it case, which the REPL uses to prompt a continuation
// line.
type structureError struct {
	loc      Location
	mess     string
	unclosed bool
}

func (err structureError) Error() string {
	return fmt.Sprintf("%v - %v", err.loc, err.mess)
}
