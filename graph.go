package main

import (
	"fmt"
	"io"
	"os"
)

// graphDumper renders a parsed Source as a graphviz control flow
// description: one node per operator labeled by what it does, an
// unconditional edge for straight-line operators, labeled true/false edges
// for an if, and a trailing sentinel node marking end of program. It only
// reads the Source.
type graphDumper struct {
	src *Source
	out io.Writer
	err error
}

// writeGraph renders src into the file at path, with a ".dot" extension
// appended.
func writeGraph(src *Source, path string) error {
	f, err := os.Create(path + ".dot")
	if err != nil {
		return err
	}
	if err := dumpGraph(src, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func dumpGraph(src *Source, w io.Writer) error {
	dump := graphDumper{src: src, out: w}
	dump.dump()
	return dump.err
}

func (dump *graphDumper) dump() {
	dump.printf("digraph Source{\n")
	for addr, op := range dump.src.ops {
		dump.node(addr, op)
	}
	dump.printf("   Operator_%v [label=\"EndOfOperators\"];\n", dump.src.Len())
	dump.printf("}\n")
}

func (dump *graphDumper) node(addr int, op operator) {
	switch op.kind {
	case opPushInt:
		dump.printf("   Operator_%v [label=PUSH_%v];\n", addr, op.lit)
		dump.edge(addr, addr+1, "")

	case opIntrinsic:
		dump.printf("   Operator_%v [label=%q];\n", addr, op.code.String())
		dump.edge(addr, addr+1, "")

	case opIf:
		dump.printf("   Operator_%v [shape=record label=if];\n", addr)
		dump.edge(addr, addr+1, "true")
		dump.edge(addr, op.target, "false")

	case opEndIf:
		dump.printf("   Operator_%v [shape=record label=endif];\n", addr)
		dump.edge(addr, op.target, "")

	default:
		dump.printf("   Operator_%v [label=%q];\n", addr, op.kind.String())
		dump.edge(addr, addr+1, "")
	}
}

func (dump *graphDumper) edge(from, to int, label string) {
	if label != "" {
		dump.printf("   Operator_%v -> Operator_%v [label=%v];\n", from, to, label)
	} else {
		dump.printf("   Operator_%v -> Operator_%v;\n", from, to)
	}
}

func (dump *graphDumper) printf(format string, args ...interface{}) {
	if dump.err == nil {
		_, dump.err = fmt.Fprintf(dump.out, format, args...)
	}
}
