package main

// @generated goldens under testdata/ from examples/

//go:generate go run scripts/gen_graph_expects.go

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mspl-lang/gomspl/internal/fileinput"
)

func Test_dumpGraph_goldens(t *testing.T) {
	names, err := filepath.Glob(filepath.Join("examples", "*.mspl"))
	require.NoError(t, err)
	require.NotEmpty(t, names, "no example programs to check")

	for _, name := range names {
		base := strings.TrimSuffix(filepath.Base(name), ".mspl")
		t.Run(base, func(t *testing.T) {
			in, err := fileinput.Load(name)
			require.NoError(t, err)

			src, err := Parse(tokenize(in.Name, in.Lines))
			require.NoError(t, err)

			want, err := ioutil.ReadFile(filepath.Join("testdata", base+".dot"))
			require.NoError(t, err, "missing golden; run go generate")

			var buf bytes.Buffer
			require.NoError(t, dumpGraph(src, &buf))
			assert.Equal(t, string(want), buf.String())
		})
	}
}

func Test_dumpGraph_empty_program(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dumpGraph(&Source{}, &buf))
	assert.Equal(t,
		"digraph Source{\n"+
			"   Operator_0 [label=\"EndOfOperators\"];\n"+
			"}\n",
		buf.String())
}

func Test_dumpGraph_if_edges(t *testing.T) {
	src, err := Parse(tokenize("test.mspl", []string{"1 0 if 10 endif"}))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dumpGraph(src, &buf))
	out := buf.String()

	assert.Contains(t, out, "Operator_2 -> Operator_3 [label=true];", "fallthrough edge")
	assert.Contains(t, out, "Operator_2 -> Operator_4 [label=false];", "jump edge to the endif")
	assert.Contains(t, out, "Operator_4 -> Operator_5;", "endif join edge")
	assert.Contains(t, out, "Operator_5 [label=\"EndOfOperators\"];", "sentinel node")
}

func Test_dumpGraph_reads_only(t *testing.T) {
	src, err := Parse(tokenize("test.mspl", []string{"1 if 2 endif"}))
	require.NoError(t, err)

	before := make([]operator, len(src.ops))
	copy(before, src.ops)

	var a, b bytes.Buffer
	require.NoError(t, dumpGraph(src, &a))
	require.NoError(t, dumpGraph(src, &b))
	assert.Equal(t, a.String(), b.String(), "dumping must be repeatable")
	assert.Equal(t, before, src.ops, "dumping must not mutate the source")
}
