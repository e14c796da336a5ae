package fileinput

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ReadAll(t *testing.T) {
	in, err := ReadAll("prog.mspl", strings.NewReader("1 2 +\n\n// done\n"))
	require.NoError(t, err)
	assert.Equal(t, "prog.mspl", in.Name)
	assert.Equal(t, []string{"1 2 +", "", "// done"}, in.Lines)
}

func Test_ReadAll_no_trailing_newline(t *testing.T) {
	in, err := ReadAll("prog.mspl", strings.NewReader("1 2 +"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1 2 +"}, in.Lines)
}

func Test_ReadAll_empty(t *testing.T) {
	in, err := ReadAll("empty.mspl", strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, in.Lines)
}
