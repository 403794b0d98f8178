package passx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func assemble(input []string, opts AssembleOptions) []string {
	ch := make(chan string, len(input))
	for _, v := range input {
		ch <- v
	}
	close(ch)
	a := NewAssembler(ch, opts)
	a.Drain()
	var out []string
	for v := range a.Results() {
		out = append(out, v)
	}
	return out
}

func TestAssemblerLengthFilter(t *testing.T) {
	got := assemble(
		[]string{"Flu1fy", "F1", "qwerty", "waytoolongcandidate"},
		AssembleOptions{MinLength: 4, MaxLength: 6},
	)
	require.Equal(t, []string{"Flu1fy", "qwerty"}, got)
}

func TestAssemblerDedupe(t *testing.T) {
	got := assemble(
		[]string{"fluffy", "qwerty", "fluffy", "Fluffy", "qwerty"},
		AssembleOptions{MinLength: 4, MaxLength: 64},
	)
	// exact string equality, first-seen order preserved
	require.Equal(t, []string{"fluffy", "qwerty", "Fluffy"}, got)
}

func TestAssemblerLimit(t *testing.T) {
	got := assemble(
		[]string{"aaaa", "bbbb", "cccc", "dddd", "eeee"},
		AssembleOptions{MinLength: 4, MaxLength: 64, Limit: 3},
	)
	require.Equal(t, []string{"aaaa", "bbbb", "cccc"}, got)
}

func TestAssemblerRuneLength(t *testing.T) {
	// bounds apply to rune count, not byte count
	got := assemble(
		[]string{"päss"},
		AssembleOptions{MinLength: 4, MaxLength: 4},
	)
	require.Equal(t, []string{"päss"}, got)
}
