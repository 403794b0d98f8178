package passx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeetIdentity(t *testing.T) {
	// maxSubs = 0 is a no-op regardless of table contents
	require.Equal(t, []string{"fluffy"}, LeetVariants("fluffy", 0, DefaultLeetTable))
	require.Equal(t, []string{"Password1"}, LeetVariants("Password1", 0, DefaultLeetTable))
}

func TestLeetCombinationBound(t *testing.T) {
	// single-alternate table, two substitutable positions:
	// C(2,0)+C(2,1)+C(2,2) = 4 variants, not the 2^n power set with
	// larger n
	table := map[rune][]rune{'l': {'1'}}
	got := LeetVariants("hello", 2, table)
	require.Equal(t, []string{"hello", "he1lo", "hel1o", "he11o"}, got)

	// maxSubs greater than substitutable positions exhausts all
	// positions without blowing up
	require.Equal(t, []string{"hello", "he1lo", "hel1o", "he11o"}, LeetVariants("hello", 10, table))
}

func TestLeetMultipleAlternates(t *testing.T) {
	got := LeetVariants("as", 2, DefaultLeetTable)
	require.Equal(t, []string{"as", "4s", "@s", "a5", "a$", "45", "4$", "@5", "@$"}, got)
}

func TestLeetNoSubstitutablePositions(t *testing.T) {
	require.Equal(t, []string{"xyxy"}, LeetVariants("xyxy", 3, map[rune][]rune{'l': {'1'}}))
}

func TestLeetPreservesCase(t *testing.T) {
	// uppercase letters are substitutable via their lowercase entry,
	// untouched positions keep their original casing
	table := map[rune][]rune{'l': {'1'}}
	got := LeetVariants("Hello", 1, table)
	require.Equal(t, []string{"Hello", "He1lo", "Hel1o"}, got)
}

func TestLeetDeterministicOrder(t *testing.T) {
	first := LeetVariants("fluffy", 2, DefaultLeetTable)
	second := LeetVariants("fluffy", 2, DefaultLeetTable)
	require.Equal(t, first, second)
	require.Equal(t, "fluffy", first[0])
}
