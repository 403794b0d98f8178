package passx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetAllVars(t *testing.T) {
	// first-appearance order, duplicates collapsed
	require.Equal(t, []string{"word", "year", "suffix"}, getAllVars("{{word}}{{year}}{{word}}{{suffix}}"))
	require.Empty(t, getAllVars("static"))
}

func TestCheckMissing(t *testing.T) {
	sample := map[string]interface{}{"word": "temp"}
	require.Nil(t, checkMissing("{{word}}", sample))
	require.NotNil(t, checkMissing("{{word}}{{year}}", sample))
}

func TestReplace(t *testing.T) {
	got := Replace("{{word}}{{year}}", map[string]interface{}{"word": "fluffy", "year": "1990"})
	require.Equal(t, "fluffy1990", got)
}

func TestClusterBombOrder(t *testing.T) {
	payloads := NewIndexMap([]string{"a", "b"}, map[string][]string{
		"a": {"1", "2"},
		"b": {"x", "y"},
	})
	var got []string
	ClusterBomb(payloads, func(varMap map[string]interface{}) {
		got = append(got, Replace("{{a}}{{b}}", varMap))
	}, []string{})
	require.Equal(t, []string{"1x", "1y", "2x", "2y"}, got)
}
