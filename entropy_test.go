package passx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCharacterSpace(t *testing.T) {
	require.Equal(t, 26, CharacterSpace("abc"))
	require.Equal(t, 52, CharacterSpace("Abc"))
	require.Equal(t, 62, CharacterSpace("Abc1"))
	require.Equal(t, 95, CharacterSpace("Abc1!"))
	require.Equal(t, 33, CharacterSpace("!!!"))
	require.Equal(t, 0, CharacterSpace(""))
}

func TestEntropy(t *testing.T) {
	require.Equal(t, 0.0, Entropy(""))
	require.InDelta(t, 3*math.Log2(26), Entropy("abc"), 1e-9)
	require.InDelta(t, 8*math.Log2(62), Entropy("Passw0rd"), 1e-9)
	// entropy grows with length for a fixed character space
	require.Greater(t, Entropy("abcdefgh"), Entropy("abcd"))
}

func TestStrengthLabel(t *testing.T) {
	require.Equal(t, "Very Weak", StrengthLabel(20, nil))
	require.Equal(t, "Weak", StrengthLabel(30, nil))
	require.Equal(t, "Moderate", StrengthLabel(50, nil))
	require.Equal(t, "Strong", StrengthLabel(100, nil))
	require.Equal(t, "Very Strong", StrengthLabel(200, nil))
}

func TestStrengthLabelCustomThresholds(t *testing.T) {
	thresholds := []Threshold{
		{Bits: 50, Label: "low"},
		{Bits: 100, Label: "high"},
	}
	require.Equal(t, "low", StrengthLabel(10, thresholds))
	require.Equal(t, "high", StrengthLabel(60, thresholds))
	require.Equal(t, "Very Strong", StrengthLabel(150, thresholds))
}
