package passx

import "math"

// character class pool sizes on a standard US keyboard
const (
	poolLowercase = 26
	poolUppercase = 26
	poolDigits    = 10
	poolSymbols   = 33
)

// Threshold maps an entropy lower bound exclusive upper limit to a
// strength label. Thresholds are checked in order, the first entry
// whose Bits value exceeds the measured entropy wins.
type Threshold struct {
	Bits  float64 `yaml:"bits"`
	Label string  `yaml:"label"`
}

// DefaultThresholds is the entropy-to-strength table used when the
// config does not override it.
var DefaultThresholds = []Threshold{
	{Bits: 28, Label: "Very Weak"},
	{Bits: 36, Label: "Weak"},
	{Bits: 60, Label: "Moderate"},
	{Bits: 128, Label: "Strong"},
}

// strongestLabel applies above the last threshold
const strongestLabel = "Very Strong"

// CharacterSpace returns the combined pool size of all character
// classes present in the password.
func CharacterSpace(password string) int {
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}
	space := 0
	if lower {
		space += poolLowercase
	}
	if upper {
		space += poolUppercase
	}
	if digit {
		space += poolDigits
	}
	if symbol {
		space += poolSymbols
	}
	return space
}

// Entropy returns the Shannon entropy of the password in bits,
// log2(character_space) * length. Empty input yields 0.
func Entropy(password string) float64 {
	space := CharacterSpace(password)
	if space == 0 {
		return 0
	}
	length := float64(len([]rune(password)))
	return length * math.Log2(float64(space))
}

// StrengthLabel converts an entropy value to a strength category using
// the given threshold table (DefaultThresholds when nil).
func StrengthLabel(bits float64, thresholds []Threshold) string {
	if len(thresholds) == 0 {
		thresholds = DefaultThresholds
	}
	for _, t := range thresholds {
		if bits < t.Bits {
			return t.Label
		}
	}
	return strongestLabel
}
