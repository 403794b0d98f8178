package passx

import (
	"fmt"
	"math"

	"github.com/nbutton23/zxcvbn-go"
)

// AttackScenario models a guessing-speed profile used to derive crack
// time estimates from the estimator's entropy.
type AttackScenario struct {
	Name             string
	GuessesPerSecond float64
}

// DefaultScenarios covers the usual online/offline attack speeds.
var DefaultScenarios = []AttackScenario{
	{Name: "online throttled (100/h)", GuessesPerSecond: 100.0 / 3600},
	{Name: "online unthrottled (10/s)", GuessesPerSecond: 10},
	{Name: "offline slow hash (1e4/s)", GuessesPerSecond: 1e4},
	{Name: "offline fast hash (1e10/s)", GuessesPerSecond: 1e10},
}

// CrackTime is one scenario's estimate for the analyzed password
type CrackTime struct {
	Scenario string
	Seconds  float64
	Display  string
}

// Analysis is the combined strength report for a single password
type Analysis struct {
	Password         string
	Score            int // 0-4, from the estimator
	CrackTimeDisplay string
	CrackTimes       []CrackTime
	Entropy          float64 // Shannon entropy, bits
	Strength         string  // label derived from entropy thresholds
	Warning          string
	Suggestions      []string
}

// Analyze runs the external strength estimator against the password
// and augments the result with the closed-form entropy estimate.
// userInputs (seed values, usernames ...) lower the estimator's score
// for passwords derived from them.
func Analyze(password string, userInputs ...string) Analysis {
	return AnalyzeWithThresholds(password, DefaultThresholds, userInputs...)
}

// AnalyzeWithThresholds is Analyze with a caller-supplied entropy
// threshold table.
func AnalyzeWithThresholds(password string, thresholds []Threshold, userInputs ...string) Analysis {
	match := zxcvbn.PasswordStrength(password, userInputs)
	bits := Entropy(password)

	analysis := Analysis{
		Password:         password,
		Score:            match.Score,
		CrackTimeDisplay: match.CrackTimeDisplay,
		Entropy:          bits,
		Strength:         StrengthLabel(bits, thresholds),
	}

	// average-case guess count from the estimator's entropy
	guesses := math.Pow(2, match.Entropy) / 2
	for _, scenario := range DefaultScenarios {
		seconds := guesses / scenario.GuessesPerSecond
		analysis.CrackTimes = append(analysis.CrackTimes, CrackTime{
			Scenario: scenario.Name,
			Seconds:  seconds,
			Display:  displayTime(seconds),
		})
	}

	analysis.Warning, analysis.Suggestions = feedback(password, match.Score)
	return analysis
}

// feedback derives a warning and suggestions from local checks, the
// estimator library exposes no feedback of its own.
func feedback(password string, score int) (string, []string) {
	var warning string
	var suggestions []string
	if IsCommonPassword(password) {
		warning = "this is a commonly used password"
		suggestions = append(suggestions, "avoid passwords that appear in breached password lists")
	}
	if len(password) < 8 {
		suggestions = append(suggestions, "use at least 8 characters, longer is stronger")
	}
	if CharacterSpace(password) <= poolLowercase {
		suggestions = append(suggestions, "mix upper case, digits and symbols to grow the search space")
	}
	if warning == "" && score <= 1 {
		warning = "this password is easy to guess"
	}
	return warning, suggestions
}

const (
	minute  = 60
	hour    = 60 * minute
	day     = 24 * hour
	month   = 31 * day
	year    = 365 * day
	century = 100 * year
)

// displayTime humanizes a crack-time estimate in seconds
func displayTime(seconds float64) string {
	switch {
	case seconds < 1:
		return "instant"
	case seconds < minute:
		return fmt.Sprintf("%.0f seconds", seconds)
	case seconds < hour:
		return fmt.Sprintf("%.0f minutes", seconds/minute)
	case seconds < day:
		return fmt.Sprintf("%.0f hours", seconds/hour)
	case seconds < month:
		return fmt.Sprintf("%.0f days", seconds/day)
	case seconds < year:
		return fmt.Sprintf("%.0f months", seconds/month)
	case seconds < century:
		return fmt.Sprintf("%.0f years", seconds/year)
	default:
		return "centuries"
	}
}
