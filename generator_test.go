package passx

import (
	"bytes"
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testFields() Fields {
	return Fields{
		FirstName: "John",
		LastName:  "Doe",
		BirthYear: "1990",
		PetName:   "Fluffy",
	}
}

func wordlistValues(candidates []Candidate) []string {
	values := make([]string, 0, len(candidates))
	for _, c := range candidates {
		values = append(values, c.Value)
	}
	return values
}

func TestGeneratorYearCrossProduct(t *testing.T) {
	gen, err := New(&Options{
		Fields:    testFields(),
		YearRange: 1,
	})
	require.Nil(t, err)
	values := wordlistValues(gen.Wordlist(context.Background()))
	// every name token crossed with every year of the window
	for _, want := range []string{
		"John1989", "John1990", "John1991",
		"Doe1989", "Doe1990", "Doe1991",
	} {
		require.Contains(t, values, want)
	}
	// the birth-year seed itself is not crossed with years
	require.NotContains(t, values, "19901990")
}

func TestGeneratorDeterminism(t *testing.T) {
	run := func() string {
		gen, err := New(&Options{
			Fields:        testFields(),
			YearRange:     1,
			MaxLeet:       2,
			IncludeCommon: true,
		})
		require.Nil(t, err)
		var buff bytes.Buffer
		require.Nil(t, gen.ExecuteWithWriter(&buff))
		return buff.String()
	}
	first := run()
	second := run()
	require.NotEmpty(t, first)
	require.Equal(t, first, second)
}

func TestGeneratorInvariants(t *testing.T) {
	gen, err := New(&Options{
		Fields:        testFields(),
		YearRange:     2,
		MaxLeet:       2,
		IncludeCommon: true,
	})
	require.Nil(t, err)
	seen := map[string]struct{}{}
	for _, c := range gen.Wordlist(context.Background()) {
		length := len([]rune(c.Value))
		require.GreaterOrEqual(t, length, DefaultMinLength, "candidate %q below min length", c.Value)
		require.LessOrEqual(t, length, DefaultMaxLength, "candidate %q above max length", c.Value)
		_, dup := seen[c.Value]
		require.False(t, dup, "duplicate candidate %q", c.Value)
		seen[c.Value] = struct{}{}
	}
	require.NotEmpty(t, seen)
}

func TestGeneratorConfigErrors(t *testing.T) {
	t.Run("min greater than max", func(t *testing.T) {
		_, err := New(&Options{Fields: testFields(), MinLength: 10, MaxLength: 6})
		require.NotNil(t, err)
	})
	t.Run("negative max leet", func(t *testing.T) {
		_, err := New(&Options{Fields: testFields(), MaxLeet: -1})
		require.NotNil(t, err)
	})
	t.Run("negative year range", func(t *testing.T) {
		_, err := New(&Options{Fields: testFields(), YearRange: -1})
		require.NotNil(t, err)
	})
	t.Run("empty catalog referenced", func(t *testing.T) {
		_, err := New(&Options{
			Fields:   testFields(),
			Patterns: []string{"{{word}}{{suffix}}"},
			Payloads: map[string][]string{"suffix": {}},
		})
		require.NotNil(t, err)
	})
}

func TestGeneratorEmptySeeds(t *testing.T) {
	// all seed fields absent is not an error, the run degrades to
	// keyboard-walk output
	gen, err := New(&Options{})
	require.Nil(t, err)
	values := wordlistValues(gen.Wordlist(context.Background()))
	require.Equal(t, DefaultConfig.Payloads["walk"], values)
}

func TestGeneratorCommonDictionary(t *testing.T) {
	gen, err := New(&Options{IncludeCommon: true})
	require.Nil(t, err)
	candidates := gen.Wordlist(context.Background())
	require.NotEmpty(t, candidates)
	require.Equal(t, Candidate{Value: "password", Source: SourceCommon}, candidates[0])

	// qwerty is both a common password and a keyboard walk, dedupe
	// keeps the first occurrence with its provenance
	count := 0
	for _, c := range candidates {
		if c.Value == "qwerty" {
			count++
			require.Equal(t, SourceCommon, c.Source)
		}
	}
	require.Equal(t, 1, count)
}

func TestGeneratorLimit(t *testing.T) {
	full, err := New(&Options{Fields: testFields(), YearRange: 1})
	require.Nil(t, err)
	all := wordlistValues(full.Wordlist(context.Background()))
	require.Greater(t, len(all), 5)

	limited, err := New(&Options{Fields: testFields(), YearRange: 1, Limit: 5})
	require.Nil(t, err)
	got := wordlistValues(limited.Wordlist(context.Background()))
	// first-N truncation in generation order, never sampling
	require.Equal(t, all[:5], got)
}

func TestGeneratorEstimate(t *testing.T) {
	gen, err := New(&Options{Fields: testFields(), YearRange: 1, MaxLeet: 1})
	require.Nil(t, err)
	estimate := gen.EstimateCount()
	require.Greater(t, estimate, 0)

	again, err := New(&Options{Fields: testFields(), YearRange: 1, MaxLeet: 1})
	require.Nil(t, err)
	require.EqualValues(t, estimate, again.EstimateCount())

	// raw count includes duplicates, assembled output never exceeds it
	assembled := again.Wordlist(context.Background())
	require.LessOrEqual(t, len(assembled), estimate)
}

func TestGeneratorMaxSize(t *testing.T) {
	gen, err := New(&Options{Fields: testFields(), MaxSize: 64})
	require.Nil(t, err)
	var buff bytes.Buffer
	require.Nil(t, gen.ExecuteWithWriter(&buff))
	require.LessOrEqual(t, buff.Len(), 64)
}

func TestGeneratorMaxSizeReleasesResources(t *testing.T) {
	before := runtime.NumGoroutine()
	// a size cap hit mid-stream must still drain the assembler so its
	// goroutine exits and the dedupe backend is released
	for i := 0; i < 5; i++ {
		gen, err := New(&Options{Fields: testFields(), MaxSize: 32})
		require.Nil(t, err)
		var buff bytes.Buffer
		require.Nil(t, gen.ExecuteWithWriter(&buff))
		require.LessOrEqual(t, buff.Len(), 32)
	}
	time.Sleep(50 * time.Millisecond)
	require.LessOrEqual(t, runtime.NumGoroutine(), before)
}

func TestWordPayloadVariants(t *testing.T) {
	seeds := CollectSeeds(Fields{PetName: "Fluffy"})
	words := buildWordPayload(seeds, 0, DefaultLeetTable)
	require.Contains(t, words, "fluffy")
	require.Contains(t, words, "Fluffy")
	require.Contains(t, words, "FLUFFY")
	require.Contains(t, words, "yffulf")
}

func TestWordPayloadCombinations(t *testing.T) {
	seeds := CollectSeeds(Fields{FirstName: "john", LastName: "doe"})
	words := buildWordPayload(seeds, 0, DefaultLeetTable)
	for _, want := range []string{"johndoe", "doejohn", "Johndoe", "johnDoe", "john.doe", "john_doe"} {
		require.Contains(t, words, want)
	}
}
