package passx

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

const (
	// DefaultMinLength is the minimum candidate length accepted when
	// Options.MinLength is unset
	DefaultMinLength = 4
	// DefaultMaxLength is the maximum candidate length accepted when
	// Options.MaxLength is unset
	DefaultMaxLength = 64
)

// Source identifies the stage that produced a candidate. It is
// metadata only and never participates in deduplication.
type Source string

const (
	// SourcePattern marks candidates produced by pattern expansion
	SourcePattern Source = "pattern"
	// SourceWalk marks candidates produced by keyboard-walk patterns
	SourceWalk Source = "walk"
	// SourceCommon marks candidates from the common-password dictionary
	SourceCommon Source = "common"
)

// Candidate is a password candidate with its provenance
type Candidate struct {
	Value  string
	Source Source
}

// Generator Options
type Options struct {
	// Fields holds the personal-data seed inputs
	Fields Fields
	// MinLength / MaxLength bound accepted candidates (default 4..64)
	MinLength int
	MaxLength int
	// YearRange is the window size around the birth year (inclusive)
	YearRange int
	// MaxLeet is the maximum number of leetspeak substitutions applied
	// per candidate (0 disables leet expansion)
	MaxLeet int
	// LeetTable overrides the substitution table, DefaultLeetTable if nil
	LeetTable map[rune][]rune
	// Patterns to expand, if empty DefaultConfig patterns are used
	Patterns []string
	// Payloads overrides/extends the payload catalogs referenced by
	// patterns (suffix, walk, number, word ...)
	Payloads map[string][]string
	// IncludeCommon emits the embedded common-password dictionary
	IncludeCommon bool
	// Limit bounds the assembled output to the first N unique
	// candidates in generation order (0 = no limit)
	Limit int
	// MaxSize bounds the bytes written by ExecuteWithWriter (0 = no limit)
	MaxSize int
}

// Generator expands personal-data seeds into password candidates
type Generator struct {
	Options      *Options
	Seeds        []Seed
	payloads     map[string][]string
	payloadCount int
}

// New creates and returns a new generator instance from options.
// Absent seed fields are not an error, the run degrades to
// walk/dictionary output. Invalid bounds are.
func New(opts *Options) (*Generator, error) {
	if opts == nil {
		return nil, errorutil.NewWithTag("config", "no options provided")
	}
	if opts.MinLength == 0 {
		opts.MinLength = DefaultMinLength
	}
	if opts.MaxLength == 0 {
		opts.MaxLength = DefaultMaxLength
	}
	if opts.MinLength > opts.MaxLength {
		return nil, errorutil.NewWithTag("config", "min length %v is greater than max length %v", opts.MinLength, opts.MaxLength)
	}
	if opts.MaxLeet < 0 {
		return nil, errorutil.NewWithTag("config", "max leet substitutions cannot be negative, got %v", opts.MaxLeet)
	}
	if opts.YearRange < 0 {
		return nil, errorutil.NewWithTag("config", "year range cannot be negative, got %v", opts.YearRange)
	}
	if opts.LeetTable == nil {
		opts.LeetTable = DefaultLeetTable
	}
	if len(opts.Patterns) == 0 {
		if len(DefaultConfig.Patterns) == 0 {
			return nil, errorutil.NewWithTag("config", "default patterns and input patterns are empty")
		}
		opts.Patterns = DefaultConfig.Patterns
	}

	payloads := map[string][]string{}
	for k, v := range DefaultConfig.Payloads {
		payloads[k] = v
	}
	for k, v := range opts.Payloads {
		payloads[k] = v
	}
	// purge duplicates if any
	for k, v := range payloads {
		deduped := sliceutil.Dedupe(v)
		if len(v) != len(deduped) {
			gologger.Warning().Msgf("%v duplicate payloads found in %v, purging them", len(v)-len(deduped), k)
		}
		payloads[k] = deduped
	}

	g := &Generator{
		Options:  opts,
		Seeds:    CollectSeeds(opts.Fields),
		payloads: payloads,
	}
	g.preparePayloads()
	if err := g.validatePatterns(); err != nil {
		return nil, err
	}
	return g, nil
}

// preparePayloads derives the seed-bound payload sets (word, year) and
// merges them with any user-supplied values for the same variables
func (g *Generator) preparePayloads() {
	words := buildWordPayload(g.Seeds, g.Options.MaxLeet, g.Options.LeetTable)
	if extra := g.payloads["word"]; len(extra) > 0 {
		words = append(words, extra...)
	}
	g.payloads["word"] = sliceutil.Dedupe(words)

	years := buildYearPayload(g.Seeds, g.Options.YearRange)
	if extra := g.payloads["year"]; len(extra) > 0 {
		years = append(years, extra...)
	}
	g.payloads["year"] = sliceutil.Dedupe(years)
}

// validatePatterns compiles every pattern and rejects references to
// empty catalog payloads. The seed-derived variables (word, year) may
// legitimately be empty, such patterns are skipped at run time instead.
func (g *Generator) validatePatterns() error {
	for _, pattern := range g.Options.Patterns {
		for _, v := range getAllVars(pattern) {
			if v == "word" || v == "year" {
				continue
			}
			if len(g.payloads[v]) == 0 {
				return errorutil.NewWithTag("config", "pattern %v references empty payload catalog %v", pattern, v)
			}
		}
	}
	return nil
}

// Candidates calculates all permutations of seed payloads and patterns
// and streams them with provenance to a candidate channel
func (g *Generator) Candidates(ctx context.Context) <-chan Candidate {
	results := make(chan Candidate, len(g.Options.Patterns))
	go func() {
		defer close(results)
		if g.Options.IncludeCommon {
			for _, pw := range commonPasswords {
				select {
				case <-ctx.Done():
					return
				case results <- Candidate{Value: pw, Source: SourceCommon}:
				}
			}
		}
		sample := getSampleMap(g.payloads)
		for _, pattern := range g.Options.Patterns {
			if err := checkMissing(pattern, sample); err != nil {
				gologger.Warning().Msgf("variables missing to evaluate pattern `%v` got: %v, skipping", pattern, err.Error())
				continue
			}
			select {
			case <-ctx.Done():
				return
			default:
				g.clusterBomb(ctx, pattern, results)
			}
		}
	}()
	return results
}

// Execute is Candidates stripped down to plain strings
func (g *Generator) Execute(ctx context.Context) <-chan string {
	results := make(chan string, len(g.Options.Patterns))
	go func() {
		defer close(results)
		for candidate := range g.Candidates(ctx) {
			select {
			case <-ctx.Done():
				return
			case results <- candidate.Value:
			}
		}
	}()
	return results
}

// ExecuteWithWriter assembles the candidate stream (dedupe, length
// filter, limit) and writes it line-delimited to the given writer
func (g *Generator) ExecuteWithWriter(writer io.Writer) error {
	if writer == nil {
		return errorutil.NewWithTag("passx", "writer destination cannot be nil")
	}
	assembler := NewAssembler(g.Execute(context.TODO()), AssembleOptions{
		MinLength: g.Options.MinLength,
		MaxLength: g.Options.MaxLength,
		Limit:     g.Options.Limit,
		SizeHint:  g.Options.MaxSize,
	})
	assembler.Drain()
	// the result stream is always drained to completion so the
	// assembler goroutine exits and its dedupe backend is cleaned up,
	// even when the size cap or a write error stops output early
	var writeErr error
	written := 0
	stopped := false
	for value := range assembler.Results() {
		if stopped {
			continue
		}
		line := value + "\n"
		if g.Options.MaxSize > 0 && written+len(line) > g.Options.MaxSize {
			gologger.Info().Msgf("output size limit of %v bytes reached, stopping", g.Options.MaxSize)
			stopped = true
			continue
		}
		n, err := writer.Write([]byte(line))
		if err != nil {
			writeErr = err
			stopped = true
			continue
		}
		written += n
	}
	return writeErr
}

// Wordlist assembles the final deduplicated, length-filtered candidate
// list with provenance preserved. First-seen order, first-N truncation
// when Limit is set.
func (g *Generator) Wordlist(ctx context.Context) []Candidate {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	seen := map[string]struct{}{}
	var out []Candidate
	for candidate := range g.Candidates(ctx) {
		if g.Options.Limit > 0 && len(out) >= g.Options.Limit {
			cancel()
			continue // drain remaining values
		}
		length := len([]rune(candidate.Value))
		if length < g.Options.MinLength || length > g.Options.MaxLength {
			continue
		}
		if _, ok := seen[candidate.Value]; ok {
			continue
		}
		seen[candidate.Value] = struct{}{}
		out = append(out, candidate)
	}
	return out
}

// EstimateCount estimates the number of raw permutations (duplicates
// included) that will be created and caches the value for PayloadCount
func (g *Generator) EstimateCount() int {
	counter := 0
	ch := g.Execute(context.Background())
	for range ch {
		counter++
	}
	g.payloadCount = counter
	return counter
}

// PayloadCount returns total estimated payloads count
func (g *Generator) PayloadCount() int {
	if g.payloadCount == 0 {
		g.EstimateCount()
	}
	return g.payloadCount
}

// clusterBomb expands a single pattern over all payload sets it
// references and sends the results to the candidate channel
func (g *Generator) clusterBomb(ctx context.Context, pattern string, results chan<- Candidate) {
	source := SourcePattern
	if strings.Contains(pattern, "{{walk}}") {
		source = SourceWalk
	}
	varsUsed := getAllVars(pattern)
	if len(varsUsed) == 0 {
		// no expansion required, emit the literal pattern
		select {
		case <-ctx.Done():
		case results <- Candidate{Value: pattern, Source: source}:
		}
		return
	}
	payloads := NewIndexMap(varsUsed, g.payloads)
	callbackFunc := func(varMap map[string]interface{}) {
		select {
		case <-ctx.Done():
		case results <- Candidate{Value: Replace(pattern, varMap), Source: source}:
		}
	}
	ClusterBomb(payloads, callbackFunc, []string{})
}

// buildWordPayload derives the `word` payload set from the seeds:
// case variants, the reversed form, pairwise combinations and all
// leetspeak expansions of those. The birth-year seed is excluded, it
// feeds the `year` payload instead.
func buildWordPayload(seeds []Seed, maxLeet int, table map[rune][]rune) []string {
	var names []Seed
	for _, s := range seeds {
		if s.Field != FieldBirthYear {
			names = append(names, s)
		}
	}
	var bases []string
	for _, s := range names {
		bases = append(bases, s.Norm, capitalize(s.Norm), strings.ToUpper(s.Norm))
		if s.Raw != s.Norm && s.Raw != capitalize(s.Norm) && s.Raw != strings.ToUpper(s.Norm) {
			bases = append(bases, s.Raw)
		}
		bases = append(bases, reverse(s.Norm))
	}
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			a, b := names[i].Norm, names[j].Norm
			bases = append(bases,
				a+b, b+a,
				capitalize(a)+b, a+capitalize(b),
				a+"."+b, a+"_"+b,
			)
		}
	}
	bases = sliceutil.Dedupe(bases)
	var words []string
	for _, base := range bases {
		words = append(words, LeetVariants(base, maxLeet, table)...)
	}
	return words
}

// buildYearPayload derives the `year` payload window from the birth
// year seed, empty when no (numeric) birth year was supplied
func buildYearPayload(seeds []Seed, yearRange int) []string {
	birth, ok := birthYear(seeds)
	if !ok {
		return nil
	}
	var years []string
	for y := birth - yearRange; y <= birth+yearRange; y++ {
		years = append(years, strconv.Itoa(y))
	}
	return years
}
