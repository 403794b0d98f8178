package main

import (
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/gologger"
	"github.com/zeroleaks/passx"
	"github.com/zeroleaks/passx/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()

	var permCfg *passx.Config
	if cliOpts.PermutationConfig != "" {
		cfg, err := passx.NewConfig(cliOpts.PermutationConfig)
		if err != nil {
			gologger.Fatal().Msgf("failed to read %v file got: %v", cliOpts.PermutationConfig, err)
		}
		permCfg = cfg
	}

	fields := passx.Fields{
		FirstName: cliOpts.First,
		LastName:  cliOpts.Last,
		Nickname:  cliOpts.Nick,
		BirthYear: cliOpts.Birth,
		PetName:   cliOpts.Pet,
		Company:   cliOpts.Company,
		Extra:     cliOpts.Words,
	}

	if cliOpts.Analyze != "" {
		thresholds := passx.DefaultThresholds
		if permCfg != nil && len(permCfg.Thresholds) > 0 {
			thresholds = permCfg.Thresholds
		}
		printAnalysis(passx.AnalyzeWithThresholds(cliOpts.Analyze, thresholds, fields.Values()...))
		return
	}

	genOpts := &passx.Options{
		Fields:        fields,
		MinLength:     cliOpts.MinLength,
		MaxLength:     cliOpts.MaxLength,
		YearRange:     cliOpts.YearRange,
		MaxLeet:       cliOpts.MaxLeet,
		Patterns:      cliOpts.Patterns,
		Payloads:      cliOpts.Payloads,
		IncludeCommon: !cliOpts.NoCommon,
		Limit:         cliOpts.Limit,
		MaxSize:       cliOpts.MaxSize,
	}

	if permCfg != nil {
		if len(permCfg.Patterns) > 0 {
			genOpts.Patterns = permCfg.Patterns
		}
		if len(permCfg.Payloads) > 0 {
			genOpts.Payloads = permCfg.Payloads
		}
	}

	if cliOpts.NoWalks {
		if len(genOpts.Patterns) == 0 {
			genOpts.Patterns = passx.DefaultConfig.Patterns
		}
		kept := filterWalkPatterns(genOpts.Patterns)
		if len(kept) == 0 {
			// an empty list would make the generator fall back to the
			// default patterns and reintroduce the excluded walks
			gologger.Fatal().Msgf("all configured patterns use {{walk}}, nothing left to generate with -no-walks")
		}
		genOpts.Patterns = kept
	}

	gen, err := passx.New(genOpts)
	if err != nil {
		gologger.Fatal().Msgf("failed to parse passx config got %v", err)
	}

	if cliOpts.Estimate {
		gologger.Info().Msgf("Estimated candidates (including duplicates): %v", gen.EstimateCount())
		return
	}

	output, seed := getOutputWriter(cliOpts)
	defer closeOutput(output, cliOpts.Output)

	writer := passx.NewUniqueWriter(output, seed...)
	if err = gen.ExecuteWithWriter(writer); err != nil {
		gologger.Error().Msgf("failed to write output got %v", err)
	}
	if err = writer.Close(); err != nil {
		gologger.Error().Msgf("failed to flush output got %v", err)
	}
	gologger.Info().Msgf("Wrote %v unique candidates", writer.Count())
}

// filterWalkPatterns returns the patterns that do not reference the
// keyboard-walk catalog
func filterWalkPatterns(patterns []string) []string {
	var kept []string
	for _, p := range patterns {
		if !strings.Contains(p, "{{walk}}") {
			kept = append(kept, p)
		}
	}
	return kept
}

// getOutputWriter returns the destination writer and, in resume mode,
// the lines already present in the output file so they are not
// written again
func getOutputWriter(opts *runner.Options) (io.Writer, []string) {
	if opts.Output == "" {
		return os.Stdout, nil
	}
	var seed []string
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if opts.Resume {
		if bin, err := os.ReadFile(opts.Output); err == nil {
			for _, line := range strings.Split(string(bin), "\n") {
				if line = strings.TrimSpace(line); line != "" {
					seed = append(seed, line)
				}
			}
		}
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	fs, err := os.OpenFile(opts.Output, flags, 0644)
	if err != nil {
		gologger.Fatal().Msgf("failed to open output file %v got %v", opts.Output, err)
	}
	return fs, seed
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}

func printAnalysis(analysis passx.Analysis) {
	gologger.Silent().Msgf("Password: %v", analysis.Password)
	gologger.Silent().Msgf("Strength Score: %v/4", analysis.Score)
	gologger.Silent().Msgf("Estimated Crack Time: %v", analysis.CrackTimeDisplay)
	gologger.Silent().Msgf("Entropy: %.2f bits (%v)", analysis.Entropy, analysis.Strength)
	gologger.Silent().Msgf("Crack time by attack speed:")
	for _, ct := range analysis.CrackTimes {
		gologger.Silent().Msgf("  %-28v %v", ct.Scenario+":", ct.Display)
	}
	if analysis.Warning != "" {
		gologger.Silent().Msgf("Warning: %v", analysis.Warning)
	}
	for _, s := range analysis.Suggestions {
		gologger.Silent().Msgf("Suggestion: %v", s)
	}
}
