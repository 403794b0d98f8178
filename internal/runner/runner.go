package runner

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
)

type Options struct {
	// seed fields
	First   string
	Last    string
	Nick    string
	Birth   string
	Pet     string
	Company string
	Words   goflags.StringSlice // extra seed words (stdin, comma-separated, file)

	// analysis mode
	Analyze string

	// generation tuning
	Patterns  goflags.StringSlice
	Payloads  map[string][]string
	YearRange int
	MaxLeet   int
	MinLength int
	MaxLength int
	NoCommon  bool
	NoWalks   bool

	// output
	Output   string
	Resume   bool
	Estimate bool
	Limit    int
	MaxSize  int
	Verbose  bool
	Silent   bool

	// config
	Config             string
	PermutationConfig  string
	DisableUpdateCheck bool

	// internal/unexported fields
	wordlists goflags.RuntimeMap
}

func ParseFlags() *Options {
	var maxFileSize string
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Targeted password wordlist generator and strength analyzer.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.First, "first", "f", "", "first name seed"),
		flagSet.StringVarP(&opts.Last, "last", "l", "", "last name seed"),
		flagSet.StringVarP(&opts.Nick, "nick", "n", "", "nickname seed"),
		flagSet.StringVarP(&opts.Birth, "birth", "b", "", "birth year seed (4 digits)"),
		flagSet.StringVar(&opts.Pet, "pet", "", "pet name seed"),
		flagSet.StringVar(&opts.Company, "company", "", "company name seed"),
		flagSet.StringSliceVarP(&opts.Words, "word", "w", nil, "extra seed words (stdin, comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.Analyze, "analyze", "a", "", "analyze strength of the given password instead of generating"),
	)

	flagSet.CreateGroup("generate", "Generate",
		flagSet.StringSliceVarP(&opts.Patterns, "pattern", "p", nil, "custom permutation patterns input to generate (comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.RuntimeMapVarP(&opts.wordlists, "payload", "pp", nil, "custom payload pattern input to replace/use in key=value format (-pp 'suffix=suffixes.txt')"),
		flagSet.IntVarP(&opts.YearRange, "year-range", "yr", 2, "years around the birth year to include"),
		flagSet.IntVarP(&opts.MaxLeet, "max-leet", "ml", 1, "max leetspeak substitutions per candidate (0-3)"),
		flagSet.IntVar(&opts.MinLength, "min-length", 4, "minimum candidate length"),
		flagSet.IntVar(&opts.MaxLength, "max-length", 64, "maximum candidate length"),
		flagSet.BoolVarP(&opts.NoCommon, "no-common", "nc", false, "exclude the common-password dictionary"),
		flagSet.BoolVarP(&opts.NoWalks, "no-walks", "nw", false, "exclude keyboard-walk patterns"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Estimate, "estimate", "es", false, "estimate permutation count without generating payloads"),
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write generated wordlist"),
		flagSet.BoolVarP(&opts.Resume, "resume", "r", false, "seed deduplication with the existing output file and append only new candidates"),
		flagSet.IntVar(&opts.Limit, "limit", 0, "limit the number of results to return (default 0)"),
		flagSet.StringVarP(&maxFileSize, "max-size", "ms", "", "max export data size (kb, mb, gb, tb) (default mb)"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display passx version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `passx cli config file (default '$HOME/.config/passx/config.yaml')`),
		flagSet.StringVar(&opts.PermutationConfig, "pc", "", `passx permutation config file (default '$HOME/.config/passx/permutation_`+version+`.yaml')`),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update passx to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic passx update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("passx")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("passx version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current passx version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	if len(maxFileSize) > 0 {
		maxSize, err := convertFileSizeToBytes(maxFileSize)
		if err != nil {
			gologger.Fatal().Msgf("Could not parse max-size: %s\n", err)
		}
		opts.MaxSize = maxSize
	}

	opts.Payloads = map[string][]string{}
	for k, v := range opts.wordlists.AsMap() {
		value, ok := v.(string)
		if !ok {
			continue
		}
		if fileutil.FileExists(value) {
			bin, err := os.ReadFile(value)
			if err != nil {
				gologger.Error().Msgf("failed to read wordlist %v got %v", value, err)
				continue
			}
			opts.Payloads[k] = strings.Fields(string(bin))
		} else {
			opts.Payloads[k] = []string{value}
		}
	}

	// extra seed words from stdin
	if fileutil.HasStdin() {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
		opts.Words = append(opts.Words, strings.Fields(string(bin))...)
	}

	if opts.Analyze == "" && !opts.hasSeeds() {
		gologger.Warning().Msgf("no seed fields provided, output will contain keyboard walks and common passwords only")
	}

	return opts
}

func (opts *Options) hasSeeds() bool {
	if opts.First != "" || opts.Last != "" || opts.Nick != "" || opts.Birth != "" || opts.Pet != "" || opts.Company != "" {
		return true
	}
	return len(opts.Words) > 0
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}

func convertFileSizeToBytes(maxFileSize string) (int, error) {
	maxFileSize = strings.ToLower(maxFileSize)
	// default to mb
	if size, err := strconv.Atoi(maxFileSize); err == nil {
		return size * 1024 * 1024, nil
	}
	if len(maxFileSize) < 3 {
		return 0, errorutil.New("invalid max-size value")
	}
	sizeUnit := maxFileSize[len(maxFileSize)-2:]
	size, err := strconv.Atoi(maxFileSize[:len(maxFileSize)-2])
	if err != nil {
		return 0, err
	}
	if size < 0 {
		return 0, errorutil.New("max-size cannot be negative")
	}
	switch sizeUnit {
	case "kb":
		return size * 1024, nil
	case "mb":
		return size * 1024 * 1024, nil
	case "gb":
		return size * 1024 * 1024 * 1024, nil
	case "tb":
		return size * 1024 * 1024 * 1024 * 1024, nil
	}
	return 0, errorutil.New("unsupported max-size unit")
}
