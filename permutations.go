package passx

import (
	_ "embed"

	"github.com/projectdiscovery/gologger"
	"gopkg.in/yaml.v3"
)

//go:embed permutations.yaml
var DefaultPermutationsBin []byte

// DefaultConfig contains the default patterns and payload catalogs,
// parsed from the embedded permutations.yaml. It can be replaced by the
// runner when a user permutation config exists.
var DefaultConfig Config

func init() {
	if err := yaml.Unmarshal(DefaultPermutationsBin, &DefaultConfig); err != nil {
		gologger.Fatal().Msgf("failed to parse embedded permutation config got: %v", err)
	}
}
