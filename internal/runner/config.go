package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
	"github.com/zeroleaks/passx"
	"gopkg.in/yaml.v3"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

func init() {
	configDir := filepath.Join(getUserHomeDir(), ".config/passx")
	defaultPermutationCfg := filepath.Join(configDir, fmt.Sprintf("permutation_%v.yaml", version))
	// create default permutation.yaml config if it does not exist
	if fileutil.FileExists(defaultPermutationCfg) {
		// if it exists use that data as default
		if bin, err := os.ReadFile(defaultPermutationCfg); err == nil {
			var cfg passx.Config
			if errx := yaml.Unmarshal(bin, &cfg); errx == nil {
				passx.DefaultConfig = cfg
				return
			}
		}
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		gologger.Error().Msgf("failed to create config dir %v got: %v", configDir, err)
		return
	}
	if err := os.WriteFile(defaultPermutationCfg, passx.DefaultPermutationsBin, 0600); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", defaultPermutationCfg, err)
	}
}
