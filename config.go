package passx

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the permutation patterns, the payload catalogs they
// reference and the entropy threshold table.
type Config struct {
	Patterns []string            `yaml:"patterns"`
	Payloads map[string][]string `yaml:"payloads"`
	// Thresholds override the entropy-to-strength table (optional)
	Thresholds []Threshold `yaml:"entropy-thresholds,omitempty"`
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml file with default values
func GenerateSample(filePath string) error {
	cfg := Config{
		Patterns: DefaultConfig.Patterns,
		Payloads: DefaultConfig.Payloads,
	}
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
