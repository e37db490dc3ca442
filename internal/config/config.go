package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the solver defaults. CLI flags override every field except
// Search.FrequencyWeightedSwaps, which has no flag and is not passed on
// to the solver.
type Config struct {
	// Search budgets and probabilities
	Search struct {
		HillClimbs             int     `yaml:"hillClimbs"`
		Restarts               int     `yaml:"restarts"`
		BacktrackProb          float64 `yaml:"backtrackProb"`
		KeywordPermProb        float64 `yaml:"keywordPermProb"`
		SlipProb               float64 `yaml:"slipProb"`
		OptimalCycleword       bool    `yaml:"optimalCycleword"`
		FrequencyWeightedSwaps bool    `yaml:"frequencyWeightedSwaps"`
		Seed                   string  `yaml:"seed"`
	} `yaml:"search"`

	// Fitness weights
	Weights struct {
		Ngram   float64 `yaml:"ngram"`
		Crib    float64 `yaml:"crib"`
		IoC     float64 `yaml:"ioc"`
		Entropy float64 `yaml:"entropy"`
	} `yaml:"weights"`

	// Period estimation
	Period struct {
		SigmaThreshold  float64 `yaml:"sigmaThreshold"`
		IoCThreshold    float64 `yaml:"iocThreshold"`
		MaxCyclewordLen int     `yaml:"maxCyclewordLen"`
	} `yaml:"period"`

	// Keyword prefix lengths
	Keyword struct {
		DefaultLen int `yaml:"defaultLen"`
		MaxLen     int `yaml:"maxLen"`
	} `yaml:"keyword"`

	// Dictionary used for the word-count report
	Dictionary struct {
		Path string `yaml:"path"`
	} `yaml:"dictionary"`
}

// LoadConfig loads the configuration from the specified file, creating a
// default one when the file does not exist.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		configPath = filepath.Join(homeDir, ".polysolve", "config.yaml")
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := createDefaultConfig()
		if err := SaveConfig(configPath, config); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified file.
func SaveConfig(configPath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// createDefaultConfig creates a default configuration.
func createDefaultConfig() *Config {
	config := &Config{}

	config.Search.HillClimbs = 1000
	config.Search.Restarts = 1
	config.Search.BacktrackProb = 0.15
	config.Search.KeywordPermProb = 0.95
	config.Search.SlipProb = 0.01
	config.Search.OptimalCycleword = true
	config.Search.FrequencyWeightedSwaps = false
	config.Search.Seed = ""

	config.Weights.Ngram = 12
	config.Weights.Crib = 36
	config.Weights.IoC = 0
	config.Weights.Entropy = 0

	config.Period.SigmaThreshold = 1.0
	config.Period.IoCThreshold = 0.047
	config.Period.MaxCyclewordLen = 20

	config.Keyword.DefaultLen = 5
	config.Keyword.MaxLen = 12

	config.Dictionary.Path = "OxfordEnglishWords.txt"

	return config
}
