package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// candidateFileNames is searched, in order, when no explicit path is
// given.
var candidateFileNames = []string{"config.yaml", "config.yml"}

// Load reads and validates the configuration. If path is empty, it
// searches the working directory for config.yaml then config.yml.
func Load(path string) (*Config, error) {
	data, resolvedPath, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}

	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, newError("failed to parse "+resolvedPath, err)
	}

	cfg := raw.resolve()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfigFile(path string) (data []byte, resolvedPath string, err error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, path, newError("failed to read config file "+path, err)
		}
		return data, path, nil
	}

	for _, candidate := range candidateFileNames {
		data, err := os.ReadFile(candidate)
		if err == nil {
			return data, candidate, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, candidate, newError("failed to read config file "+candidate, err)
		}
	}

	return nil, "", ErrNoConfigFile
}
