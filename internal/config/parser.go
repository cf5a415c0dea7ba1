package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	swatchyerrors "github.com/alexisbeaulieu97/swatchy/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DefaultPath returns the per-user configuration location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".swatchy", "config.yaml"), nil
}

// ParseConfig loads a configuration file from disk, applies defaults for
// omitted keys, validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, swatchyerrors.NewParseError(path, 0, err)
	}

	return parseBytes(path, data)
}

// Load parses path when it exists and falls back to Default otherwise.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, swatchyerrors.NewParseError(path, 0, err)
	}

	return parseBytes(path, data)
}

func parseBytes(path string, data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, swatchyerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
