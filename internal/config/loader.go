package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads a configuration file, choosing the parser by extension.
// A missing file is not an error: the built-in defaults are returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadTOML(data)
	case ".yaml", ".yml":
		return LoadYAML(data)
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadTOML parses TOML configuration data.
func LoadTOML(data []byte) (Config, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("config: parsing toml: %w", err)
	}
	return f.Resolve()
}

// LoadYAML parses YAML configuration data.
func LoadYAML(data []byte) (Config, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("config: parsing yaml: %w", err)
	}
	return f.Resolve()
}
