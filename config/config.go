package config

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	generators map[string]generatorEntry

	preset      presetEntry
	presetNames []string
}

// Parse loads the configuration file, expanding ${VAR} references from the
// environment before decoding. An empty path yields the built-in defaults.
func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8080",
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if err := c.registerGenerators(file); err != nil {
		return nil, err
	}

	if err := c.registerPresets(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`

	Generators map[string]generatorConfig `yaml:"generators"`

	Presets string `yaml:"presets"`
}

func parseFile(path string) (*configFile, error) {
	if path == "" {
		return &configFile{}, nil
	}

	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
