package config

import (
	"bytes"
	_ "embed"
	"os"
	"sort"

	"github.com/slidesmith/slidesmith/pkg/content"
	"github.com/slidesmith/slidesmith/pkg/content/preset"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var defaultPresets []byte

type presetEntry struct {
	generator *preset.Generator
}

type presetFile struct {
	Presets map[string]content.Record `yaml:"presets"`

	Fallback content.Record `yaml:"fallback"`
}

func (cfg *Config) registerPresets(f *configFile) error {
	data := defaultPresets

	if f.Presets != "" {
		val, err := os.ReadFile(f.Presets)

		if err != nil {
			return err
		}

		data = []byte(os.ExpandEnv(string(val)))
	}

	var file presetFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&file); err != nil {
		return err
	}

	generator, err := preset.New(file.Presets, file.Fallback)

	if err != nil {
		return err
	}

	names := generator.Customers()
	sort.Strings(names)

	cfg.preset = presetEntry{generator: generator}
	cfg.presetNames = names

	return nil
}

// PresetNames lists the customers with hand-authored records.
func (cfg *Config) PresetNames() []string {
	return cfg.presetNames
}
