package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/slidesmith/slidesmith/config"
	"github.com/slidesmith/slidesmith/pkg/content"

	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse("")
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Address)
	require.Contains(t, cfg.PresetNames(), "Rugs USA")
}

func TestPresetGenerator(t *testing.T) {
	cfg, err := config.Parse("")
	require.NoError(t, err)

	g, err := cfg.Generator("", "")
	require.NoError(t, err)

	record, err := g.Generate(context.Background(), "Rugs USA")
	require.NoError(t, err)
	require.Contains(t, record.CorporateVision, "Rugs USA helps customers turn houses into homes")
	require.Contains(t, record.BusinessStrategies[0], "house of brands")

	record, err = g.Generate(context.Background(), "Acme Co")
	require.NoError(t, err)
	require.Contains(t, record.CorporateVision, "Acme Co delivers curated, great-value products")

	// "preset" and the empty selector resolve to the same strategy
	g, err = cfg.Generator("preset", "")
	require.NoError(t, err)

	again, err := g.Generate(context.Background(), "Acme Co")
	require.NoError(t, err)
	require.Equal(t, record, again)
}

func TestGeneratorUnknown(t *testing.T) {
	cfg, err := config.Parse("")
	require.NoError(t, err)

	_, err = cfg.Generator("llama", "")
	require.ErrorIs(t, err, content.ErrUnknownGenerator)
}

func TestGeneratorMissingCredential(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg, err := config.Parse("")
	require.NoError(t, err)

	_, err = cfg.Generator("openai", "")
	require.ErrorIs(t, err, content.ErrMissingCredential)

	_, err = cfg.Generator("anthropic", "")
	require.ErrorIs(t, err, content.ErrMissingCredential)

	// a request-scoped token is enough on its own
	_, err = cfg.Generator("openai", "sk-request")
	require.NoError(t, err)

	_, err = cfg.Generator("anthropic", "sk-ant-request")
	require.NoError(t, err)
}

func TestGeneratorEnvCredential(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")

	cfg, err := config.Parse("")
	require.NoError(t, err)

	_, err = cfg.Generator("openai", "")
	require.NoError(t, err)
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	return path
}

func TestParseFile(t *testing.T) {
	t.Setenv("TEST_TOKEN", "sk-from-env")

	path := writeFile(t, "config.yaml", `
address: ":9090"

generators:
  local:
    type: openai
    url: http://localhost:11434/v1
    model: llama-3.3
    token: ${TEST_TOKEN}
    limit: 2
`)

	cfg, err := config.Parse(path)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Address)

	_, err = cfg.Generator("local", "")
	require.NoError(t, err)
}

func TestParseFileUnknownField(t *testing.T) {
	path := writeFile(t, "config.yaml", "listen: :9090\n")

	_, err := config.Parse(path)
	require.Error(t, err)
}

func TestParseFileInvalidGeneratorType(t *testing.T) {
	path := writeFile(t, "config.yaml", `
generators:
  local:
    type: bedrock
`)

	_, err := config.Parse(path)
	require.Error(t, err)
}

func TestParseFileMissing(t *testing.T) {
	_, err := config.Parse(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestParseExternalPresets(t *testing.T) {
	presets := writeFile(t, "presets.yaml", `
presets:
  Initech:
    corporate_vision: "Initech ships TPS reports on time."
    business_strategies: ["a"]
    supply_chain_contribution: ["b"]
    risks_of_supply_chain_failure: ["c"]
    critical_capabilities: ["d"]

fallback:
  corporate_vision: "%s ships things."
  business_strategies: ["a"]
  supply_chain_contribution: ["b"]
  risks_of_supply_chain_failure: ["c"]
  critical_capabilities: ["d"]
`)

	path := writeFile(t, "config.yaml", "presets: "+presets+"\n")

	cfg, err := config.Parse(path)
	require.NoError(t, err)

	require.Equal(t, []string{"Initech"}, cfg.PresetNames())

	g, err := cfg.Generator("preset", "")
	require.NoError(t, err)

	record, err := g.Generate(context.Background(), "Initech")
	require.NoError(t, err)
	require.Equal(t, "Initech ships TPS reports on time.", record.CorporateVision)
}
