package config

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/slidesmith/slidesmith/pkg/content"
	"github.com/slidesmith/slidesmith/pkg/content/llm"
	"github.com/slidesmith/slidesmith/pkg/limiter"
	"github.com/slidesmith/slidesmith/pkg/otel"
	"github.com/slidesmith/slidesmith/pkg/provider"
	"github.com/slidesmith/slidesmith/pkg/provider/anthropic"
	"github.com/slidesmith/slidesmith/pkg/provider/openai"

	"golang.org/x/time/rate"
)

// Remote calls share one client with the fixed transport timeout.
var httpClient = &http.Client{
	Timeout: 60 * time.Second,
}

type generatorConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Model string `yaml:"model"`
	Token string `yaml:"token"`

	Limit *int `yaml:"limit"`
}

type generatorEntry struct {
	config generatorConfig

	limiter *rate.Limiter
}

func (cfg *Config) registerGenerators(f *configFile) error {
	generators := map[string]generatorConfig{
		"openai": {
			Type:  "openai",
			Model: "gpt-4o-mini",
			Token: os.Getenv("OPENAI_API_KEY"),
		},

		"anthropic": {
			Type:  "anthropic",
			Model: "claude-3-5-sonnet-20240620",
			Token: os.Getenv("ANTHROPIC_API_KEY"),
		},
	}

	for name, g := range f.Generators {
		if g.Type == "" {
			g.Type = name
		}

		if defaults, ok := generators[g.Type]; ok {
			if g.Model == "" {
				g.Model = defaults.Model
			}

			if g.Token == "" {
				g.Token = defaults.Token
			}
		}

		generators[name] = g
	}

	cfg.generators = map[string]generatorEntry{}

	for name, g := range generators {
		switch g.Type {
		case "openai", "anthropic":
		default:
			return fmt.Errorf("invalid generator type %q for %q", g.Type, name)
		}

		cfg.generators[name] = generatorEntry{
			config: g,

			limiter: createLimiter(g.Limit),
		}
	}

	return nil
}

// Generator resolves a mode selector to a content strategy. A non-empty
// request token overrides the configured one; remote modes without any
// credential fail before a connection is attempted.
func (cfg *Config) Generator(name, token string) (content.Generator, error) {
	if name == "" || name == "preset" {
		return otel.NewGenerator("preset", "", cfg.preset.generator), nil
	}

	entry, ok := cfg.generators[name]

	if !ok {
		return nil, fmt.Errorf("%w: %q", content.ErrUnknownGenerator, name)
	}

	if token == "" {
		token = entry.config.Token
	}

	if token == "" {
		return nil, content.ErrMissingCredential
	}

	var completer provider.Completer

	switch entry.config.Type {
	case "openai":
		c, err := openai.NewCompleter(entry.config.URL, entry.config.Model, openai.WithToken(token), openai.WithClient(httpClient))

		if err != nil {
			return nil, err
		}

		completer = c

	case "anthropic":
		c, err := anthropic.NewCompleter(entry.config.URL, entry.config.Model, anthropic.WithToken(token), anthropic.WithClient(httpClient))

		if err != nil {
			return nil, err
		}

		completer = c
	}

	if entry.limiter != nil {
		completer = limiter.NewCompleter(entry.limiter, completer)
	}

	return otel.NewGenerator(entry.config.Type, entry.config.Model, llm.New(completer)), nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
