// Package preset serves hand-authored records without any network I/O. Known
// customers get their stored record verbatim; everyone else gets the generic
// template with the customer name spliced into the vision sentence.
package preset

import (
	"context"
	"fmt"
	"strings"

	"github.com/slidesmith/slidesmith/pkg/content"
)

var _ content.Generator = (*Generator)(nil)

type Generator struct {
	presets  map[string]content.Record
	fallback content.Record
}

// New builds a generator over a read-only preset table and a fallback
// template whose corporate_vision must contain a single %s placeholder.
func New(presets map[string]content.Record, fallback content.Record) (*Generator, error) {
	if !strings.Contains(fallback.CorporateVision, "%s") {
		return nil, fmt.Errorf("fallback corporate_vision has no customer placeholder")
	}

	if err := fallback.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fallback template: %w", err)
	}

	return &Generator{
		presets:  presets,
		fallback: fallback,
	}, nil
}

func (g *Generator) Generate(ctx context.Context, customer string) (*content.Record, error) {
	if record, ok := g.presets[customer]; ok {
		return record.Clone(), nil
	}

	record := g.fallback.Clone()
	record.CorporateVision = fmt.Sprintf(g.fallback.CorporateVision, customer)

	return record, nil
}

// Customers lists the names with stored presets.
func (g *Generator) Customers() []string {
	names := make([]string, 0, len(g.presets))

	for name := range g.presets {
		names = append(names, name)
	}

	return names
}
