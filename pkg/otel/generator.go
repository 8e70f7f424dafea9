package otel

import (
	"context"
	"time"

	"github.com/slidesmith/slidesmith/pkg/content"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Generator interface {
	Observable
	content.Generator
}

type observableGenerator struct {
	name  string
	model string

	generator content.Generator

	generations metric.Int64Counter
	duration    metric.Float64Histogram
}

// NewGenerator wraps a content strategy with a span per generation and
// counters by generator and outcome.
func NewGenerator(name, model string, g content.Generator) Generator {
	meter := otel.Meter(instrumentationName)

	generations, _ := meter.Int64Counter("slidesmith.generations")
	duration, _ := meter.Float64Histogram("slidesmith.generation.duration", metric.WithUnit("s"))

	return &observableGenerator{
		name:  name,
		model: model,

		generator: g,

		generations: generations,
		duration:    duration,
	}
}

func (p *observableGenerator) otelSetup() {
}

func (p *observableGenerator) Generate(ctx context.Context, customer string) (*content.Record, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "generate "+p.name)
	defer span.End()

	timestamp := time.Now()

	record, err := p.generator.Generate(ctx, customer)

	outcome := "ok"

	if err != nil {
		outcome = "error"
		span.RecordError(err)
	}

	attrs := []attribute.KeyValue{
		attribute.String("generator", p.name),
		attribute.String("outcome", outcome),
	}

	if p.model != "" {
		attrs = append(attrs, attribute.String("model", p.model))
	}

	p.generations.Add(ctx, 1, metric.WithAttributes(attrs...))
	p.duration.Record(ctx, time.Since(timestamp).Seconds(), metric.WithAttributes(attrs...))

	return record, err
}
