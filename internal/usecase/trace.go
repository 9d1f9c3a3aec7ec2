package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("fantasy-fitness/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

// startUsecaseSpan opens a child span only when the request is already traced.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func competitionAttr(id int64) attribute.KeyValue {
	return attribute.Int64("fantasy.competition_id", id)
}

func tournamentAttr(id int64) attribute.KeyValue {
	return attribute.Int64("fantasy.tournament_id", id)
}

func entryAttr(id int64) attribute.KeyValue {
	return attribute.Int64("fantasy.entry_id", id)
}

func ordinalAttr(ordinal int) attribute.KeyValue {
	return attribute.Int("fantasy.workout_ordinal", ordinal)
}
