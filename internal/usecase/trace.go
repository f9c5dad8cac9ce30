package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	usecaseTracer   = otel.Tracer("cricket-scoring/internal/usecase")
	usecaseNoopSpan = trace.SpanFromContext(context.Background())
)

const (
	attrMatchID      attribute.Key = "cricket.match_id"
	attrTournamentID attribute.Key = "cricket.tournament_id"
)

// startUsecaseSpan opens a child span only when the caller is already traced.
// Empty attribute values are dropped.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	kept := make([]attribute.KeyValue, 0, len(attrs))
	for _, kv := range attrs {
		if kv.Value.Type() == attribute.STRING && kv.Value.AsString() == "" {
			continue
		}
		kept = append(kept, kv)
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(kept...))
}

func matchAttr(matchID string) attribute.KeyValue {
	return attrMatchID.String(strings.TrimSpace(matchID))
}

func tournamentAttr(tournamentID string) attribute.KeyValue {
	return attrTournamentID.String(strings.TrimSpace(tournamentID))
}
