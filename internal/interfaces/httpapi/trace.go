package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	apiTracer = otel.Tracer("cricket-scoring/internal/interfaces/httpapi")
	noopSpan  = trace.SpanFromContext(context.Background())
)

// routeSpanAttributes maps path wildcards to the span attributes they are
// recorded under.
var routeSpanAttributes = [...]struct {
	param string
	key   attribute.Key
}{
	{param: "matchID", key: "cricket.match_id"},
	{param: "tournamentID", key: "cricket.tournament_id"},
	{param: "groupID", key: "cricket.group_id"},
}

// startSpan opens a child span for handler entry points only. Helpers and
// middleware reuse the parent so traces stay one level deep per request.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !isHandlerSpan(name) {
		return ctx, noopSpan
	}
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

// startHandlerSpan is startSpan for a routed request, tagged with the match,
// tournament and group ids found in the path.
func startHandlerSpan(r *http.Request, name string) (context.Context, trace.Span) {
	ctx, span := startSpan(r.Context(), name)
	if !span.IsRecording() {
		return ctx, span
	}
	attrs := make([]attribute.KeyValue, 0, len(routeSpanAttributes))
	for _, ra := range routeSpanAttributes {
		if v := strings.TrimSpace(r.PathValue(ra.param)); v != "" {
			attrs = append(attrs, ra.key.String(v))
		}
	}
	span.SetAttributes(attrs...)
	return ctx, span
}

func isHandlerSpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}
