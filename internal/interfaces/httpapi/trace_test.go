package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSpanFilters(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{name: "handler span", got: isHandlerSpan("httpapi.Handler.AppendBall"), want: true},
		{name: "middleware span", got: isHandlerSpan("httpapi.RequestLogging"), want: false},
		{name: "helper span", got: isHandlerSpan("httpapi.writeError"), want: false},
		{name: "healthz untraced", got: shouldTraceRequest("/healthz"), want: false},
		{name: "readyz padded untraced", got: shouldTraceRequest(" /READYZ "), want: false},
		{name: "ball ledger traced", got: shouldTraceRequest("/v1/matches/m-1/balls"), want: true},
		{name: "points table traced", got: shouldTraceRequest("/v1/tournaments/t-1/points-table"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %v want %v", tt.got, tt.want)
			}
		})
	}
}

func TestStartSpan_NoParentIsNoop(t *testing.T) {
	ctx, span := startSpan(context.Background(), "httpapi.Handler.GetMatch")
	if span.SpanContext().IsValid() {
		t.Fatalf("expected noop span without a traced parent")
	}
	if ctx != context.Background() {
		t.Fatalf("expected context to be returned unchanged")
	}
}

func TestStartHandlerSpan_TagsRouteIDs(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/tournaments/{tournamentID}/groups/{groupID}/teams", func(w http.ResponseWriter, r *http.Request) {
		_, span := startHandlerSpan(r, "httpapi.Handler.AssignTeamToGroup")
		span.End()
		w.WriteHeader(http.StatusNoContent)
	})

	parentCtx, parent := provider.Tracer("test").Start(context.Background(), "request")
	req := httptest.NewRequest(http.MethodPost, "/v1/tournaments/t-9/groups/g-2/teams", nil).WithContext(parentCtx)
	mux.ServeHTTP(httptest.NewRecorder(), req)
	parent.End()

	var handler sdktrace.ReadOnlySpan
	for _, s := range recorder.Ended() {
		if s.Name() == "httpapi.Handler.AssignTeamToGroup" {
			handler = s
		}
	}
	if handler == nil {
		t.Fatalf("handler span not recorded")
	}

	got := map[attribute.Key]string{}
	for _, kv := range handler.Attributes() {
		got[kv.Key] = kv.Value.AsString()
	}
	if got["cricket.tournament_id"] != "t-9" || got["cricket.group_id"] != "g-2" {
		t.Fatalf("unexpected attributes: %v", got)
	}
	if _, ok := got["cricket.match_id"]; ok {
		t.Fatalf("match id should be absent on group routes: %v", got)
	}
}
