package trace

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"deptdash/internal/config"
)

func TestNewProvider_NoEndpointDoesNotExport(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	p, err := NewProvider(context.Background(), config.TraceConfig{}, sdktrace.WithSpanProcessor(rec))
	require.NoError(t, err)
	defer p.Shutdown(context.Background())

	assert.False(t, p.Exporting())

	_, span := otel.Tracer("test").Start(context.Background(), "department.list")
	span.End()

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "department.list", spans[0].Name())

	var service string
	for _, kv := range spans[0].Resource().Attributes() {
		if kv.Key == "service.name" {
			service = kv.Value.AsString()
		}
	}
	assert.Equal(t, DefaultServiceName, service)
}

func TestProvider_NilIsSafe(t *testing.T) {
	var p *Provider
	assert.False(t, p.Exporting())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_EndpointForms(t *testing.T) {
	for _, endpoint := range []string{"http://localhost:4318", "https://collector.example.com:4318/", "localhost:4318"} {
		t.Run(endpoint, func(t *testing.T) {
			p, err := NewProvider(context.Background(), config.TraceConfig{Endpoint: endpoint})
			require.NoError(t, err)
			assert.True(t, p.Exporting())

			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()
			_ = p.Shutdown(ctx)
		})
	}
}

func TestEndpointOptions(t *testing.T) {
	assert.Len(t, endpointOptions("http://localhost:4318"), 1)
	assert.Len(t, endpointOptions("localhost:4318"), 2)
}
