package observability

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestJobSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	obs := New("test-service", WithRegisterer(promclient.NewRegistry()), WithSpanProcessor(recorder))
	defer obs.Shutdown()

	_, ok := obs.StartJobSpan(context.Background(), "score-assessment", 42)
	EndJobSpan(ok, nil)
	_, failed := obs.StartJobSpan(context.Background(), "build-report", 43)
	EndJobSpan(failed, errors.New("boom"))

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "score-assessment", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.Int64("job.key", 42))

	assert.Equal(t, "build-report", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "boom", spans[1].Status().Description)
}

func TestJobMetrics_ExportedToRegistry(t *testing.T) {
	reg := promclient.NewRegistry()
	obs := New("test-service", WithRegisterer(reg))
	defer obs.Shutdown()

	ctx := context.Background()
	obs.RecordJobProcessed(ctx, "score-assessment", StatusCompleted)
	obs.RecordJobDuration(ctx, "score-assessment", 15*time.Millisecond, StatusCompleted)

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	joined := strings.Join(names, ",")
	assert.Contains(t, joined, "jobs_processed")
	assert.Contains(t, joined, "jobs_duration")
	assert.NotContains(t, joined, "jobs.", "scrapers expect underscore-separated names")
}

func TestNoop(t *testing.T) {
	obs := NewNoop()

	ctx, span := obs.StartJobSpan(context.Background(), "build-report", 1)
	assert.NotNil(t, ctx)
	EndJobSpan(span, errors.New("ignored"))

	obs.RecordJobProcessed(ctx, "build-report", StatusFailed)
	obs.RecordJobDuration(ctx, "build-report", time.Second, StatusFailed)
	obs.Shutdown()
}
