package fetcher

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/InQaaaaGit/todo_fetch.git/internal/buildinfo"
)

var (
	meter = otel.Meter("github.com/InQaaaaGit/todo_fetch.git/internal/fetcher",
		metric.WithInstrumentationVersion(buildinfo.Version))

	// requestsCounter считает исходящие запросы по исходу: response или error.
	requestsCounter, _ = meter.Int64Counter("todo_fetch.requests")
)

var (
	outcomeResponse = metric.WithAttributes(attribute.String("outcome", "response"))
	outcomeError    = metric.WithAttributes(attribute.String("outcome", "error"))
)
