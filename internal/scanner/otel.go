package scanner

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/gridscout/scanner/internal/scanner"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
