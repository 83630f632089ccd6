package calendars

import (
	"abfuhrkalender/lib/telemetry"

	"go.opentelemetry.io/otel/metric"
)

var tracer = telemetry.Tracer("services/calendars")
var meter = telemetry.Meter("services/calendars")

var municipalityCounter, _ = meter.Int64Counter(
	"calendars.municipalities",
	metric.WithDescription("Municipalities whose schedule was processed."),
)
var noticeCounter, _ = meter.Int64Counter(
	"calendars.notices",
	metric.WithDescription("Raw notices parsed into pickup events."),
)
var fileCounter, _ = meter.Int64Counter(
	"calendars.files",
	metric.WithDescription("Calendar files written."),
)
