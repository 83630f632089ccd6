package umweltverband

import "abfuhrkalender/lib/telemetry"

var tracer = telemetry.Tracer("abfuhrkalender.lib.scrapers.umweltverband")
