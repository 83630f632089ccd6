package calendars

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"abfuhrkalender/lib/calendar"
	"abfuhrkalender/lib/scrapers/umweltverband"
	"abfuhrkalender/lib/textutil"
	"abfuhrkalender/lib/timetable"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

type Service struct {
	Client    umweltverband.Client
	Emitter   calendar.Emitter
	Year      int
	OutputDir string
	// continue with the next municipality after a failure instead of
	// aborting, all failures are returned joined once the run is over
	KeepGoing bool
	// restricts the run to municipalities matching one of these names,
	// empty means all of them
	Cities []string
}

// Run writes the calendars of every municipality in the directory and
// returns the paths of the files written.
func (s Service) Run(ctx context.Context) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	cities, err := s.Client.Cities(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch municipality directory")
		return nil, err
	}
	cities = s.filter(cities)
	slog.InfoContext(ctx, "fetched municipality directory", "count", len(cities), "year", s.Year)

	var paths []string
	var errlist []error
	for _, city := range cities {
		written, err := s.Municipality(ctx, city)
		paths = append(paths, written...)
		if err == nil {
			continue
		}

		err = fmt.Errorf("%s (%d): %w", city.Name, city.Id, err)
		if !s.KeepGoing {
			span.RecordError(err)
			span.SetStatus(codes.Error, "municipality failed")
			return paths, err
		}
		slog.WarnContext(ctx, "skipping municipality", "name", city.Name, "err", err)
		errlist = append(errlist, err)
	}

	err = errors.Join(errlist...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "some municipalities failed")
	}
	return paths, err
}

// Municipality fetches, parses and emits the calendars of a single
// municipality.
func (s Service) Municipality(ctx context.Context, city umweltverband.Municipality) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Municipality")
	defer span.End()
	span.SetAttributes(
		attribute.Int("municipality.id", city.Id),
		attribute.String("municipality.name", city.Name),
	)

	slog.InfoContext(ctx, "processing municipality", "name", city.Name, "id", city.Id)

	notices, err := s.Client.RawNotices(ctx, city.Id, s.Year)
	if err != nil {
		return nil, err
	}
	schedule, err := timetable.ParseNotices(notices)
	if err != nil {
		return nil, err
	}
	paths, err := s.Emitter.Emit(ctx, city, schedule, s.OutputDir)
	if err != nil {
		return paths, err
	}

	attrs := metric.WithAttributes(attribute.String("municipality.name", city.Name))
	municipalityCounter.Add(ctx, 1, attrs)
	noticeCounter.Add(ctx, int64(len(notices)), attrs)
	fileCounter.Add(ctx, int64(len(paths)), attrs)

	if len(notices) == 0 {
		slog.WarnContext(ctx, "no pickup dates published", "name", city.Name, "year", s.Year)
	}
	return paths, nil
}

func (s Service) filter(cities []umweltverband.Municipality) []umweltverband.Municipality {
	if len(s.Cities) == 0 {
		return cities
	}
	var out []umweltverband.Municipality
	for _, city := range cities {
		if textutil.MatchName(city.Name, s.Cities) {
			out = append(out, city)
		}
	}
	return out
}
