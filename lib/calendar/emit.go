package calendar

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"abfuhrkalender/lib/scrapers/umweltverband"
	"abfuhrkalender/lib/telemetry"
	"abfuhrkalender/lib/textutil"
	"abfuhrkalender/lib/timetable"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("abfuhrkalender.lib.calendar")

var ErrFileWriteFailure = errors.New("failed to write calendar file")

const (
	DefaultProductId = "-//GVA Baden//"
	Extension        = ".ics"
	FilePermissions  = 0644
)

// event uids are name based uuids in this namespace, a re-run produces the
// same uid for the same pickup so subscribed calendars update in place.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte(umweltverband.DefaultBaseUrl))

type Emitter struct {
	ProductId string
}

func NewEmitter(productId string) Emitter {
	if productId == "" {
		productId = DefaultProductId
	}
	return Emitter{ProductId: productId}
}

// FileName is "<slug(municipality)>_<slug(district)>.ics".
func FileName(municipality, district string) string {
	return textutil.Slug(municipality) + "_" + textutil.Slug(district) + Extension
}

func eventUid(municipality umweltverband.Municipality, district string, event timetable.PickupEvent) string {
	name := fmt.Sprintf(
		"%d/%s/%s/%s",
		municipality.Id, district, event.Date.Format("2006-01-02"), event.Category,
	)
	return uuid.NewSHA1(uidNamespace, []byte(name)).String()
}

// the generation time would make every run produce a different file, the
// stamp is pinned to the start of the pickup's year instead
func eventStamp(event timetable.PickupEvent) time.Time {
	return time.Date(event.Date.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

func sortEvents(events []timetable.PickupEvent) []timetable.PickupEvent {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b timetable.PickupEvent) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return sorted
}

// Serialize renders a district group as an iCalendar document with one
// all-day event per pickup.
func (e Emitter) Serialize(municipality umweltverband.Municipality, group DistrictGroup) string {
	cal := ics.NewCalendarFor("GVA Baden")
	cal.SetProductId(e.ProductId)
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName(fmt.Sprintf("Abfuhrkalender %s %s", municipality.Name, group.District))

	for _, pickup := range sortEvents(group.Events) {
		event := cal.AddEvent(eventUid(municipality, group.District, pickup))
		event.SetDtStampTime(eventStamp(pickup))
		event.SetAllDayStartAt(pickup.Date)
		event.SetSummary(pickup.Category.String())
	}

	return cal.Serialize()
}

// Emit writes one calendar file per district of the schedule into
// `outputDir` and returns their paths. Existing files are overwritten.
func (e Emitter) Emit(ctx context.Context, municipality umweltverband.Municipality, schedule timetable.Schedule, outputDir string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Emitter:Emit")
	defer span.End()
	span.SetAttributes(
		attribute.String("municipality", municipality.Name),
		attribute.Int("events", len(schedule)),
	)

	err := os.MkdirAll(outputDir, 0755)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create output directory")
		return nil, fmt.Errorf("%w: %w", ErrFileWriteFailure, err)
	}

	var written []string
	for _, group := range Groups(schedule) {
		path := filepath.Join(outputDir, FileName(municipality.Name, group.District))
		err := os.WriteFile(path, []byte(e.Serialize(municipality, group)), FilePermissions)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to write calendar")
			return written, fmt.Errorf("%w: %w", ErrFileWriteFailure, err)
		}

		slog.DebugContext(
			ctx, "wrote calendar",
			"path", path,
			"district", group.District,
			"events", len(group.Events),
		)
		written = append(written, path)
	}

	return written, nil
}
