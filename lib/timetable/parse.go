package timetable

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"abfuhrkalender/lib/timezone"
)

var (
	ErrDateNotFound     = errors.New("no pickup date in notice")
	ErrCategoryNotFound = errors.New("no waste category in notice")
)

var dateRegex = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}`)
var categoryRegex = regexp.MustCompile(categoryPattern())
var districtRegex = regexp.MustCompile(`Abfuhr(?:bereich|gebiet) (.+?):`)

const districtMarker = "Abfuhr"

func categoryPattern() string {
	labels := make([]string, len(Categories))
	for i, c := range Categories {
		labels[i] = regexp.QuoteMeta(string(c))
	}
	return "(" + strings.Join(labels, "|") + ")"
}

// ParseDate reads the first DD.MM.YYYY date in `text`.
func ParseDate(text string) (time.Time, error) {
	match := dateRegex.FindString(text)
	if match == "" {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateNotFound, text)
	}
	date, err := time.Parse("02.01.2006", match)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a calendar date", ErrDateNotFound, match)
	}
	return timezone.Date(date.Year(), date.Month(), date.Day()), nil
}

// ParseCategory returns the leftmost waste category label in `text`.
func ParseCategory(text string) (Category, error) {
	match := categoryRegex.FindString(text)
	if match == "" {
		return "", fmt.Errorf("%w: %q", ErrCategoryNotFound, text)
	}
	return Category(match), nil
}

// ParseDistrict returns the name in "Abfuhrbereich <name>:" or
// "Abfuhrgebiet <name>:", false if the notice names no district.
func ParseDistrict(text string) (string, bool) {
	if !strings.Contains(text, districtMarker) {
		return "", false
	}
	groups := districtRegex.FindStringSubmatch(text)
	if len(groups) < 2 {
		return "", false
	}
	district := strings.TrimSpace(groups[1])
	return district, district != ""
}

// ParseNotice extracts date, category and district of a single notice.
// Date and category are both attempted, a notice missing both reports both.
func ParseNotice(text string) (PickupEvent, error) {
	date, dateErr := ParseDate(text)
	category, categoryErr := ParseCategory(text)
	if err := errors.Join(dateErr, categoryErr); err != nil {
		return PickupEvent{}, err
	}

	event := PickupEvent{
		Date:     date,
		Category: category,
	}
	if district, ok := ParseDistrict(text); ok {
		event.District = &district
	}
	return event, nil
}

// ParseNotices turns every notice of one municipality into a pickup event.
// A single unparsable notice fails the whole schedule, a partial calendar
// would silently miss pickups.
func ParseNotices(notices []string) (Schedule, error) {
	schedule := make(Schedule, 0, len(notices))
	var errs []error
	for i, notice := range notices {
		event, err := ParseNotice(notice)
		if err != nil {
			errs = append(errs, fmt.Errorf("notice %d: %w", i, err))
			continue
		}
		schedule = append(schedule, event)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	NormalizeDistricts(schedule)
	return schedule, nil
}

// NormalizeDistricts assigns DefaultDistrict to every event if not a single
// event of the schedule names a district. Schedules with at least one
// district keep their district-less events as they are.
func NormalizeDistricts(schedule Schedule) {
	for _, event := range schedule {
		if event.District != nil {
			return
		}
	}
	for i := range schedule {
		district := DefaultDistrict
		schedule[i].District = &district
	}
}
