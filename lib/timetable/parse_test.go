package timetable

import (
	"errors"
	"testing"
	"time"

	"abfuhrkalender/lib/timezone"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func district(name string) *string {
	return &name
}

func TestParseDate(t *testing.T) {
	testCases := []struct {
		text     string
		expected time.Time
	}{
		{text: "15.03.2021 Biotonne", expected: timezone.Date(2021, time.March, 15)},
		{text: "Mo, 04.01.2021: Restmüll", expected: timezone.Date(2021, time.January, 4)},
		{text: "Altpapier am 31.12.2021 und 07.01.2022", expected: timezone.Date(2021, time.December, 31)},
		{text: "29.02.2024 Gelber Sack", expected: timezone.Date(2024, time.February, 29)},
	}

	for _, test := range testCases {
		date, err := ParseDate(test.text)
		require.NoError(t, err, test.text)
		require.Equal(t, test.expected, date, test.text)
	}
}

func TestParseDateNotFound(t *testing.T) {
	testCases := []string{
		"Biotonne",
		"15.3.2021 Biotonne",
		"15-03-2021 Biotonne",
		"31.02.2021 Biotonne",
		"",
	}
	for _, text := range testCases {
		_, err := ParseDate(text)
		require.ErrorIs(t, err, ErrDateNotFound, text)
	}
}

func TestParseCategory(t *testing.T) {
	testCases := []struct {
		text     string
		expected Category
	}{
		{text: "15.03.2021 Biotonne", expected: Biotonne},
		{text: "15.03.2021 Restmüll", expected: Restmuell},
		{text: "15.03.2021 Altpapier Abfuhrbereich Nord:", expected: Altpapier},
		{text: "15.03.2021 Gelber Sack", expected: GelberSack},
		{text: "Gelber Sack statt Altpapier 15.03.2021", expected: GelberSack},
	}
	for _, test := range testCases {
		category, err := ParseCategory(test.text)
		require.NoError(t, err, test.text)
		require.Equal(t, test.expected, category, test.text)
	}

	for _, text := range []string{"15.03.2021 Sperrmüll", "15.03.2021 Restmuell", "gelber sack"} {
		_, err := ParseCategory(text)
		require.ErrorIs(t, err, ErrCategoryNotFound, text)
	}
}

func TestParseDistrict(t *testing.T) {
	testCases := []struct {
		text     string
		expected string
		ok       bool
	}{
		{text: "22.03.2021 Altpapier Abfuhrbereich Nord:", expected: "Nord", ok: true},
		{text: "22.03.2021 Biotonne Abfuhrgebiet 2: Ortsteil Leesdorf", expected: "2", ok: true},
		{text: "Abfuhrbereich Baden Süd: Restmüll 22.03.2021", expected: "Baden Süd", ok: true},
		{text: "22.03.2021 Biotonne", ok: false},
		{text: "22.03.2021 Abfuhrtermin verschoben", ok: false},
		{text: "22.03.2021 Abfuhrbereich : Biotonne", ok: false},
	}
	for _, test := range testCases {
		name, ok := ParseDistrict(test.text)
		require.Equal(t, test.ok, ok, test.text)
		require.Equal(t, test.expected, name, test.text)
	}
}

func TestParseNoticesSingleEvent(t *testing.T) {
	for _, category := range Categories {
		text := "05.07.2021 " + string(category)
		schedule, err := ParseNotices([]string{text})
		require.NoError(t, err)
		require.Len(t, schedule, 1)
		require.Equal(t, timezone.Date(2021, time.July, 5), schedule[0].Date)
		require.Equal(t, category, schedule[0].Category)
	}
}

func TestParseNoticesSingleDistrict(t *testing.T) {
	schedule, err := ParseNotices([]string{
		"15.03.2021 Biotonne",
		"16.03.2021 Restmüll",
		"22.03.2021 Gelber Sack",
	})
	require.NoError(t, err)
	require.Len(t, schedule, 3)
	for _, event := range schedule {
		require.NotNil(t, event.District)
		require.Equal(t, DefaultDistrict, *event.District)
	}
}

func TestParseNoticesKeepsMissingDistricts(t *testing.T) {
	schedule, err := ParseNotices([]string{
		"15.03.2021 Biotonne",
		"22.03.2021 Altpapier Abfuhrbereich Nord:",
	})
	require.NoError(t, err)

	expected := Schedule{
		{Date: timezone.Date(2021, time.March, 15), Category: Biotonne},
		{Date: timezone.Date(2021, time.March, 22), Category: Altpapier, District: district("Nord")},
	}
	if diff := cmp.Diff(expected, schedule); diff != "" {
		t.Fatal(diff)
	}
}

func TestParseNoticesFails(t *testing.T) {
	_, err := ParseNotices([]string{
		"15.03.2021 Biotonne",
		"Restmüll",
	})
	require.ErrorIs(t, err, ErrDateNotFound)
	require.False(t, errors.Is(err, ErrCategoryNotFound))

	_, err = ParseNotices([]string{"15.03.2021 Sperrmüll"})
	require.ErrorIs(t, err, ErrCategoryNotFound)

	// both extractions are attempted even though the first one failed
	_, err = ParseNotices([]string{"keine Angaben"})
	require.ErrorIs(t, err, ErrDateNotFound)
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestParseNoticesEmpty(t *testing.T) {
	schedule, err := ParseNotices(nil)
	require.NoError(t, err)
	require.Empty(t, schedule)
}

func TestPickupEventInDistrict(t *testing.T) {
	shared := PickupEvent{Category: Biotonne}
	north := PickupEvent{Category: Altpapier, District: district("Nord")}

	require.True(t, shared.InDistrict("Nord"))
	require.True(t, shared.InDistrict("Süd"))
	require.True(t, north.InDistrict("Nord"))
	require.False(t, north.InDistrict("Süd"))
	require.Equal(t, "Nord", north.DistrictOr("-"))
	require.Equal(t, "-", shared.DistrictOr("-"))
}
