package calendar

import (
	"testing"
	"time"

	"abfuhrkalender/lib/timetable"
	"abfuhrkalender/lib/timezone"

	"github.com/stretchr/testify/require"
)

func district(name string) *string {
	return &name
}

func TestDistricts(t *testing.T) {
	schedule := timetable.Schedule{
		{Category: timetable.Biotonne, District: district("Süd")},
		{Category: timetable.Restmuell},
		{Category: timetable.Altpapier, District: district("Nord")},
		{Category: timetable.GelberSack, District: district("Süd")},
	}
	require.Equal(t, []string{"Süd", "Nord"}, Districts(schedule))
	require.Empty(t, Districts(timetable.Schedule{{Category: timetable.Biotonne}}))
}

func TestGroupMergesSharedEvents(t *testing.T) {
	schedule := timetable.Schedule{
		{Date: timezone.Date(2021, time.March, 1), Category: timetable.Biotonne, District: district("North")},
		{Date: timezone.Date(2021, time.March, 8), Category: timetable.Biotonne, District: district("North")},
		{Date: timezone.Date(2021, time.March, 3), Category: timetable.Restmuell},
		{Date: timezone.Date(2021, time.March, 4), Category: timetable.Altpapier, District: district("South")},
	}

	north := Group(schedule, "North")
	require.Equal(t, "North", north.District)
	require.Len(t, north.Events, 3)

	south := Group(schedule, "South")
	require.Len(t, south.Events, 2)

	groups := Groups(schedule)
	require.Len(t, groups, 2)
	require.Equal(t, "North", groups[0].District)
	require.Equal(t, "South", groups[1].District)
}

func TestGroupsEmptySchedule(t *testing.T) {
	require.Empty(t, Groups(nil))
}
