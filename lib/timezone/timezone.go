package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Europe/Vienna")
	if err != nil {
		panic(err)
	}
}

// the portal publishes dates for lower austria, "this year" has to be
// decided in vienna time or a run around new year's eve targets the
// wrong schedule.
func Now() time.Time {
	return time.Now().In(Location)
}

// CurrentYear is the calendar year in Europe/Vienna.
func CurrentYear() int {
	return Now().Year()
}

// Date returns midnight UTC of the given day. Pickup dates carry no time
// of day and are kept in UTC so that formatting never shifts the day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
