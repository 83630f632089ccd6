package timetable

import (
	"time"
)

type Category string

const (
	Biotonne   Category = "Biotonne"
	Restmuell  Category = "Restmüll"
	Altpapier  Category = "Altpapier"
	GelberSack Category = "Gelber Sack"
)

// Categories is every waste category the portal labels notices with.
var Categories = []Category{
	Biotonne,
	Restmuell,
	Altpapier,
	GelberSack,
}

func (c Category) String() string {
	return string(c)
}

// DefaultDistrict is assigned to every event of a municipality that has a
// single, undivided collection area.
const DefaultDistrict = "1"

type PickupEvent struct {
	// midnight UTC of the pickup day
	Date     time.Time
	Category Category
	// nil if the notice names no district
	District *string
}

// InDistrict reports whether the event belongs to the calendar of
// `district`, events without a district belong to every calendar.
func (e PickupEvent) InDistrict(district string) bool {
	return e.District == nil || *e.District == district
}

func (e PickupEvent) DistrictOr(fallback string) string {
	if e.District == nil {
		return fallback
	}
	return *e.District
}

// Schedule is every pickup event of one municipality in notice order.
type Schedule []PickupEvent
