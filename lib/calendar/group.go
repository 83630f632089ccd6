package calendar

import (
	"abfuhrkalender/lib/timetable"
)

type DistrictGroup struct {
	District string
	Events   []timetable.PickupEvent
}

// Districts returns the distinct districts named in the schedule in the
// order they first appear.
func Districts(schedule timetable.Schedule) []string {
	seen := map[string]struct{}{}
	var districts []string
	for _, event := range schedule {
		if event.District == nil {
			continue
		}
		if _, ok := seen[*event.District]; ok {
			continue
		}
		seen[*event.District] = struct{}{}
		districts = append(districts, *event.District)
	}
	return districts
}

// Group selects the events of `district` together with every event that
// names no district at all.
func Group(schedule timetable.Schedule, district string) DistrictGroup {
	group := DistrictGroup{District: district}
	for _, event := range schedule {
		if event.InDistrict(district) {
			group.Events = append(group.Events, event)
		}
	}
	return group
}

// Groups partitions the schedule into one group per district.
func Groups(schedule timetable.Schedule) []DistrictGroup {
	districts := Districts(schedule)
	groups := make([]DistrictGroup, 0, len(districts))
	for _, district := range districts {
		group := Group(schedule, district)
		if len(group.Events) == 0 {
			continue
		}
		groups = append(groups, group)
	}
	return groups
}
