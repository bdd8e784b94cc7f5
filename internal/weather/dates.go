package weather

import "time"

// tripZone is the trip's local timezone. Target dates are computed here,
// not in the viewer's timezone, so the lookup date never shifts for a
// traveler checking the itinerary from home.
var tripZone = loadTripZone()

func loadTripZone() *time.Location {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		// Hosts without tzdata still get the right offset; Japan has no DST.
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}

// TargetDate returns the calendar date for a 1-based trip day offset:
// day 1 is the trip start date itself.
func TargetDate(tripStart time.Time, dayOffset int) time.Time {
	start := tripStart.In(tripZone)
	return time.Date(start.Year(), start.Month(), start.Day()+(dayOffset-1),
		0, 0, 0, 0, tripZone)
}
