// Package itinerary holds the trip's read-only reference data: days,
// spots, and recommended venues, plus the small presentation helpers the
// viewer derives from them (review-count labels, map links, share text).
package itinerary

import (
	"fmt"
	"time"

	"tripview.kansaitrip.org/internal/geomath"
)

// Trip is one family trip: a title, a start date, and its days in order.
type Trip struct {
	Title     string `json:"title"`
	StartDate string `json:"startDate"` // YYYY-MM-DD, trip-local
	Days      []Day  `json:"days"`
}

// Day is a single itinerary day. Coordinate is the day's fixed reference
// point (usually the hotel) used for weather lookups; travel days
// legitimately have none.
type Day struct {
	Day        int                 `json:"day"`
	Date       string              `json:"date"`
	Location   string              `json:"location"`
	Hotel      string              `json:"hotel"`
	Coordinate *geomath.Coordinate `json:"coordinate,omitempty"`
	Spots      []Spot              `json:"spots"`
}

// Spot is an area within a day, holding its recommended venues.
type Spot struct {
	Name string `json:"name"`
	Desc string `json:"desc"`
	Recs []Rec  `json:"recs"`
}

// Rec is a recommended venue or coupon entry.
type Rec struct {
	Type         string              `json:"type"`
	Name         string              `json:"name"`
	Desc         string              `json:"desc"`
	Rating       float64             `json:"rating"`
	ReviewCount  int                 `json:"reviewCount"`
	PriceLevel   string              `json:"priceLevel"`
	MapQuery     string              `json:"mapQuery"`
	ExternalLink string              `json:"externalLink,omitempty"`
	Coordinate   *geomath.Coordinate `json:"coordinate,omitempty"`
}

// Start parses the trip start date as a trip-local calendar date.
func (t *Trip) Start() (time.Time, error) {
	return time.Parse("2006-01-02", t.StartDate)
}

// FindDay returns the itinerary day with the given 1-based number.
func (t *Trip) FindDay(day int) (*Day, bool) {
	for i := range t.Days {
		if t.Days[i].Day == day {
			return &t.Days[i], true
		}
	}
	return nil, false
}

// Validate checks the structural invariants of a loaded trip: a start
// date, at least one day, unique day numbers, and valid coordinates
// wherever one is present.
func (t *Trip) Validate() error {
	if _, err := t.Start(); err != nil {
		return fmt.Errorf("invalid trip start date %q: %w", t.StartDate, err)
	}
	if len(t.Days) == 0 {
		return fmt.Errorf("trip has no days")
	}

	seen := make(map[int]bool, len(t.Days))
	for _, day := range t.Days {
		if day.Day < 1 {
			return fmt.Errorf("day number %d is not positive", day.Day)
		}
		if seen[day.Day] {
			return fmt.Errorf("duplicate day number %d", day.Day)
		}
		seen[day.Day] = true

		if day.Coordinate != nil && !day.Coordinate.Valid() {
			return fmt.Errorf("day %d has an invalid coordinate", day.Day)
		}
		for _, spot := range day.Spots {
			for _, rec := range spot.Recs {
				if rec.Coordinate != nil && !rec.Coordinate.Valid() {
					return fmt.Errorf("venue %q has an invalid coordinate", rec.Name)
				}
			}
		}
	}
	return nil
}
