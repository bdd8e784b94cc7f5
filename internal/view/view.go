// Package view assembles plain display data for the presentation layer.
// Everything here is a pure function over explicit inputs: the itinerary
// day, the current location snapshot, and the day's forecast slot. View
// state is immutable data passed in, never ambient mutation.
package view

import (
	"tripview.kansaitrip.org/internal/geomath"
	"tripview.kansaitrip.org/internal/itinerary"
	"tripview.kansaitrip.org/internal/weather"
)

// State is the viewer's selection. Transitions produce a new value.
type State struct {
	ActiveDay int `json:"activeDay"`
}

// Select returns the state with the given day active.
func (s State) Select(day int) State {
	s.ActiveDay = day
	return s
}

// DistanceBadge annotates a venue with the estimated distance and walking
// time from the user's current position.
type DistanceBadge struct {
	Distance    string `json:"distance"`
	WalkingTime string `json:"walkingTime"`
}

// WeatherBadge annotates a day with its classified forecast.
type WeatherBadge struct {
	Condition  string `json:"condition"`
	TempMaxC   int    `json:"tempMaxC"`
	TempMinC   int    `json:"tempMinC"`
	PrecipProb *int   `json:"precipProbability,omitempty"`
}

// VenueView is one recommendation ready for rendering.
type VenueView struct {
	Type       string         `json:"type"`
	Name       string         `json:"name"`
	Desc       string         `json:"desc"`
	Rating     float64        `json:"rating"`
	Reviews    string         `json:"reviews"`
	PriceLevel string         `json:"priceLevel"`
	MapsURL    string         `json:"mapsUrl"`
	ShareText  string         `json:"shareText"`
	Distance   *DistanceBadge `json:"distance,omitempty"`
}

// SpotView is an area of a day with its venues.
type SpotView struct {
	Name   string      `json:"name"`
	Desc   string      `json:"desc"`
	Venues []VenueView `json:"venues"`
}

// DayView is a fully assembled itinerary day. Weather is nil unless the
// day's forecast resolved; WeatherStatus carries the fetch phase so the
// renderer can show a spinner or nothing at all.
type DayView struct {
	Day           int           `json:"day"`
	Date          string        `json:"date"`
	Location      string        `json:"location"`
	Hotel         string        `json:"hotel"`
	WeatherStatus string        `json:"weatherStatus"`
	Weather       *WeatherBadge `json:"weather,omitempty"`
	Spots         []SpotView    `json:"spots"`
}

// BuildDay assembles the display data for one day. A nil user coordinate
// simply yields no distance badges; absence is normal, not an error.
func BuildDay(day *itinerary.Day, user *geomath.Coordinate, forecast weather.FetchState) DayView {
	dv := DayView{
		Day:           day.Day,
		Date:          day.Date,
		Location:      day.Location,
		Hotel:         day.Hotel,
		WeatherStatus: forecast.Status.String(),
		Weather:       weatherBadge(forecast),
		Spots:         make([]SpotView, 0, len(day.Spots)),
	}

	for _, spot := range day.Spots {
		sv := SpotView{
			Name:   spot.Name,
			Desc:   spot.Desc,
			Venues: make([]VenueView, 0, len(spot.Recs)),
		}
		for _, rec := range spot.Recs {
			sv.Venues = append(sv.Venues, VenueView{
				Type:       rec.Type,
				Name:       rec.Name,
				Desc:       rec.Desc,
				Rating:     rec.Rating,
				Reviews:    itinerary.FormatReviewCount(rec.ReviewCount),
				PriceLevel: rec.PriceLevel,
				MapsURL:    itinerary.MapsURL(rec),
				ShareText:  itinerary.ShareText(rec),
				Distance:   distanceBadge(user, rec.Coordinate),
			})
		}
		dv.Spots = append(dv.Spots, sv)
	}
	return dv
}

// distanceBadge derives the badge for one venue, or nil when either end
// of the measurement is unknown.
func distanceBadge(user, venue *geomath.Coordinate) *DistanceBadge {
	meters, ok := geomath.DistanceMeters(user, venue)
	if !ok {
		return nil
	}
	return &DistanceBadge{
		Distance:    geomath.FormatDistance(meters),
		WalkingTime: geomath.EstimateWalkingTime(meters),
	}
}

// weatherBadge derives the badge from a forecast slot, or nil when the
// forecast is anything but resolved.
func weatherBadge(forecast weather.FetchState) *WeatherBadge {
	if forecast.Status != weather.StatusResolved || forecast.Forecast == nil {
		return nil
	}
	f := forecast.Forecast
	return &WeatherBadge{
		Condition:  f.Condition().String(),
		TempMaxC:   f.TempMaxC,
		TempMinC:   f.TempMinC,
		PrecipProb: f.PrecipProb,
	}
}
