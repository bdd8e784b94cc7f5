package itinerary

import (
	"fmt"
	"net/url"
)

// FormatReviewCount compresses a venue's review count for display:
// above 10,000 it shows 万 units ("1w+"), above 1,000 thousands ("3.8k"),
// otherwise the plain number.
func FormatReviewCount(count int) string {
	if count > 10000 {
		return fmt.Sprintf("%dw+", count/10000)
	}
	if count > 1000 {
		return fmt.Sprintf("%gk", float64(count)/1000)
	}
	return fmt.Sprintf("%d", count)
}

// MapsURL returns the link the viewer opens for a venue: its explicit
// external link when present, otherwise a Google Maps search for the
// venue's map query.
func MapsURL(rec Rec) string {
	if rec.ExternalLink != "" {
		return rec.ExternalLink
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(rec.MapQuery)
}

// ShareText builds the copy-to-clipboard payload for a venue: name,
// description, and the link to open it. The clipboard side effect itself
// belongs to the presentation layer.
func ShareText(rec Rec) string {
	return fmt.Sprintf("%s - %s\n%s", rec.Name, rec.Desc, MapsURL(rec))
}
