package itinerary

import "testing"

func TestFormatReviewCount(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "0"},
		{800, "800"},
		{1000, "1000"},
		{1500, "1.5k"},
		{2000, "2k"},
		{3800, "3.8k"},
		{10000, "10k"},
		{12000, "1w+"},
		{15000, "1w+"},
		{99999, "9w+"},
	}

	for _, tt := range tests {
		if got := FormatReviewCount(tt.count); got != tt.want {
			t.Errorf("FormatReviewCount(%d): got %q want %q", tt.count, got, tt.want)
		}
	}
}

func TestMapsURL(t *testing.T) {
	t.Run("map query", func(t *testing.T) {
		rec := Rec{Name: "Ichiran Ramen", MapQuery: "Ichiran Ramen Dotonbori"}
		want := "https://www.google.com/maps/search/?api=1&query=Ichiran+Ramen+Dotonbori"
		if got := MapsURL(rec); got != want {
			t.Errorf("MapsURL: got %q want %q", got, want)
		}
	})

	t.Run("external link wins", func(t *testing.T) {
		rec := Rec{
			Name:         "Wanaka Takoyaki",
			MapQuery:     "Takoyaki Wanaka Sennichimae",
			ExternalLink: "https://maps.app.goo.gl/RXb4wTEmXzL6ihCPA",
		}
		if got := MapsURL(rec); got != rec.ExternalLink {
			t.Errorf("MapsURL: got %q want the external link", got)
		}
	})
}

func TestShareText(t *testing.T) {
	rec := Rec{
		Name:     "Kogaryu Takoyaki",
		Desc:     "Bib Gourmand takoyaki",
		MapQuery: "Kogaryu Takoyaki Americamura",
	}

	want := "Kogaryu Takoyaki - Bib Gourmand takoyaki\n" +
		"https://www.google.com/maps/search/?api=1&query=Kogaryu+Takoyaki+Americamura"
	if got := ShareText(rec); got != want {
		t.Errorf("ShareText: got %q want %q", got, want)
	}
}
