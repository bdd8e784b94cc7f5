package weather

// Condition is the display category a forecast condition code maps to.
type Condition int

const (
	Clear Condition = iota
	PartlyCloudy
	Overcast
	Rain
	Snow
	Thunderstorm
	// Unsettled is the fallback for codes outside the published table, so
	// classification is total over all integers.
	Unsettled
)

func (c Condition) String() string {
	switch c {
	case Clear:
		return "clear"
	case PartlyCloudy:
		return "partly_cloudy"
	case Overcast:
		return "overcast"
	case Rain:
		return "rain"
	case Snow:
		return "snow"
	case Thunderstorm:
		return "thunderstorm"
	default:
		return "unsettled"
	}
}

// ClassifyCondition maps a WMO weather interpretation code (the table
// Open-Meteo publishes with its daily weather_code variable) to a display
// category. Every integer maps to something; unexpected codes degrade to
// Unsettled instead of failing.
func ClassifyCondition(code int) Condition {
	switch {
	case code == 0:
		return Clear
	case code >= 1 && code <= 3:
		return PartlyCloudy
	case code >= 45 && code <= 48:
		return Overcast
	case code >= 51 && code <= 67:
		return Rain
	case code >= 71 && code <= 77:
		return Snow
	case code >= 80 && code <= 82:
		return Rain
	case code >= 85 && code <= 86:
		return Snow
	case code >= 95 && code <= 99:
		return Thunderstorm
	default:
		return Unsettled
	}
}
