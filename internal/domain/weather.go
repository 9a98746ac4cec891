package domain

// Precipitation is the closed set of weather precipitation states.
type Precipitation string

const (
	NoPrecipitation Precipitation = "none"
	Rain            Precipitation = "rain"
	Snow            Precipitation = "snow"
)

// Venue distinguishes a dome from an outdoor stadium.
type Venue string

const (
	Outdoor Venue = "outdoor"
	Dome    Venue = "dome"
)

// WeatherContext is the environmental condition for one matchup (spec §3).
// A nil *WeatherContext at the request boundary is treated identically to
// a Dome venue by the weather scorer (spec §4.6).
type WeatherContext struct {
	TemperatureF  float64
	WindMPH       float64
	Precipitation Precipitation
	Venue         Venue
}
