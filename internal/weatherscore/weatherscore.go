// Package weatherscore implements the weather scorer (C8): a small
// integer-point accumulation mapped onto the 0..100 scale used by every
// other component, carrying a far smaller final weight (0.01, spec §4.8)
// than the play-derived scorers.
package weatherscore

import "github.com/riversnfl/predictor/internal/domain"

// Score returns S_W for a matchup's weather context. A nil context, or one
// whose venue is Dome, contributes exactly the neutral midpoint (spec
// §4.6, §8 boundary scenario 7).
func Score(w *domain.WeatherContext) float64 {
	if w == nil || w.Venue == domain.Dome {
		return 50
	}

	impact := 0
	switch {
	case w.TemperatureF < 32:
		impact += 3
	case w.TemperatureF < 45:
		impact += 2
	case w.TemperatureF > 85:
		impact += 1
	}

	switch {
	case w.WindMPH > 15:
		impact += 3
	case w.WindMPH > 10:
		impact += 2
	case w.WindMPH > 5:
		impact += 1
	}

	switch w.Precipitation {
	case domain.Rain:
		impact += 2
	case domain.Snow:
		impact += 3
	}

	score := 50 - 2*float64(impact)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
