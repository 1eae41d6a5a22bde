package services

import (
	"strings"
	"time"
)

// ─── Request ──────────────────────────────────────────────────────────────────

// PredictRequest is the payload accepted by the predict endpoints.
// Every field is optional; Normalize fills the documented defaults.
type PredictRequest struct {
	FromAirport     string `json:"fromAirport"`
	ToAirport       string `json:"toAirport"`
	DepartureDate   string `json:"departureDate"`   // YYYY-MM-DD
	DurationMinutes int    `json:"durationMinutes"` // flight time
}

// Normalize applies defaults (IST -> SAW, today, 90 minutes) and
// uppercases the airport codes.
func (r *PredictRequest) Normalize() {
	r.FromAirport = strings.ToUpper(strings.TrimSpace(r.FromAirport))
	r.ToAirport = strings.ToUpper(strings.TrimSpace(r.ToAirport))
	if r.FromAirport == "" {
		r.FromAirport = "IST"
	}
	if r.ToAirport == "" {
		r.ToAirport = "SAW"
	}
	if r.DepartureDate == "" {
		r.DepartureDate = time.Now().Format("2006-01-02")
	}
	if r.DurationMinutes <= 0 {
		r.DurationMinutes = 90
	}
}

// ─── Feature Vector ───────────────────────────────────────────────────────────

// FeatureVector is the fixed 9-field input to the regressor. The field
// order here is the column order used for both training and inference
// and must not change.
type FeatureVector struct {
	DurationMinutes    int     `json:"duration_minutes"`
	Month              int     `json:"month"`
	DayOfWeek          int     `json:"day_of_week"` // Monday=0 .. Sunday=6
	DayOfMonth         int     `json:"day_of_month"`
	DaysUntilDeparture int     `json:"days_until_departure"`
	IsWeekend          int     `json:"is_weekend"`
	IsPeakSeason       int     `json:"is_peak_season"`
	Distance           float64 `json:"distance"`
	IsInternational    int     `json:"is_international"`
}

// FeatureNames lists the model columns in vector order.
func FeatureNames() []string {
	return []string{
		"duration_minutes", "month", "day_of_week", "day_of_month",
		"days_until_departure", "is_weekend", "is_peak_season",
		"distance", "is_international",
	}
}

// Row flattens the vector into the column order the model was fit on.
func (f FeatureVector) Row() []float64 {
	return []float64{
		float64(f.DurationMinutes),
		float64(f.Month),
		float64(f.DayOfWeek),
		float64(f.DayOfMonth),
		float64(f.DaysUntilDeparture),
		float64(f.IsWeekend),
		float64(f.IsPeakSeason),
		f.Distance,
		float64(f.IsInternational),
	}
}

var peakMonths = map[time.Month]bool{
	time.June: true, time.July: true, time.August: true, time.December: true,
}

// ExtractFeatures derives the model inputs from a normalized request.
func ExtractFeatures(req PredictRequest) FeatureVector {
	return extractFeaturesAt(req, time.Now())
}

func extractFeaturesAt(req PredictRequest, now time.Time) FeatureVector {
	dateObj, err := time.Parse("2006-01-02", req.DepartureDate)
	if err != nil {
		// Lenient by design: unparseable dates fall back to today.
		dateObj = now
	}

	// Go weekdays start at Sunday; shift so Monday=0.
	dayOfWeek := (int(dateObj.Weekday()) + 6) % 7

	daysUntil := int(dateObj.Sub(now).Hours() / 24)
	if daysUntil < 0 {
		daysUntil = 0
	}

	isWeekend := 0
	if dayOfWeek >= 5 {
		isWeekend = 1
	}
	isPeak := 0
	if peakMonths[dateObj.Month()] {
		isPeak = 1
	}
	isInternational := 1
	if IsDomestic(req.FromAirport, req.ToAirport) {
		isInternational = 0
	}

	return FeatureVector{
		DurationMinutes:    req.DurationMinutes,
		Month:              int(dateObj.Month()),
		DayOfWeek:          dayOfWeek,
		DayOfMonth:         dateObj.Day(),
		DaysUntilDeparture: daysUntil,
		IsWeekend:          isWeekend,
		IsPeakSeason:       isPeak,
		Distance:           GetDistance(req.FromAirport, req.ToAirport),
		IsInternational:    isInternational,
	}
}
