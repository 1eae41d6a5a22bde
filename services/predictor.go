package services

import (
	"fmt"
	"log"
	"math"
)

// ─── Prediction ───────────────────────────────────────────────────────────────

const (
	// Currency tags every prediction; the model is trained on USD.
	Currency = "USD"
	// ConfidenceScore is a static placeholder, not a computed interval.
	ConfidenceScore = 0.85

	minPrice    = 30.0
	domesticCap = 85.0
)

// PredictionResult is the full response for a single prediction.
type PredictionResult struct {
	PredictedPrice float64       `json:"predictedPrice"`
	Currency       string        `json:"currency"`
	Features       FeatureVector `json:"features"`
	Confidence     float64       `json:"confidence"`
}

// PredictPrice runs the model for one request and applies the domestic
// price adjustment.
func PredictPrice(req PredictRequest) (PredictionResult, error) {
	req.Normalize()

	svc := GetModelService()
	if svc == nil {
		return PredictionResult{}, fmt.Errorf("model service not initialized")
	}
	if err := svc.EnsureLoaded(); err != nil {
		return PredictionResult{}, err
	}

	features := ExtractFeatures(req)
	raw, err := svc.Predict(features.Row())
	if err != nil {
		return PredictionResult{}, err
	}

	price := raw
	if IsDomestic(req.FromAirport, req.ToAirport) && raw > 80 {
		price = adjustDomestic(raw, features)
	}
	price = round2(math.Max(price, minPrice))

	log.Printf("📈 Prediction: %s -> %s = $%.2f", req.FromAirport, req.ToAirport, price)

	return PredictionResult{
		PredictedPrice: price,
		Currency:       Currency,
		Features:       features,
		Confidence:     ConfidenceScore,
	}, nil
}

// adjustDomestic overrides an implausibly high model output for a
// domestic route with a formula-based price, capped at 85 USD.
func adjustDomestic(raw float64, f FeatureVector) float64 {
	adjusted := 40 + f.Distance*0.005 + float64(f.DurationMinutes)*0.1
	if f.IsPeakSeason == 1 {
		adjusted += 20
	}
	if f.IsWeekend == 1 {
		adjusted += 10
	}
	if f.DaysUntilDeparture < 7 {
		adjusted += float64(7-f.DaysUntilDeparture) * 2
	}

	price := math.Min(raw, math.Max(adjusted, 35))
	return math.Min(price, domesticCap)
}

// ─── Batch ────────────────────────────────────────────────────────────────────

// BatchPrediction is one row of a batch response. The route and date
// echo the input verbatim.
type BatchPrediction struct {
	FromAirport    string  `json:"fromAirport"`
	ToAirport      string  `json:"toAirport"`
	DepartureDate  string  `json:"departureDate"`
	PredictedPrice float64 `json:"predictedPrice"`
}

// PredictBatch prices a list of flights, preserving input order.
// Batch results are raw model output (floored and rounded); the
// domestic adjustment is applied on the single-prediction path only.
func PredictBatch(flights []PredictRequest) ([]BatchPrediction, error) {
	svc := GetModelService()
	if svc == nil {
		return nil, fmt.Errorf("model service not initialized")
	}
	if err := svc.EnsureLoaded(); err != nil {
		return nil, err
	}

	out := make([]BatchPrediction, 0, len(flights))
	for _, flight := range flights {
		normalized := flight
		normalized.Normalize()

		raw, err := svc.Predict(ExtractFeatures(normalized).Row())
		if err != nil {
			return nil, err
		}

		out = append(out, BatchPrediction{
			FromAirport:    flight.FromAirport,
			ToAirport:      flight.ToAirport,
			DepartureDate:  flight.DepartureDate,
			PredictedPrice: round2(math.Max(raw, minPrice)),
		})
	}
	return out, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
