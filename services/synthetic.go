package services

import (
	"math"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ─── Synthetic Training Data ──────────────────────────────────────────────────

const (
	// TrainingSamples is the corpus size for a full training run.
	TrainingSamples = 10000
	// TrainingSeed makes every run reproduce the same corpus.
	TrainingSeed = 42
)

// TrainingSet holds feature rows (in FeatureNames order) and price
// labels for one training run.
type TrainingSet struct {
	X [][]float64
	Y []float64
}

// GenerateTrainingData builds n synthetic flight/price examples from a
// seeded source. There is no real fare data behind the model; prices
// come from a hand-built formula over the sampled features plus
// Gaussian noise, floored at a per-class minimum.
func GenerateTrainingData(seed uint64, n int) TrainingSet {
	rng := xrand.New(xrand.NewSource(seed))

	duration := distuv.Uniform{Min: 30, Max: 720, Src: rng}
	month := distuv.Uniform{Min: 1, Max: 13, Src: rng}
	dayOfWeek := distuv.Uniform{Min: 0, Max: 7, Src: rng}
	dayOfMonth := distuv.Uniform{Min: 1, Max: 29, Src: rng}
	daysUntil := distuv.Uniform{Min: 0, Max: 90, Src: rng}
	distance := distuv.Uniform{Min: 100, Max: 12000, Src: rng}
	noiseIntl := distuv.Normal{Mu: 0, Sigma: 40, Src: rng}
	noiseDom := distuv.Normal{Mu: 0, Sigma: 15, Src: rng}

	set := TrainingSet{
		X: make([][]float64, 0, n),
		Y: make([]float64, 0, n),
	}

	for i := 0; i < n; i++ {
		dur := math.Floor(duration.Rand())
		mon := math.Floor(month.Rand())
		dow := math.Floor(dayOfWeek.Rand())
		dom := math.Floor(dayOfMonth.Rand())
		until := math.Floor(daysUntil.Rand())
		dist := math.Floor(distance.Rand())

		weekend := 0.0
		if dow >= 5 {
			weekend = 1
		}
		peak := 0.0
		if mon == 6 || mon == 7 || mon == 8 || mon == 12 {
			peak = 1
		}
		intl := 0.0
		if dist > 1500 {
			intl = 1
		}

		base, peakPremium, weekendPremium := 40.0, 25.0, 15.0
		distanceFactor, floor := 0.005, 35.0
		noiseDist := noiseDom
		if intl == 1 {
			base, peakPremium, weekendPremium = 150, 80, 30
			distanceFactor, floor = 0.03, 100
			noiseDist = noiseIntl
		}
		noise := noiseDist.Rand()

		price := base +
			dur*0.15 +
			peak*peakPremium +
			weekend*weekendPremium +
			math.Max(0, 30-until)*2 + // last-minute premium
			dist*distanceFactor +
			noise
		if price < floor {
			price = floor
		}

		set.X = append(set.X, []float64{dur, mon, dow, dom, until, weekend, peak, dist, intl})
		set.Y = append(set.Y, price)
	}
	return set
}
