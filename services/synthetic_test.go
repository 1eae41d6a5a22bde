package services

import (
	"reflect"
	"testing"
)

func TestGenerateTrainingDataShape(t *testing.T) {
	set := GenerateTrainingData(TrainingSeed, 500)
	if len(set.X) != 500 || len(set.Y) != 500 {
		t.Fatalf("got %d/%d rows, want 500", len(set.X), len(set.Y))
	}
	if len(set.X[0]) != len(FeatureNames()) {
		t.Fatalf("row width %d, want %d", len(set.X[0]), len(FeatureNames()))
	}
}

func TestGenerateTrainingDataRangesAndFloors(t *testing.T) {
	set := GenerateTrainingData(TrainingSeed, 1000)
	for i, row := range set.X {
		dur, mon, dow, dom := row[0], row[1], row[2], row[3]
		until, weekend, peak, dist, intl := row[4], row[5], row[6], row[7], row[8]

		if dur < 30 || dur >= 720 {
			t.Fatalf("row %d: duration %v out of range", i, dur)
		}
		if mon < 1 || mon > 12 {
			t.Fatalf("row %d: month %v out of range", i, mon)
		}
		if dow < 0 || dow > 6 {
			t.Fatalf("row %d: day of week %v out of range", i, dow)
		}
		if dom < 1 || dom > 28 {
			t.Fatalf("row %d: day of month %v out of range", i, dom)
		}
		if until < 0 || until >= 90 {
			t.Fatalf("row %d: days until %v out of range", i, until)
		}
		if dist < 100 || dist >= 12000 {
			t.Fatalf("row %d: distance %v out of range", i, dist)
		}

		wantWeekend := 0.0
		if dow >= 5 {
			wantWeekend = 1
		}
		if weekend != wantWeekend {
			t.Fatalf("row %d: weekend flag %v inconsistent with dow %v", i, weekend, dow)
		}
		wantPeak := 0.0
		if mon == 6 || mon == 7 || mon == 8 || mon == 12 {
			wantPeak = 1
		}
		if peak != wantPeak {
			t.Fatalf("row %d: peak flag %v inconsistent with month %v", i, peak, mon)
		}
		wantIntl := 0.0
		if dist > 1500 {
			wantIntl = 1
		}
		if intl != wantIntl {
			t.Fatalf("row %d: international flag %v inconsistent with distance %v", i, intl, dist)
		}

		floor := 35.0
		if intl == 1 {
			floor = 100
		}
		if set.Y[i] < floor {
			t.Fatalf("row %d: price %v below floor %v", i, set.Y[i], floor)
		}
	}
}

func TestGenerateTrainingDataIsReproducible(t *testing.T) {
	a := GenerateTrainingData(TrainingSeed, 500)
	b := GenerateTrainingData(TrainingSeed, 500)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different training sets")
	}

	c := GenerateTrainingData(TrainingSeed+1, 500)
	if reflect.DeepEqual(a.Y, c.Y) {
		t.Fatal("different seeds produced identical labels")
	}
}
