package services

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"farecast/forest"
)

func testTrainConfig() TrainConfig {
	return TrainConfig{
		Samples: 300,
		Forest:  forest.Config{Trees: 5, MaxDepth: 5, Seed: 42},
	}
}

func TestEnsureLoadedTrainsAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model", "price.gob")
	svc := NewModelService(path, testTrainConfig())

	if svc.Loaded() {
		t.Fatal("fresh service should be unloaded")
	}
	if err := svc.EnsureLoaded(); err != nil {
		t.Fatalf("EnsureLoaded: %v", err)
	}
	if !svc.Loaded() {
		t.Fatal("service should be loaded after training")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("artifact not persisted: %v", err)
	}

	// A second service on the same path loads instead of training.
	other := NewModelService(path, testTrainConfig())
	if err := other.EnsureLoaded(); err != nil {
		t.Fatalf("EnsureLoaded from artifact: %v", err)
	}

	row := PredictRequest{FromAirport: "IST", ToAirport: "JFK", DepartureDate: "2030-06-15"}
	row.Normalize()
	features := ExtractFeatures(row).Row()
	a, err := svc.Predict(features)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	b, err := other.Predict(features)
	if err != nil {
		t.Fatalf("Predict from loaded artifact: %v", err)
	}
	if a != b {
		t.Errorf("trained and reloaded models disagree: %v vs %v", a, b)
	}
}

func TestEnsureLoadedRecoversFromCorruptArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "price.gob")
	if err := os.WriteFile(path, []byte("not a model"), 0o644); err != nil {
		t.Fatal(err)
	}

	svc := NewModelService(path, testTrainConfig())
	if err := svc.EnsureLoaded(); err != nil {
		t.Fatalf("EnsureLoaded should retrain over a corrupt artifact: %v", err)
	}
	if !svc.Loaded() {
		t.Fatal("service should be loaded after retraining")
	}
}

func TestRetrainIsReproducible(t *testing.T) {
	svc := NewModelService(filepath.Join(t.TempDir(), "price.gob"), testTrainConfig())

	if err := svc.Retrain(); err != nil {
		t.Fatalf("first Retrain: %v", err)
	}
	first, err := svc.Info()
	if err != nil {
		t.Fatalf("Info: %v", err)
	}

	if err := svc.Retrain(); err != nil {
		t.Fatalf("second Retrain: %v", err)
	}
	second, err := svc.Info()
	if err != nil {
		t.Fatalf("Info: %v", err)
	}

	if !reflect.DeepEqual(first.FeatureImportance, second.FeatureImportance) {
		t.Errorf("retrains with a fixed seed diverged:\n%v\n%v", first.FeatureImportance, second.FeatureImportance)
	}
}

func TestInfoBeforeLoad(t *testing.T) {
	svc := NewModelService(filepath.Join(t.TempDir(), "price.gob"), testTrainConfig())
	if _, err := svc.Info(); err == nil {
		t.Fatal("Info on an unloaded service should error")
	}
	if _, err := svc.Predict([]float64{0, 0, 0, 0, 0, 0, 0, 0, 0}); err == nil {
		t.Fatal("Predict on an unloaded service should error")
	}
}

func TestInfoDescribesEnsemble(t *testing.T) {
	svc := NewModelService(filepath.Join(t.TempDir(), "price.gob"), testTrainConfig())
	if err := svc.EnsureLoaded(); err != nil {
		t.Fatalf("EnsureLoaded: %v", err)
	}

	info, err := svc.Info()
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.ModelType != "RandomForestRegressor" {
		t.Errorf("model type = %q", info.ModelType)
	}
	if info.NumTrees != 5 || info.MaxDepth != 5 {
		t.Errorf("trees/depth = %d/%d, want 5/5", info.NumTrees, info.MaxDepth)
	}
	if len(info.FeatureImportance) != len(FeatureNames()) {
		t.Errorf("importance has %d entries, want %d", len(info.FeatureImportance), len(FeatureNames()))
	}
	sum := 0.0
	for _, v := range info.FeatureImportance {
		sum += v
	}
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("importances sum to %v, want 1", sum)
	}
}
