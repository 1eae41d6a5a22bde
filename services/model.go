package services

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"farecast/forest"
)

// ─── Model Service ────────────────────────────────────────────────────────────

// ModelService owns the process-wide price model. All access goes
// through the RWMutex: one loader/trainer at a time, and readers see
// either the previous model or the fully fitted replacement.
type ModelService struct {
	mu   sync.RWMutex
	fst  *forest.Forest
	path string
	cfg  TrainConfig
}

// TrainConfig bundles the corpus size with the forest settings.
type TrainConfig struct {
	Samples int
	Forest  forest.Config
}

// DefaultTrainConfig is the production configuration: 10k synthetic
// samples, 100 trees, depth 10, fixed seed.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{Samples: TrainingSamples, Forest: forest.Default()}
}

var modelService *ModelService

// InitModel creates the shared model service and trains (or loads)
// eagerly so the first request doesn't pay the training cost.
func InitModel() {
	path := getEnv("MODEL_PATH", "model/flight_price_model.gob")
	InitModelWith(path, DefaultTrainConfig())
	if err := modelService.EnsureLoaded(); err != nil {
		log.Printf("⚠️  Model not ready at startup: %v — will retry on first prediction", err)
	}
}

// InitModelWith installs the shared service without loading; the model
// is loaded or trained lazily on first use.
func InitModelWith(path string, cfg TrainConfig) {
	modelService = NewModelService(path, cfg)
}

// GetModelService returns the shared instance.
func GetModelService() *ModelService {
	return modelService
}

// NewModelService returns an unloaded service persisting to path.
func NewModelService(path string, cfg TrainConfig) *ModelService {
	return &ModelService{path: path, cfg: cfg}
}

// Loaded reports whether a model is available for inference.
func (s *ModelService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fst != nil
}

// EnsureLoaded loads the persisted artifact, or trains a fresh model
// when the artifact is missing or corrupt. No-op once loaded.
func (s *ModelService) EnsureLoaded() error {
	if s.Loaded() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fst != nil { // raced with another loader
		return nil
	}

	f, err := forest.Load(s.path)
	if err == nil {
		s.fst = f
		log.Printf("✅ Model loaded from %s (%d trees)", s.path, f.NumTrees())
		return nil
	}
	if !os.IsNotExist(err) {
		log.Printf("⚠️  Failed to load model: %v — retraining", err)
	}
	return s.trainLocked()
}

// Retrain regenerates the corpus and refits unconditionally, swapping
// the in-memory model and overwriting the artifact.
func (s *ModelService) Retrain() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trainLocked()
}

// trainLocked fits and persists a new model. Callers hold the write
// lock. The in-memory model is replaced as soon as the fit succeeds;
// a failed save is still reported so operators notice the artifact is
// stale.
func (s *ModelService) trainLocked() error {
	log.Printf("🧠 Training model on %d synthetic samples...", s.cfg.Samples)
	start := time.Now()

	set := GenerateTrainingData(TrainingSeed, s.cfg.Samples)
	f, err := forest.Fit(set.X, set.Y, s.cfg.Forest)
	if err != nil {
		return fmt.Errorf("fit model: %w", err)
	}
	s.fst = f
	log.Printf("✅ Model trained in %s", time.Since(start).Round(time.Millisecond))

	if err := f.Save(s.path); err != nil {
		log.Printf("⚠️  Failed to persist model: %v", err)
		return fmt.Errorf("persist model: %w", err)
	}
	return nil
}

// Predict runs raw inference on one feature row.
func (s *ModelService) Predict(row []float64) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fst == nil {
		return 0, fmt.Errorf("model not loaded")
	}
	return s.fst.Predict(row), nil
}

// ─── Model Info ───────────────────────────────────────────────────────────────

// ModelInfo describes the fitted ensemble for the info endpoint.
type ModelInfo struct {
	ModelType         string
	NumTrees          int
	MaxDepth          int
	FeatureImportance map[string]float64
}

// Info returns model metadata, or an error while unloaded.
func (s *ModelService) Info() (ModelInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fst == nil {
		return ModelInfo{}, fmt.Errorf("model not loaded")
	}

	importance := make(map[string]float64, len(s.fst.Importances))
	for i, name := range FeatureNames() {
		importance[name] = s.fst.Importances[i]
	}
	return ModelInfo{
		ModelType:         "RandomForestRegressor",
		NumTrees:          s.fst.NumTrees(),
		MaxDepth:          s.fst.MaxDepth,
		FeatureImportance: importance,
	}, nil
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
