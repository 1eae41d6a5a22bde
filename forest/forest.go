// Package forest implements a random forest regressor: an ensemble of
// CART trees fit on bootstrap samples, with variance reduction as the
// split criterion. Trees are stored flat (index-linked nodes) so the
// whole forest gob-encodes to a single artifact file.
package forest

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// Config controls a Fit run. Zero values fall back to Default().
type Config struct {
	Trees    int
	MaxDepth int
	MinLeaf  int
	Seed     uint64
}

// Default returns the training configuration used in production.
func Default() Config {
	return Config{Trees: 100, MaxDepth: 10, MinLeaf: 1, Seed: 42}
}

// Node is one tree node. Left/Right are indices into the tree's node
// slice; -1 marks a leaf, in which case Value holds the leaf mean.
type Node struct {
	Feature   int32
	Threshold float64
	Left      int32
	Right     int32
	Value     float64
}

// Tree is a single regression tree with nodes stored in a flat slice.
// Index 0 is the root.
type Tree struct {
	Nodes []Node
}

func (t *Tree) predict(row []float64) float64 {
	i := int32(0)
	for {
		n := t.Nodes[i]
		if n.Left < 0 {
			return n.Value
		}
		if row[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// Forest is a fitted ensemble. All fields are exported for gob.
type Forest struct {
	Trees       []Tree
	NumFeatures int
	MaxDepth    int
	Importances []float64
}

// NumTrees reports the ensemble size.
func (f *Forest) NumTrees() int { return len(f.Trees) }

// Predict returns the mean prediction of all trees for one feature row.
func (f *Forest) Predict(row []float64) float64 {
	sum := 0.0
	for i := range f.Trees {
		sum += f.Trees[i].predict(row)
	}
	return sum / float64(len(f.Trees))
}

// Fit trains a forest on x (rows of features) and y (targets). The run
// is deterministic for a given config: tree t draws its bootstrap
// sample from a source seeded with cfg.Seed+t.
func Fit(x [][]float64, y []float64, cfg Config) (*Forest, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("empty training set")
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("feature/target length mismatch: %d vs %d", len(x), len(y))
	}
	if cfg.Trees <= 0 {
		cfg.Trees = Default().Trees
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = Default().MaxDepth
	}
	if cfg.MinLeaf <= 0 {
		cfg.MinLeaf = 1
	}

	nFeatures := len(x[0])
	f := &Forest{
		Trees:       make([]Tree, 0, cfg.Trees),
		NumFeatures: nFeatures,
		MaxDepth:    cfg.MaxDepth,
		Importances: make([]float64, nFeatures),
	}

	n := len(x)
	for t := 0; t < cfg.Trees; t++ {
		rng := xrand.New(xrand.NewSource(cfg.Seed + uint64(t)))
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.Intn(n)
		}

		b := &builder{
			x:        x,
			y:        y,
			maxDepth: cfg.MaxDepth,
			minLeaf:  cfg.MinLeaf,
			imp:      f.Importances,
		}
		b.grow(sample, 0)
		f.Trees = append(f.Trees, Tree{Nodes: b.nodes})
	}

	// Normalize accumulated impurity decreases so importances sum to 1.
	if total := floats.Sum(f.Importances); total > 0 {
		floats.Scale(1/total, f.Importances)
	}
	return f, nil
}

// builder accumulates nodes for one tree during recursive growth.
type builder struct {
	x        [][]float64
	y        []float64
	maxDepth int
	minLeaf  int
	imp      []float64
	nodes    []Node
}

// grow builds the subtree over the sample indices idx and returns its
// node index.
func (b *builder) grow(idx []int, depth int) int32 {
	n := len(idx)
	sum, sumSq := 0.0, 0.0
	for _, i := range idx {
		sum += b.y[i]
		sumSq += b.y[i] * b.y[i]
	}
	mean := sum / float64(n)
	sse := sumSq - sum*sum/float64(n)

	if depth >= b.maxDepth || n < 2*b.minLeaf || sse <= 1e-12 {
		return b.leaf(mean)
	}

	feature, threshold, gain := b.bestSplit(idx, sum, sumSq, sse)
	if gain <= 0 {
		return b.leaf(mean)
	}
	b.imp[feature] += gain

	left := make([]int, 0, n)
	right := make([]int, 0, n)
	for _, i := range idx {
		if b.x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	self := int32(len(b.nodes))
	b.nodes = append(b.nodes, Node{Feature: int32(feature), Threshold: threshold})
	l := b.grow(left, depth+1)
	r := b.grow(right, depth+1)
	b.nodes[self].Left = l
	b.nodes[self].Right = r
	return self
}

func (b *builder) leaf(mean float64) int32 {
	i := int32(len(b.nodes))
	b.nodes = append(b.nodes, Node{Feature: -1, Left: -1, Right: -1, Value: mean})
	return i
}

// bestSplit scans every feature for the threshold with the largest sum
// of squared errors reduction. Returns gain <= 0 when no valid split
// exists (e.g. all feature values identical).
func (b *builder) bestSplit(idx []int, sum, sumSq, sse float64) (int, float64, float64) {
	n := len(idx)
	bestFeature := -1
	bestThreshold := 0.0
	bestGain := 0.0

	ord := make([]int, n)
	for f := 0; f < len(b.x[idx[0]]); f++ {
		copy(ord, idx)
		sort.Slice(ord, func(a, c int) bool { return b.x[ord[a]][f] < b.x[ord[c]][f] })

		leftSum, leftSq := 0.0, 0.0
		for i := 0; i < n-1; i++ {
			yi := b.y[ord[i]]
			leftSum += yi
			leftSq += yi * yi

			nl := i + 1
			nr := n - nl
			if nl < b.minLeaf || nr < b.minLeaf {
				continue
			}
			v, next := b.x[ord[i]][f], b.x[ord[i+1]][f]
			if v == next {
				continue
			}

			rightSum := sum - leftSum
			rightSq := sumSq - leftSq
			sseL := leftSq - leftSum*leftSum/float64(nl)
			sseR := rightSq - rightSum*rightSum/float64(nr)
			if gain := sse - sseL - sseR; gain > bestGain {
				bestFeature = f
				bestThreshold = (v + next) / 2
				bestGain = gain
			}
		}
	}
	return bestFeature, bestThreshold, bestGain
}

// Save gob-encodes the forest to path, creating parent directories.
func (f *Forest) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create model dir: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create model file: %w", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(f); err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	return nil
}

// Load reads a forest previously written by Save. A missing file is
// reported with an error satisfying os.IsNotExist.
func Load(path string) (*Forest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	f := &Forest{}
	if err := gob.NewDecoder(file).Decode(f); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if len(f.Trees) == 0 || f.NumFeatures == 0 {
		return nil, fmt.Errorf("model artifact is empty or corrupt")
	}
	return f, nil
}
