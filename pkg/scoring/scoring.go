package scoring

import (
	"math"

	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
)

// Weights maps module to its relative weight in the overall score. How much
// each module matters is configuration, separate from how each module
// computes its own score.
type Weights map[types.Module]float64

// Overall computes the weighted average of the module scores of one scan
// run, rounded to the nearest integer and clamped to [0, 100]. An empty or
// nil weight map means equal weighting; weights for modules absent from the
// run are ignored, and if the applicable weights sum to zero the engine
// falls back to equal weighting.
func Overall(scores []*model.ModuleScore, weights Weights) int {
	if len(scores) == 0 {
		return 0
	}

	var totalWeight float64
	for _, s := range scores {
		totalWeight += weightOf(weights, s.Module)
	}
	if totalWeight == 0 {
		weights = nil
		totalWeight = float64(len(scores))
	}

	var sum float64
	for _, s := range scores {
		sum += float64(s.Score) * weightOf(weights, s.Module)
	}

	score := int(math.Round(sum / totalWeight))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func weightOf(weights Weights, module types.Module) float64 {
	if weights == nil {
		return 1
	}
	return weights[module]
}
