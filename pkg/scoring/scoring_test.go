package scoring_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/brandlens/brandlens/pkg/scoring"
)

func score(module types.Module, v int) *model.ModuleScore {
	return &model.ModuleScore{ScanID: "scan-1", Module: module, Score: v}
}

func TestOverallEqualWeights(t *testing.T) {
	scores := []*model.ModuleScore{
		score(types.ModuleFoundation, 100),
		score(types.ModuleStyle, 80),
		score(types.ModulePersonas, 60),
	}
	gt.V(t, scoring.Overall(scores, nil)).Equal(80)
}

func TestOverallRounding(t *testing.T) {
	scores := []*model.ModuleScore{
		score(types.ModuleFoundation, 100),
		score(types.ModuleStyle, 85),
	}
	// (100+85)/2 = 92.5, rounds to 93
	gt.V(t, scoring.Overall(scores, nil)).Equal(93)
}

func TestOverallWeighted(t *testing.T) {
	scores := []*model.ModuleScore{
		score(types.ModuleFoundation, 100),
		score(types.ModuleStyle, 50),
	}
	weights := scoring.Weights{
		types.ModuleFoundation: 3,
		types.ModuleStyle:      1,
	}
	// (100*3 + 50*1) / 4 = 87.5, rounds to 88
	gt.V(t, scoring.Overall(scores, weights)).Equal(88)
}

func TestOverallIgnoresUnknownWeightModules(t *testing.T) {
	scores := []*model.ModuleScore{
		score(types.ModuleFoundation, 40),
		score(types.ModuleStyle, 80),
	}
	weights := scoring.Weights{
		types.ModuleFoundation: 1,
		types.ModuleCampaigns:  10, // not in this run
	}
	// Style has weight 0, only Foundation counts
	gt.V(t, scoring.Overall(scores, weights)).Equal(40)
}

func TestOverallZeroWeightFallsBackToEqual(t *testing.T) {
	scores := []*model.ModuleScore{
		score(types.ModuleFoundation, 40),
		score(types.ModuleStyle, 80),
	}
	weights := scoring.Weights{types.ModuleCampaigns: 1}
	gt.V(t, scoring.Overall(scores, weights)).Equal(60)
}

func TestOverallEmpty(t *testing.T) {
	gt.V(t, scoring.Overall(nil, nil)).Equal(0)
}
