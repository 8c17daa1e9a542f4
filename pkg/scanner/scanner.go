package scanner

import (
	"context"

	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
)

// Finding is one triggered rule. Findings become issues during
// reconciliation, which assigns identity and lifecycle; a scanner only
// reports what fired and where.
type Finding struct {
	Module      types.Module
	RuleKey     types.RuleKey
	Severity    types.Severity
	Title       string
	Description string
	SourceRef   string
}

// ModuleScanner evaluates one brand module against a read-only workspace
// snapshot. Implementations must be deterministic over the snapshot and
// must not mutate it.
type ModuleScanner interface {
	Module() types.Module
	Scan(ctx context.Context, snapshot *model.WorkspaceSnapshot) (int, []Finding, error)
}

// Penalties maps issue severity to the score penalty a triggered rule
// costs its module. The mapping is policy, not engine logic.
type Penalties map[types.Severity]int

func DefaultPenalties() Penalties {
	return Penalties{
		types.SeverityCritical: 25,
		types.SeverityHigh:     15,
		types.SeverityMedium:   8,
		types.SeverityLow:      3,
	}
}

// Score computes 100 minus the accumulated penalties, clamped to [0, 100].
func (p Penalties) Score(findings []Finding) int {
	score := 100
	for _, f := range findings {
		score -= p[f.Severity]
	}
	if score < 0 {
		return 0
	}
	return score
}

// Registry returns the ordered scanner list: six per-module scanners
// followed by the cross-module consistency check. The order is fixed at
// startup and defines the pipeline step order.
func Registry(penalties Penalties) []ModuleScanner {
	if penalties == nil {
		penalties = DefaultPenalties()
	}
	return []ModuleScanner{
		&foundationScanner{penalties: penalties},
		&styleScanner{penalties: penalties},
		&personaScanner{penalties: penalties},
		&productScanner{penalties: penalties},
		&campaignScanner{penalties: penalties},
		&insightScanner{penalties: penalties},
		&consistencyScanner{penalties: penalties},
	}
}
