package scanner

import (
	"context"
	"fmt"
	"time"

	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
)

// staleInsightAge is how old a market insight may be before it is flagged.
const staleInsightAge = 180 * 24 * time.Hour

type insightScanner struct {
	penalties Penalties
}

func (x *insightScanner) Module() types.Module {
	return types.ModuleInsights
}

func (x *insightScanner) Scan(ctx context.Context, snapshot *model.WorkspaceSnapshot) (int, []Finding, error) {
	var findings []Finding

	if len(snapshot.Insights) == 0 {
		findings = append(findings, Finding{
			Module:      types.ModuleInsights,
			RuleKey:     "insight.none",
			Severity:    types.SeverityLow,
			Title:       "No market insights are captured",
			Description: "The workspace has no market research captured.",
			SourceRef:   "insights",
		})
		return x.penalties.Score(findings), findings, nil
	}

	for _, ins := range snapshot.Insights {
		if ins.Summary == "" {
			findings = append(findings, Finding{
				Module:      types.ModuleInsights,
				RuleKey:     "insight.summary.missing",
				Severity:    types.SeverityMedium,
				Title:       fmt.Sprintf("Insight %q has no summary", ins.Topic),
				Description: "The market insight has no summary.",
				SourceRef:   ins.ID,
			})
		}
		if !ins.CapturedAt.IsZero() && snapshot.TakenAt.Sub(ins.CapturedAt) > staleInsightAge {
			findings = append(findings, Finding{
				Module:      types.ModuleInsights,
				RuleKey:     "insight.stale",
				Severity:    types.SeverityLow,
				Title:       fmt.Sprintf("Insight %q is stale", ins.Topic),
				Description: "The market insight is older than six months and may no longer reflect the market.",
				SourceRef:   ins.ID,
			})
		}
	}

	return x.penalties.Score(findings), findings, nil
}
