package scanner

import (
	"context"
	"fmt"

	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
)

type campaignScanner struct {
	penalties Penalties
}

func (x *campaignScanner) Module() types.Module {
	return types.ModuleCampaigns
}

func (x *campaignScanner) Scan(ctx context.Context, snapshot *model.WorkspaceSnapshot) (int, []Finding, error) {
	var findings []Finding

	for _, c := range snapshot.Campaigns {
		if c.Objective == "" {
			findings = append(findings, Finding{
				Module:      types.ModuleCampaigns,
				RuleKey:     "campaign.objective.missing",
				Severity:    types.SeverityMedium,
				Title:       fmt.Sprintf("Campaign %q has no objective", c.Name),
				Description: "The campaign has no stated objective.",
				SourceRef:   c.ID,
			})
		}
		if c.Message == "" {
			findings = append(findings, Finding{
				Module:      types.ModuleCampaigns,
				RuleKey:     "campaign.message.missing",
				Severity:    types.SeverityHigh,
				Title:       fmt.Sprintf("Campaign %q has no core message", c.Name),
				Description: "The campaign has no core message to align with the brand.",
				SourceRef:   c.ID,
			})
		}
		if len(c.PersonaIDs) == 0 {
			findings = append(findings, Finding{
				Module:      types.ModuleCampaigns,
				RuleKey:     "campaign.personas.empty",
				Severity:    types.SeverityMedium,
				Title:       fmt.Sprintf("Campaign %q targets no persona", c.Name),
				Description: "The campaign is not linked to any audience persona.",
				SourceRef:   c.ID,
			})
		}
	}

	return x.penalties.Score(findings), findings, nil
}
