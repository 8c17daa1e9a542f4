package scanner

import (
	"context"
	"fmt"
	"strings"

	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
)

// consistencyScanner reads the union of module snapshots and checks
// cross-references that single-module scanners cannot see alone.
type consistencyScanner struct {
	penalties Penalties
}

func (x *consistencyScanner) Module() types.Module {
	return types.ModuleConsistency
}

func (x *consistencyScanner) Scan(ctx context.Context, snapshot *model.WorkspaceSnapshot) (int, []Finding, error) {
	var findings []Finding

	findings = append(findings, x.checkCampaignPersonaRefs(snapshot)...)
	findings = append(findings, x.checkCampaignChannels(snapshot)...)
	findings = append(findings, x.checkPersonaTone(snapshot)...)

	return x.penalties.Score(findings), findings, nil
}

func (x *consistencyScanner) checkCampaignPersonaRefs(snapshot *model.WorkspaceSnapshot) []Finding {
	var findings []Finding
	for _, c := range snapshot.Campaigns {
		for _, personaID := range c.PersonaIDs {
			if snapshot.PersonaByID(personaID) == nil {
				findings = append(findings, Finding{
					Module:      types.ModuleConsistency,
					RuleKey:     "consistency.campaign.persona.unknown",
					Severity:    types.SeverityHigh,
					Title:       fmt.Sprintf("Campaign %q targets an unknown persona", c.Name),
					Description: fmt.Sprintf("Persona %q referenced by the campaign does not exist in the workspace.", personaID),
					SourceRef:   c.ID,
				})
				break
			}
		}
	}
	return findings
}

func (x *consistencyScanner) checkCampaignChannels(snapshot *model.WorkspaceSnapshot) []Finding {
	var findings []Finding
	for _, c := range snapshot.Campaigns {
		if len(c.Channels) == 0 {
			continue
		}
		for _, personaID := range c.PersonaIDs {
			persona := snapshot.PersonaByID(personaID)
			if persona == nil || len(persona.Channels) == 0 {
				continue
			}
			if !overlaps(c.Channels, persona.Channels) {
				findings = append(findings, Finding{
					Module:      types.ModuleConsistency,
					RuleKey:     "consistency.campaign.channels.mismatch",
					Severity:    types.SeverityMedium,
					Title:       fmt.Sprintf("Campaign %q runs on none of persona %q's channels", c.Name, persona.Name),
					Description: "The campaign's channels do not overlap with the channels of a persona it targets.",
					SourceRef:   c.ID,
				})
				break
			}
		}
	}
	return findings
}

func (x *consistencyScanner) checkPersonaTone(snapshot *model.WorkspaceSnapshot) []Finding {
	if snapshot.Foundation == nil || len(snapshot.Foundation.ToneKeywords) == 0 {
		return nil
	}

	var findings []Finding
	for _, p := range snapshot.Personas {
		if p.Tone == "" {
			continue
		}
		if !containsFold(snapshot.Foundation.ToneKeywords, p.Tone) {
			findings = append(findings, Finding{
				Module:      types.ModuleConsistency,
				RuleKey:     "consistency.persona.tone.mismatch",
				Severity:    types.SeverityMedium,
				Title:       fmt.Sprintf("Persona %q's tone diverges from the brand tone", p.Name),
				Description: fmt.Sprintf("Tone %q is not among the brand tone keywords.", p.Tone),
				SourceRef:   p.ID,
			})
		}
	}
	return findings
}

func overlaps(a, b []string) bool {
	for _, v := range a {
		if containsFold(b, v) {
			return true
		}
	}
	return false
}

func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}
