package scanner

import (
	"context"
	"fmt"

	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
)

type personaScanner struct {
	penalties Penalties
}

func (x *personaScanner) Module() types.Module {
	return types.ModulePersonas
}

func (x *personaScanner) Scan(ctx context.Context, snapshot *model.WorkspaceSnapshot) (int, []Finding, error) {
	var findings []Finding

	if len(snapshot.Personas) == 0 {
		findings = append(findings, Finding{
			Module:      types.ModulePersonas,
			RuleKey:     "persona.none",
			Severity:    types.SeverityHigh,
			Title:       "No personas are defined",
			Description: "The workspace has no audience personas.",
			SourceRef:   "personas",
		})
		return x.penalties.Score(findings), findings, nil
	}

	for _, p := range snapshot.Personas {
		if p.Tone == "" {
			findings = append(findings, Finding{
				Module:      types.ModulePersonas,
				RuleKey:     "persona.tone.missing",
				Severity:    types.SeverityHigh,
				Title:       fmt.Sprintf("Persona %q has no tone", p.Name),
				Description: "Without a tone, persona-targeted content cannot be checked against brand voice.",
				SourceRef:   p.ID,
			})
		}
		if len(p.PainPoints) == 0 {
			findings = append(findings, Finding{
				Module:      types.ModulePersonas,
				RuleKey:     "persona.painpoints.empty",
				Severity:    types.SeverityMedium,
				Title:       fmt.Sprintf("Persona %q has no pain points", p.Name),
				Description: "The persona lists no pain points.",
				SourceRef:   p.ID,
			})
		}
		if len(p.Channels) == 0 {
			findings = append(findings, Finding{
				Module:      types.ModulePersonas,
				RuleKey:     "persona.channels.empty",
				Severity:    types.SeverityLow,
				Title:       fmt.Sprintf("Persona %q has no channels", p.Name),
				Description: "The persona lists no preferred channels.",
				SourceRef:   p.ID,
			})
		}
	}

	return x.penalties.Score(findings), findings, nil
}
