package scanner

import (
	"context"

	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
)

type foundationScanner struct {
	penalties Penalties
}

func (x *foundationScanner) Module() types.Module {
	return types.ModuleFoundation
}

func (x *foundationScanner) Scan(ctx context.Context, snapshot *model.WorkspaceSnapshot) (int, []Finding, error) {
	var findings []Finding

	f := snapshot.Foundation
	if f == nil {
		findings = append(findings, Finding{
			Module:      types.ModuleFoundation,
			RuleKey:     "foundation.missing",
			Severity:    types.SeverityCritical,
			Title:       "Brand foundation is not defined",
			Description: "The workspace has no brand foundation. Mission, vision and positioning are the reference for all other modules.",
			SourceRef:   "foundation",
		})
		return x.penalties.Score(findings), findings, nil
	}

	if f.Mission == "" {
		findings = append(findings, Finding{
			Module:      types.ModuleFoundation,
			RuleKey:     "foundation.mission.missing",
			Severity:    types.SeverityCritical,
			Title:       "Mission statement is missing",
			Description: "The brand foundation has no mission statement.",
			SourceRef:   "foundation.mission",
		})
	}
	if f.Vision == "" {
		findings = append(findings, Finding{
			Module:      types.ModuleFoundation,
			RuleKey:     "foundation.vision.missing",
			Severity:    types.SeverityHigh,
			Title:       "Vision statement is missing",
			Description: "The brand foundation has no vision statement.",
			SourceRef:   "foundation.vision",
		})
	}
	if len(f.Values) == 0 {
		findings = append(findings, Finding{
			Module:      types.ModuleFoundation,
			RuleKey:     "foundation.values.empty",
			Severity:    types.SeverityMedium,
			Title:       "Brand values are not defined",
			Description: "The brand foundation lists no values.",
			SourceRef:   "foundation.values",
		})
	}
	if f.Positioning == "" {
		findings = append(findings, Finding{
			Module:      types.ModuleFoundation,
			RuleKey:     "foundation.positioning.missing",
			Severity:    types.SeverityHigh,
			Title:       "Positioning statement is missing",
			Description: "The brand foundation has no positioning statement.",
			SourceRef:   "foundation.positioning",
		})
	}
	if len(f.ToneKeywords) == 0 {
		findings = append(findings, Finding{
			Module:      types.ModuleFoundation,
			RuleKey:     "foundation.tone.empty",
			Severity:    types.SeverityMedium,
			Title:       "Tone keywords are not defined",
			Description: "Without tone keywords, persona and campaign tone cannot be checked against the brand.",
			SourceRef:   "foundation.tone",
		})
	}

	return x.penalties.Score(findings), findings, nil
}
