package scanner

import (
	"context"

	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
)

type styleScanner struct {
	penalties Penalties
}

func (x *styleScanner) Module() types.Module {
	return types.ModuleStyle
}

func (x *styleScanner) Scan(ctx context.Context, snapshot *model.WorkspaceSnapshot) (int, []Finding, error) {
	var findings []Finding

	s := snapshot.Style
	if s == nil {
		findings = append(findings, Finding{
			Module:      types.ModuleStyle,
			RuleKey:     "style.missing",
			Severity:    types.SeverityHigh,
			Title:       "Brand style guide is not defined",
			Description: "The workspace has no style guide. Colors, fonts and voice guidelines are unset.",
			SourceRef:   "style",
		})
		return x.penalties.Score(findings), findings, nil
	}

	if len(s.PrimaryColors) == 0 {
		findings = append(findings, Finding{
			Module:      types.ModuleStyle,
			RuleKey:     "style.colors.missing",
			Severity:    types.SeverityMedium,
			Title:       "Primary colors are not defined",
			Description: "The style guide lists no primary colors.",
			SourceRef:   "style.colors",
		})
	}
	if len(s.Fonts) == 0 {
		findings = append(findings, Finding{
			Module:      types.ModuleStyle,
			RuleKey:     "style.fonts.missing",
			Severity:    types.SeverityLow,
			Title:       "Brand fonts are not defined",
			Description: "The style guide lists no fonts.",
			SourceRef:   "style.fonts",
		})
	}
	if s.LogoURL == "" {
		findings = append(findings, Finding{
			Module:      types.ModuleStyle,
			RuleKey:     "style.logo.missing",
			Severity:    types.SeverityHigh,
			Title:       "Logo is missing",
			Description: "The style guide has no logo asset.",
			SourceRef:   "style.logo",
		})
	}
	if s.VoiceGuidelines == "" {
		findings = append(findings, Finding{
			Module:      types.ModuleStyle,
			RuleKey:     "style.voice.missing",
			Severity:    types.SeverityMedium,
			Title:       "Voice guidelines are missing",
			Description: "The style guide has no voice guidelines.",
			SourceRef:   "style.voice",
		})
	}

	return x.penalties.Score(findings), findings, nil
}
