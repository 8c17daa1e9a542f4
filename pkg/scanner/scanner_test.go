package scanner_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/brandlens/brandlens/pkg/scanner"
)

func completeSnapshot() *model.WorkspaceSnapshot {
	return &model.WorkspaceSnapshot{
		WorkspaceID: "ws-test",
		TakenAt:     time.Now().UTC(),
		Foundation: &model.BrandFoundation{
			Mission:      "Build honest tooling",
			Vision:       "A world of consistent brands",
			Values:       []string{"honesty", "clarity"},
			Positioning:  "The workbench for brand teams",
			ToneKeywords: []string{"friendly", "confident"},
		},
		Style: &model.BrandStyle{
			PrimaryColors:   []string{"#112233"},
			Fonts:           []string{"Inter"},
			LogoURL:         "https://assets.example.com/logo.svg",
			VoiceGuidelines: "Plain language, active voice.",
		},
		Personas: []model.Persona{
			{
				ID:         "persona-1",
				Name:       "Maker Mia",
				Tone:       "friendly",
				PainPoints: []string{"inconsistent messaging"},
				Channels:   []string{"newsletter", "linkedin"},
			},
		},
		Products: []model.Product{
			{
				ID:               "product-1",
				Name:             "Studio",
				Description:      "Brand workspace",
				ValueProposition: "One source of truth",
			},
		},
		Campaigns: []model.Campaign{
			{
				ID:         "campaign-1",
				Name:       "Spring Launch",
				Objective:  "Awareness",
				Message:    "Consistency wins",
				PersonaIDs: []string{"persona-1"},
				Channels:   []string{"newsletter"},
				Status:     "active",
			},
		},
		Insights: []model.MarketInsight{
			{
				ID:         "insight-1",
				Topic:      "Competitor pricing",
				Summary:    "Competitors moved upmarket",
				CapturedAt: time.Now().UTC().Add(-24 * time.Hour),
			},
		},
	}
}

func TestRegistryOrder(t *testing.T) {
	scanners := scanner.Registry(nil)
	gt.A(t, scanners).Length(7)

	want := []types.Module{
		types.ModuleFoundation,
		types.ModuleStyle,
		types.ModulePersonas,
		types.ModuleProducts,
		types.ModuleCampaigns,
		types.ModuleInsights,
		types.ModuleConsistency,
	}
	for i, s := range scanners {
		gt.V(t, s.Module()).Equal(want[i])
	}
}

func TestCleanSnapshotScoresFull(t *testing.T) {
	ctx := context.Background()
	snapshot := completeSnapshot()

	for _, s := range scanner.Registry(nil) {
		score, findings, err := s.Scan(ctx, snapshot)
		gt.NoError(t, err)
		gt.A(t, findings).Length(0)
		gt.V(t, score).Equal(100)
	}
}

func TestFoundationRules(t *testing.T) {
	ctx := context.Background()
	scanners := scanner.Registry(nil)
	foundation := scanners[0]

	t.Run("missing module is critical", func(t *testing.T) {
		snapshot := completeSnapshot()
		snapshot.Foundation = nil

		score, findings, err := foundation.Scan(ctx, snapshot)
		gt.NoError(t, err)
		gt.A(t, findings).Length(1)
		gt.V(t, findings[0].RuleKey).Equal(types.RuleKey("foundation.missing"))
		gt.V(t, findings[0].Severity).Equal(types.SeverityCritical)
		gt.V(t, score).Equal(75)
	})

	t.Run("empty fields each fire one rule", func(t *testing.T) {
		snapshot := completeSnapshot()
		snapshot.Foundation.Mission = ""
		snapshot.Foundation.ToneKeywords = nil

		score, findings, err := foundation.Scan(ctx, snapshot)
		gt.NoError(t, err)
		gt.A(t, findings).Length(2)
		// CRITICAL 25 + MEDIUM 8
		gt.V(t, score).Equal(67)
	})
}

func TestPersonaRulesCarrySourceRef(t *testing.T) {
	ctx := context.Background()
	snapshot := completeSnapshot()
	snapshot.Personas[0].Tone = ""

	personas := scanner.Registry(nil)[2]
	_, findings, err := personas.Scan(ctx, snapshot)
	gt.NoError(t, err)
	gt.A(t, findings).Length(1)
	gt.V(t, findings[0].RuleKey).Equal(types.RuleKey("persona.tone.missing"))
	gt.V(t, findings[0].SourceRef).Equal("persona-1")
}

func TestConsistencyRules(t *testing.T) {
	ctx := context.Background()
	consistency := scanner.Registry(nil)[6]

	t.Run("unknown persona reference", func(t *testing.T) {
		snapshot := completeSnapshot()
		snapshot.Campaigns[0].PersonaIDs = []string{"persona-ghost"}

		_, findings, err := consistency.Scan(ctx, snapshot)
		gt.NoError(t, err)
		gt.A(t, findings).Length(1)
		gt.V(t, findings[0].RuleKey).Equal(types.RuleKey("consistency.campaign.persona.unknown"))
		gt.V(t, findings[0].SourceRef).Equal("campaign-1")
	})

	t.Run("channel mismatch", func(t *testing.T) {
		snapshot := completeSnapshot()
		snapshot.Campaigns[0].Channels = []string{"tiktok"}

		_, findings, err := consistency.Scan(ctx, snapshot)
		gt.NoError(t, err)
		gt.A(t, findings).Length(1)
		gt.V(t, findings[0].RuleKey).Equal(types.RuleKey("consistency.campaign.channels.mismatch"))
	})

	t.Run("tone mismatch is case-insensitive", func(t *testing.T) {
		snapshot := completeSnapshot()
		snapshot.Personas[0].Tone = "Friendly"

		_, findings, err := consistency.Scan(ctx, snapshot)
		gt.NoError(t, err)
		gt.A(t, findings).Length(0)

		snapshot.Personas[0].Tone = "aggressive"
		_, findings, err = consistency.Scan(ctx, snapshot)
		gt.NoError(t, err)
		gt.A(t, findings).Length(1)
		gt.V(t, findings[0].RuleKey).Equal(types.RuleKey("consistency.persona.tone.mismatch"))
	})
}

func TestPenaltyScoreClamped(t *testing.T) {
	penalties := scanner.DefaultPenalties()

	var findings []scanner.Finding
	for i := 0; i < 10; i++ {
		findings = append(findings, scanner.Finding{Severity: types.SeverityCritical})
	}
	gt.V(t, penalties.Score(findings)).Equal(0)
	gt.V(t, penalties.Score(nil)).Equal(100)
}
