package brand_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/brandlens/brandlens/pkg/infra/brand"
)

func seedData() *model.WorkspaceSnapshot {
	return &model.WorkspaceSnapshot{
		WorkspaceID: "ws-brand",
		Foundation: &model.BrandFoundation{
			Mission:      "Build honest tooling",
			ToneKeywords: []string{"friendly"},
		},
		Personas: []model.Persona{
			{ID: "persona-1", Name: "Maker Mia", Tone: "casual"},
		},
		Campaigns: []model.Campaign{
			{ID: "campaign-1", Name: "Spring Launch", Message: "old message"},
		},
		Products: []model.Product{
			{ID: "product-1", Name: "Studio"},
		},
		Insights: []model.MarketInsight{
			{ID: "insight-1", Topic: "Pricing"},
		},
	}
}

func TestSnapshotIsIsolatedCopy(t *testing.T) {
	store := brand.New()
	store.Seed(seedData())
	ctx := context.Background()

	snapshot := gt.R1(store.Snapshot(ctx, "ws-brand")).NoError(t)
	gt.V(t, snapshot.TakenAt.IsZero()).Equal(false)

	// Mutating the snapshot must not leak back into the store.
	snapshot.Foundation.Mission = "changed"
	snapshot.Personas[0].Tone = "changed"

	fresh := gt.R1(store.Snapshot(ctx, "ws-brand")).NoError(t)
	gt.V(t, fresh.Foundation.Mission).Equal("Build honest tooling")
	gt.V(t, fresh.Personas[0].Tone).Equal("casual")
}

func TestSnapshotUnknownWorkspace(t *testing.T) {
	store := brand.New()
	_, err := store.Snapshot(context.Background(), "nope")
	gt.Error(t, err)
}

func TestApplyWrites(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		module    types.Module
		sourceRef string
		check     func(t *testing.T, s *model.WorkspaceSnapshot)
	}{
		{
			name:      "foundation mission",
			module:    types.ModuleFoundation,
			sourceRef: "foundation.mission",
			check: func(t *testing.T, s *model.WorkspaceSnapshot) {
				gt.V(t, s.Foundation.Mission).Equal("new content")
			},
		},
		{
			name:      "persona tone",
			module:    types.ModulePersonas,
			sourceRef: "persona-1",
			check: func(t *testing.T, s *model.WorkspaceSnapshot) {
				gt.V(t, s.Personas[0].Tone).Equal("new content")
			},
		},
		{
			name:      "campaign message",
			module:    types.ModuleCampaigns,
			sourceRef: "campaign-1",
			check: func(t *testing.T, s *model.WorkspaceSnapshot) {
				gt.V(t, s.Campaigns[0].Message).Equal("new content")
			},
		},
		{
			name:      "product value proposition",
			module:    types.ModuleProducts,
			sourceRef: "product-1",
			check: func(t *testing.T, s *model.WorkspaceSnapshot) {
				gt.V(t, s.Products[0].ValueProposition).Equal("new content")
			},
		},
		{
			name:      "insight summary",
			module:    types.ModuleInsights,
			sourceRef: "insight-1",
			check: func(t *testing.T, s *model.WorkspaceSnapshot) {
				gt.V(t, s.Insights[0].Summary).Equal("new content")
			},
		},
		{
			name:      "consistency issue pointing at a campaign",
			module:    types.ModuleConsistency,
			sourceRef: "campaign-1",
			check: func(t *testing.T, s *model.WorkspaceSnapshot) {
				gt.V(t, s.Campaigns[0].Message).Equal("new content")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := brand.New()
			store.Seed(seedData())

			gt.NoError(t, store.Apply(ctx, "ws-brand", tc.module, tc.sourceRef, "new content"))

			snapshot := gt.R1(store.Snapshot(ctx, "ws-brand")).NoError(t)
			tc.check(t, snapshot)
		})
	}

	t.Run("unknown source ref", func(t *testing.T) {
		store := brand.New()
		store.Seed(seedData())

		err := store.Apply(ctx, "ws-brand", types.ModuleProducts, "nope", "content")
		gt.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "workspace.json")
		content := `{
			"workspaceId": "ws-file",
			"foundation": {"mission": "From disk"},
			"personas": [{"id": "persona-1", "name": "Mia", "tone": "friendly"}]
		}`
		gt.NoError(t, os.WriteFile(path, []byte(content), 0600))

		store := gt.R1(brand.Load(path)).NoError(t)
		snapshot := gt.R1(store.Snapshot(context.Background(), "ws-file")).NoError(t)
		gt.V(t, snapshot.Foundation.Mission).Equal("From disk")
		gt.A(t, snapshot.Personas).Length(1)
	})

	t.Run("missing workspace ID", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "workspace.json")
		gt.NoError(t, os.WriteFile(path, []byte(`{"foundation":{}}`), 0600))

		_, err := brand.Load(path)
		gt.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := brand.Load("/nonexistent/workspace.json")
		gt.Error(t, err)
	})
}
