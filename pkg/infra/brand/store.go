package brand

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/brandlens/brandlens/pkg/domain/interfaces"
	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/brandlens/brandlens/pkg/utils/safe"
)

// Store is an in-process implementation of the brand-module collaborators:
// it serves read snapshots for the scan pipeline and accepts fix writes.
// Production deployments replace it with clients of the real module
// services; it backs local mode, demos and tests.
type Store struct {
	mu         sync.RWMutex
	workspaces map[types.WorkspaceID]*model.WorkspaceSnapshot
}

var (
	_ interfaces.SnapshotSource = (*Store)(nil)
	_ interfaces.ModuleWriter   = (*Store)(nil)
)

func New() *Store {
	return &Store{
		workspaces: make(map[types.WorkspaceID]*model.WorkspaceSnapshot),
	}
}

// Load reads workspace data from a JSON file and seeds the store with it.
func Load(path string) (*Store, error) {
	fd, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open workspace file", goerr.V("path", path))
	}
	defer safe.Close(fd)

	var data model.WorkspaceSnapshot
	if err := json.NewDecoder(fd).Decode(&data); err != nil {
		return nil, goerr.Wrap(err, "failed to decode workspace file", goerr.V("path", path))
	}
	if data.WorkspaceID == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "workspace file has no workspaceId", goerr.V("path", path))
	}

	store := New()
	store.Seed(&data)
	return store, nil
}

// Seed registers (or replaces) the data of one workspace.
func (x *Store) Seed(data *model.WorkspaceSnapshot) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.workspaces[data.WorkspaceID] = data
}

// Snapshot implements interfaces.SnapshotSource. The returned snapshot is a
// deep copy stamped with the capture time, so in-flight scans are isolated
// from later writes.
func (x *Store) Snapshot(ctx context.Context, workspaceID types.WorkspaceID) (*model.WorkspaceSnapshot, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	data, exists := x.workspaces[workspaceID]
	if !exists {
		return nil, goerr.New("unknown workspace", goerr.V("workspaceID", workspaceID))
	}

	snapshot := copySnapshot(data)
	snapshot.TakenAt = time.Now().UTC()
	return snapshot, nil
}

// Apply implements interfaces.ModuleWriter. It writes remediation content
// to the field or entity the source ref points at.
func (x *Store) Apply(ctx context.Context, workspaceID types.WorkspaceID, module types.Module, sourceRef string, content string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	data, exists := x.workspaces[workspaceID]
	if !exists {
		return goerr.New("unknown workspace", goerr.V("workspaceID", workspaceID))
	}

	switch module {
	case types.ModuleFoundation:
		return applyFoundation(data, sourceRef, content)
	case types.ModuleStyle:
		return applyStyle(data, sourceRef, content)
	case types.ModulePersonas, types.ModuleConsistency:
		if persona := data.PersonaByID(sourceRef); persona != nil {
			persona.Tone = content
			return nil
		}
		// Consistency issues may also point at campaigns.
		if applyCampaignMessage(data, sourceRef, content) {
			return nil
		}
		return goerr.New("unknown source ref", goerr.V("module", module), goerr.V("sourceRef", sourceRef))
	case types.ModuleProducts:
		for i := range data.Products {
			if data.Products[i].ID == sourceRef {
				data.Products[i].ValueProposition = content
				return nil
			}
		}
		return goerr.New("unknown source ref", goerr.V("module", module), goerr.V("sourceRef", sourceRef))
	case types.ModuleCampaigns:
		if applyCampaignMessage(data, sourceRef, content) {
			return nil
		}
		return goerr.New("unknown source ref", goerr.V("module", module), goerr.V("sourceRef", sourceRef))
	case types.ModuleInsights:
		for i := range data.Insights {
			if data.Insights[i].ID == sourceRef {
				data.Insights[i].Summary = content
				return nil
			}
		}
		return goerr.New("unknown source ref", goerr.V("module", module), goerr.V("sourceRef", sourceRef))
	default:
		return goerr.New("unknown module", goerr.V("module", module))
	}
}

func applyFoundation(data *model.WorkspaceSnapshot, sourceRef, content string) error {
	if data.Foundation == nil {
		data.Foundation = &model.BrandFoundation{}
	}
	switch sourceRef {
	case "foundation", "foundation.mission":
		data.Foundation.Mission = content
	case "foundation.vision":
		data.Foundation.Vision = content
	case "foundation.positioning":
		data.Foundation.Positioning = content
	case "foundation.values":
		data.Foundation.Values = []string{content}
	case "foundation.tone":
		data.Foundation.ToneKeywords = []string{content}
	default:
		return goerr.New("unknown source ref", goerr.V("sourceRef", sourceRef))
	}
	return nil
}

func applyStyle(data *model.WorkspaceSnapshot, sourceRef, content string) error {
	if data.Style == nil {
		data.Style = &model.BrandStyle{}
	}
	switch sourceRef {
	case "style", "style.voice":
		data.Style.VoiceGuidelines = content
	case "style.colors":
		data.Style.PrimaryColors = []string{content}
	case "style.fonts":
		data.Style.Fonts = []string{content}
	case "style.logo":
		data.Style.LogoURL = content
	default:
		return goerr.New("unknown source ref", goerr.V("sourceRef", sourceRef))
	}
	return nil
}

func applyCampaignMessage(data *model.WorkspaceSnapshot, sourceRef, content string) bool {
	for i := range data.Campaigns {
		if data.Campaigns[i].ID == sourceRef {
			data.Campaigns[i].Message = content
			return true
		}
	}
	return false
}

func copySnapshot(data *model.WorkspaceSnapshot) *model.WorkspaceSnapshot {
	cp := *data
	if data.Foundation != nil {
		f := *data.Foundation
		f.Values = append([]string(nil), data.Foundation.Values...)
		f.ToneKeywords = append([]string(nil), data.Foundation.ToneKeywords...)
		cp.Foundation = &f
	}
	if data.Style != nil {
		s := *data.Style
		s.PrimaryColors = append([]string(nil), data.Style.PrimaryColors...)
		s.Fonts = append([]string(nil), data.Style.Fonts...)
		cp.Style = &s
	}
	cp.Personas = make([]model.Persona, len(data.Personas))
	for i, p := range data.Personas {
		p.PainPoints = append([]string(nil), p.PainPoints...)
		p.Channels = append([]string(nil), p.Channels...)
		cp.Personas[i] = p
	}
	cp.Products = append([]model.Product(nil), data.Products...)
	cp.Campaigns = make([]model.Campaign, len(data.Campaigns))
	for i, c := range data.Campaigns {
		c.PersonaIDs = append([]string(nil), c.PersonaIDs...)
		c.Channels = append([]string(nil), c.Channels...)
		cp.Campaigns[i] = c
	}
	cp.Insights = append([]model.MarketInsight(nil), data.Insights...)
	return &cp
}
