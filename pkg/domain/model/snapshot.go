package model

import (
	"time"

	"github.com/brandlens/brandlens/pkg/domain/types"
)

// WorkspaceSnapshot is a read-only view of all brand data in a workspace,
// taken once at scan start so every pipeline step sees a consistent state
// even if the underlying modules mutate mid-scan.
type WorkspaceSnapshot struct {
	WorkspaceID types.WorkspaceID `json:"workspaceId"`
	TakenAt     time.Time         `json:"takenAt"`

	Foundation *BrandFoundation `json:"foundation,omitempty"`
	Style      *BrandStyle      `json:"style,omitempty"`
	Personas   []Persona        `json:"personas,omitempty"`
	Products   []Product        `json:"products,omitempty"`
	Campaigns  []Campaign       `json:"campaigns,omitempty"`
	Insights   []MarketInsight  `json:"insights,omitempty"`
}

type BrandFoundation struct {
	Mission      string   `json:"mission"`
	Vision       string   `json:"vision"`
	Values       []string `json:"values"`
	Positioning  string   `json:"positioning"`
	ToneKeywords []string `json:"toneKeywords"`
}

type BrandStyle struct {
	PrimaryColors   []string `json:"primaryColors"`
	Fonts           []string `json:"fonts"`
	LogoURL         string   `json:"logoUrl"`
	VoiceGuidelines string   `json:"voiceGuidelines"`
}

type Persona struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Tone       string   `json:"tone"`
	PainPoints []string `json:"painPoints"`
	Channels   []string `json:"channels"`
}

type Product struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	ValueProposition string `json:"valueProposition"`
}

type Campaign struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Objective  string   `json:"objective"`
	Message    string   `json:"message"`
	PersonaIDs []string `json:"personaIds"`
	Channels   []string `json:"channels"`
	Status     string   `json:"status"`
}

type MarketInsight struct {
	ID         string    `json:"id"`
	Topic      string    `json:"topic"`
	Summary    string    `json:"summary"`
	SourceURL  string    `json:"sourceUrl"`
	CapturedAt time.Time `json:"capturedAt"`
}

// PersonaByID returns the persona with the given ID, or nil.
func (x *WorkspaceSnapshot) PersonaByID(id string) *Persona {
	for i := range x.Personas {
		if x.Personas[i].ID == id {
			return &x.Personas[i]
		}
	}
	return nil
}
