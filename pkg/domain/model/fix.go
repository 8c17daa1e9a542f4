package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/google/uuid"
)

// FixOption is one of three proposed remediations for an issue. Options are
// generated on demand and owned by the caller's current remediation
// request; they are not persisted unless applied.
type FixOption struct {
	ID          string          `json:"id"`
	IssueID     types.IssueID   `json:"issueId"`
	Label       types.FixLabel  `json:"label"`
	PreviewText string          `json:"previewText"`
	Rationale   string          `json:"rationale"`
	Source      types.FixSource `json:"source"`
}

func NewFixOption(issueID types.IssueID, label types.FixLabel, preview, rationale string, source types.FixSource) *FixOption {
	return &FixOption{
		ID:          uuid.NewString(),
		IssueID:     issueID,
		Label:       label,
		PreviewText: preview,
		Rationale:   rationale,
		Source:      source,
	}
}

// ApplyFixInput carries either a previously generated option or manual text.
type ApplyFixInput struct {
	IssueID  types.IssueID
	OptionID string
	Text     string
}

func (x *ApplyFixInput) Validate() error {
	if x.IssueID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "issue ID is empty")
	}
	if x.OptionID == "" && x.Text == "" {
		return goerr.Wrap(types.ErrValidationFailed, "either option ID or text is required")
	}
	return nil
}
