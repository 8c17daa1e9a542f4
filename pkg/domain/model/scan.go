package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/brandlens/brandlens/pkg/domain/types"
)

// TotalScanSteps is the fixed number of pipeline steps: six per-module
// scans, one cross-module consistency check and one scoring/finalization
// step.
const TotalScanSteps = 8

// Scan is one execution of the alignment pipeline for a workspace. It is
// mutated only by the orchestrator while non-terminal, then becomes
// read-only.
type Scan struct {
	ID               types.ScanID      `json:"id"`
	WorkspaceID      types.WorkspaceID `json:"workspaceId"`
	Status           types.ScanStatus  `json:"status"`
	CurrentStepIndex int               `json:"currentStepIndex"`
	CompletedSteps   int               `json:"completedSteps"`
	TotalSteps       int               `json:"totalSteps"`
	Score            int               `json:"score"`
	IssuesFound      int               `json:"issuesFound"`
	CancelRequested  bool              `json:"cancelRequested"`
	StartedAt        time.Time         `json:"startedAt"`
	CompletedAt      *time.Time        `json:"completedAt,omitempty"`
	FailureReason    string            `json:"failureReason,omitempty"`
}

func NewScan(workspaceID types.WorkspaceID, now time.Time) *Scan {
	return &Scan{
		ID:          types.NewScanID(),
		WorkspaceID: workspaceID,
		Status:      types.ScanStatusPending,
		TotalSteps:  TotalScanSteps,
		StartedAt:   now,
	}
}

func (x *Scan) Validate() error {
	if x.ID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "scan ID is empty")
	}
	if x.WorkspaceID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "workspace ID is empty")
	}
	if x.TotalSteps != TotalScanSteps {
		return goerr.Wrap(types.ErrValidationFailed, "total steps must be fixed",
			goerr.V("totalSteps", x.TotalSteps),
		)
	}
	if x.CompletedSteps < 0 || x.CompletedSteps > x.TotalSteps {
		return goerr.Wrap(types.ErrValidationFailed, "completed steps out of range",
			goerr.V("completedSteps", x.CompletedSteps),
		)
	}
	if x.Score < 0 || x.Score > 100 {
		return goerr.Wrap(types.ErrValidationFailed, "score out of range",
			goerr.V("score", x.Score),
		)
	}
	return nil
}

// Progress is the completed-step ratio in percent, rounded down.
func (x *Scan) Progress() int {
	if x.TotalSteps == 0 {
		return 0
	}
	return x.CompletedSteps * 100 / x.TotalSteps
}

// ModuleScore is a per-module snapshot of one scan run, immutable once
// written.
type ModuleScore struct {
	ScanID     types.ScanID `json:"scanId"`
	Module     types.Module `json:"module"`
	Score      int          `json:"score"`
	IssueCount int          `json:"issueCount"`
}

func (x *ModuleScore) Validate() error {
	if x.ScanID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "scan ID is empty")
	}
	if !x.Module.IsValid() {
		return goerr.Wrap(types.ErrValidationFailed, "unknown module", goerr.V("module", x.Module))
	}
	if x.Score < 0 || x.Score > 100 {
		return goerr.Wrap(types.ErrValidationFailed, "module score out of range",
			goerr.V("module", x.Module), goerr.V("score", x.Score),
		)
	}
	return nil
}

// ScanRecord is the flattened form of a finished scan for analytics export.
type ScanRecord struct {
	Scan         Scan           `json:"scan"`
	ModuleScores []*ModuleScore `json:"moduleScores"`
	OpenIssues   int            `json:"openIssues"`
	Timestamp    int64          `json:"timestamp"`
}
