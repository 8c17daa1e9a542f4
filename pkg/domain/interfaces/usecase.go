package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
)

// ScanStatus is the poll-facing view of a scan.
type ScanStatus struct {
	ScanID         types.ScanID     `json:"scanId"`
	Status         types.ScanStatus `json:"status"`
	Progress       int              `json:"progress"`
	CurrentStep    string           `json:"currentStep"`
	CompletedSteps int              `json:"completedSteps"`
	TotalSteps     int              `json:"totalSteps"`
	Score          int              `json:"score"`
	IssuesFound    int              `json:"issuesFound"`
	FailureReason  string           `json:"failureReason,omitempty"`
}

// AlignmentOverview aggregates the latest completed scan with the current
// issue set.
type AlignmentOverview struct {
	Score        int                  `json:"score"`
	ScanID       types.ScanID         `json:"scanId,omitempty"`
	ModuleScores []*model.ModuleScore `json:"moduleScores"`
	Issues       []*model.Issue       `json:"issues"`
}

type UseCase interface {
	// StartScan is idempotent per workspace: while a PENDING/RUNNING scan
	// exists its ID is returned instead of creating a second one.
	StartScan(ctx context.Context, workspaceID types.WorkspaceID) (*model.Scan, error)
	GetScanStatus(ctx context.Context, scanID types.ScanID) (*ScanStatus, error)
	CancelScan(ctx context.Context, scanID types.ScanID) error

	GetOverview(ctx context.Context, workspaceID types.WorkspaceID, filter model.IssueFilter) (*AlignmentOverview, error)

	GenerateFixOptions(ctx context.Context, issueID types.IssueID) ([]*model.FixOption, error)
	ApplyFix(ctx context.Context, input *model.ApplyFixInput) (*model.Issue, error)
	DismissIssue(ctx context.Context, issueID types.IssueID) (*model.Issue, error)
}
