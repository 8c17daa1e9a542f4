package interfaces

import (
	"context"

	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
)

// ScanRepository persists scans, per-scan module scores and the issue
// lifecycle. Implementations must be safe for concurrent use; the usecase
// layer additionally serializes writes per workspace.
type ScanRepository interface {
	// Scan operations
	CreateScan(ctx context.Context, scan *model.Scan) error
	SaveScan(ctx context.Context, scan *model.Scan) error
	GetScan(ctx context.Context, scanID types.ScanID) (*model.Scan, error)
	// GetActiveScan returns the non-terminal (PENDING/RUNNING) scan of the
	// workspace, or repository.ErrNotFound when there is none.
	GetActiveScan(ctx context.Context, workspaceID types.WorkspaceID) (*model.Scan, error)
	// GetLatestCompletedScan returns the most recently completed scan of
	// the workspace, or repository.ErrNotFound.
	GetLatestCompletedScan(ctx context.Context, workspaceID types.WorkspaceID) (*model.Scan, error)

	// ModuleScore operations (immutable per scan)
	PutModuleScore(ctx context.Context, score *model.ModuleScore) error
	ListModuleScores(ctx context.Context, scanID types.ScanID) ([]*model.ModuleScore, error)

	// Issue operations
	PutIssue(ctx context.Context, issue *model.Issue) error
	GetIssue(ctx context.Context, issueID types.IssueID) (*model.Issue, error)
	// FindIssueByKey returns the most recently created issue with the
	// natural key regardless of status, or repository.ErrNotFound. Several
	// FIXED rows may share a key over time; at most one OPEN row exists.
	FindIssueByKey(ctx context.Context, key model.IssueKey) (*model.Issue, error)
	ListIssues(ctx context.Context, workspaceID types.WorkspaceID, filter model.IssueFilter) ([]*model.Issue, error)
}
