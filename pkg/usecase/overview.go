package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/brandlens/brandlens/pkg/domain/interfaces"
	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/brandlens/brandlens/pkg/repository"
)

// GetOverview returns the latest completed scan's score with per-module
// breakdown and the workspace's issue list. With no status filter given,
// only OPEN issues are returned; resolved history must be asked for
// explicitly.
func (x *UseCase) GetOverview(ctx context.Context, workspaceID types.WorkspaceID, filter model.IssueFilter) (*interfaces.AlignmentOverview, error) {
	if workspaceID == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "workspace ID is empty")
	}
	if filter.Module != "" && !filter.Module.IsValid() {
		return nil, goerr.Wrap(types.ErrValidationFailed, "unknown module", goerr.V("module", filter.Module))
	}
	if filter.Severity != "" && !filter.Severity.IsValid() {
		return nil, goerr.Wrap(types.ErrValidationFailed, "unknown severity", goerr.V("severity", filter.Severity))
	}
	for _, s := range filter.Statuses {
		if !s.IsValid() {
			return nil, goerr.Wrap(types.ErrValidationFailed, "unknown issue status", goerr.V("status", s))
		}
	}

	repo := x.clients.ScanRepository()
	overview := &interfaces.AlignmentOverview{
		ModuleScores: []*model.ModuleScore{},
		Issues:       []*model.Issue{},
	}

	latest, err := repo.GetLatestCompletedScan(ctx, workspaceID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if latest != nil {
		overview.Score = latest.Score
		overview.ScanID = latest.ID

		scores, err := repo.ListModuleScores(ctx, latest.ID)
		if err != nil {
			return nil, err
		}
		overview.ModuleScores = scores
	}

	if len(filter.Statuses) == 0 {
		filter.Statuses = []types.IssueStatus{types.IssueStatusOpen}
	}

	issues, err := repo.ListIssues(ctx, workspaceID, filter)
	if err != nil {
		return nil, err
	}
	overview.Issues = issues

	return overview, nil
}
