package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/brandlens/brandlens/pkg/repository"
	"github.com/brandlens/brandlens/pkg/utils/logging"
)

// ApplyFix writes the chosen remediation through the owning module's write
// API and marks the issue FIXED. The option may reference a previously
// generated proposal by ID, or carry manual replacement text directly.
func (x *UseCase) ApplyFix(ctx context.Context, input *model.ApplyFixInput) (*model.Issue, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	repo := x.clients.ScanRepository()

	issue, err := repo.GetIssue(ctx, input.IssueID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(types.ErrIssueNotFound, "issue not found", goerr.V("issue_id", input.IssueID))
		}
		return nil, err
	}

	mu := x.workspaceLock(issue.WorkspaceID)
	mu.Lock()
	defer mu.Unlock()

	// Re-read under the lock; a concurrent dismiss or scan finalization may
	// have transitioned the issue since the first read.
	issue, err = repo.GetIssue(ctx, input.IssueID)
	if err != nil {
		return nil, err
	}
	if issue.Status.IsTerminal() {
		return nil, goerr.Wrap(types.ErrTerminalIssue, "issue already resolved", goerr.V("issue_id", issue.ID), goerr.V("status", issue.Status))
	}

	content := input.Text
	if input.OptionID != "" {
		option := x.resolveFixOption(issue.ID, input.OptionID)
		if option == nil {
			return nil, goerr.Wrap(types.ErrValidationFailed, "unknown fix option; options expire, regenerate them", goerr.V("option_id", input.OptionID))
		}
		content = option.PreviewText
	}

	if writer := x.clients.ModuleWriter(); writer != nil {
		if err := writer.Apply(ctx, issue.WorkspaceID, issue.Module, issue.SourceRef, content); err != nil {
			return nil, goerr.Wrap(err, "failed to apply fix content", goerr.V("issue_id", issue.ID))
		}
	}

	now := x.now()
	issue.Status = types.IssueStatusFixed
	issue.ResolvedAt = &now
	if err := repo.PutIssue(ctx, issue); err != nil {
		return nil, err
	}

	x.fixOptions.Delete(issue.ID)

	logging.From(ctx).Info("applied fix",
		"issue_id", issue.ID,
		"workspace_id", issue.WorkspaceID,
		"module", issue.Module,
		"rule_key", issue.RuleKey,
	)

	return issue, nil
}

// DismissIssue marks an issue DISMISSED. Dismissal is sticky: later scans
// that re-detect the same condition will not reopen it.
func (x *UseCase) DismissIssue(ctx context.Context, issueID types.IssueID) (*model.Issue, error) {
	repo := x.clients.ScanRepository()

	issue, err := repo.GetIssue(ctx, issueID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(types.ErrIssueNotFound, "issue not found", goerr.V("issue_id", issueID))
		}
		return nil, err
	}

	mu := x.workspaceLock(issue.WorkspaceID)
	mu.Lock()
	defer mu.Unlock()

	issue, err = repo.GetIssue(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if issue.Status.IsTerminal() {
		return nil, goerr.Wrap(types.ErrTerminalIssue, "issue already resolved", goerr.V("issue_id", issue.ID), goerr.V("status", issue.Status))
	}

	now := x.now()
	issue.Status = types.IssueStatusDismissed
	issue.ResolvedAt = &now
	if err := repo.PutIssue(ctx, issue); err != nil {
		return nil, err
	}

	x.fixOptions.Delete(issue.ID)

	logging.From(ctx).Info("dismissed issue",
		"issue_id", issue.ID,
		"workspace_id", issue.WorkspaceID,
		"rule_key", issue.RuleKey,
	)

	return issue, nil
}

func (x *UseCase) resolveFixOption(issueID types.IssueID, optionID string) *model.FixOption {
	for _, option := range x.cachedFixOptions(issueID) {
		if option.ID == optionID {
			return option
		}
	}
	return nil
}
