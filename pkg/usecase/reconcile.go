package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/brandlens/brandlens/pkg/domain/interfaces"
	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/brandlens/brandlens/pkg/repository"
	"github.com/brandlens/brandlens/pkg/scanner"
)

// reconciler maps the findings of one scan run onto the persisted issue
// set. Triggered keys are upserted as each step completes, so a failed scan
// retains the issues of its completed steps; auto-resolve of keys that did
// not fire runs only at finalization, when the run is known to be complete.
type reconciler struct {
	repo        interfaces.ScanRepository
	workspaceID types.WorkspaceID
	scanID      types.ScanID
	now         func() time.Time

	triggered map[model.IssueKey]struct{}
}

func newReconciler(repo interfaces.ScanRepository, workspaceID types.WorkspaceID, scanID types.ScanID, now func() time.Time) *reconciler {
	return &reconciler{
		repo:        repo,
		workspaceID: workspaceID,
		scanID:      scanID,
		now:         now,
		triggered:   make(map[model.IssueKey]struct{}),
	}
}

// Observe upserts one step's findings:
//   - an OPEN issue with the same natural key is refreshed (lastSeen only)
//   - a DISMISSED issue suppresses the finding; dismissal is sticky
//   - otherwise (no row, or only FIXED history) a new OPEN issue is created
func (r *reconciler) Observe(ctx context.Context, mu *sync.Mutex, findings []scanner.Finding) error {
	mu.Lock()
	defer mu.Unlock()

	for _, f := range findings {
		key := model.IssueKey{
			WorkspaceID: r.workspaceID,
			Module:      f.Module,
			RuleKey:     f.RuleKey,
			SourceRef:   f.SourceRef,
		}
		r.triggered[key] = struct{}{}

		existing, err := r.repo.FindIssueByKey(ctx, key)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		if existing != nil {
			switch existing.Status {
			case types.IssueStatusOpen:
				existing.LastSeenScanID = r.scanID
				existing.Severity = f.Severity
				existing.Title = f.Title
				existing.Description = f.Description
				if err := r.repo.PutIssue(ctx, existing); err != nil {
					return err
				}
				continue
			case types.IssueStatusDismissed:
				continue
			}
		}

		issue := &model.Issue{
			ID:              types.NewIssueID(),
			WorkspaceID:     r.workspaceID,
			Module:          f.Module,
			RuleKey:         f.RuleKey,
			Severity:        f.Severity,
			Title:           f.Title,
			Description:     f.Description,
			Status:          types.IssueStatusOpen,
			SourceRef:       f.SourceRef,
			FirstSeenScanID: r.scanID,
			LastSeenScanID:  r.scanID,
			CreatedAt:       r.now(),
		}
		if err := issue.Validate(); err != nil {
			return err
		}
		if err := r.repo.PutIssue(ctx, issue); err != nil {
			return err
		}
	}

	return nil
}

// Finalize auto-resolves every OPEN issue of the workspace whose natural
// key did not fire during this run: the underlying condition is gone.
func (r *reconciler) Finalize(ctx context.Context, mu *sync.Mutex) error {
	mu.Lock()
	defer mu.Unlock()

	open, err := r.repo.ListIssues(ctx, r.workspaceID, model.IssueFilter{
		Statuses: []types.IssueStatus{types.IssueStatusOpen},
	})
	if err != nil {
		return err
	}

	for _, issue := range open {
		if _, fired := r.triggered[issue.Key()]; fired {
			continue
		}

		now := r.now()
		issue.Status = types.IssueStatusFixed
		issue.ResolvedAt = &now
		if err := r.repo.PutIssue(ctx, issue); err != nil {
			return err
		}
	}

	return nil
}
