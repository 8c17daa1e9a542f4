package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/brandlens/brandlens/pkg/domain/interfaces"
	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/brandlens/brandlens/pkg/repository"
)

// New creates a new in-memory repository. It is the default backend for
// tests and local runs.
func New() interfaces.ScanRepository {
	return &scanRepository{
		scans:  make(map[types.ScanID]*model.Scan),
		scores: make(map[types.ScanID][]*model.ModuleScore),
		issues: make(map[types.IssueID]*model.Issue),
	}
}

type scanRepository struct {
	mu     sync.RWMutex
	scans  map[types.ScanID]*model.Scan
	scores map[types.ScanID][]*model.ModuleScore
	issues map[types.IssueID]*model.Issue
}

func (r *scanRepository) CreateScan(ctx context.Context, scan *model.Scan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.scans[scan.ID]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "scan already exists",
			goerr.V("scanID", scan.ID),
		)
	}
	r.scans[scan.ID] = copyScan(scan)

	return nil
}

func (r *scanRepository) SaveScan(ctx context.Context, scan *model.Scan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.scans[scan.ID] = copyScan(scan)

	return nil
}

func (r *scanRepository) GetScan(ctx context.Context, scanID types.ScanID) (*model.Scan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scan, exists := r.scans[scanID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "scan not found",
			goerr.V("scanID", scanID),
		)
	}

	return copyScan(scan), nil
}

func (r *scanRepository) GetActiveScan(ctx context.Context, workspaceID types.WorkspaceID) (*model.Scan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, scan := range r.scans {
		if scan.WorkspaceID == workspaceID && !scan.Status.IsTerminal() {
			return copyScan(scan), nil
		}
	}

	return nil, goerr.Wrap(repository.ErrNotFound, "no active scan",
		goerr.V("workspaceID", workspaceID),
	)
}

func (r *scanRepository) GetLatestCompletedScan(ctx context.Context, workspaceID types.WorkspaceID) (*model.Scan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *model.Scan
	for _, scan := range r.scans {
		if scan.WorkspaceID != workspaceID || scan.Status != types.ScanStatusCompleted {
			continue
		}
		if latest == nil || scan.StartedAt.After(latest.StartedAt) {
			latest = scan
		}
	}
	if latest == nil {
		return nil, goerr.Wrap(repository.ErrNotFound, "no completed scan",
			goerr.V("workspaceID", workspaceID),
		)
	}

	return copyScan(latest), nil
}

func (r *scanRepository) PutModuleScore(ctx context.Context, score *model.ModuleScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.scans[score.ScanID]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "scan not found",
			goerr.V("scanID", score.ScanID),
		)
	}

	cp := *score
	r.scores[score.ScanID] = append(r.scores[score.ScanID], &cp)

	return nil
}

func (r *scanRepository) ListModuleScores(ctx context.Context, scanID types.ScanID) ([]*model.ModuleScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var scores []*model.ModuleScore
	for _, score := range r.scores[scanID] {
		cp := *score
		scores = append(scores, &cp)
	}

	return scores, nil
}

func (r *scanRepository) PutIssue(ctx context.Context, issue *model.Issue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.issues[issue.ID] = copyIssue(issue)

	return nil
}

func (r *scanRepository) GetIssue(ctx context.Context, issueID types.IssueID) (*model.Issue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	issue, exists := r.issues[issueID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "issue not found",
			goerr.V("issueID", issueID),
		)
	}

	return copyIssue(issue), nil
}

func (r *scanRepository) FindIssueByKey(ctx context.Context, key model.IssueKey) (*model.Issue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// An OPEN row wins over terminal rows regardless of age so that
	// reconciliation always sees the live issue for a key.
	var latest *model.Issue
	for _, issue := range r.issues {
		if issue.Key() != key {
			continue
		}
		if latest == nil {
			latest = issue
			continue
		}
		openNew := issue.Status == types.IssueStatusOpen
		openOld := latest.Status == types.IssueStatusOpen
		if openNew != openOld {
			if openNew {
				latest = issue
			}
			continue
		}
		if issue.CreatedAt.After(latest.CreatedAt) {
			latest = issue
		}
	}
	if latest != nil {
		return copyIssue(latest), nil
	}

	return nil, goerr.Wrap(repository.ErrNotFound, "issue not found",
		goerr.V("workspaceID", key.WorkspaceID),
		goerr.V("module", key.Module),
		goerr.V("ruleKey", key.RuleKey),
		goerr.V("sourceRef", key.SourceRef),
	)
}

func (r *scanRepository) ListIssues(ctx context.Context, workspaceID types.WorkspaceID, filter model.IssueFilter) ([]*model.Issue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var issues []*model.Issue
	for _, issue := range r.issues {
		if issue.WorkspaceID != workspaceID {
			continue
		}
		if !filter.Matches(issue) {
			continue
		}
		issues = append(issues, copyIssue(issue))
	}

	// Map iteration order is random; keep listing stable for callers.
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].CreatedAt.Equal(issues[j].CreatedAt) {
			return issues[i].ID < issues[j].ID
		}
		return issues[i].CreatedAt.Before(issues[j].CreatedAt)
	})

	return issues, nil
}

func copyScan(scan *model.Scan) *model.Scan {
	cp := *scan
	if scan.CompletedAt != nil {
		t := *scan.CompletedAt
		cp.CompletedAt = &t
	}
	return &cp
}

func copyIssue(issue *model.Issue) *model.Issue {
	cp := *issue
	if issue.ResolvedAt != nil {
		t := *issue.ResolvedAt
		cp.ResolvedAt = &t
	}
	return &cp
}
