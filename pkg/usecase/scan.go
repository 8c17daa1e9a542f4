package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/brandlens/brandlens/pkg/domain/interfaces"
	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/brandlens/brandlens/pkg/repository"
	"github.com/brandlens/brandlens/pkg/scoring"
	"github.com/brandlens/brandlens/pkg/utils/errutil"
	"github.com/brandlens/brandlens/pkg/utils/logging"
)

// stepNames drive the currentStep field of status polls. Index i names the
// step executed while CurrentStepIndex == i.
var stepNames = []string{
	"brand_foundation",
	"brand_style",
	"personas",
	"products",
	"campaigns",
	"market_insights",
	"consistency",
	"scoring",
}

// StartScan creates a scan for the workspace and schedules its execution,
// returning immediately. While a PENDING or RUNNING scan exists for the
// workspace, that scan is returned instead of creating a second one.
func (x *UseCase) StartScan(ctx context.Context, workspaceID types.WorkspaceID) (*model.Scan, error) {
	if workspaceID == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "workspace ID is empty")
	}

	mu := x.workspaceLock(workspaceID)
	mu.Lock()
	defer mu.Unlock()

	repo := x.clients.ScanRepository()

	if active, err := repo.GetActiveScan(ctx, workspaceID); err == nil {
		return active, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	scan := model.NewScan(workspaceID, x.now())
	if err := scan.Validate(); err != nil {
		return nil, err
	}
	if err := repo.CreateScan(ctx, scan); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("scan scheduled",
		"scan_id", scan.ID,
		"workspace_id", workspaceID,
	)

	// The request context dies with the HTTP response; execution continues
	// on a detached context.
	go x.runScan(logging.Detach(ctx), scan.ID, workspaceID)

	return scan, nil
}

// runScan executes the 8-step pipeline for one scan. It owns all Scan and
// ModuleScore mutations until the scan reaches a terminal state.
func (x *UseCase) runScan(ctx context.Context, scanID types.ScanID, workspaceID types.WorkspaceID) {
	repo := x.clients.ScanRepository()
	logger := logging.From(ctx).With("scan_id", scanID, "workspace_id", workspaceID)

	scan, err := repo.GetScan(ctx, scanID)
	if err != nil {
		errutil.HandleError(ctx, "failed to load scheduled scan", err)
		return
	}

	scan.Status = types.ScanStatusRunning
	if err := x.saveScanLocked(ctx, scan); err != nil {
		errutil.HandleError(ctx, "failed to transition scan to running", err)
		return
	}

	// One snapshot for the whole run so every step sees a consistent view.
	snapshot, err := x.clients.SnapshotSource().Snapshot(ctx, workspaceID)
	if err != nil {
		x.failScan(ctx, scan, goerr.Wrap(err, "failed to take workspace snapshot"))
		return
	}

	recon := newReconciler(repo, workspaceID, scanID, x.now)

	for i, s := range x.scanners {
		if x.checkCancelled(ctx, scan) {
			return
		}

		scan.CurrentStepIndex = i
		if err := x.saveScanLocked(ctx, scan); err != nil {
			errutil.HandleError(ctx, "failed to persist step start", err)
		}

		score, findings, err := s.Scan(ctx, snapshot)
		if err != nil {
			x.failScan(ctx, scan, goerr.Wrap(err, "module scan failed", goerr.V("module", s.Module())))
			return
		}

		if err := repo.PutModuleScore(ctx, &model.ModuleScore{
			ScanID:     scanID,
			Module:     s.Module(),
			Score:      score,
			IssueCount: len(findings),
		}); err != nil {
			x.failScan(ctx, scan, goerr.Wrap(err, "failed to persist module score", goerr.V("module", s.Module())))
			return
		}

		if err := recon.Observe(ctx, x.workspaceLock(workspaceID), findings); err != nil {
			x.failScan(ctx, scan, goerr.Wrap(err, "failed to reconcile issues", goerr.V("module", s.Module())))
			return
		}

		scan.CompletedSteps = i + 1
		scan.CurrentStepIndex = i + 1
		if err := x.saveScanLocked(ctx, scan); err != nil {
			errutil.HandleError(ctx, "failed to persist step completion", err)
		}

		logger.Debug("scan step finished",
			"step", stepNames[i],
			"module_score", score,
			"findings", len(findings),
		)
	}

	if x.checkCancelled(ctx, scan) {
		return
	}

	// Final step: auto-resolve, overall score, terminal transition.
	if err := x.finalizeScan(ctx, scan, recon); err != nil {
		x.failScan(ctx, scan, err)
		return
	}

	logger.Info("scan completed",
		"score", scan.Score,
		"issues_found", scan.IssuesFound,
	)
}

func (x *UseCase) finalizeScan(ctx context.Context, scan *model.Scan, recon *reconciler) error {
	repo := x.clients.ScanRepository()

	if err := recon.Finalize(ctx, x.workspaceLock(scan.WorkspaceID)); err != nil {
		return goerr.Wrap(err, "failed to auto-resolve issues")
	}

	moduleScores, err := repo.ListModuleScores(ctx, scan.ID)
	if err != nil {
		return goerr.Wrap(err, "failed to list module scores")
	}

	openIssues, err := repo.ListIssues(ctx, scan.WorkspaceID, model.IssueFilter{
		Statuses: []types.IssueStatus{types.IssueStatusOpen},
	})
	if err != nil {
		return goerr.Wrap(err, "failed to count open issues")
	}

	now := x.now()
	scan.Score = scoring.Overall(moduleScores, x.weights)
	scan.IssuesFound = len(openIssues)
	scan.CompletedSteps = scan.TotalSteps
	scan.CurrentStepIndex = scan.TotalSteps
	scan.Status = types.ScanStatusCompleted
	scan.CompletedAt = &now

	if err := x.saveScanLocked(ctx, scan); err != nil {
		return goerr.Wrap(err, "failed to persist completed scan")
	}

	// Analytics export is best-effort and never fails the scan.
	if err := x.exportScan(ctx, scan, moduleScores); err != nil {
		errutil.HandleError(ctx, "failed to export scan record", err)
	}

	return nil
}

// checkCancelled reloads the scan and, when cancellation was requested,
// transitions it to CANCELLED. Cancellation is cooperative: it is only
// observed here, at step boundaries, never mid-step.
func (x *UseCase) checkCancelled(ctx context.Context, scan *model.Scan) bool {
	repo := x.clients.ScanRepository()

	current, err := repo.GetScan(ctx, scan.ID)
	if err != nil {
		errutil.HandleError(ctx, "failed to reload scan for cancellation check", err)
		return false
	}
	if !current.CancelRequested {
		return false
	}

	now := x.now()
	scan.CancelRequested = true
	scan.Status = types.ScanStatusCancelled
	scan.CompletedAt = &now
	if err := x.saveScanLocked(ctx, scan); err != nil {
		errutil.HandleError(ctx, "failed to persist cancelled scan", err)
	}

	logging.From(ctx).Info("scan cancelled", "scan_id", scan.ID)
	return true
}

func (x *UseCase) failScan(ctx context.Context, scan *model.Scan, cause error) {
	errutil.HandleError(ctx, "scan step failed", cause)

	now := x.now()
	scan.Status = types.ScanStatusFailed
	scan.FailureReason = cause.Error()
	scan.CompletedAt = &now

	if err := x.saveScanLocked(ctx, scan); err != nil {
		errutil.HandleError(ctx, "failed to persist failed scan", err)
	}
}

// saveScanLocked persists the scan while preserving a concurrently set
// cancellation flag, under the workspace lock.
func (x *UseCase) saveScanLocked(ctx context.Context, scan *model.Scan) error {
	mu := x.workspaceLock(scan.WorkspaceID)
	mu.Lock()
	defer mu.Unlock()

	repo := x.clients.ScanRepository()
	if current, err := repo.GetScan(ctx, scan.ID); err == nil && current.CancelRequested {
		scan.CancelRequested = true
	}

	return repo.SaveScan(ctx, scan)
}

// CancelScan requests cooperative cancellation of a PENDING or RUNNING
// scan. The in-flight step is allowed to finish.
func (x *UseCase) CancelScan(ctx context.Context, scanID types.ScanID) error {
	repo := x.clients.ScanRepository()

	scan, err := repo.GetScan(ctx, scanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return goerr.Wrap(types.ErrScanNotFound, "cannot cancel unknown scan", goerr.V("scanID", scanID))
		}
		return err
	}
	if scan.Status.IsTerminal() {
		return goerr.Wrap(types.ErrTerminalScan, "cannot cancel terminal scan",
			goerr.V("scanID", scanID),
			goerr.V("status", scan.Status),
		)
	}

	mu := x.workspaceLock(scan.WorkspaceID)
	mu.Lock()
	defer mu.Unlock()

	// Reload under the lock so the flag lands on the freshest row.
	scan, err = repo.GetScan(ctx, scanID)
	if err != nil {
		return err
	}
	if scan.Status.IsTerminal() {
		return goerr.Wrap(types.ErrTerminalScan, "cannot cancel terminal scan",
			goerr.V("scanID", scanID),
			goerr.V("status", scan.Status),
		)
	}

	scan.CancelRequested = true
	return repo.SaveScan(ctx, scan)
}

// GetScanStatus returns the poll-facing view of a scan.
func (x *UseCase) GetScanStatus(ctx context.Context, scanID types.ScanID) (*interfaces.ScanStatus, error) {
	scan, err := x.clients.ScanRepository().GetScan(ctx, scanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(types.ErrScanNotFound, "unknown scan", goerr.V("scanID", scanID))
		}
		return nil, err
	}

	status := &interfaces.ScanStatus{
		ScanID:         scan.ID,
		Status:         scan.Status,
		Progress:       scan.Progress(),
		CompletedSteps: scan.CompletedSteps,
		TotalSteps:     scan.TotalSteps,
		Score:          scan.Score,
		IssuesFound:    scan.IssuesFound,
		FailureReason:  scan.FailureReason,
	}
	if !scan.Status.IsTerminal() && scan.CurrentStepIndex < len(stepNames) {
		status.CurrentStep = stepNames[scan.CurrentStepIndex]
	}

	return status, nil
}
