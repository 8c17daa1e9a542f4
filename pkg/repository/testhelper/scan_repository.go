package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/brandlens/brandlens/pkg/domain/interfaces"
	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/brandlens/brandlens/pkg/repository"
)

// TestAll runs all test cases for ScanRepository.
// This is the main entry point for testing any ScanRepository implementation.
func TestAll(t *testing.T, repo interfaces.ScanRepository) {
	t.Run("ScanLifecycle", func(t *testing.T) {
		TestScanLifecycle(t, repo)
	})
	t.Run("ActiveScanUniqueness", func(t *testing.T) {
		TestActiveScanLookup(t, repo)
	})
	t.Run("ModuleScores", func(t *testing.T) {
		TestModuleScores(t, repo)
	})
	t.Run("IssueNaturalKey", func(t *testing.T) {
		TestIssueNaturalKey(t, repo)
	})
	t.Run("IssueLookupPrefersOpen", func(t *testing.T) {
		TestIssueLookupPrefersOpen(t, repo)
	})
	t.Run("IssueFiltering", func(t *testing.T) {
		TestIssueFiltering(t, repo)
	})
}

func newWorkspaceID() types.WorkspaceID {
	return types.WorkspaceID(fmt.Sprintf("ws-%s", uuid.New().String()[:8]))
}

// TestScanLifecycle tests create, update and terminal-state persistence.
func TestScanLifecycle(t *testing.T, repo interfaces.ScanRepository) {
	ctx := context.Background()
	workspaceID := newWorkspaceID()

	scan := model.NewScan(workspaceID, time.Now().UTC().Truncate(time.Second))
	gt.NoError(t, repo.CreateScan(ctx, scan))

	// Creating the same scan twice must fail
	err := repo.CreateScan(ctx, scan)
	gt.B(t, errors.Is(err, repository.ErrAlreadyExists)).True()

	retrieved, err := repo.GetScan(ctx, scan.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.WorkspaceID).Equal(workspaceID)
	gt.V(t, retrieved.Status).Equal(types.ScanStatusPending)
	gt.V(t, retrieved.TotalSteps).Equal(model.TotalScanSteps)

	// Progress the scan and persist
	scan.Status = types.ScanStatusRunning
	scan.CompletedSteps = 3
	scan.CurrentStepIndex = 3
	gt.NoError(t, repo.SaveScan(ctx, scan))

	retrieved, err = repo.GetScan(ctx, scan.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.Status).Equal(types.ScanStatusRunning)
	gt.V(t, retrieved.CompletedSteps).Equal(3)

	// Complete the scan
	now := time.Now().UTC().Truncate(time.Second)
	scan.Status = types.ScanStatusCompleted
	scan.CompletedSteps = model.TotalScanSteps
	scan.Score = 78
	scan.IssuesFound = 4
	scan.CompletedAt = &now
	gt.NoError(t, repo.SaveScan(ctx, scan))

	retrieved, err = repo.GetScan(ctx, scan.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.Status).Equal(types.ScanStatusCompleted)
	gt.V(t, retrieved.Score).Equal(78)
	gt.V(t, retrieved.IssuesFound).Equal(4)
	gt.V(t, retrieved.CompletedAt).NotNil()

	// Unknown scan ID
	_, err = repo.GetScan(ctx, types.NewScanID())
	gt.B(t, errors.Is(err, repository.ErrNotFound)).True()
}

// TestActiveScanLookup tests the non-terminal scan lookup per workspace.
func TestActiveScanLookup(t *testing.T, repo interfaces.ScanRepository) {
	ctx := context.Background()
	workspaceID := newWorkspaceID()

	_, err := repo.GetActiveScan(ctx, workspaceID)
	gt.B(t, errors.Is(err, repository.ErrNotFound)).True()

	scan := model.NewScan(workspaceID, time.Now().UTC())
	gt.NoError(t, repo.CreateScan(ctx, scan))

	active, err := repo.GetActiveScan(ctx, workspaceID)
	gt.NoError(t, err)
	gt.V(t, active.ID).Equal(scan.ID)

	// Once terminal, no active scan remains
	now := time.Now().UTC()
	scan.Status = types.ScanStatusCancelled
	scan.CompletedAt = &now
	gt.NoError(t, repo.SaveScan(ctx, scan))

	_, err = repo.GetActiveScan(ctx, workspaceID)
	gt.B(t, errors.Is(err, repository.ErrNotFound)).True()

	// Latest completed scan lookup
	_, err = repo.GetLatestCompletedScan(ctx, workspaceID)
	gt.B(t, errors.Is(err, repository.ErrNotFound)).True()

	done := model.NewScan(workspaceID, time.Now().UTC().Add(-time.Minute))
	done.Status = types.ScanStatusCompleted
	done.CompletedSteps = model.TotalScanSteps
	done.Score = 82
	gt.NoError(t, repo.CreateScan(ctx, done))

	latest, err := repo.GetLatestCompletedScan(ctx, workspaceID)
	gt.NoError(t, err)
	gt.V(t, latest.ID).Equal(done.ID)
	gt.V(t, latest.Score).Equal(82)
}

// TestModuleScores tests per-scan module score persistence.
func TestModuleScores(t *testing.T, repo interfaces.ScanRepository) {
	ctx := context.Background()
	workspaceID := newWorkspaceID()

	scan := model.NewScan(workspaceID, time.Now().UTC())
	gt.NoError(t, repo.CreateScan(ctx, scan))

	gt.NoError(t, repo.PutModuleScore(ctx, &model.ModuleScore{
		ScanID: scan.ID, Module: types.ModuleFoundation, Score: 85, IssueCount: 1,
	}))
	gt.NoError(t, repo.PutModuleScore(ctx, &model.ModuleScore{
		ScanID: scan.ID, Module: types.ModulePersonas, Score: 70, IssueCount: 2,
	}))

	scores, err := repo.ListModuleScores(ctx, scan.ID)
	gt.NoError(t, err)
	gt.A(t, scores).Length(2)

	// Other scans see no scores
	other := model.NewScan(workspaceID, time.Now().UTC())
	scores, err = repo.ListModuleScores(ctx, other.ID)
	gt.NoError(t, err)
	gt.A(t, scores).Length(0)
}

// TestIssueNaturalKey tests upsert and natural-key lookup of issues.
func TestIssueNaturalKey(t *testing.T, repo interfaces.ScanRepository) {
	ctx := context.Background()
	workspaceID := newWorkspaceID()
	scanID := types.NewScanID()

	issue := &model.Issue{
		ID:              types.NewIssueID(),
		WorkspaceID:     workspaceID,
		Module:          types.ModulePersonas,
		RuleKey:         "persona.tone.missing",
		Severity:        types.SeverityHigh,
		Title:           "Persona tone is missing",
		Description:     "The persona has no tone defined",
		Status:          types.IssueStatusOpen,
		SourceRef:       "persona-1",
		FirstSeenScanID: scanID,
		LastSeenScanID:  scanID,
		CreatedAt:       time.Now().UTC().Truncate(time.Second),
	}
	gt.NoError(t, repo.PutIssue(ctx, issue))

	found, err := repo.FindIssueByKey(ctx, issue.Key())
	gt.NoError(t, err)
	gt.V(t, found.ID).Equal(issue.ID)

	// Upsert by ID keeps a single row with updated fields
	nextScanID := types.NewScanID()
	issue.LastSeenScanID = nextScanID
	gt.NoError(t, repo.PutIssue(ctx, issue))

	found, err = repo.FindIssueByKey(ctx, issue.Key())
	gt.NoError(t, err)
	gt.V(t, found.ID).Equal(issue.ID)
	gt.V(t, found.LastSeenScanID).Equal(nextScanID)
	gt.V(t, found.FirstSeenScanID).Equal(scanID)

	issues, err := repo.ListIssues(ctx, workspaceID, model.IssueFilter{})
	gt.NoError(t, err)
	gt.A(t, issues).Length(1)

	// Unknown natural key
	_, err = repo.FindIssueByKey(ctx, model.IssueKey{
		WorkspaceID: workspaceID,
		Module:      types.ModulePersonas,
		RuleKey:     "persona.tone.missing",
		SourceRef:   "persona-unknown",
	})
	gt.B(t, errors.Is(err, repository.ErrNotFound)).True()
}

// TestIssueLookupPrefersOpen tests that an OPEN row wins the natural-key
// lookup over a FIXED row with the same creation timestamp.
func TestIssueLookupPrefersOpen(t *testing.T, repo interfaces.ScanRepository) {
	ctx := context.Background()
	workspaceID := newWorkspaceID()
	scanID := types.NewScanID()
	createdAt := time.Now().UTC().Truncate(time.Second)

	mk := func(status types.IssueStatus) *model.Issue {
		return &model.Issue{
			ID:              types.NewIssueID(),
			WorkspaceID:     workspaceID,
			Module:          types.ModuleFoundation,
			RuleKey:         "foundation.mission.missing",
			Severity:        types.SeverityCritical,
			Title:           "Mission statement is missing",
			Description:     "test issue",
			Status:          status,
			SourceRef:       "foundation.mission",
			FirstSeenScanID: scanID,
			LastSeenScanID:  scanID,
			CreatedAt:       createdAt,
		}
	}

	fixed := mk(types.IssueStatusFixed)
	resolvedAt := createdAt
	fixed.ResolvedAt = &resolvedAt
	gt.NoError(t, repo.PutIssue(ctx, fixed))

	open := mk(types.IssueStatusOpen)
	gt.NoError(t, repo.PutIssue(ctx, open))

	found, err := repo.FindIssueByKey(ctx, open.Key())
	gt.NoError(t, err)
	gt.V(t, found.ID).Equal(open.ID)
	gt.V(t, found.Status).Equal(types.IssueStatusOpen)
}

// TestIssueFiltering tests status/module/severity filters.
func TestIssueFiltering(t *testing.T, repo interfaces.ScanRepository) {
	ctx := context.Background()
	workspaceID := newWorkspaceID()
	scanID := types.NewScanID()

	mk := func(module types.Module, rule types.RuleKey, severity types.Severity, status types.IssueStatus) *model.Issue {
		return &model.Issue{
			ID:              types.NewIssueID(),
			WorkspaceID:     workspaceID,
			Module:          module,
			RuleKey:         rule,
			Severity:        severity,
			Title:           string(rule),
			Description:     "test issue",
			Status:          status,
			SourceRef:       fmt.Sprintf("ref-%s", uuid.New().String()[:8]),
			FirstSeenScanID: scanID,
			LastSeenScanID:  scanID,
			CreatedAt:       time.Now().UTC().Truncate(time.Second),
		}
	}

	gt.NoError(t, repo.PutIssue(ctx, mk(types.ModuleFoundation, "foundation.mission.missing", types.SeverityCritical, types.IssueStatusOpen)))
	gt.NoError(t, repo.PutIssue(ctx, mk(types.ModuleStyle, "style.colors.missing", types.SeverityMedium, types.IssueStatusOpen)))
	gt.NoError(t, repo.PutIssue(ctx, mk(types.ModuleStyle, "style.fonts.missing", types.SeverityLow, types.IssueStatusDismissed)))

	open, err := repo.ListIssues(ctx, workspaceID, model.IssueFilter{
		Statuses: []types.IssueStatus{types.IssueStatusOpen},
	})
	gt.NoError(t, err)
	gt.A(t, open).Length(2)

	dismissed, err := repo.ListIssues(ctx, workspaceID, model.IssueFilter{
		Statuses: []types.IssueStatus{types.IssueStatusDismissed},
	})
	gt.NoError(t, err)
	gt.A(t, dismissed).Length(1)

	styles, err := repo.ListIssues(ctx, workspaceID, model.IssueFilter{
		Module: types.ModuleStyle,
	})
	gt.NoError(t, err)
	gt.A(t, styles).Length(2)

	critical, err := repo.ListIssues(ctx, workspaceID, model.IssueFilter{
		Severity: types.SeverityCritical,
	})
	gt.NoError(t, err)
	gt.A(t, critical).Length(1)

	// Other workspaces are isolated
	others, err := repo.ListIssues(ctx, newWorkspaceID(), model.IssueFilter{})
	gt.NoError(t, err)
	gt.A(t, others).Length(0)
}
