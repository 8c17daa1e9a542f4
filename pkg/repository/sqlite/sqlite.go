package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/brandlens/brandlens/pkg/domain/interfaces"
	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/brandlens/brandlens/pkg/repository"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS scans (
	id TEXT PRIMARY KEY,
	workspace_id TEXT NOT NULL,
	status TEXT NOT NULL,
	current_step_index INTEGER NOT NULL DEFAULT 0,
	completed_steps INTEGER NOT NULL DEFAULT 0,
	total_steps INTEGER NOT NULL,
	score INTEGER NOT NULL DEFAULT 0,
	issues_found INTEGER NOT NULL DEFAULT 0,
	cancel_requested INTEGER NOT NULL DEFAULT 0,
	started_at TIMESTAMP NOT NULL,
	completed_at TIMESTAMP,
	failure_reason TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_scans_workspace ON scans (workspace_id, status);

CREATE TABLE IF NOT EXISTS module_scores (
	scan_id TEXT NOT NULL,
	module TEXT NOT NULL,
	score INTEGER NOT NULL,
	issue_count INTEGER NOT NULL,
	PRIMARY KEY (scan_id, module)
);

CREATE TABLE IF NOT EXISTS issues (
	id TEXT PRIMARY KEY,
	workspace_id TEXT NOT NULL,
	module TEXT NOT NULL,
	rule_key TEXT NOT NULL,
	severity TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	status TEXT NOT NULL,
	source_ref TEXT NOT NULL,
	first_seen_scan_id TEXT NOT NULL,
	last_seen_scan_id TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	resolved_at TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_issues_open_key
	ON issues (workspace_id, module, rule_key, source_ref) WHERE status = 'OPEN';
CREATE INDEX IF NOT EXISTS idx_issues_workspace ON issues (workspace_id, status);
`

type scanRepository struct {
	db *sql.DB
}

// New opens (or creates) an SQLite database at the given path and applies
// the schema.
func New(path string) (interfaces.ScanRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database", goerr.V("path", path))
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to apply schema", goerr.V("path", path))
	}

	return &scanRepository{db: db}, nil
}

func (r *scanRepository) CreateScan(ctx context.Context, scan *model.Scan) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO scans (id, workspace_id, status, current_step_index, completed_steps,
			total_steps, score, issues_found, cancel_requested, started_at, completed_at, failure_reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`,
		scan.ID, scan.WorkspaceID, scan.Status, scan.CurrentStepIndex, scan.CompletedSteps,
		scan.TotalSteps, scan.Score, scan.IssuesFound, boolToInt(scan.CancelRequested),
		scan.StartedAt.UTC(), nullTime(scan.CompletedAt), scan.FailureReason,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to insert scan", goerr.V("scanID", scan.ID))
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return goerr.Wrap(repository.ErrAlreadyExists, "scan already exists", goerr.V("scanID", scan.ID))
	}
	return nil
}

func (r *scanRepository) SaveScan(ctx context.Context, scan *model.Scan) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE scans SET status = ?, current_step_index = ?, completed_steps = ?,
			score = ?, issues_found = ?, cancel_requested = ?, completed_at = ?, failure_reason = ?
		WHERE id = ?`,
		scan.Status, scan.CurrentStepIndex, scan.CompletedSteps,
		scan.Score, scan.IssuesFound, boolToInt(scan.CancelRequested),
		nullTime(scan.CompletedAt), scan.FailureReason, scan.ID,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to update scan", goerr.V("scanID", scan.ID))
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return r.CreateScan(ctx, scan)
	}
	return nil
}

const scanColumns = `id, workspace_id, status, current_step_index, completed_steps,
	total_steps, score, issues_found, cancel_requested, started_at, completed_at, failure_reason`

func (r *scanRepository) GetScan(ctx context.Context, scanID types.ScanID) (*model.Scan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+scanColumns+` FROM scans WHERE id = ?`, scanID)
	return scanScanRow(row, goerr.V("scanID", scanID))
}

func (r *scanRepository) GetActiveScan(ctx context.Context, workspaceID types.WorkspaceID) (*model.Scan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+scanColumns+` FROM scans
		WHERE workspace_id = ? AND status IN (?, ?) LIMIT 1`,
		workspaceID, types.ScanStatusPending, types.ScanStatusRunning)
	return scanScanRow(row, goerr.V("workspaceID", workspaceID))
}

func (r *scanRepository) GetLatestCompletedScan(ctx context.Context, workspaceID types.WorkspaceID) (*model.Scan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+scanColumns+` FROM scans
		WHERE workspace_id = ? AND status = ?
		ORDER BY started_at DESC LIMIT 1`,
		workspaceID, types.ScanStatusCompleted)
	return scanScanRow(row, goerr.V("workspaceID", workspaceID))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScanRow(row rowScanner, options ...goerr.Option) (*model.Scan, error) {
	var (
		scan        model.Scan
		cancel      int
		completedAt sql.NullTime
	)
	err := row.Scan(
		&scan.ID, &scan.WorkspaceID, &scan.Status, &scan.CurrentStepIndex, &scan.CompletedSteps,
		&scan.TotalSteps, &scan.Score, &scan.IssuesFound, &cancel, &scan.StartedAt,
		&completedAt, &scan.FailureReason,
	)
	if err == sql.ErrNoRows {
		return nil, goerr.Wrap(repository.ErrNotFound, "scan not found", options...)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to scan row", options...)
	}
	scan.CancelRequested = cancel != 0
	if completedAt.Valid {
		t := completedAt.Time
		scan.CompletedAt = &t
	}
	return &scan, nil
}

func (r *scanRepository) PutModuleScore(ctx context.Context, score *model.ModuleScore) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO module_scores (scan_id, module, score, issue_count)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (scan_id, module) DO UPDATE SET score = excluded.score, issue_count = excluded.issue_count`,
		score.ScanID, score.Module, score.Score, score.IssueCount,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to insert module score",
			goerr.V("scanID", score.ScanID), goerr.V("module", score.Module))
	}
	return nil
}

func (r *scanRepository) ListModuleScores(ctx context.Context, scanID types.ScanID) ([]*model.ModuleScore, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT scan_id, module, score, issue_count FROM module_scores WHERE scan_id = ? ORDER BY module`,
		scanID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query module scores", goerr.V("scanID", scanID))
	}
	defer rows.Close()

	var scores []*model.ModuleScore
	for rows.Next() {
		var score model.ModuleScore
		if err := rows.Scan(&score.ScanID, &score.Module, &score.Score, &score.IssueCount); err != nil {
			return nil, goerr.Wrap(err, "failed to scan module score row")
		}
		scores = append(scores, &score)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate module scores")
	}

	return scores, nil
}

func (r *scanRepository) PutIssue(ctx context.Context, issue *model.Issue) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO issues (id, workspace_id, module, rule_key, severity, title, description,
			status, source_ref, first_seen_scan_id, last_seen_scan_id, created_at, resolved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			severity = excluded.severity,
			title = excluded.title,
			description = excluded.description,
			status = excluded.status,
			last_seen_scan_id = excluded.last_seen_scan_id,
			resolved_at = excluded.resolved_at`,
		issue.ID, issue.WorkspaceID, issue.Module, issue.RuleKey, issue.Severity,
		issue.Title, issue.Description, issue.Status, issue.SourceRef,
		issue.FirstSeenScanID, issue.LastSeenScanID, issue.CreatedAt.UTC(), nullTime(issue.ResolvedAt),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to upsert issue", goerr.V("issueID", issue.ID))
	}
	return nil
}

const issueColumns = `id, workspace_id, module, rule_key, severity, title, description,
	status, source_ref, first_seen_scan_id, last_seen_scan_id, created_at, resolved_at`

func (r *scanRepository) GetIssue(ctx context.Context, issueID types.IssueID) (*model.Issue, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+issueColumns+` FROM issues WHERE id = ?`, issueID)
	return scanIssueRow(row, goerr.V("issueID", issueID))
}

func (r *scanRepository) FindIssueByKey(ctx context.Context, key model.IssueKey) (*model.Issue, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+issueColumns+` FROM issues
		WHERE workspace_id = ? AND module = ? AND rule_key = ? AND source_ref = ?
		ORDER BY status = 'OPEN' DESC, created_at DESC LIMIT 1`,
		key.WorkspaceID, key.Module, key.RuleKey, key.SourceRef)
	return scanIssueRow(row,
		goerr.V("workspaceID", key.WorkspaceID),
		goerr.V("module", key.Module),
		goerr.V("ruleKey", key.RuleKey),
		goerr.V("sourceRef", key.SourceRef),
	)
}

func scanIssueRow(row rowScanner, options ...goerr.Option) (*model.Issue, error) {
	var (
		issue      model.Issue
		resolvedAt sql.NullTime
	)
	err := row.Scan(
		&issue.ID, &issue.WorkspaceID, &issue.Module, &issue.RuleKey, &issue.Severity,
		&issue.Title, &issue.Description, &issue.Status, &issue.SourceRef,
		&issue.FirstSeenScanID, &issue.LastSeenScanID, &issue.CreatedAt, &resolvedAt,
	)
	if err == sql.ErrNoRows {
		return nil, goerr.Wrap(repository.ErrNotFound, "issue not found", options...)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to scan issue row", options...)
	}
	if resolvedAt.Valid {
		t := resolvedAt.Time
		issue.ResolvedAt = &t
	}
	return &issue, nil
}

func (r *scanRepository) ListIssues(ctx context.Context, workspaceID types.WorkspaceID, filter model.IssueFilter) ([]*model.Issue, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+issueColumns+` FROM issues WHERE workspace_id = ? ORDER BY created_at, id`,
		workspaceID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query issues", goerr.V("workspaceID", workspaceID))
	}
	defer rows.Close()

	var issues []*model.Issue
	for rows.Next() {
		issue, err := scanIssueRow(rows)
		if err != nil {
			return nil, err
		}
		if !filter.Matches(issue) {
			continue
		}
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate issues")
	}

	return issues, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
