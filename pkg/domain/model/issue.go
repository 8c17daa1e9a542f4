package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/brandlens/brandlens/pkg/domain/types"
)

// Issue is a detected inconsistency with a lifecycle. Issues are never
// deleted; reconciliation and remediation only transition their status.
type Issue struct {
	ID          types.IssueID     `json:"id"`
	WorkspaceID types.WorkspaceID `json:"workspaceId"`
	Module      types.Module      `json:"module"`
	RuleKey     types.RuleKey     `json:"ruleKey"`
	Severity    types.Severity    `json:"severity"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      types.IssueStatus `json:"status"`

	// SourceRef identifies the offending entity within its module, e.g.
	// a persona or campaign ID, or a field path for singleton modules.
	SourceRef string `json:"sourceRef"`

	FirstSeenScanID types.ScanID `json:"firstSeenScanId"`
	LastSeenScanID  types.ScanID `json:"lastSeenScanId"`

	CreatedAt  time.Time  `json:"createdAt"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
}

// IssueKey is the natural key used to deduplicate issues across scan runs.
type IssueKey struct {
	WorkspaceID types.WorkspaceID
	Module      types.Module
	RuleKey     types.RuleKey
	SourceRef   string
}

func (x *Issue) Key() IssueKey {
	return IssueKey{
		WorkspaceID: x.WorkspaceID,
		Module:      x.Module,
		RuleKey:     x.RuleKey,
		SourceRef:   x.SourceRef,
	}
}

// SourceRefOrModule returns the most specific name available for the
// offending target, for human-facing messages.
func (x *Issue) SourceRefOrModule() string {
	if x.SourceRef != "" {
		return x.SourceRef
	}
	return string(x.Module)
}

func (x *Issue) Validate() error {
	if x.ID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "issue ID is empty")
	}
	if x.WorkspaceID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "workspace ID is empty")
	}
	if !x.Module.IsValid() {
		return goerr.Wrap(types.ErrValidationFailed, "unknown module", goerr.V("module", x.Module))
	}
	if x.RuleKey == "" {
		return goerr.Wrap(types.ErrValidationFailed, "rule key is empty")
	}
	if !x.Severity.IsValid() {
		return goerr.Wrap(types.ErrValidationFailed, "unknown severity", goerr.V("severity", x.Severity))
	}
	return nil
}

// IssueFilter narrows ListIssues. Zero values mean "no constraint"; a nil
// Statuses slice defaults to OPEN only at the usecase layer.
type IssueFilter struct {
	Statuses []types.IssueStatus
	Module   types.Module
	Severity types.Severity
}

// Matches reports whether the issue passes the filter. Shared by the
// in-memory repository and usecase-side narrowing.
func (f IssueFilter) Matches(issue *Issue) bool {
	if len(f.Statuses) > 0 {
		ok := false
		for _, s := range f.Statuses {
			if issue.Status == s {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if f.Module != "" && issue.Module != f.Module {
		return false
	}
	if f.Severity != "" && issue.Severity != f.Severity {
		return false
	}
	return true
}
