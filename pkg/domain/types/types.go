package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	WorkspaceID string
	ScanID      string
	IssueID     string
	RequestID   string

	Module   string
	RuleKey  string
	Severity string

	ScanStatus  string
	IssueStatus string

	FixLabel  string
	FixSource string

	AIAPIKey string

	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
)

func NewScanID() ScanID {
	return ScanID(uuid.NewString())
}

func NewIssueID() IssueID {
	return IssueID(uuid.NewString())
}

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x WorkspaceID) String() string     { return string(x) }
func (x ScanID) String() string          { return string(x) }
func (x IssueID) String() string         { return string(x) }
func (x Module) String() string          { return string(x) }
func (x RuleKey) String() string         { return string(x) }
func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }

const (
	ModuleFoundation  Module = "brand_foundation"
	ModuleStyle       Module = "brand_style"
	ModulePersonas    Module = "personas"
	ModuleProducts    Module = "products"
	ModuleCampaigns   Module = "campaigns"
	ModuleInsights    Module = "market_insights"
	ModuleConsistency Module = "consistency"
)

// Modules lists every module an Issue or ModuleScore may belong to,
// including the cross-module consistency check.
var Modules = []Module{
	ModuleFoundation,
	ModuleStyle,
	ModulePersonas,
	ModuleProducts,
	ModuleCampaigns,
	ModuleInsights,
	ModuleConsistency,
}

func (x Module) IsValid() bool {
	for _, m := range Modules {
		if x == m {
			return true
		}
	}
	return false
}

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

func (x Severity) IsValid() bool {
	switch x {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

const (
	ScanStatusPending   ScanStatus = "PENDING"
	ScanStatusRunning   ScanStatus = "RUNNING"
	ScanStatusCompleted ScanStatus = "COMPLETED"
	ScanStatusFailed    ScanStatus = "FAILED"
	ScanStatusCancelled ScanStatus = "CANCELLED"
)

// IsTerminal reports whether the scan can no longer change state.
func (x ScanStatus) IsTerminal() bool {
	switch x {
	case ScanStatusCompleted, ScanStatusFailed, ScanStatusCancelled:
		return true
	}
	return false
}

const (
	IssueStatusOpen      IssueStatus = "OPEN"
	IssueStatusFixed     IssueStatus = "FIXED"
	IssueStatusDismissed IssueStatus = "DISMISSED"
)

func (x IssueStatus) IsValid() bool {
	switch x {
	case IssueStatusOpen, IssueStatusFixed, IssueStatusDismissed:
		return true
	}
	return false
}

// IsTerminal reports whether the issue lifecycle is closed. Terminal issues
// are never reopened, only kept for audit history.
func (x IssueStatus) IsTerminal() bool {
	return x == IssueStatusFixed || x == IssueStatusDismissed
}

const (
	FixLabelA FixLabel = "A"
	FixLabelB FixLabel = "B"
	FixLabelC FixLabel = "C"
)

const (
	FixSourceAI       FixSource = "AI"
	FixSourceTemplate FixSource = "TEMPLATE"
)

func (x AIAPIKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x AIAPIKey) String() string {
	return "***********"
}
