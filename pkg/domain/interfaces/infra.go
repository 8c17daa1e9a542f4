package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . TextGenerator BigQuery SnapshotSource ModuleWriter

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
)

// GenStatus tags the outcome of a text-generation call so the caller can
// branch on dependency health without inspecting error strings.
type GenStatus int

const (
	GenOK GenStatus = iota
	GenTimedOut
	GenFailed
)

// GenResult is the tagged result of one generation call. Texts is only
// meaningful when Status is GenOK.
type GenResult struct {
	Status GenStatus
	Texts  []string
	Err    error
}

// TextGenerator is the AI dependency used for fix proposals. Implementations
// must honor ctx deadlines; the usecase layer applies its own bounded
// timeout and fallback, so a degraded generator must never block forever.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, n int) GenResult
}

// SnapshotSource provides the read-only view of a workspace's brand data,
// owned by the per-module CRUD services outside this system.
type SnapshotSource interface {
	Snapshot(ctx context.Context, workspaceID types.WorkspaceID) (*model.WorkspaceSnapshot, error)
}

// ModuleWriter applies remediation content back through the owning module's
// write API.
type ModuleWriter interface {
	Apply(ctx context.Context, workspaceID types.WorkspaceID, module types.Module, sourceRef string, content string) error
}

// BigQuery receives finished scan records for analytics.
type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error
	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}
