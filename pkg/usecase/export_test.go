package usecase_test

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/gt"

	"github.com/brandlens/brandlens/pkg/domain/mock"
	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/brandlens/brandlens/pkg/infra"
	"github.com/brandlens/brandlens/pkg/repository/memory"
	"github.com/brandlens/brandlens/pkg/usecase"
)

func TestCompletedScanIsExported(t *testing.T) {
	source := &mock.SnapshotSourceMock{}
	source.SnapshotFunc = func(ctx context.Context, workspaceID types.WorkspaceID) (*model.WorkspaceSnapshot, error) {
		return cleanSnapshot(), nil
	}

	bq := &mock.BigQueryMock{}
	bq.GetMetadataFunc = func(ctx context.Context) (*bigquery.TableMetadata, error) {
		return nil, nil
	}
	bq.CreateTableFunc = func(ctx context.Context, md *bigquery.TableMetadata) error {
		gt.V(t, len(md.Schema) > 0).Equal(true)
		return nil
	}
	bq.InsertFunc = func(ctx context.Context, schema bigquery.Schema, data any) error {
		return nil
	}

	uc := usecase.New(infra.New(
		infra.WithScanRepository(memory.New()),
		infra.WithSnapshotSource(source),
		infra.WithBigQuery(bq),
	))

	scan := gt.R1(uc.StartScan(context.Background(), testWorkspace)).NoError(t)
	waitScan(t, uc, scan.ID)

	// Export runs after the terminal transition; give it a moment.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && len(bq.InsertCalls()) == 0 {
		time.Sleep(5 * time.Millisecond)
	}

	gt.A(t, bq.GetMetadataCalls()).Length(1)
	gt.A(t, bq.CreateTableCalls()).Length(1)

	inserts := bq.InsertCalls()
	gt.A(t, inserts).Length(1)

	record, ok := inserts[0].Data.(*model.ScanRecord)
	gt.True(t, ok)
	gt.V(t, record.Scan.ID).Equal(scan.ID)
	gt.V(t, record.Scan.Score).Equal(100)
	gt.A(t, record.ModuleScores).Length(7)
}

func TestExportIsBestEffort(t *testing.T) {
	source := &mock.SnapshotSourceMock{}
	source.SnapshotFunc = func(ctx context.Context, workspaceID types.WorkspaceID) (*model.WorkspaceSnapshot, error) {
		return cleanSnapshot(), nil
	}

	bq := &mock.BigQueryMock{}
	bq.GetMetadataFunc = func(ctx context.Context) (*bigquery.TableMetadata, error) {
		return nil, context.DeadlineExceeded
	}

	uc := usecase.New(infra.New(
		infra.WithScanRepository(memory.New()),
		infra.WithSnapshotSource(source),
		infra.WithBigQuery(bq),
	))

	// A broken analytics sink must not fail the scan itself.
	scan := gt.R1(uc.StartScan(context.Background(), testWorkspace)).NoError(t)
	status := waitScan(t, uc, scan.ID)
	gt.V(t, status.Status).Equal(types.ScanStatusCompleted)
}
