package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"

	"github.com/brandlens/brandlens/pkg/domain/interfaces"
	"github.com/brandlens/brandlens/pkg/domain/model"
)

// exportScan sends a finished scan to BigQuery for analytics. It is a
// no-op when no BigQuery client is configured.
func (x *UseCase) exportScan(ctx context.Context, scan *model.Scan, moduleScores []*model.ModuleScore) error {
	bq := x.clients.BigQuery()
	if bq == nil {
		return nil
	}

	record := &model.ScanRecord{
		Scan:         *scan,
		ModuleScores: moduleScores,
		OpenIssues:   scan.IssuesFound,
		Timestamp:    scan.StartedAt.UnixMicro(),
	}

	schema, err := createOrUpdateScanTable(ctx, bq, record)
	if err != nil {
		return err
	}

	if err := bq.Insert(ctx, schema, record); err != nil {
		return goerr.Wrap(err, "failed to insert scan record to BigQuery", goerr.V("scan_id", scan.ID))
	}

	return nil
}

func createOrUpdateScanTable(ctx context.Context, bq interfaces.BigQuery, record *model.ScanRecord) (bigquery.Schema, error) {
	schema, err := bqs.Infer(record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer scan record schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}
		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}
