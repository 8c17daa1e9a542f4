package cli

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/brandlens/brandlens/pkg/cli/config"
	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/brandlens/brandlens/pkg/infra"
	"github.com/brandlens/brandlens/pkg/infra/brand"
	"github.com/brandlens/brandlens/pkg/usecase"
	"github.com/brandlens/brandlens/pkg/utils/logging"

	_ "github.com/lib/pq"
)

func scanCommand() *cli.Command {
	var (
		brandPath   string
		workspaceID string
		timeout     time.Duration

		database config.Database
		aiConfig config.AI
		bigQuery config.BigQuery
	)

	return &cli.Command{
		Name:    "scan",
		Aliases: []string{"sc"},
		Usage:   "Run a single alignment scan for a workspace and print the overview",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "brand-data",
				Aliases:     []string{"d"},
				Usage:       "Path to workspace brand data file (JSON)",
				Sources:     cli.EnvVars("BRANDLENS_BRAND_DATA"),
				Destination: &brandPath,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "workspace",
				Aliases:     []string{"w"},
				Usage:       "Workspace ID",
				Sources:     cli.EnvVars("BRANDLENS_WORKSPACE"),
				Destination: &workspaceID,
				Required:    true,
			},
			&cli.DurationFlag{
				Name:        "timeout",
				Usage:       "Max duration to wait for the scan to finish",
				Value:       time.Minute,
				Destination: &timeout,
			},
		}, database.Flags(), aiConfig.Flags(), bigQuery.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			return runScan(ctx, brandPath, types.WorkspaceID(workspaceID), timeout, &database, &aiConfig, &bigQuery)
		},
	}
}

func runScan(ctx context.Context, brandPath string, workspaceID types.WorkspaceID, timeout time.Duration, database *config.Database, aiConfig *config.AI, bigQuery *config.BigQuery) error {
	logging.Default().Info("starting scan",
		slog.String("brand_data", brandPath),
		slog.Any("workspace_id", workspaceID),
		slog.Any("database", database),
		slog.Any("ai", aiConfig),
		slog.Any("bigquery", bigQuery),
	)

	repo, err := database.NewRepository()
	if err != nil {
		return err
	}

	store, err := brand.Load(brandPath)
	if err != nil {
		return err
	}

	infraOptions := []infra.Option{
		infra.WithScanRepository(repo),
		infra.WithSnapshotSource(store),
		infra.WithModuleWriter(store),
	}
	if gen := aiConfig.NewGenerator(); gen != nil {
		infraOptions = append(infraOptions, infra.WithTextGenerator(gen))
	}
	if bqClient, err := bigQuery.NewClient(ctx); err != nil {
		return err
	} else if bqClient != nil {
		infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
	}

	uc := usecase.New(infra.New(infraOptions...))

	scan, err := uc.StartScan(ctx, workspaceID)
	if err != nil {
		return goerr.Wrap(err, "failed to start scan")
	}

	if err := waitForScan(ctx, uc, scan.ID, timeout); err != nil {
		return err
	}

	overview, err := uc.GetOverview(ctx, workspaceID, model.IssueFilter{})
	if err != nil {
		return goerr.Wrap(err, "failed to get overview")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(overview); err != nil {
		return goerr.Wrap(err, "failed to print overview")
	}

	return nil
}

// waitForScan polls the scan status until it reaches a terminal state.
func waitForScan(ctx context.Context, uc *usecase.UseCase, scanID types.ScanID, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return goerr.Wrap(ctx.Err(), "scan did not finish in time", goerr.V("scan_id", scanID))

		case <-ticker.C:
			status, err := uc.GetScanStatus(ctx, scanID)
			if err != nil {
				return goerr.Wrap(err, "failed to get scan status")
			}

			switch status.Status {
			case types.ScanStatusCompleted:
				logging.Default().Info("scan completed",
					slog.Int("score", status.Score),
					slog.Int("issues_found", status.IssuesFound),
				)
				return nil

			case types.ScanStatusFailed:
				return goerr.New("scan failed", goerr.V("reason", status.FailureReason))

			case types.ScanStatusCancelled:
				return goerr.New("scan was cancelled", goerr.V("scan_id", scanID))
			}
		}
	}
}
