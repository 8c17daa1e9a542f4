package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/brandlens/brandlens/pkg/cli/config"
	"github.com/brandlens/brandlens/pkg/controller/server"
	"github.com/brandlens/brandlens/pkg/infra"
	"github.com/brandlens/brandlens/pkg/infra/brand"
	"github.com/brandlens/brandlens/pkg/usecase"
	"github.com/brandlens/brandlens/pkg/utils/logging"

	_ "github.com/lib/pq"
)

func serveCommand() *cli.Command {
	var (
		addr      string
		brandPath string

		database config.Database
		aiConfig config.AI
		bigQuery config.BigQuery
		sentry   config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("BRANDLENS_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "brand-data",
			Usage:       "Path to workspace brand data file (JSON)",
			Sources:     cli.EnvVars("BRANDLENS_BRAND_DATA"),
			Destination: &brandPath,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			database.Flags(),
			aiConfig.Flags(),
			bigQuery.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("BrandData", brandPath),
				slog.Any("Database", &database),
				slog.Any("AI", &aiConfig),
				slog.Any("BigQuery", &bigQuery),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			repo, err := database.NewRepository()
			if err != nil {
				return err
			}

			store := brand.New()
			if brandPath != "" {
				store, err = brand.Load(brandPath)
				if err != nil {
					return err
				}
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

			clients := infra.New(infraOptions...)

			uc := usecase.New(clients)
			s := server.New(uc)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
