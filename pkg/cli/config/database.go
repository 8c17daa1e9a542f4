package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/brandlens/brandlens/pkg/domain/interfaces"
	"github.com/brandlens/brandlens/pkg/repository/memory"
	"github.com/brandlens/brandlens/pkg/repository/postgres"
	"github.com/brandlens/brandlens/pkg/repository/sqlite"
)

// Database selects the scan repository backend. A PostgreSQL DSN wins over
// a SQLite path; with neither set the repository is in-memory and scans do
// not survive a restart.
type Database struct {
	postgresDSN string
	sqlitePath  string
}

func (x *Database) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "postgres-dsn",
			Usage:       "PostgreSQL DSN for the scan repository",
			Category:    "Database",
			Sources:     cli.EnvVars("BRANDLENS_POSTGRES_DSN"),
			Destination: &x.postgresDSN,
		},
		&cli.StringFlag{
			Name:        "sqlite-path",
			Usage:       "SQLite database file for the scan repository",
			Category:    "Database",
			Sources:     cli.EnvVars("BRANDLENS_SQLITE_PATH"),
			Destination: &x.sqlitePath,
		},
	}
}

func (x *Database) NewRepository() (interfaces.ScanRepository, error) {
	switch {
	case x.postgresDSN != "":
		repo, err := postgres.New(x.postgresDSN)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open postgres repository")
		}
		return repo, nil

	case x.sqlitePath != "":
		repo, err := sqlite.New(x.sqlitePath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open sqlite repository", goerr.V("path", x.sqlitePath))
		}
		return repo, nil

	default:
		return memory.New(), nil
	}
}

func (x *Database) Backend() string {
	switch {
	case x.postgresDSN != "":
		return "postgres"
	case x.sqlitePath != "":
		return "sqlite"
	default:
		return "memory"
	}
}

func (x *Database) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("backend", x.Backend()),
		slog.Any("sqlitePath", x.sqlitePath),
		slog.Any("postgresConfigured", x.postgresDSN != ""),
	)
}

var _ slog.LogValuer = (*Database)(nil)
