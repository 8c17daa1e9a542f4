package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/brandlens/brandlens/pkg/repository/sqlite"
	"github.com/brandlens/brandlens/pkg/repository/testhelper"
)

func TestSQLiteScanRepository(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "brandlens.db")
	repo := gt.R1(sqlite.New(dbPath)).NoError(t)
	testhelper.TestAll(t, repo)
}
