package postgres_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/brandlens/brandlens/pkg/repository/postgres"
	"github.com/brandlens/brandlens/pkg/repository/testhelper"
	"github.com/brandlens/brandlens/pkg/utils/testutil"
)

func TestPostgresScanRepository(t *testing.T) {
	dsn := testutil.GetEnvOrSkip(t, "BRANDLENS_TEST_POSTGRES_DSN")
	repo := gt.R1(postgres.New(dsn)).NoError(t)
	testhelper.TestAll(t, repo)
}
