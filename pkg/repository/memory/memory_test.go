package memory_test

import (
	"testing"

	"github.com/brandlens/brandlens/pkg/repository/memory"
	"github.com/brandlens/brandlens/pkg/repository/testhelper"
)

func TestMemoryScanRepository(t *testing.T) {
	repo := memory.New()
	testhelper.TestAll(t, repo)
}
