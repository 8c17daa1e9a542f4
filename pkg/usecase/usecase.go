package usecase

import (
	"sync"
	"time"

	"github.com/brandlens/brandlens/pkg/domain/interfaces"
	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/brandlens/brandlens/pkg/infra"
	"github.com/brandlens/brandlens/pkg/scanner"
	"github.com/brandlens/brandlens/pkg/scoring"
)

type UseCase struct {
	clients  *infra.Clients
	scanners []scanner.ModuleScanner
	weights  scoring.Weights

	aiTimeout time.Duration
	aiRetries int

	// fixSem bounds concurrent fix-option generation across issues so a
	// burst of remediation requests cannot overwhelm the AI dependency.
	fixSem chan struct{}

	// fixOptions holds the most recently generated option set per issue.
	// Options are ephemeral; they only outlive the request so ApplyFix can
	// resolve an option ID.
	fixOptions sync.Map // types.IssueID -> []*model.FixOption

	// wsLocks serializes scan starts and issue mutations per workspace.
	wsLocks sync.Map // types.WorkspaceID -> *sync.Mutex

	now func() time.Time
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithScanners replaces the default scanner registry. The list must keep
// the pipeline shape: six per-module scanners plus the consistency check.
func WithScanners(scanners []scanner.ModuleScanner) Option {
	return func(x *UseCase) {
		x.scanners = scanners
	}
}

// WithWeights sets the module weight map used by the scoring engine.
func WithWeights(weights scoring.Weights) Option {
	return func(x *UseCase) {
		x.weights = weights
	}
}

// WithAITimeout bounds each call to the text generator.
func WithAITimeout(d time.Duration) Option {
	return func(x *UseCase) {
		x.aiTimeout = d
	}
}

// WithFixConcurrency bounds concurrent fix-option generation.
func WithFixConcurrency(n int) Option {
	return func(x *UseCase) {
		x.fixSem = make(chan struct{}, n)
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(x *UseCase) {
		x.now = now
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:   clients,
		scanners:  scanner.Registry(nil),
		aiTimeout: 3 * time.Second,
		aiRetries: 1,
		fixSem:    make(chan struct{}, 4),
		now:       func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

func (x *UseCase) workspaceLock(workspaceID types.WorkspaceID) *sync.Mutex {
	mu, _ := x.wsLocks.LoadOrStore(workspaceID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (x *UseCase) cachedFixOptions(issueID types.IssueID) []*model.FixOption {
	if v, ok := x.fixOptions.Load(issueID); ok {
		return v.([]*model.FixOption)
	}
	return nil
}
