package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/brandlens/brandlens/pkg/domain/interfaces"
	"github.com/brandlens/brandlens/pkg/domain/mock"
	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/brandlens/brandlens/pkg/infra"
	"github.com/brandlens/brandlens/pkg/repository/memory"
	"github.com/brandlens/brandlens/pkg/usecase"
)

func putOpenIssue(t *testing.T, repo interfaces.ScanRepository) *model.Issue {
	t.Helper()

	issue := &model.Issue{
		ID:              types.NewIssueID(),
		WorkspaceID:     testWorkspace,
		Module:          types.ModuleFoundation,
		RuleKey:         "foundation.mission.missing",
		Severity:        types.SeverityCritical,
		Title:           "Brand mission is missing",
		Description:     "The foundation has no mission statement.",
		Status:          types.IssueStatusOpen,
		SourceRef:       "foundation.mission",
		FirstSeenScanID: types.NewScanID(),
		LastSeenScanID:  types.NewScanID(),
		CreatedAt:       time.Now().UTC(),
	}
	gt.NoError(t, repo.PutIssue(context.Background(), issue))
	return issue
}

func TestGenerateFixOptionsFromAI(t *testing.T) {
	repo := memory.New()
	issue := putOpenIssue(t, repo)

	gen := &mock.TextGeneratorMock{}
	gen.GenerateFunc = func(ctx context.Context, prompt string, n int) interfaces.GenResult {
		gt.V(t, n).Equal(3)
		return interfaces.GenResult{
			Status: interfaces.GenOK,
			Texts:  []string{"Empower every team", "Make brands honest", "Tooling for clarity"},
		}
	}

	uc := usecase.New(infra.New(
		infra.WithScanRepository(repo),
		infra.WithTextGenerator(gen),
	))

	options := gt.R1(uc.GenerateFixOptions(context.Background(), issue.ID)).NoError(t)
	gt.A(t, options).Length(3)

	labels := []types.FixLabel{types.FixLabelA, types.FixLabelB, types.FixLabelC}
	for i, option := range options {
		gt.V(t, option.Label).Equal(labels[i])
		gt.V(t, option.Source).Equal(types.FixSourceAI)
		gt.V(t, option.IssueID).Equal(issue.ID)
		gt.V(t, option.PreviewText).NotEqual("")
	}
	gt.A(t, gen.GenerateCalls()).Length(1)
}

func TestGenerateFixOptionsFallsBackToTemplates(t *testing.T) {
	testCases := map[string]interfaces.GenResult{
		"generator fails":     {Status: interfaces.GenFailed, Err: errors.New("upstream 500")},
		"generator times out": {Status: interfaces.GenTimedOut},
		"too few proposals":   {Status: interfaces.GenOK, Texts: []string{"only one"}},
	}

	for name, result := range testCases {
		t.Run(name, func(t *testing.T) {
			repo := memory.New()
			issue := putOpenIssue(t, repo)

			gen := &mock.TextGeneratorMock{}
			gen.GenerateFunc = func(ctx context.Context, prompt string, n int) interfaces.GenResult {
				return result
			}

			uc := usecase.New(infra.New(
				infra.WithScanRepository(repo),
				infra.WithTextGenerator(gen),
			), usecase.WithAITimeout(50*time.Millisecond))

			options := gt.R1(uc.GenerateFixOptions(context.Background(), issue.ID)).NoError(t)
			gt.A(t, options).Length(3)
			for _, option := range options {
				gt.V(t, option.Source).Equal(types.FixSourceTemplate)
			}

			// One retry after the first degraded attempt.
			gt.A(t, gen.GenerateCalls()).Length(2)
		})
	}
}

func TestGenerateFixOptionsWithoutGenerator(t *testing.T) {
	repo := memory.New()
	issue := putOpenIssue(t, repo)

	uc := usecase.New(infra.New(infra.WithScanRepository(repo)))

	options := gt.R1(uc.GenerateFixOptions(context.Background(), issue.ID)).NoError(t)
	gt.A(t, options).Length(3)
	for _, option := range options {
		gt.V(t, option.Source).Equal(types.FixSourceTemplate)
	}
}

func TestGenerateFixOptionsErrors(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(infra.New(infra.WithScanRepository(repo)))
	ctx := context.Background()

	t.Run("unknown issue", func(t *testing.T) {
		_, err := uc.GenerateFixOptions(ctx, types.NewIssueID())
		gt.True(t, errors.Is(err, types.ErrIssueNotFound))
	})

	t.Run("terminal issue", func(t *testing.T) {
		issue := putOpenIssue(t, repo)
		now := time.Now().UTC()
		issue.Status = types.IssueStatusFixed
		issue.ResolvedAt = &now
		gt.NoError(t, repo.PutIssue(ctx, issue))

		_, err := uc.GenerateFixOptions(ctx, issue.ID)
		gt.True(t, errors.Is(err, types.ErrTerminalIssue))
	})
}

func TestApplyFixWithOption(t *testing.T) {
	repo := memory.New()
	issue := putOpenIssue(t, repo)

	writer := &mock.ModuleWriterMock{}
	writer.ApplyFunc = func(ctx context.Context, workspaceID types.WorkspaceID, module types.Module, sourceRef string, content string) error {
		return nil
	}

	uc := usecase.New(infra.New(
		infra.WithScanRepository(repo),
		infra.WithModuleWriter(writer),
	))
	ctx := context.Background()

	options := gt.R1(uc.GenerateFixOptions(ctx, issue.ID)).NoError(t)

	applied := gt.R1(uc.ApplyFix(ctx, &model.ApplyFixInput{
		IssueID:  issue.ID,
		OptionID: options[0].ID,
	})).NoError(t)
	gt.V(t, applied.Status).Equal(types.IssueStatusFixed)
	gt.V(t, applied.ResolvedAt == nil).Equal(false)

	calls := writer.ApplyCalls()
	gt.A(t, calls).Length(1)
	gt.V(t, calls[0].WorkspaceID).Equal(testWorkspace)
	gt.V(t, calls[0].Module).Equal(types.ModuleFoundation)
	gt.V(t, calls[0].SourceRef).Equal("foundation.mission")
	gt.V(t, calls[0].Content).Equal(options[0].PreviewText)

	// Fixing a fixed issue is a conflict.
	_, err := uc.ApplyFix(ctx, &model.ApplyFixInput{IssueID: issue.ID, Text: "again"})
	gt.True(t, errors.Is(err, types.ErrTerminalIssue))
}

func TestApplyFixWithManualText(t *testing.T) {
	repo := memory.New()
	issue := putOpenIssue(t, repo)

	writer := &mock.ModuleWriterMock{}
	writer.ApplyFunc = func(ctx context.Context, workspaceID types.WorkspaceID, module types.Module, sourceRef string, content string) error {
		return nil
	}

	uc := usecase.New(infra.New(
		infra.WithScanRepository(repo),
		infra.WithModuleWriter(writer),
	))

	applied := gt.R1(uc.ApplyFix(context.Background(), &model.ApplyFixInput{
		IssueID: issue.ID,
		Text:    "Build honest tooling",
	})).NoError(t)
	gt.V(t, applied.Status).Equal(types.IssueStatusFixed)

	calls := writer.ApplyCalls()
	gt.A(t, calls).Length(1)
	gt.V(t, calls[0].Content).Equal("Build honest tooling")
}

func TestApplyFixErrors(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(infra.New(infra.WithScanRepository(repo)))
	ctx := context.Background()

	t.Run("no option and no text", func(t *testing.T) {
		issue := putOpenIssue(t, repo)
		_, err := uc.ApplyFix(ctx, &model.ApplyFixInput{IssueID: issue.ID})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("stale option ID", func(t *testing.T) {
		issue := putOpenIssue(t, repo)
		_, err := uc.ApplyFix(ctx, &model.ApplyFixInput{IssueID: issue.ID, OptionID: "expired"})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("unknown issue", func(t *testing.T) {
		_, err := uc.ApplyFix(ctx, &model.ApplyFixInput{IssueID: types.NewIssueID(), Text: "x"})
		gt.True(t, errors.Is(err, types.ErrIssueNotFound))
	})
}

func TestDismissUnknownIssue(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(infra.New(infra.WithScanRepository(repo)))

	_, err := uc.DismissIssue(context.Background(), types.NewIssueID())
	gt.True(t, errors.Is(err, types.ErrIssueNotFound))
}
