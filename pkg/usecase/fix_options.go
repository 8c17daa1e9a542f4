package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/brandlens/brandlens/pkg/domain/interfaces"
	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/brandlens/brandlens/pkg/repository"
	"github.com/brandlens/brandlens/pkg/utils/logging"
)

var fixLabels = []types.FixLabel{types.FixLabelA, types.FixLabelB, types.FixLabelC}

// GenerateFixOptions returns exactly three labeled options for an OPEN
// issue. The AI generator is tried first under a bounded timeout with one
// retry; any degradation falls back to deterministic template options, so
// the operation never fails on account of the AI dependency.
func (x *UseCase) GenerateFixOptions(ctx context.Context, issueID types.IssueID) ([]*model.FixOption, error) {
	issue, err := x.clients.ScanRepository().GetIssue(ctx, issueID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(types.ErrIssueNotFound, "issue not found", goerr.V("issue_id", issueID))
		}
		return nil, err
	}
	if issue.Status.IsTerminal() {
		return nil, goerr.Wrap(types.ErrTerminalIssue, "issue already resolved", goerr.V("issue_id", issueID), goerr.V("status", issue.Status))
	}

	select {
	case x.fixSem <- struct{}{}:
		defer func() { <-x.fixSem }()
	case <-ctx.Done():
		return nil, goerr.Wrap(ctx.Err(), "waiting for fix generation slot")
	}

	options := x.generateAIOptions(ctx, issue)
	if options == nil {
		options = templateOptions(issue)
	}

	x.fixOptions.Store(issueID, options)

	return options, nil
}

func (x *UseCase) generateAIOptions(ctx context.Context, issue *model.Issue) []*model.FixOption {
	gen := x.clients.TextGenerator()
	if gen == nil {
		return nil
	}

	logger := logging.From(ctx)
	prompt := fixPrompt(issue)

	for attempt := 0; attempt <= x.aiRetries; attempt++ {
		genCtx, cancel := context.WithTimeout(ctx, x.aiTimeout)
		result := gen.Generate(genCtx, prompt, len(fixLabels))
		cancel()

		switch result.Status {
		case interfaces.GenOK:
			if len(result.Texts) < len(fixLabels) {
				logger.Warn("text generator returned too few proposals",
					"issue_id", issue.ID,
					"got", len(result.Texts),
				)
				continue
			}
			options := make([]*model.FixOption, 0, len(fixLabels))
			for i, label := range fixLabels {
				options = append(options, model.NewFixOption(issue.ID, label,
					strings.TrimSpace(result.Texts[i]),
					"AI-generated proposal based on the detected issue",
					types.FixSourceAI,
				))
			}
			return options

		case interfaces.GenTimedOut:
			logger.Warn("text generation timed out",
				"issue_id", issue.ID,
				"attempt", attempt+1,
				"timeout", x.aiTimeout,
			)

		default:
			logger.Warn("text generation failed",
				"issue_id", issue.ID,
				"attempt", attempt+1,
				"error", result.Err,
			)
		}
	}

	return nil
}

func fixPrompt(issue *model.Issue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Propose three alternative fixes for a brand alignment issue.\n")
	fmt.Fprintf(&b, "Module: %s\n", issue.Module)
	fmt.Fprintf(&b, "Rule: %s\n", issue.RuleKey)
	fmt.Fprintf(&b, "Severity: %s\n", issue.Severity)
	fmt.Fprintf(&b, "Issue: %s\n", issue.Title)
	if issue.Description != "" {
		fmt.Fprintf(&b, "Detail: %s\n", issue.Description)
	}
	if issue.SourceRef != "" {
		fmt.Fprintf(&b, "Target: %s\n", issue.SourceRef)
	}
	b.WriteString("Each proposal must be a complete replacement text for the target field.")
	return b.String()
}

// templateOptions is the deterministic fallback when AI generation is
// unavailable or degraded. The set always carries the same three shapes:
// accept the brand default, align with the reference value, or edit by hand.
func templateOptions(issue *model.Issue) []*model.FixOption {
	return []*model.FixOption{
		model.NewFixOption(issue.ID, types.FixLabelA,
			fmt.Sprintf("Apply the brand-approved default for %s", issue.Module),
			"Restores the field to the workspace's approved baseline",
			types.FixSourceTemplate,
		),
		model.NewFixOption(issue.ID, types.FixLabelB,
			fmt.Sprintf("Align %s with the brand foundation reference", issue.SourceRefOrModule()),
			"Copies the conflicting reference value so both sides agree",
			types.FixSourceTemplate,
		),
		model.NewFixOption(issue.ID, types.FixLabelC,
			"Edit the field manually",
			"Opens the field for a hand-written replacement",
			types.FixSourceTemplate,
		),
	}
}
