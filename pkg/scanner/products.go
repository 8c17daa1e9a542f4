package scanner

import (
	"context"
	"fmt"

	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
)

type productScanner struct {
	penalties Penalties
}

func (x *productScanner) Module() types.Module {
	return types.ModuleProducts
}

func (x *productScanner) Scan(ctx context.Context, snapshot *model.WorkspaceSnapshot) (int, []Finding, error) {
	var findings []Finding

	if len(snapshot.Products) == 0 {
		findings = append(findings, Finding{
			Module:      types.ModuleProducts,
			RuleKey:     "product.none",
			Severity:    types.SeverityMedium,
			Title:       "No products are defined",
			Description: "The workspace has no products or services.",
			SourceRef:   "products",
		})
		return x.penalties.Score(findings), findings, nil
	}

	for _, p := range snapshot.Products {
		if p.Description == "" {
			findings = append(findings, Finding{
				Module:      types.ModuleProducts,
				RuleKey:     "product.description.missing",
				Severity:    types.SeverityMedium,
				Title:       fmt.Sprintf("Product %q has no description", p.Name),
				Description: "The product has no description.",
				SourceRef:   p.ID,
			})
		}
		if p.ValueProposition == "" {
			findings = append(findings, Finding{
				Module:      types.ModuleProducts,
				RuleKey:     "product.valueprop.missing",
				Severity:    types.SeverityHigh,
				Title:       fmt.Sprintf("Product %q has no value proposition", p.Name),
				Description: "Without a value proposition, the product cannot be positioned against the brand.",
				SourceRef:   p.ID,
			})
		}
	}

	return x.penalties.Score(findings), findings, nil
}
