// Package audit holds the per-page checks: structural markup predicates
// and the link pass that feeds the inbound-link graph.
package audit

import (
	"fmt"

	"github.com/sitelint/sitelint/internal/domain"
)

// CheckStructure runs the independent structural checks for one page.
// Each check contributes at most one issue per page. A page that failed
// to parse yields a single error and nothing else.
func CheckStructure(cfg *domain.AuditConfig, page domain.PageDocument, res *domain.AuditResult) {
	if page.Err != nil {
		res.AddError(domain.Issue{
			Code:    domain.CodeUnreadablePage,
			Page:    page.RelPath,
			Message: fmt.Sprintf("failed to process %s: %v", page.RelPath, page.Err),
			Penalty: cfg.PenaltyFor(domain.CodeUnreadablePage),
		})
		return
	}

	switch {
	case page.H1Count == 0:
		res.AddError(domain.Issue{
			Code:    domain.CodeMissingH1,
			Page:    page.RelPath,
			Message: fmt.Sprintf("missing H1 tag in %s", page.RelPath),
			Penalty: cfg.PenaltyFor(domain.CodeMissingH1),
		})
	case page.H1Count > 1:
		// Bad practice, but not penalized.
		res.AddWarning(domain.Issue{
			Code:    domain.CodeMultipleH1,
			Page:    page.RelPath,
			Message: fmt.Sprintf("multiple H1 tags (%d) in %s", page.H1Count, page.RelPath),
		})
	}

	if !page.HasSchema {
		res.AddWarning(domain.Issue{
			Code:    domain.CodeMissingSchema,
			Page:    page.RelPath,
			Message: fmt.Sprintf("no schema (JSON-LD) found in %s", page.RelPath),
			Penalty: cfg.PenaltyFor(domain.CodeMissingSchema),
		})
	}

	// The root page is exempt: it is the breadcrumb origin.
	if !page.IsRoot() && !page.HasBreadcrumb {
		res.AddWarning(domain.Issue{
			Code:    domain.CodeMissingBreadcrumb,
			Page:    page.RelPath,
			Message: fmt.Sprintf("no breadcrumb found in %s", page.RelPath),
		})
	}
}
