package audit

import (
	"fmt"
	"path"
	"strings"

	"github.com/sitelint/sitelint/internal/domain"
)

// CheckLinks classifies every anchor on one page. External URLs land in
// the deduplicated externals set; internal links are style-checked,
// resolved, and either reported dead (once per occurrence, deliberately
// not deduplicated) or counted into the inbound-link graph.
func CheckLinks(
	cfg *domain.AuditConfig,
	page domain.PageDocument,
	exists func(canonicalPath string) bool,
	graph *domain.LinkGraph,
	externals map[string]struct{},
	res *domain.AuditResult,
) {
	if page.Err != nil {
		return
	}

	for _, href := range page.Anchors {
		r := domain.Resolve(cfg, href, page.RelPath)

		switch r.Kind {
		case domain.LinkIgnored:
			continue

		case domain.LinkExternal:
			externals[r.URL] = struct{}{}

		case domain.LinkInternal:
			if r.FullURL {
				res.AddWarning(domain.Issue{
					Code:    domain.CodeFullURLInternal,
					Page:    page.RelPath,
					Message: fmt.Sprintf("internal link using full URL in %s: %s (should be a site-relative path)", page.RelPath, href),
					Penalty: cfg.PenaltyFor(domain.CodeFullURLInternal),
				})
			}
			checkInternal(cfg, page, href, r, exists, graph, res)
		}
	}
}

func checkInternal(
	cfg *domain.AuditConfig,
	page domain.PageDocument,
	rawHref string,
	r domain.Resolution,
	exists func(canonicalPath string) bool,
	graph *domain.LinkGraph,
	res *domain.AuditResult,
) {
	// Style: linking the page file instead of its clean URL. Explicitly
	// naming the index document is tolerated.
	if strings.HasSuffix(r.Href, ".html") && path.Base(r.Href) != "index.html" {
		res.AddWarning(domain.Issue{
			Code:    domain.CodeHTMLExtension,
			Page:    page.RelPath,
			Message: fmt.Sprintf("link with .html extension in %s: %s (should be a clean URL)", page.RelPath, r.Href),
			Penalty: cfg.PenaltyFor(domain.CodeHTMLExtension),
		})
	}

	// Style: page-relative links break when the page moves.
	if !strings.HasPrefix(r.Href, "/") {
		res.AddWarning(domain.Issue{
			Code:    domain.CodeRelativeHref,
			Page:    page.RelPath,
			Message: fmt.Sprintf("relative path used in %s: %s (should start with /)", page.RelPath, r.Href),
			Penalty: cfg.PenaltyFor(domain.CodeRelativeHref),
		})
	}

	if !exists(r.Path) {
		res.AddError(domain.Issue{
			Code:    domain.CodeDeadInternal,
			Page:    page.RelPath,
			Message: fmt.Sprintf("dead internal link in %s: %s (resolves to %s)", page.RelPath, rawHref, r.Path),
			Penalty: cfg.PenaltyFor(domain.CodeDeadInternal),
		})
		return
	}

	graph.Add(r.Path)
}
