package tui_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sitelint/sitelint/internal/adapters/outbound/tui"
	"github.com/sitelint/sitelint/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderReport_CleanSite(t *testing.T) {
	res := domain.NewAuditResult()
	res.PagesScanned = 4
	res.BaseURL = "https://acme.example"

	out := tui.RenderReport(res)

	assert.Contains(t, out, "sitelint")
	assert.Contains(t, out, "100 / 100")
	assert.Contains(t, out, "A+")
	assert.Contains(t, out, "No issues found.")
	assert.Contains(t, out, "https://acme.example")
}

func TestRenderReport_IssuesAndAdvice(t *testing.T) {
	res := domain.NewAuditResult()
	res.AddError(domain.Issue{Code: domain.CodeDeadInternal, Page: "index.html", Message: "index.html links to missing /gone", Penalty: 10})
	res.AddWarning(domain.Issue{Code: domain.CodeMissingSchema, Page: "about.html", Message: "about.html has no structured data", Penalty: 2})

	out := tui.RenderReport(res)

	assert.Contains(t, out, "1 errors")
	assert.Contains(t, out, "1 warnings")
	assert.Contains(t, out, "links to missing /gone")
	assert.Contains(t, out, "Fix broken internal links")
	assert.Contains(t, out, "JSON-LD")
}

func TestRenderReport_WarningTruncation(t *testing.T) {
	res := domain.NewAuditResult()
	for i := 0; i < 25; i++ {
		res.AddWarning(domain.Issue{
			Code:    domain.CodeMissingBreadcrumb,
			Message: fmt.Sprintf("page-%02d.html has no breadcrumb", i),
		})
	}

	out := tui.RenderReport(res)

	assert.Contains(t, out, "… and 5 more warnings")
	assert.Contains(t, out, "page-19.html")
	assert.NotContains(t, out, "page-20.html", "warnings past the cap are summarized, not listed")
}

func TestRenderReport_TopLinkedPages(t *testing.T) {
	res := domain.NewAuditResult()
	res.InboundLinks = map[string]int{"/blog": 3, "/about": 1}

	out := tui.RenderReport(res)

	assert.Contains(t, out, "Top linked pages")
	blogIdx := strings.Index(out, "/blog")
	aboutIdx := strings.Index(out, "/about")
	assert.True(t, blogIdx >= 0 && aboutIdx >= 0 && blogIdx < aboutIdx, "pages sorted by inbound count")
}

func TestRenderHistory(t *testing.T) {
	out := tui.RenderHistory(nil)
	assert.Contains(t, out, "No audit history found.")

	out = tui.RenderHistory([]domain.AuditEntry{
		{Timestamp: "2026-08-24T10:00:00Z", CommitHash: "abcdef1234567890", Score: 80, Grade: "B"},
		{Timestamp: "2026-08-25T10:00:00Z", Score: 95, Grade: "A"},
	})

	assert.Contains(t, out, "abcdef1")
	assert.Contains(t, out, "2026-08-24")
	assert.Contains(t, out, "↑15")
}
