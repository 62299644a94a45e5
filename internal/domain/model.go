package domain

import "time"

// IssueCode identifies the kind of problem found during an audit.
// Penalties are keyed by code so they stay configurable.
type IssueCode string

const (
	CodeMissingH1         IssueCode = "missing_h1"
	CodeMultipleH1        IssueCode = "multiple_h1"
	CodeMissingSchema     IssueCode = "missing_schema"
	CodeMissingBreadcrumb IssueCode = "missing_breadcrumb"
	CodeHTMLExtension     IssueCode = "html_extension"
	CodeRelativeHref      IssueCode = "relative_href"
	CodeFullURLInternal   IssueCode = "full_url_internal"
	CodeDeadInternal      IssueCode = "dead_internal"
	CodeOrphanPage        IssueCode = "orphan_page"
	CodeDeadExternal      IssueCode = "dead_external"
	CodeUnreadablePage    IssueCode = "unreadable_page"
	CodeDegradedConfig    IssueCode = "degraded_config"
)

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Issue represents a single problem found on the site.
type Issue struct {
	Code     IssueCode `json:"code"`
	Severity string    `json:"severity"`
	Page     string    `json:"page,omitempty"`
	Message  string    `json:"message"`
	Penalty  int       `json:"penalty"`
}

// AuditResult is the full outcome of one audit run. It is mutated by the
// scan, reconcile and probe phases in that order, then handed to the
// reporting layer unchanged.
type AuditResult struct {
	Score         int            `json:"score"`
	Errors        []Issue        `json:"errors"`
	Warnings      []Issue        `json:"warnings"`
	Infos         []Issue        `json:"infos"`
	InboundLinks  map[string]int `json:"inbound_links"`
	ExternalLinks []string       `json:"external_links"`
	PagesScanned  int            `json:"pages_scanned"`
	BaseURL       string         `json:"base_url,omitempty"`
	Keywords      []string       `json:"keywords,omitempty"`
	CommitHash    string         `json:"commit_hash,omitempty"`
	Timestamp     time.Time      `json:"timestamp"`
}

// NewAuditResult returns an empty result with a full score.
func NewAuditResult() *AuditResult {
	return &AuditResult{
		Score:        100,
		InboundLinks: make(map[string]int),
	}
}

// AddError records an error-level issue and deducts its penalty,
// flooring the score at zero.
func (r *AuditResult) AddError(iss Issue) {
	iss.Severity = SeverityError
	r.Errors = append(r.Errors, iss)
	r.applyPenalty(iss.Penalty)
}

// AddWarning records a warning-level issue and deducts its penalty.
func (r *AuditResult) AddWarning(iss Issue) {
	iss.Severity = SeverityWarning
	r.Warnings = append(r.Warnings, iss)
	r.applyPenalty(iss.Penalty)
}

// AddInfo records an informational issue. Infos never affect the score.
func (r *AuditResult) AddInfo(iss Issue) {
	iss.Severity = SeverityInfo
	iss.Penalty = 0
	r.Infos = append(r.Infos, iss)
}

func (r *AuditResult) applyPenalty(p int) {
	r.Score -= p
	if r.Score < 0 {
		r.Score = 0
	}
}

// HasIssue reports whether any recorded issue carries the given code.
func (r *AuditResult) HasIssue(code IssueCode) bool {
	for _, set := range [][]Issue{r.Errors, r.Warnings, r.Infos} {
		for _, iss := range set {
			if iss.Code == code {
				return true
			}
		}
	}
	return false
}

func (r *AuditResult) Grade() string { return GradeFor(r.Score) }

func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

func BadgeColor(score int) string {
	switch {
	case score >= 90:
		return "brightgreen"
	case score >= 80:
		return "green"
	case score >= 70:
		return "yellow"
	case score >= 60:
		return "orange"
	case score >= 50:
		return "red"
	default:
		return "critical"
	}
}

// AuditEntry is one line of persisted audit history.
type AuditEntry struct {
	Timestamp    string `json:"timestamp"`
	CommitHash   string `json:"commit_hash,omitempty"`
	Score        int    `json:"score"`
	Grade        string `json:"grade"`
	PagesScanned int    `json:"pages_scanned"`
}
