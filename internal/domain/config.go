package domain

import (
	"fmt"
	"time"
)

// AuditConfig holds every threshold the audit uses. It is built once at
// startup (defaults, optional .sitelint.yaml overlay, homepage metadata)
// and passed by reference into every component; nothing mutates it after
// the run starts.
type AuditConfig struct {
	// BaseURL is the site's canonical origin (no trailing slash). Empty
	// means degraded mode: same-origin absolute links are treated as
	// external.
	BaseURL  string
	Keywords []string

	// IgnoreDirs are directory names pruned from the walk entirely.
	IgnoreDirs []string
	// IgnoreFileSubstrings exclude page files whose name contains any entry.
	IgnoreFileSubstrings []string
	// IgnoreHrefPrefixes exclude hrefs outright (schemes, admin paths,
	// pure fragments).
	IgnoreHrefPrefixes []string

	Penalties map[IssueCode]int

	Workers int
	Timeout time.Duration
}

// DefaultConfig returns the stock audit configuration.
func DefaultConfig() AuditConfig {
	return AuditConfig{
		IgnoreDirs:           []string{".git", "node_modules", "__pycache__", ".vscode", ".idea", "venv", "env"},
		IgnoreFileSubstrings: []string{"google", "404.html"},
		IgnoreHrefPrefixes:   []string{"/go/", "cdn-cgi", "javascript:", "mailto:", "tel:", "#"},
		Penalties: map[IssueCode]int{
			CodeMissingH1:       5,
			CodeMissingSchema:   2,
			CodeHTMLExtension:   2,
			CodeRelativeHref:    2,
			CodeFullURLInternal: 2,
			CodeDeadInternal:    10,
			CodeOrphanPage:      5,
			CodeDeadExternal:    5,
		},
		Workers: 10,
		Timeout: 5 * time.Second,
	}
}

// PenaltyFor returns the configured penalty for a code; unlisted codes
// cost nothing.
func (c *AuditConfig) PenaltyFor(code IssueCode) int {
	return c.Penalties[code]
}

// IgnoredDir reports whether a directory name is pruned from the walk.
func (c *AuditConfig) IgnoredDir(name string) bool {
	for _, d := range c.IgnoreDirs {
		if d == name {
			return true
		}
	}
	return false
}

// Validate checks the config for values that would break a run.
func (c *AuditConfig) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", c.Workers)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", c.Timeout)
	}
	for code, p := range c.Penalties {
		if p < 0 {
			return fmt.Errorf("penalty for %q must be >= 0 (got %d)", code, p)
		}
	}
	return nil
}
