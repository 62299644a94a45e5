package domain

import "context"

// PageDocument is one scanned page, already parsed.
type PageDocument struct {
	// RelPath is slash-separated and relative to the site root.
	RelPath       string
	Anchors       []string
	H1Count       int
	HasSchema     bool
	HasBreadcrumb bool
	// Err is set when the page could not be read or parsed; such pages
	// are reported and skipped, never fatal.
	Err error
}

// IsRoot reports whether the page is the site's root index document.
func (p PageDocument) IsRoot() bool { return p.RelPath == "index.html" }

// SiteScan holds every page selected by a site walk.
type SiteScan struct {
	RootPath string
	Pages    []PageDocument
}

// SiteScanner walks a site directory and parses its page documents.
type SiteScanner interface {
	Scan(root string, cfg AuditConfig) (*SiteScan, error)
}

// FileOracle decides whether a canonical path has a backing document
// under clean-URL conventions.
type FileOracle interface {
	Exists(root, canonicalPath string) bool
}

// ProbeOutcome is the result of probing one external URL.
type ProbeOutcome struct {
	URL        string
	StatusCode int
	Reason     string
	Alive      bool
}

// LinkProber checks external URLs for liveness with bounded concurrency.
type LinkProber interface {
	CheckAll(ctx context.Context, urls []string, cfg AuditConfig) []ProbeOutcome
}

// SiteMeta is the homepage-derived configuration.
type SiteMeta struct {
	BaseURL  string
	Keywords []string
}

// HomepageLoader extracts SiteMeta from the root index document. A missing
// or unreadable root index is an error; missing metadata inside it is not.
type HomepageLoader interface {
	Load(root string) (SiteMeta, error)
}

// ConfigLoader reads the optional audit configuration overlay.
type ConfigLoader interface {
	Load(root string) (AuditConfig, error)
}

// GitInfo provides version-control metadata about the site directory.
type GitInfo interface {
	IsGitRepo(root string) bool
	CommitHash(root string) (string, error)
}

// AuditHistory persists audit entries between runs.
type AuditHistory interface {
	Save(root string, entry AuditEntry) error
	Load(root string) ([]AuditEntry, error)
}
