package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/sitelint/sitelint/internal/domain"
	"github.com/sitelint/sitelint/internal/domain/audit"
)

// AuditService orchestrates the audit pipeline in three strictly ordered
// phases: a single-threaded page scan, an orphan reconcile that only runs
// once every page has been scanned, and a concurrent external-link probe.
type AuditService struct {
	configLoader domain.ConfigLoader
	homepage     domain.HomepageLoader
	scanner      domain.SiteScanner
	oracle       domain.FileOracle
	prober       domain.LinkProber
}

func NewAuditService(
	configLoader domain.ConfigLoader,
	homepage domain.HomepageLoader,
	scanner domain.SiteScanner,
	oracle domain.FileOracle,
	prober domain.LinkProber,
) *AuditService {
	return &AuditService{
		configLoader: configLoader,
		homepage:     homepage,
		scanner:      scanner,
		oracle:       oracle,
		prober:       prober,
	}
}

// Audit runs the full pipeline over the site rooted at root.
func (s *AuditService) Audit(ctx context.Context, root string) (*domain.AuditResult, error) {
	// 0. Config: defaults + optional overlay + homepage metadata.
	cfg, err := s.configLoader.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// A missing or unreadable homepage is the one non-recoverable
	// precondition; everything after this is downgraded to issues.
	meta, err := s.homepage.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading homepage: %w", err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = meta.BaseURL
	}
	if len(cfg.Keywords) == 0 {
		cfg.Keywords = meta.Keywords
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	res := domain.NewAuditResult()
	res.Timestamp = time.Now()
	res.BaseURL = cfg.BaseURL
	res.Keywords = cfg.Keywords

	if cfg.BaseURL == "" {
		slog.Warn("no base URL detected; auditing in degraded mode", "root", root)
		res.AddInfo(domain.Issue{
			Code:    domain.CodeDegradedConfig,
			Message: "could not determine base URL from homepage; same-origin absolute links will be treated as external",
		})
	}

	scan, err := s.scanner.Scan(root, cfg)
	if err != nil {
		return nil, fmt.Errorf("scanning site: %w", err)
	}

	// Phase 1: scan. Single writer over the graph and result.
	graph := domain.NewLinkGraph()
	externals := make(map[string]struct{})
	exists := func(p string) bool { return s.oracle.Exists(scan.RootPath, p) }

	var pageRelPaths []string
	for _, page := range scan.Pages {
		audit.CheckStructure(&cfg, page, res)
		audit.CheckLinks(&cfg, page, exists, graph, externals, res)
		if page.Err == nil {
			res.PagesScanned++
			pageRelPaths = append(pageRelPaths, page.RelPath)
		}
	}

	// Phase 2: reconcile. Runs only after the scan completed — a link
	// found on the last page must still vindicate the first.
	for _, rel := range domain.Orphans(pageRelPaths, graph) {
		res.AddWarning(domain.Issue{
			Code:    domain.CodeOrphanPage,
			Page:    rel,
			Message: fmt.Sprintf("orphan page (no inbound links): %s", rel),
			Penalty: cfg.PenaltyFor(domain.CodeOrphanPage),
		})
	}
	res.InboundLinks = graph.Counts()

	// Phase 3: probe. The only concurrent stage; outcomes come back
	// sorted, so the result stays deterministic for stable networks.
	res.ExternalLinks = sortedKeys(externals)
	for _, o := range s.prober.CheckAll(ctx, res.ExternalLinks, cfg) {
		if o.Alive {
			continue
		}
		res.AddError(domain.Issue{
			Code:    domain.CodeDeadExternal,
			Message: fmt.Sprintf("dead external link: %s (%s)", o.URL, o.Reason),
			Penalty: cfg.PenaltyFor(domain.CodeDeadExternal),
		})
	}

	return res, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
