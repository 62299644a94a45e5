package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitelint/sitelint/internal/domain"
)

// SiteWalker implements domain.SiteScanner by walking the site directory
// and parsing every selected page document.
type SiteWalker struct{}

func New() *SiteWalker {
	return &SiteWalker{}
}

func (s *SiteWalker) Scan(root string, cfg domain.AuditConfig) (*domain.SiteScan, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	scan := &domain.SiteScan{RootPath: absRoot}

	err = filepath.WalkDir(absRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if p != absRoot && cfg.IgnoredDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !isPageFile(d.Name(), cfg) {
			return nil
		}

		rel, _ := filepath.Rel(absRoot, p)
		scan.Pages = append(scan.Pages, parsePage(p, filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return scan, nil
}

func isPageFile(name string, cfg domain.AuditConfig) bool {
	if !strings.HasSuffix(name, ".html") {
		return false
	}
	for _, sub := range cfg.IgnoreFileSubstrings {
		if strings.Contains(name, sub) {
			return false
		}
	}
	return true
}

// parsePage extracts everything the audit needs from one document.
// Failures are recorded on the page, not returned: one broken document
// must not abort the whole scan.
func parsePage(absPath, relPath string) domain.PageDocument {
	page := domain.PageDocument{RelPath: relPath}

	f, err := os.Open(absPath)
	if err != nil {
		page.Err = err
		return page
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		page.Err = err
		return page
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok {
			page.Anchors = append(page.Anchors, href)
		}
	})

	page.H1Count = doc.Find("h1").Length()
	page.HasSchema = doc.Find(`script[type="application/ld+json"]`).Length() > 0
	page.HasBreadcrumb = hasBreadcrumb(doc)

	return page
}

func hasBreadcrumb(doc *goquery.Document) bool {
	if doc.Find(`[aria-label="Breadcrumb"], [aria-label="breadcrumb"]`).Length() > 0 {
		return true
	}

	found := false
	doc.Find("[class]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if class, ok := sel.Attr("class"); ok &&
			strings.Contains(strings.ToLower(class), "breadcrumb") {
			found = true
			return false
		}
		return true
	})
	return found
}
