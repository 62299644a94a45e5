// Package homepage bootstraps site configuration from the root index
// document: the canonical base URL and the declared keyword list.
package homepage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitelint/sitelint/internal/domain"
)

// Loader implements domain.HomepageLoader.
type Loader struct{}

func New() *Loader {
	return &Loader{}
}

// Load parses <root>/index.html. A missing or unreadable file is an
// error — the audit cannot run without a homepage. Missing metadata
// inside the document only degrades the returned SiteMeta.
func (l *Loader) Load(root string) (domain.SiteMeta, error) {
	indexPath := filepath.Join(root, "index.html")

	f, err := os.Open(indexPath)
	if err != nil {
		return domain.SiteMeta{}, fmt.Errorf("opening homepage %s: %w", indexPath, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return domain.SiteMeta{}, fmt.Errorf("parsing homepage %s: %w", indexPath, err)
	}

	meta := domain.SiteMeta{
		BaseURL:  baseURL(doc),
		Keywords: keywords(doc),
	}
	return meta, nil
}

// baseURL prefers the canonical link, falls back to og:url, else empty.
func baseURL(doc *goquery.Document) string {
	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok && href != "" {
		return strings.TrimSuffix(href, "/")
	}
	if content, ok := doc.Find(`meta[property="og:url"]`).First().Attr("content"); ok && content != "" {
		return strings.TrimSuffix(content, "/")
	}
	return ""
}

func keywords(doc *goquery.Document) []string {
	content, ok := doc.Find(`meta[name="keywords"]`).First().Attr("content")
	if !ok || content == "" {
		return nil
	}

	var kws []string
	for _, k := range strings.Split(content, ",") {
		if k = strings.TrimSpace(k); k != "" {
			kws = append(kws, k)
		}
	}
	return kws
}
