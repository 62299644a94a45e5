package domain

import (
	"net/url"
	"path"
	"strings"
)

// LinkKind is the closed classification of a raw href.
type LinkKind int

const (
	// LinkIgnored matches a configured ignore prefix or cannot be parsed.
	LinkIgnored LinkKind = iota
	// LinkExternal points at another origin.
	LinkExternal
	// LinkInternal resolves to a canonical site-relative path.
	LinkInternal
)

// Resolution is the outcome of classifying one href.
type Resolution struct {
	Kind LinkKind
	// URL is set for external links: the raw href.
	URL string
	// Path is set for internal links: the canonical site-relative path.
	Path string
	// Href is the href internal resolution actually used — the raw value,
	// or the remainder after stripping the base URL from a same-origin
	// absolute link. Style checks run against this.
	Href string
	// FullURL marks an internal link written as an absolute same-origin URL.
	FullURL bool
}

// Resolve classifies a raw href found on the page at pageRel (the page's
// path relative to the site root, slash-separated).
func Resolve(cfg *AuditConfig, href, pageRel string) Resolution {
	for _, prefix := range cfg.IgnoreHrefPrefixes {
		if strings.HasPrefix(href, prefix) {
			return Resolution{Kind: LinkIgnored}
		}
	}

	u, err := url.Parse(href)
	if err != nil {
		// An href that does not parse cannot be resolved or probed.
		return Resolution{Kind: LinkIgnored}
	}

	if u.Host != "" {
		if cfg.BaseURL != "" && strings.HasPrefix(href, cfg.BaseURL) {
			// Absolute link to our own origin: resolve internally with the
			// base stripped. The caller reports the style warning.
			stripped := strings.TrimPrefix(href, cfg.BaseURL)
			if stripped == "" {
				stripped = "/"
			}
			return Resolution{
				Kind:    LinkInternal,
				Path:    CanonicalPath(stripped, pageRel),
				Href:    stripped,
				FullURL: true,
			}
		}
		return Resolution{Kind: LinkExternal, URL: href}
	}

	return Resolution{
		Kind: LinkInternal,
		Path: CanonicalPath(href, pageRel),
		Href: href,
	}
}

// CanonicalPath turns an internal href into the canonical site-relative
// path used as the link-graph key: leading slash, query and fragment
// stripped, trailing slash collapsed, root exactly "/".
func CanonicalPath(href, pageRel string) string {
	if i := strings.IndexByte(href, '#'); i >= 0 {
		href = href[:i]
	}
	if i := strings.IndexByte(href, '?'); i >= 0 {
		href = href[:i]
	}

	var p string
	switch {
	case strings.HasPrefix(href, "/"):
		p = href
	default:
		// Page-relative: join onto the containing page's directory.
		dir := path.Dir(pageRel)
		if dir == "." {
			p = "/" + href
		} else {
			p = path.Join("/", dir, href)
		}
	}

	for p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	if p == "" {
		p = "/"
	}
	return p
}
