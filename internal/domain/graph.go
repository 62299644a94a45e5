package domain

import (
	"path"
	"sort"
	"strings"
)

// LinkGraph accumulates inbound-link counts keyed by canonical path.
// It is filled by the single-threaded scan phase and read only after the
// scan completes; orphan status is never judged mid-scan.
type LinkGraph struct {
	inbound map[string]int
}

func NewLinkGraph() *LinkGraph {
	return &LinkGraph{inbound: make(map[string]int)}
}

// Add records one inbound reference to a canonical path.
func (g *LinkGraph) Add(canonicalPath string) {
	g.inbound[canonicalPath]++
}

// Count returns the inbound count for a canonical path.
func (g *LinkGraph) Count(canonicalPath string) int {
	return g.inbound[canonicalPath]
}

// Counts returns a copy of the inbound-link histogram.
func (g *LinkGraph) Counts() map[string]int {
	out := make(map[string]int, len(g.inbound))
	for k, v := range g.inbound {
		out[k] = v
	}
	return out
}

// PageRank is one entry of the most-linked-pages listing.
type PageRank struct {
	Path  string
	Count int
}

// Top returns the n most-referenced canonical paths, ties broken by path.
func (g *LinkGraph) Top(n int) []PageRank {
	ranks := make([]PageRank, 0, len(g.inbound))
	for p, c := range g.inbound {
		ranks = append(ranks, PageRank{Path: p, Count: c})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Count != ranks[j].Count {
			return ranks[i].Count > ranks[j].Count
		}
		return ranks[i].Path < ranks[j].Path
	})
	if n < len(ranks) {
		ranks = ranks[:n]
	}
	return ranks
}

// CanonicalForms lists every canonical path under which the page at
// relPath (slash-separated, relative to the site root) may be addressed.
// An index document answers for its directory; any page also answers for
// its literal file path, so legacy ".html" links still vindicate it.
func CanonicalForms(relPath string) []string {
	literal := "/" + relPath

	if path.Base(relPath) == "index.html" {
		dir := path.Dir(relPath)
		if dir == "." {
			return []string{"/", literal}
		}
		return []string{"/" + dir, literal}
	}

	return []string{"/" + strings.TrimSuffix(relPath, ".html"), literal}
}

// Orphans returns the pages with no positive inbound count under any of
// their canonical forms. Must run only after every page has been scanned:
// a link discovered late still vindicates a page scanned early. The root
// index document is exempt.
func Orphans(pageRelPaths []string, g *LinkGraph) []string {
	var orphans []string
	for _, rel := range pageRelPaths {
		if rel == "index.html" {
			continue
		}
		referenced := false
		for _, form := range CanonicalForms(rel) {
			if g.Count(form) > 0 {
				referenced = true
				break
			}
		}
		if !referenced {
			orphans = append(orphans, rel)
		}
	}
	return orphans
}
