package scanner

import (
	"os"
	"path/filepath"
	"strings"
)

// DiskOracle implements domain.FileOracle against the on-disk site tree.
// Clean-URL mapping, first match wins:
//
//	/          -> index.html
//	/blog/post -> blog/post.html, then blog/post/index.html
//	/img/x.png -> exact file (linked assets)
type DiskOracle struct{}

func NewOracle() *DiskOracle {
	return &DiskOracle{}
}

func (o *DiskOracle) Exists(root, canonicalPath string) bool {
	for canonicalPath != "/" && strings.HasSuffix(canonicalPath, "/") {
		canonicalPath = strings.TrimSuffix(canonicalPath, "/")
	}

	if canonicalPath == "" || canonicalPath == "/" {
		return fileExists(filepath.Join(root, "index.html"))
	}

	rel := filepath.FromSlash(strings.TrimPrefix(canonicalPath, "/"))

	if fileExists(filepath.Join(root, rel+".html")) {
		return true
	}
	if fileExists(filepath.Join(root, rel, "index.html")) {
		return true
	}
	return fileExists(filepath.Join(root, rel))
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
