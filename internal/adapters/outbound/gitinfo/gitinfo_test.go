package gitinfo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/sitelint/sitelint/internal/adapters/outbound/gitinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitInfo_NotARepo(t *testing.T) {
	g := gitinfo.New()
	root := t.TempDir()

	assert.False(t, g.IsGitRepo(root))

	_, err := g.CommitHash(root)
	assert.Error(t, err)
}

func TestGitInfo_CommitHash(t *testing.T) {
	root := t.TempDir()

	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<html></html>"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("index.html")
	require.NoError(t, err)

	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "tester@example.com"},
	})
	require.NoError(t, err)

	g := gitinfo.New()
	assert.True(t, g.IsGitRepo(root))

	got, err := g.CommitHash(root)
	require.NoError(t, err)
	assert.Equal(t, hash.String(), got)
}

func TestGitInfo_DetectsRepoFromSubdirectory(t *testing.T) {
	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)

	sub := filepath.Join(root, "site")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	assert.True(t, gitinfo.New().IsGitRepo(sub))
}
