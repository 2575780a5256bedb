package bundle

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Loader resolves a Manifest's libraries into concatenated source text,
// caching git-fetched libraries under Home.
type Loader struct {
	Home string // cache root, e.g. ~/.mython/libs
}

// NewLoader defaults Home to $MYTHON_HOME/libs, falling back to
// ~/.mython/libs when MYTHON_HOME is unset.
func NewLoader() (*Loader, error) {
	home := os.Getenv("MYTHON_HOME")
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("mython: resolving home directory: %w", err)
		}
		home = filepath.Join(dir, ".mython")
	}
	return &Loader{Home: filepath.Join(home, "libs")}, nil
}

// Resolve fetches (or reuses a cached clone of) every git-sourced library
// and reads every local-path library, concatenating their source text
// ahead of the entry program in manifest declaration order. A library's
// class definitions become visible to the entry program exactly as if
// both files had been written as one.
func (l *Loader) Resolve(m *Manifest, manifestDir string) (string, error) {
	var buf bytes.Buffer
	for _, lib := range m.Libraries {
		src, err := l.resolveOne(lib, manifestDir)
		if err != nil {
			return "", fmt.Errorf("mython: resolving library %s: %w", lib.Name, err)
		}
		buf.WriteString(src)
		if len(src) > 0 && src[len(src)-1] != '\n' {
			buf.WriteByte('\n')
		}
	}
	return buf.String(), nil
}

func (l *Loader) resolveOne(lib LibrarySpec, manifestDir string) (string, error) {
	if lib.Path != "" {
		data, err := os.ReadFile(filepath.Join(manifestDir, lib.Path))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if lib.Git != "" {
		dir, err := l.fetchGit(lib)
		if err != nil {
			return "", err
		}
		data, err := os.ReadFile(filepath.Join(dir, "main.my"))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return "", fmt.Errorf("library %s declares neither path nor git", lib.Name)
}

// fetchGit clones lib.Git into the cache (or pulls if already cloned),
// checking out lib.Rev when set.
func (l *Loader) fetchGit(lib LibrarySpec) (string, error) {
	dir := filepath.Join(l.Home, lib.Name)

	repo, err := git.PlainOpen(dir)
	switch {
	case errors.Is(err, git.ErrRepositoryNotExists):
		repo, err = git.PlainClone(dir, false, &git.CloneOptions{URL: lib.Git})
		if err != nil {
			return "", fmt.Errorf("cloning %s: %w", lib.Git, err)
		}
	case err != nil:
		return "", fmt.Errorf("opening cached clone of %s: %w", lib.Git, err)
	default:
		wt, err := repo.Worktree()
		if err != nil {
			return "", err
		}
		if err := wt.Pull(&git.PullOptions{}); err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
			return "", fmt.Errorf("pulling %s: %w", lib.Git, err)
		}
	}

	if lib.Rev != "" {
		wt, err := repo.Worktree()
		if err != nil {
			return "", err
		}
		// A Rev that is not a full hex hash decodes to the zero hash, and a
		// checkout with a zero hash and no branch selects master, so only a
		// Rev that round-trips as a hash is checked out as one.
		opts := &git.CheckoutOptions{Branch: plumbing.NewBranchReferenceName(lib.Rev)}
		if h := plumbing.NewHash(lib.Rev); !h.IsZero() && h.String() == lib.Rev {
			opts = &git.CheckoutOptions{Hash: h}
		}
		if err := wt.Checkout(opts); err != nil {
			return "", fmt.Errorf("checking out %s@%s: %w", lib.Git, lib.Rev, err)
		}
	}

	return dir, nil
}
