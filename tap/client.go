package tap

import (
	"context"
	"io/ioutil"
	"os"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/rotisserie/eris"

	"github.com/solo-io/homebrew-releaser/releaser/releaser_types"
)

var (
	ErrGitOperation = eris.New("tap: git operation failed")
)

// Clones stay shallow; the run only ever adds one commit on top of the
// default branch.
const cloneDepth = 2

// RepositoryClient is the narrow git capability the publisher needs.
// Implementable via library bindings (the default) or external-process
// invocation.
type RepositoryClient interface {
	Clone(ctx context.Context, target *releaser_types.PublishTarget) (*Checkout, error)

	// CommitAndPush stages the given repo-relative paths, commits them with
	// the target's author identity, and pushes to the default branch.
	CommitAndPush(ctx context.Context, checkout *Checkout, target *releaser_types.PublishTarget, message string, paths ...string) error
}

// Checkout is a local working copy of the tap repository, exclusively owned
// by this process for the run's duration.
type Checkout struct {
	Dir string

	repo *git.Repository
}

// Close removes the working copy from disk.
func (c *Checkout) Close() error {
	return os.RemoveAll(c.Dir)
}

func NewRepositoryClient(token string) RepositoryClient {
	return &gitRepositoryClient{
		token: token,
	}
}

type gitRepositoryClient struct {
	token string
}

func (g *gitRepositoryClient) Clone(ctx context.Context, target *releaser_types.PublishTarget) (*Checkout, error) {
	dirTemp, err := ioutil.TempDir("", target.TapRepo)
	if err != nil {
		return nil, eris.Wrap(err, "tap: could not create clone directory")
	}

	repo, err := git.PlainCloneContext(ctx, dirTemp, false, &git.CloneOptions{
		URL:   "https://github.com/" + target.TapOwner + "/" + target.TapRepo + ".git",
		Auth:  g.auth(),
		Depth: cloneDepth,
	})
	if err != nil {
		os.RemoveAll(dirTemp)
		return nil, eris.Wrapf(ErrGitOperation, "clone of %s/%s failed: %v", target.TapOwner, target.TapRepo, err)
	}

	return &Checkout{
		Dir:  dirTemp,
		repo: repo,
	}, nil
}

func (g *gitRepositoryClient) CommitAndPush(
	ctx context.Context,
	checkout *Checkout,
	target *releaser_types.PublishTarget,
	message string,
	paths ...string,
) error {
	w, err := checkout.repo.Worktree()
	if err != nil {
		return eris.Wrapf(ErrGitOperation, "could not open worktree: %v", err)
	}

	for _, path := range paths {
		if _, err := w.Add(path); err != nil {
			return eris.Wrapf(ErrGitOperation, "could not stage %s: %v", path, err)
		}
	}

	_, err = w.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  target.CommitOwner,
			Email: target.CommitEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return eris.Wrapf(ErrGitOperation, "commit failed: %v", err)
	}

	err = checkout.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: "origin",
		Auth:       g.auth(),
	})
	if err != nil {
		return eris.Wrapf(ErrGitOperation, "push to %s/%s failed: %v", target.TapOwner, target.TapRepo, err)
	}

	return nil
}

func (g *gitRepositoryClient) auth() *http.BasicAuth {
	return &http.BasicAuth{
		Username: "GitHub Token", // any non-empty value works with a token
		Password: g.token,
	}
}
