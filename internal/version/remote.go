package version

import (
	"context"
	"errors"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/storage/memory"
)

// RemoteTagLister lists refs of a git remote without a local clone.
type RemoteTagLister struct {
	URL string
}

// ListRefs returns the ref names advertised by the remote.
// An empty remote yields no refs rather than an error.
func (l *RemoteTagLister) ListRefs(ctx context.Context) ([]string, error) {
	remote := git.NewRemote(memory.NewStorage(), &gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{l.URL},
	})
	refs, err := remote.ListContext(ctx, &git.ListOptions{})
	if errors.Is(err, transport.ErrEmptyRemoteRepository) {
		return nil, nil
	}
	if err != nil {
		return nil, &UpstreamUnreachableError{URL: l.URL, Err: err}
	}
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name().String())
	}
	return names, nil
}

// Source returns the remote URL.
func (l *RemoteTagLister) Source() string {
	return l.URL
}
