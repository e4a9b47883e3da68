package version

import (
	"context"
	"log/slog"

	"github.com/IngoMeyer441/hadolint-get/internal/logging"
)

// DefaultUpstreamURL is the git remote whose tags name hadolint releases.
const DefaultUpstreamURL = "https://github.com/hadolint/hadolint.git"

// TagLister lists the ref names of a remote, like git ls-remote.
type TagLister interface {
	ListRefs(ctx context.Context) ([]string, error)
	Source() string
}

// Resolver turns an optional requested version into a concrete one.
type Resolver struct {
	Lister TagLister
}

// NewResolver returns a Resolver backed by the git remote at url.
func NewResolver(url string) *Resolver {
	if url == "" {
		url = DefaultUpstreamURL
	}
	return &Resolver{Lister: &RemoteTagLister{URL: url}}
}

// Resolve returns requested normalized, or the newest upstream tag when
// requested is empty or "latest". Explicit versions are not validated.
func (r *Resolver) Resolve(ctx context.Context, requested string) (string, error) {
	if !IsLatest(requested) {
		return Normalize(requested), nil
	}
	tag, err := r.LatestTag(ctx)
	if err != nil {
		return "", err
	}
	return tag.Name, nil
}

// LatestTag lists the upstream refs and returns the highest version tag.
func (r *Resolver) LatestTag(ctx context.Context) (Tag, error) {
	refs, err := r.Lister.ListRefs(ctx)
	if err != nil {
		return Tag{}, err
	}
	tags := make([]Tag, 0, len(refs))
	for _, ref := range refs {
		if tag, ok := ParseRef(ref); ok {
			tags = append(tags, tag)
		}
	}
	latest, ok := Max(tags)
	if !ok {
		return Tag{}, &NoTagsFoundError{Source: r.Lister.Source()}
	}
	logging.Debug(ctx, "resolved latest version",
		slog.String("source", r.Lister.Source()),
		slog.String("tag", latest.Name),
		slog.Int("candidates", len(tags)),
	)
	return latest, nil
}
