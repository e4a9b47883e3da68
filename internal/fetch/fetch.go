// Package fetch downloads hadolint executables into the local cache.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/IngoMeyer441/hadolint-get/internal/cache"
	"github.com/IngoMeyer441/hadolint-get/internal/logging"
	"github.com/IngoMeyer441/hadolint-get/internal/messages"
	"github.com/IngoMeyer441/hadolint-get/internal/platform"
	"github.com/IngoMeyer441/hadolint-get/internal/version"
)

// DefaultReleaseBaseURL is the base URL hadolint release assets are served from.
const DefaultReleaseBaseURL = "https://github.com/hadolint/hadolint/releases/download"

// executableMode is owner read and execute only.
const executableMode os.FileMode = 0o500

var (
	osChmod      = os.Chmod
	osRename     = os.Rename
	osStat       = os.Stat
	osCreateTemp = os.CreateTemp
)

// VersionResolver turns an optional requested version into a concrete one.
type VersionResolver interface {
	Resolve(ctx context.Context, requested string) (string, error)
}

// Fetcher resolves, caches, and downloads hadolint executables.
type Fetcher struct {
	// Resolver is consulted when the requested version is empty or "latest".
	Resolver VersionResolver
	// GOOS overrides runtime.GOOS.
	GOOS string
	// Env locates the cache directory.
	Env cache.Env
	// ReleaseBaseURL overrides DefaultReleaseBaseURL.
	ReleaseBaseURL string
	// Client overrides http.DefaultClient.
	Client *http.Client
	// Offline forbids all network access.
	Offline bool
	// Clean removes the cache directory before anything else.
	Clean bool
	// Progress receives download notes when non-nil.
	Progress io.Writer
}

// Fetch returns the absolute path of an executable hadolint for requested,
// downloading it into the cache when it is not there yet.
func (f *Fetcher) Fetch(ctx context.Context, requested string) (string, error) {
	ctx = logging.WithComponent(ctx, "fetch")

	p, err := platform.FromGOOS(f.goos())
	if err != nil {
		return "", err
	}

	if f.Clean {
		dir, err := cache.Dir(p, f.Env, cache.Options{Clean: true})
		if err != nil {
			return "", err
		}
		logging.Debug(ctx, "cleaned cache", slog.String("dir", dir))
	}

	resolved, err := f.resolve(ctx, p, requested)
	if err != nil {
		return "", err
	}
	resolved = version.Normalize(resolved)

	dir, err := cache.Dir(p, f.Env, cache.Options{Create: true})
	if err != nil {
		return "", err
	}
	entry := cache.EntryPath(dir, resolved, p)
	target, err := filepath.Abs(entry)
	if err != nil {
		return "", fmt.Errorf(messages.FetchAbsolutePathFmt, entry, err)
	}

	if _, err := osStat(target); err == nil {
		logging.Debug(ctx, "cache hit", slog.String("path", target))
		return target, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf(messages.FetchCheckCachedBinaryFmt, target, err)
	}

	if f.Offline {
		return "", &ExecutableNotFetchableError{Version: resolved, Platform: p, Err: ErrNetworkDisabled}
	}

	if err := f.download(ctx, p, resolved, target); err != nil {
		return "", err
	}
	return target, nil
}

// AssetURL returns the download URL of the hadolint executable for v on p.
func AssetURL(baseURL string, v string, p platform.Platform) string {
	if baseURL == "" {
		baseURL = DefaultReleaseBaseURL
	}
	return fmt.Sprintf("%s/%s/hadolint-%s-x86_64%s", strings.TrimRight(baseURL, "/"), v, p.URLToken(), p.Suffix())
}

func (f *Fetcher) goos() string {
	if f.GOOS != "" {
		return f.GOOS
	}
	return runtime.GOOS
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}

// resolve picks the concrete version. Offline, "latest" means the newest cached version.
func (f *Fetcher) resolve(ctx context.Context, p platform.Platform, requested string) (string, error) {
	if !version.IsLatest(requested) {
		return requested, nil
	}
	if f.Offline {
		return latestCached(p, f.Env)
	}
	if f.Resolver == nil {
		return "", errors.New(messages.FetchResolverRequired)
	}
	return f.Resolver.Resolve(ctx, requested)
}

func latestCached(p platform.Platform, env cache.Env) (string, error) {
	dir, err := cache.DirPath(p, env)
	if err != nil {
		return "", err
	}
	names, err := cache.CachedVersions(dir, p)
	if err != nil {
		return "", err
	}
	tags := make([]version.Tag, 0, len(names))
	for _, name := range names {
		if tag, ok := version.Parse(name); ok {
			tags = append(tags, tag)
		}
	}
	latest, ok := version.Max(tags)
	if !ok {
		return "", &ExecutableNotFetchableError{
			Version:  version.Latest,
			Platform: p,
			Err:      fmt.Errorf(messages.VersionNoCachedVersionsFmt+": %w", dir, ErrNetworkDisabled),
		}
	}
	return latest.Name, nil
}

// download streams the release asset into a temp file next to target and
// renames it into place once it is complete and executable.
func (f *Fetcher) download(ctx context.Context, p platform.Platform, v string, target string) error {
	dir := filepath.Dir(target)
	tmp, err := osCreateTemp(dir, filepath.Base(target)+cache.TempMarker+"*")
	if err != nil {
		return fmt.Errorf(messages.FetchCreateTempFileFmt, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	url := AssetURL(f.ReleaseBaseURL, v, p)
	logging.Debug(ctx, "downloading", slog.String("url", url), slog.String("target", target))
	if f.Progress != nil {
		_, _ = fmt.Fprintf(f.Progress, messages.FetchDownloadingFmt, v, p)
	}

	if err := f.downloadToFile(ctx, url, tmp); err != nil {
		_ = tmp.Close()
		var netErr *transferError
		if errors.As(err, &netErr) {
			return &ExecutableNotFetchableError{Version: v, Platform: p, Err: netErr.err}
		}
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FetchSyncTempFileFmt, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.FetchCloseTempFileFmt, err)
	}
	if err := osChmod(tmpName, executableMode); err != nil {
		return fmt.Errorf(messages.FetchChmodCachedBinaryFmt, err)
	}
	if err := osRename(tmpName, target); err != nil {
		// A concurrent invocation may have renamed its copy into place first.
		if _, statErr := osStat(target); statErr == nil {
			logging.Debug(ctx, "lost rename race", slog.String("path", target))
			return nil
		}
		return fmt.Errorf(messages.FetchMoveCachedBinaryFmt, err)
	}
	committed = true
	logging.Info(ctx, "downloaded", slog.String("version", v), slog.String("path", target))
	if f.Progress != nil {
		_, _ = fmt.Fprintf(f.Progress, messages.FetchDownloadedFmt, v, target)
	}
	return nil
}

// transferError marks failures on the network side of a download.
type transferError struct {
	err error
}

func (e *transferError) Error() string {
	return e.err.Error()
}

func (e *transferError) Unwrap() error {
	return e.err
}

// bodyReader records read errors so they can be told apart from write errors.
type bodyReader struct {
	r   io.Reader
	err error
}

func (b *bodyReader) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		b.err = err
	}
	return n, err
}

// downloadToFile fetches url and writes the body to dest.
func (f *Fetcher) downloadToFile(ctx context.Context, url string, dest *os.File) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf(messages.FetchCreateRequestFmt, url, err)
	}
	req.Header.Set("User-Agent", "hadolint-get")

	resp, err := f.client().Do(req)
	if err != nil {
		return &transferError{err: fmt.Errorf(messages.FetchDownloadFailedFmt, url, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &transferError{err: fmt.Errorf(messages.FetchUnexpectedStatusFmt, url, resp.Status)}
	}

	body := &bodyReader{r: resp.Body}
	if _, err := io.Copy(dest, body); err != nil {
		if body.err != nil {
			return &transferError{err: fmt.Errorf(messages.FetchDownloadFailedFmt, url, body.err)}
		}
		return fmt.Errorf(messages.FetchWriteTempFileFmt, err)
	}
	return nil
}
