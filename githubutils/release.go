package githubutils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/google/go-github/v32/github"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/solo-io/homebrew-releaser/contextutils"
	"github.com/solo-io/homebrew-releaser/releaser/releaser_types"
)

var (
	ErrNoReleases   = eris.New("githubutils: no published releases found")
	ErrUnauthorized = eris.New("githubutils: github rejected the provided credentials")
	ErrNetwork      = eris.New("githubutils: could not reach the github api")
)

func NewReleaseFetcher(client *github.Client) *ReleaseFetcher {
	return &ReleaseFetcher{
		client: client,
	}
}

// ReleaseFetcher resolves the most recent published release of a repository
// through the GitHub REST API. Single attempt per call; errors surface
// immediately to the caller.
type ReleaseFetcher struct {
	client *github.Client
}

// GetLatestRelease returns whatever GET /releases/latest marks as latest.
// GitHub already excludes drafts and prereleases from that endpoint, so no
// filtering happens here.
func (f *ReleaseFetcher) GetLatestRelease(ctx context.Context, owner string, repo string) (*releaser_types.ReleaseInfo, error) {
	logger := contextutils.LoggerFrom(ctx)

	release, _, err := f.client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return nil, classifyApiError(err, owner, repo)
	}

	repository, _, err := f.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, classifyApiError(err, owner, repo)
	}

	tag := release.GetTagName()
	info := &releaser_types.ReleaseInfo{
		Owner:        owner,
		Repo:         repo,
		Tag:          tag,
		Version:      versionFromTag(ctx, tag),
		Description:  repository.GetDescription(),
		ReleaseNotes: release.GetBody(),
		Homepage:     fmt.Sprintf("https://github.com/%s/%s", owner, repo),
		License:      repository.GetLicense().GetSPDXID(),
		TarballUrl:   fmt.Sprintf("https://github.com/%s/%s/archive/%s.tar.gz", owner, repo, tag),
	}

	logger.Infow("found latest release",
		zap.String("owner", owner),
		zap.String("repo", repo),
		zap.String("tag", tag),
		zap.String("tarballUrl", info.TarballUrl))

	return info, nil
}

// versionFromTag strips the leading "v" when the tag parses as semver.
// Tags that are not semver are used verbatim rather than rejected.
func versionFromTag(ctx context.Context, tag string) string {
	trimmed := strings.TrimPrefix(tag, "v")
	parsed, err := semver.NewVersion(trimmed)
	if err != nil {
		contextutils.LoggerFrom(ctx).Warnw("release tag is not semver, using it verbatim",
			zap.String("tag", tag))
		return tag
	}
	if parsed.Prerelease() != "" {
		contextutils.LoggerFrom(ctx).Warnw("latest release looks like a prerelease",
			zap.String("tag", tag),
			zap.String("prerelease", parsed.Prerelease()))
	}
	return trimmed
}

func classifyApiError(err error, owner string, repo string) error {
	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return eris.Wrapf(ErrUnauthorized, "rate limited fetching %s/%s: %s", owner, repo, rateLimitErr.Message)
	}

	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		switch errResp.Response.StatusCode {
		case http.StatusNotFound:
			return eris.Wrapf(ErrNoReleases, "%s/%s returned 404", owner, repo)
		case http.StatusUnauthorized, http.StatusForbidden:
			return eris.Wrapf(ErrUnauthorized, "%s/%s returned %d", owner, repo, errResp.Response.StatusCode)
		default:
			return eris.Wrapf(err, "unexpected github api response for %s/%s", owner, repo)
		}
	}

	return eris.Wrapf(ErrNetwork, "request for %s/%s failed: %v", owner, repo, err)
}
