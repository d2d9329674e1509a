package releaser

import (
	"context"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/solo-io/homebrew-releaser/config"
	"github.com/solo-io/homebrew-releaser/contextutils"
	"github.com/solo-io/homebrew-releaser/formula"
	"github.com/solo-io/homebrew-releaser/githubutils"
	"github.com/solo-io/homebrew-releaser/hashutils"
	"github.com/solo-io/homebrew-releaser/releaser/releaser_types"
	"github.com/solo-io/homebrew-releaser/tap"
)

func NewReleaser(
	releaseFetcher releaser_types.ReleaseFetcher,
	checksumFetcher releaser_types.ChecksumFetcher,
	publisher releaser_types.Publisher,
) *Releaser {
	return &Releaser{
		releaseFetcher:  releaseFetcher,
		checksumFetcher: checksumFetcher,
		publisher:       publisher,
	}
}

// Releaser runs the whole pipeline: fetch the latest release, checksum its
// tarball, render the formula, publish it to the tap. Strictly sequential;
// the first error aborts the run and the tap is left untouched.
type Releaser struct {
	releaseFetcher  releaser_types.ReleaseFetcher
	checksumFetcher releaser_types.ChecksumFetcher
	publisher       releaser_types.Publisher
}

func NewReleaserWithDefaults(ctx context.Context, opts *config.Options) *Releaser {
	client := githubutils.NewClient(ctx, opts.GithubToken)

	return NewReleaser(
		githubutils.NewReleaseFetcher(client),
		hashutils.NewChecksumFetcher(nil),
		tap.NewPublisher(tap.NewRepositoryClient(opts.GithubToken), afero.NewOsFs()),
	)
}

func (r *Releaser) Run(ctx context.Context, opts *config.Options) error {
	logger := contextutils.LoggerFrom(ctx)

	if err := opts.Validate(); err != nil {
		return err
	}

	logger.Infow("collecting release data",
		zap.String("owner", opts.SourceOwner),
		zap.String("repo", opts.SourceRepo))
	release, err := r.releaseFetcher.GetLatestRelease(ctx, opts.SourceOwner, opts.SourceRepo)
	if err != nil {
		return err
	}
	if release.ReleaseNotes != "" {
		logger.Debugw("release notes", zap.String("body", release.ReleaseNotes))
	}

	logger.Infow("generating tar archive checksum", zap.String("url", release.TarballUrl))
	sha, err := r.checksumFetcher.Sha256FromUrl(ctx, release.TarballUrl)
	if err != nil {
		return err
	}

	logger.Infow("generating homebrew formula", zap.String("repo", release.Repo))
	f := formula.NewFormula(release, sha, opts.Install, opts.Test)
	contents, err := f.Render()
	if err != nil {
		return err
	}

	if opts.DryRun {
		logger.Infow("dry run, not publishing",
			zap.String("formula", f.ClassName),
			zap.String("tag", release.Tag))
		return nil
	}

	artifact := &releaser_types.FormulaArtifact{
		FormulaName: release.Repo,
		Contents:    contents,
		SourceRepo:  release.Repo,
		Tag:         release.Tag,
		Version:     release.Version,
		Description: f.Desc,
	}
	target := &releaser_types.PublishTarget{
		TapOwner:          opts.HomebrewOwner,
		TapRepo:           opts.HomebrewTap,
		FormulaFolder:     opts.FormulaFolder,
		CommitOwner:       opts.CommitOwner,
		CommitEmail:       opts.CommitEmail,
		SkipCommit:        opts.SkipCommit,
		UpdateReadmeTable: opts.UpdateReadmeTable,
	}

	logger.Infow("releasing to tap",
		zap.String("tag", release.Tag),
		zap.String("tap", target.TapOwner+"/"+target.TapRepo))
	if err := r.publisher.Publish(ctx, artifact, target); err != nil {
		return err
	}

	logger.Infow("successfully released",
		zap.String("repo", release.Repo),
		zap.String("tag", release.Tag),
		zap.String("tap", target.TapOwner+"/"+target.TapRepo))

	return nil
}
