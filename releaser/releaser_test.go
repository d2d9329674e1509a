package releaser_test

import (
	"context"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/rotisserie/eris"

	"github.com/solo-io/homebrew-releaser/config"
	"github.com/solo-io/homebrew-releaser/githubutils"
	"github.com/solo-io/homebrew-releaser/hashutils"
	"github.com/solo-io/homebrew-releaser/releaser"
	"github.com/solo-io/homebrew-releaser/releaser/releaser_types"
	mock_releaser_types "github.com/solo-io/homebrew-releaser/releaser/releaser_types/mocks"
)

var _ = Describe("Releaser", func() {
	var (
		ctx = context.TODO()

		ctrl            *gomock.Controller
		releaseFetcher  *mock_releaser_types.MockReleaseFetcher
		checksumFetcher *mock_releaser_types.MockChecksumFetcher
		publisher       *mock_releaser_types.MockPublisher
		subject         *releaser.Releaser

		opts    *config.Options
		release *releaser_types.ReleaseInfo
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())

		releaseFetcher = mock_releaser_types.NewMockReleaseFetcher(ctrl)
		checksumFetcher = mock_releaser_types.NewMockChecksumFetcher(ctrl)
		publisher = mock_releaser_types.NewMockPublisher(ctrl)
		subject = releaser.NewReleaser(releaseFetcher, checksumFetcher, publisher)

		opts = &config.Options{
			SourceOwner:   "acme",
			SourceRepo:    "tool",
			GithubToken:   "token-123",
			Install:       `bin.install "tool"`,
			HomebrewOwner: "acme",
			HomebrewTap:   "homebrew-tools",
			FormulaFolder: "formula",
			CommitOwner:   "release-bot",
			CommitEmail:   "bot@acme.io",
		}
		release = &releaser_types.ReleaseInfo{
			Owner:       "acme",
			Repo:        "tool",
			Tag:         "v1.2.0",
			Version:     "1.2.0",
			Description: "A tool for doing things.",
			Homepage:    "https://github.com/acme/tool",
			License:     "MIT",
			TarballUrl:  "https://github.com/acme/tool/archive/v1.2.0.tar.gz",
		}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("runs the pipeline end to end", func() {
		releaseFetcher.EXPECT().
			GetLatestRelease(ctx, "acme", "tool").
			Return(release, nil)
		checksumFetcher.EXPECT().
			Sha256FromUrl(ctx, release.TarballUrl).
			Return("abc123", nil)
		publisher.EXPECT().
			Publish(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, artifact *releaser_types.FormulaArtifact, target *releaser_types.PublishTarget) error {
				Expect(artifact.FormulaName).To(Equal("tool"))
				Expect(artifact.Tag).To(Equal("v1.2.0"))
				Expect(artifact.Version).To(Equal("1.2.0"))
				Expect(artifact.Contents).To(ContainSubstring(`url "https://github.com/acme/tool/archive/v1.2.0.tar.gz"`))
				Expect(artifact.Contents).To(ContainSubstring(`sha256 "abc123"`))
				Expect(artifact.Contents).NotTo(ContainSubstring("test do"))

				Expect(target.TapOwner).To(Equal("acme"))
				Expect(target.TapRepo).To(Equal("homebrew-tools"))
				Expect(target.FormulaFolder).To(Equal("formula"))
				Expect(target.CommitOwner).To(Equal("release-bot"))
				Expect(target.CommitEmail).To(Equal("bot@acme.io"))
				return nil
			})

		Expect(subject.Run(ctx, opts)).NotTo(HaveOccurred())
	})

	It("embeds the configured test command in the published formula", func() {
		opts.Test = `system "tool", "--version"`

		releaseFetcher.EXPECT().GetLatestRelease(ctx, "acme", "tool").Return(release, nil)
		checksumFetcher.EXPECT().Sha256FromUrl(ctx, release.TarballUrl).Return("abc123", nil)
		publisher.EXPECT().
			Publish(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, artifact *releaser_types.FormulaArtifact, _ *releaser_types.PublishTarget) error {
				Expect(artifact.Contents).To(ContainSubstring("test do\n    system \"tool\", \"--version\"\n  end"))
				return nil
			})

		Expect(subject.Run(ctx, opts)).NotTo(HaveOccurred())
	})

	It("fails validation before any network call is made", func() {
		opts.GithubToken = ""

		err := subject.Run(ctx, opts)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring(config.GithubTokenEnvName))
		// no expectations were registered: the mocks verify nothing was called
	})

	It("aborts when the repo has no releases", func() {
		releaseFetcher.EXPECT().
			GetLatestRelease(ctx, "acme", "tool").
			Return(nil, eris.Wrapf(githubutils.ErrNoReleases, "acme/tool returned 404"))

		err := subject.Run(ctx, opts)
		Expect(err).To(HaveOccurred())
		Expect(eris.Is(err, githubutils.ErrNoReleases)).To(BeTrue())
	})

	It("aborts before rendering or publishing when the download fails", func() {
		releaseFetcher.EXPECT().GetLatestRelease(ctx, "acme", "tool").Return(release, nil)
		checksumFetcher.EXPECT().
			Sha256FromUrl(ctx, release.TarballUrl).
			Return("", eris.Wrapf(hashutils.ErrDownloadFailed, "status 404"))

		err := subject.Run(ctx, opts)
		Expect(err).To(HaveOccurred())
		Expect(eris.Is(err, hashutils.ErrDownloadFailed)).To(BeTrue())
	})

	It("stops before publishing on a dry run", func() {
		opts.DryRun = true

		releaseFetcher.EXPECT().GetLatestRelease(ctx, "acme", "tool").Return(release, nil)
		checksumFetcher.EXPECT().Sha256FromUrl(ctx, release.TarballUrl).Return("abc123", nil)

		Expect(subject.Run(ctx, opts)).NotTo(HaveOccurred())
	})
})
