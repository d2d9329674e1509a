package releaser_types

import "context"

//go:generate mockgen -source ./interfaces.go -destination ./mocks/mocks.go

// look up release metadata; the source can be from GitHub
type ReleaseFetcher interface {
	// Returns the most recent published release of owner/repo along with the
	// repository metadata needed to describe it. A repo with no releases is an
	// error, not an empty result.
	GetLatestRelease(ctx context.Context, owner string, repo string) (*ReleaseInfo, error)
}

// Download release bytes and digest them.
type ChecksumFetcher interface {
	// reach out to a URL, stream the bytes found there, and return the
	// lowercase hex SHA-256 of the full body
	Sha256FromUrl(ctx context.Context, url string) (sha string, err error)
}

// Deliver a rendered formula to its tap repository.
// The tap is updated with a single commit or left untouched; there is no
// partial-success state.
type Publisher interface {
	Publish(ctx context.Context, artifact *FormulaArtifact, target *PublishTarget) error
}

// ReleaseInfo captures everything about a tagged release that formula
// generation needs. Immutable, fetched once per run.
type ReleaseInfo struct {
	Owner string
	Repo  string

	// Tag is the git tag of the release, e.g. "v1.2.0". Version is the same
	// value without a leading "v" when the tag parses as semver.
	Tag     string
	Version string

	// Description is the repository description, which seeds the formula's
	// desc field. ReleaseNotes is the release body, carried for logging.
	Description  string
	ReleaseNotes string

	Homepage   string
	License    string
	TarballUrl string
}

// PublishTarget identifies the tap repository and the commit identity used
// when pushing to it. Supplied via configuration, static for the run.
type PublishTarget struct {
	TapOwner      string
	TapRepo       string
	FormulaFolder string

	CommitOwner string
	CommitEmail string

	// SkipCommit writes the formula into the local checkout and stops; the
	// remote tap is never touched.
	SkipCommit bool

	// UpdateReadmeTable rewrites this formula's row in the tap README's
	// project table as part of the same commit.
	UpdateReadmeTable bool
}

// FormulaArtifact is a rendered formula plus the metadata the publisher
// needs for file naming, the commit message, and the README table row.
type FormulaArtifact struct {
	// FormulaName is the formula token, which is also the file base name:
	// the formula for repo "my-tool" lands at <folder>/my-tool.rb.
	FormulaName string
	Contents    string

	SourceRepo string

	// Tag is the release tag as published, used verbatim in the commit
	// message. Version is the semver form without a leading "v", shown in
	// the README table row.
	Tag     string
	Version string

	Description string
}
