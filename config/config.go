package config

import (
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/rotisserie/eris"

	"github.com/solo-io/homebrew-releaser/githubutils"
)

const (
	// Set by the GitHub Actions runner, formatted as "owner/repo".
	GithubRepositoryEnvName = "GITHUB_REPOSITORY"

	// Action inputs. The runner exposes each `with:` entry as INPUT_<NAME>.
	GithubTokenEnvName       = "INPUT_GITHUB_TOKEN"
	InstallEnvName           = "INPUT_INSTALL"
	HomebrewOwnerEnvName     = "INPUT_HOMEBREW_OWNER"
	HomebrewTapEnvName       = "INPUT_HOMEBREW_TAP"
	FormulaFolderEnvName     = "INPUT_FORMULA_FOLDER"
	CommitOwnerEnvName       = "INPUT_COMMIT_OWNER"
	CommitEmailEnvName       = "INPUT_COMMIT_EMAIL"
	TestEnvName              = "INPUT_TEST"
	SkipCommitEnvName        = "INPUT_SKIP_COMMIT"
	UpdateReadmeTableEnvName = "INPUT_UPDATE_README_TABLE"
	DryRunEnvName            = "INPUT_DRY_RUN"

	DefaultFormulaFolder = "formula"
	DefaultCommitOwner   = "homebrew-releaser"
	DefaultCommitEmail   = "homebrew-releaser@example.com"
)

var (
	ErrMissingConfig = eris.New("config: missing required input")

	MissingInputError = func(name string) error {
		return eris.Wrapf(ErrMissingConfig, "%s must be set", name)
	}
	InvalidBoolInputError = func(err error, name, value string) error {
		return eris.Wrapf(err, "config: %s must be a boolean, got %q", name, value)
	}
	MalformedRepositoryError = func(value string) error {
		return eris.Errorf("config: %s must be formatted as owner/repo, got %q", GithubRepositoryEnvName, value)
	}
)

// Options is the full, immutable configuration for a single run. It is
// assembled once, validated once, and handed to each component at
// construction.
type Options struct {
	// Source repository whose latest release is being published.
	SourceOwner string `json:"sourceOwner"`
	SourceRepo  string `json:"sourceRepo"`

	GithubToken string `json:"githubToken"`

	// Ruby lines placed inside the formula's install block, and the optional
	// test block. An empty Test omits the test block entirely.
	Install string `json:"install"`
	Test    string `json:"test"`

	// Tap repository receiving the rendered formula.
	HomebrewOwner string `json:"homebrewOwner"`
	HomebrewTap   string `json:"homebrewTap"`
	FormulaFolder string `json:"formulaFolder"`

	// Author identity for the formula commit.
	CommitOwner string `json:"commitOwner"`
	CommitEmail string `json:"commitEmail"`

	// SkipCommit renders and writes the formula into the local checkout but
	// never commits or pushes. DryRun stops before the tap is even cloned.
	SkipCommit        bool `json:"skipCommit"`
	UpdateReadmeTable bool `json:"updateReadmeTable"`
	DryRun            bool `json:"dryRun"`
}

// FromEnv builds Options from the environment surface of the GitHub Action.
// It does not validate; call Validate before using the result.
func FromEnv() (*Options, error) {
	opts := &Options{
		GithubToken:   getTokenEnv(),
		Install:       os.Getenv(InstallEnvName),
		Test:          os.Getenv(TestEnvName),
		HomebrewOwner: os.Getenv(HomebrewOwnerEnvName),
		HomebrewTap:   os.Getenv(HomebrewTapEnvName),
		FormulaFolder: getEnvOrDefault(FormulaFolderEnvName, DefaultFormulaFolder),
		CommitOwner:   getEnvOrDefault(CommitOwnerEnvName, DefaultCommitOwner),
		CommitEmail:   getEnvOrDefault(CommitEmailEnvName, DefaultCommitEmail),
	}

	if repository := os.Getenv(GithubRepositoryEnvName); repository != "" {
		parts := strings.Split(repository, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, MalformedRepositoryError(repository)
		}
		opts.SourceOwner, opts.SourceRepo = parts[0], parts[1]
	}

	var err error
	if opts.SkipCommit, err = getBoolEnv(SkipCommitEnvName); err != nil {
		return nil, err
	}
	if opts.UpdateReadmeTable, err = getBoolEnv(UpdateReadmeTableEnvName); err != nil {
		return nil, err
	}
	if opts.DryRun, err = getBoolEnv(DryRunEnvName); err != nil {
		return nil, err
	}

	return opts, nil
}

// FromFile reads Options from a YAML document, for invocations outside the
// actions runner. Values absent from the file keep the same defaults FromEnv
// applies.
func FromFile(path string) (*Options, error) {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "config: could not read options file %s", path)
	}
	opts := &Options{
		FormulaFolder: DefaultFormulaFolder,
		CommitOwner:   DefaultCommitOwner,
		CommitEmail:   DefaultCommitEmail,
	}
	if err := yaml.Unmarshal(content, opts); err != nil {
		return nil, eris.Wrapf(err, "config: could not parse options file %s", path)
	}
	return opts, nil
}

// Validate reports every missing required input at once rather than failing
// one variable at a time. It must be called before any network operation.
func (o *Options) Validate() error {
	var result *multierror.Error

	// Both halves of owner/repo must be present; a repo with an empty owner
	// would produce a malformed API path.
	if o.SourceOwner == "" || o.SourceRepo == "" {
		result = multierror.Append(result, MissingInputError(GithubRepositoryEnvName))
	}

	required := []struct {
		name  string
		value string
	}{
		{GithubTokenEnvName, o.GithubToken},
		{InstallEnvName, o.Install},
		{HomebrewOwnerEnvName, o.HomebrewOwner},
		{HomebrewTapEnvName, o.HomebrewTap},
	}
	for _, input := range required {
		if input.value == "" {
			result = multierror.Append(result, MissingInputError(input.name))
		}
	}

	return result.ErrorOrNil()
}

// The action input takes precedence; outside the runner the conventional
// GITHUB_TOKEN variable is honored instead.
func getTokenEnv() string {
	if token := os.Getenv(GithubTokenEnvName); token != "" {
		return token
	}
	token, err := githubutils.GetGithubToken()
	if err != nil {
		return ""
	}
	return token
}

func getEnvOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func getBoolEnv(name string) (bool, error) {
	value := os.Getenv(name)
	if value == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, InvalidBoolInputError(err, name, value)
	}
	return parsed, nil
}
