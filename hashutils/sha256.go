package hashutils

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/solo-io/homebrew-releaser/contextutils"
)

var (
	ErrDownloadFailed = eris.New("hashutils: could not download release archive")
)

func NewChecksumFetcher(httpClient *http.Client) *ChecksumFetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ChecksumFetcher{
		httpClient: httpClient,
	}
}

// ChecksumFetcher streams remote archives through SHA-256 without staging
// them on disk.
type ChecksumFetcher struct {
	httpClient *http.Client
}

// Sha256FromUrl downloads the bytes at url and returns their lowercase hex
// SHA-256 digest. Any non-2xx response or truncated transfer aborts with
// ErrDownloadFailed; nothing is written anywhere.
func (c *ChecksumFetcher) Sha256FromUrl(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", eris.Wrapf(ErrDownloadFailed, "invalid url %s: %v", url, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", eris.Wrapf(ErrDownloadFailed, "request for %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", eris.Wrapf(ErrDownloadFailed, "%s returned status %d", url, resp.StatusCode)
	}

	sha, err := Sha256(resp.Body)
	if err != nil {
		return "", eris.Wrapf(ErrDownloadFailed, "transfer from %s was interrupted: %v", url, err)
	}

	contextutils.LoggerFrom(ctx).Debugw("computed archive checksum",
		zap.String("url", url),
		zap.String("sha256", sha))

	return sha, nil
}

// Sha256 digests everything readable from r.
func Sha256(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Sha256File digests the file at path on the given filesystem.
func Sha256File(fs afero.Fs, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Sha256(f)
}
