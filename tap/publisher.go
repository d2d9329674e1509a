package tap

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/solo-io/homebrew-releaser/contextutils"
	"github.com/solo-io/homebrew-releaser/releaser/releaser_types"
)

const readmeFileName = "README.md"

func NewPublisher(repoClient RepositoryClient, fs afero.Fs) *Publisher {
	return &Publisher{
		repoClient: repoClient,
		fs:         fs,
	}
}

// Publisher delivers a rendered formula into the tap repository as a single
// commit. The tap is either updated atomically or left untouched.
type Publisher struct {
	repoClient RepositoryClient
	fs         afero.Fs
}

func (p *Publisher) Publish(ctx context.Context, artifact *releaser_types.FormulaArtifact, target *releaser_types.PublishTarget) error {
	logger := contextutils.LoggerFrom(ctx)

	checkout, err := p.repoClient.Clone(ctx, target)
	if err != nil {
		return err
	}

	formulaRelPath := filepath.Join(target.FormulaFolder, artifact.FormulaName+".rb")
	formulaAbsPath := filepath.Join(checkout.Dir, formulaRelPath)

	if err := p.fs.MkdirAll(filepath.Dir(formulaAbsPath), 0755); err != nil {
		checkout.Close()
		return err
	}
	if err := afero.WriteFile(p.fs, formulaAbsPath, []byte(artifact.Contents), 0644); err != nil {
		checkout.Close()
		return err
	}
	changed := []string{formulaRelPath}

	if target.UpdateReadmeTable {
		updated, err := p.updateReadme(checkout.Dir, artifact)
		if err != nil {
			checkout.Close()
			return err
		}
		if updated {
			changed = append(changed, readmeFileName)
		}
	}

	if target.SkipCommit {
		// Leave the checkout in place so the caller can inspect the result.
		logger.Infow("skipping commit, formula written to local checkout",
			zap.String("path", formulaAbsPath))
		return nil
	}
	defer checkout.Close()

	message := fmt.Sprintf("Brew formula update for %s version %s", artifact.SourceRepo, artifact.Tag)
	if err := p.repoClient.CommitAndPush(ctx, checkout, target, message, changed...); err != nil {
		return err
	}

	logger.Infow("formula published",
		zap.String("tap", target.TapOwner+"/"+target.TapRepo),
		zap.String("path", formulaRelPath),
		zap.String("tag", artifact.Tag))

	return nil
}

func (p *Publisher) updateReadme(checkoutDir string, artifact *releaser_types.FormulaArtifact) (bool, error) {
	readmePath := filepath.Join(checkoutDir, readmeFileName)

	exists, err := afero.Exists(p.fs, readmePath)
	if err != nil || !exists {
		return false, err
	}

	content, err := afero.ReadFile(p.fs, readmePath)
	if err != nil {
		return false, err
	}

	updated, changed := RewriteProjectTable(string(content), artifact)
	if !changed {
		return false, nil
	}

	return true, afero.WriteFile(p.fs, readmePath, []byte(updated), 0644)
}
