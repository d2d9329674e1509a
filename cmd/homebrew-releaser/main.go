package main

import (
	"context"
	"flag"

	"go.uber.org/zap"

	"github.com/solo-io/homebrew-releaser/config"
	"github.com/solo-io/homebrew-releaser/contextutils"
	"github.com/solo-io/homebrew-releaser/releaser"
)

const configFileFlagName = "config"

func main() {
	ctx := context.Background()
	contextutils.LoggerFrom(ctx).Infow("starting homebrew releaser")
	err := run(ctx)
	if err != nil {
		contextutils.LoggerFrom(ctx).Fatalw("unable to complete homebrew release", zap.Error(err))
	}
	contextutils.LoggerFrom(ctx).Infow("completed successfully")
}

func run(ctx context.Context) error {
	configFile := ""
	flag.StringVar(&configFile, configFileFlagName, "", "optional yaml file with run options; when unset, options come from the environment")
	flag.Parse()

	var (
		opts *config.Options
		err  error
	)
	if configFile != "" {
		contextutils.LoggerFrom(ctx).Infow("reading options from file", zap.String("filename", configFile))
		opts, err = config.FromFile(configFile)
	} else {
		opts, err = config.FromEnv()
	}
	if err != nil {
		return err
	}

	return releaser.NewReleaserWithDefaults(ctx, opts).Run(ctx, opts)
}
