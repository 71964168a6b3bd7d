package run

import (
	"context"

	"vantage/internal/config"
	"vantage/internal/util"
	"vantage/pkg/loader"
	ioloader "vantage/pkg/loader/io"
	s3loader "vantage/pkg/loader/s3"
	"vantage/pkg/logger"
	"vantage/pkg/logger/console"
)

// Setup loads the environment, initializes logging and returns the
// validated run configuration. Called first in every command's main.
func Setup() config.Run {
	util.LoadEnv()

	// logger
	debug := util.GetEnvBool("DEBUG", false)
	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatal("Invalid configuration", "err", err)
	}
	return cfg
}

// NewLoader picks the dataset file source: S3 when a bucket is
// configured, the local filesystem otherwise.
func NewLoader(ctx context.Context, cfg config.Run) loader.TableFileLoader {
	if cfg.S3.Enabled() {
		l, err := s3loader.NewS3TableFileLoader(ctx, s3loader.NewS3TableFileLoaderParams{
			Bucket:    cfg.S3.Bucket,
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
		})
		if err != nil {
			logger.Fatal("Failed to create S3 loader", "err", err)
		}
		logger.Info("Reading dataset from S3", "bucket", cfg.S3.Bucket)
		return l
	}
	return ioloader.NewIOTableFileLoader()
}
