package config

import (
	"fmt"

	"github.com/go-playground/validator"

	"vantage/internal/util"
)

// S3 holds the object storage settings. When a bucket is set, the
// dataset directory is resolved inside it instead of the local
// filesystem.
type S3 struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// Enabled reports whether the dataset should be read from S3.
func (s S3) Enabled() bool {
	return s.Bucket != ""
}

// Run holds the settings shared by every analysis command.
type Run struct {
	DataDir       string `validate:"required"`
	OutDir        string `validate:"required"`
	MaxFileSizeMB int    `validate:"gte=0"`
	Delimiter     string `validate:"required,len=1"`
	TopN          int    `validate:"gt=0"`
	DatabaseURL   string
	Debug         bool
	S3            S3
}

// FromEnv reads the run configuration from the environment and
// validates it.
func FromEnv() (Run, error) {
	run := Run{
		DataDir:       util.GetEnvString("DATA_DIR", "Data"),
		OutDir:        util.GetEnvString("OUT_DIR", "out"),
		MaxFileSizeMB: util.GetEnvInt("MAX_FILE_SIZE_MB", 50),
		Delimiter:     util.GetEnvString("DELIMITER", ","),
		TopN:          util.GetEnvInt("TOP_N", 20),
		DatabaseURL:   util.GetEnvString("DATABASE_URL", ""),
		Debug:         util.GetEnvBool("DEBUG", false),
		S3: S3{
			Bucket:    util.GetEnvString("S3_BUCKET", ""),
			Endpoint:  util.GetEnvString("S3_ENDPOINT", ""),
			Region:    util.GetEnvString("S3_REGION", ""),
			AccessKey: util.GetEnvString("S3_ACCESS_KEY", ""),
			SecretKey: util.GetEnvString("S3_SECRET_KEY", ""),
		},
	}

	if err := validator.New().Struct(run); err != nil {
		return Run{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return run, nil
}

// MaxFileSize returns the bulk loader size valve in bytes.
func (r Run) MaxFileSize() int64 {
	return int64(r.MaxFileSizeMB) * 1024 * 1024
}

// Comma returns the dataset delimiter as a rune.
func (r Run) Comma() rune {
	return rune(r.Delimiter[0])
}
