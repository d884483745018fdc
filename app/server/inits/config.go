package inits

import (
	"errors"
	"fmt"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"io/fs"
	"society-cms/app/server/config"
)

func Config() (*config.Config, error) {
	// .env 文件是可选的
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Security.SessionSecret == "" {
		if cfg.IsProd() {
			return nil, fmt.Errorf("SESSION_SECRET environment variable not set")
		}
		cfg.Security.SessionSecret = config.DevSessionSecret
	}

	if cfg.System.UploadMaxBytes <= 0 {
		return nil, fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}

	return cfg, nil
}
