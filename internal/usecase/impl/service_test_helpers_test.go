package impl

import (
	"io"
	"log/slog"

	"chatline/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUploadConfig(maxBytes int64) *config.Config {
	cfg := &config.Config{}
	cfg.Upload.MaxBytes = maxBytes

	return cfg
}
