package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	appconfig "crate/internal/config"
	"crate/internal/domain"
	crateerrors "crate/internal/errors"
)

const (
	dirPermissions  = 0o700 // Owner-only access for security
	filePermissions = 0o600 // Read/write owner only
)

// Writer persists settings as a YAML configuration file.
type Writer struct {
	fs     domain.FileSystemAdapter
	logger *slog.Logger
}

// NewWriter creates a new configuration writer.
func NewWriter(fs domain.FileSystemAdapter, logger *slog.Logger) *Writer {
	return &Writer{
		fs:     fs,
		logger: logger,
	}
}

// Write stores settings at path. An existing file is only replaced when
// force is set.
func (w *Writer) Write(ctx context.Context, path string, settings appconfig.Settings, force bool) error {
	if !force {
		_, err := w.fs.Stat(path)
		switch {
		case err == nil:
			return crateerrors.NewConfigurationError("", path,
				fmt.Sprintf("%s already exists, use --force to overwrite it", path), os.ErrExist)
		case !errors.Is(err, os.ErrNotExist):
			return fmt.Errorf("failed to check config file: %w", err)
		}
	}

	data, err := Marshal(settings)
	if err != nil {
		return err
	}

	if err := w.fs.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := w.fs.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	w.logger.InfoContext(ctx, "Configuration written", "path", path, "overwrite", force)
	return nil
}

// Marshal renders settings in the configuration file format.
func Marshal(settings appconfig.Settings) ([]byte, error) {
	data, err := yaml.Marshal(settings.File())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
