package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fstats/internal/domain"
)

// Resolve turns the loaded configuration into the first scan's config. The
// root becomes an absolute, symlink-free path that must name a directory.
func Resolve(config Config) (domain.ScanConfig, error) {
	root, err := canonicalRoot(config.Path)
	if err != nil {
		return domain.ScanConfig{}, err
	}
	return domain.ScanConfig{
		RootPath:           root,
		Filters:            Filters(config),
		RespectIgnoreFiles: !config.NoIgnores,
		IncludeHidden:      config.ShowHidden,
		Depth:              domain.ClampDepth(config.Depth),
	}, nil
}

// Filters lists file-name filters before extension filters. A leading dot
// on an extension is dropped so ".rs" and "rs" behave the same.
func Filters(config Config) []domain.Filter {
	var filters []domain.Filter
	for _, name := range config.Names {
		if name != "" {
			filters = append(filters, domain.FileName(name))
		}
	}
	for _, ext := range config.Extensions {
		ext = strings.TrimPrefix(ext, ".")
		if ext != "" {
			filters = append(filters, domain.Extension(ext))
		}
	}
	return filters
}

func canonicalRoot(path string) (string, error) {
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", domain.ErrConfig, path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", domain.ErrConfig, path, err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", domain.ErrConfig, path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", domain.ErrConfig, path)
	}
	return resolved, nil
}
