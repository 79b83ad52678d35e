// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/MKhiriev/securecrt-dump/internal/logger"
	"github.com/MKhiriev/securecrt-dump/models"
)

// fileUnitSource reads session files from the local filesystem. SecureCRT
// nests sessions in folders, so listing is recursive.
type fileUnitSource struct {
	logger *logger.Logger
}

// NewFileUnitSource constructs a [UnitSource] over the local filesystem.
func NewFileUnitSource(log *logger.Logger) UnitSource {
	return &fileUnitSource{logger: log}
}

func (f *fileUnitSource) List(ctx context.Context, root, suffix string, exclude ...string) ([]models.UnitRef, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSessionsRootNotFound, root)
		}
		return nil, fmt.Errorf("stat sessions root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSessionsRootNotFound, root)
	}

	f.logger.Info().Str("root", root).Msg("searching for session files")

	var refs []models.UnitRef
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			// unreadable subfolder: skip it, keep the rest
			f.logger.Warn().Err(walkErr).Str("path", path).Msg("skipping unreadable path")
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !hasSuffixFold(d.Name(), suffix) || slices.Contains(exclude, d.Name()) {
			return nil
		}

		refs = append(refs, models.UnitRef{Name: d.Name(), Path: filepath.Dir(path)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk sessions root: %w", err)
	}

	sort.Slice(refs, func(i, j int) bool {
		return refs[i].FullPath() < refs[j].FullPath()
	})

	return refs, nil
}

func (f *fileUnitSource) Read(ctx context.Context, ref models.UnitRef) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(ref.FullPath())
	if err != nil {
		return nil, fmt.Errorf("read session file %s: %w", ref.Name, err)
	}
	return data, nil
}

// hasSuffixFold matches the suffix case-insensitively, as Windows does.
func hasSuffixFold(name, suffix string) bool {
	return len(name) >= len(suffix) && strings.EqualFold(name[len(name)-len(suffix):], suffix)
}
