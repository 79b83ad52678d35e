package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/securecrt-dump/internal/logger"
)

const lootTimeLayout = "20060102150405"

// fileLootWriter writes loot files into a single directory. Every file name
// is prefixed with a UTC timestamp so repeated runs never overwrite each
// other.
type fileLootWriter struct {
	dir    string
	now    func() time.Time
	logger *logger.Logger
}

// NewFileLootWriter constructs a [LootWriter] storing files under dir.
func NewFileLootWriter(dir string, log *logger.Logger) LootWriter {
	return &fileLootWriter{
		dir:    dir,
		now:    time.Now,
		logger: log,
	}
}

func (w *fileLootWriter) Write(ctx context.Context, name string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.dir, 0o700); err != nil {
		return "", fmt.Errorf("create loot dir: %w", err)
	}

	path := filepath.Join(w.dir, w.now().UTC().Format(lootTimeLayout)+"_"+filepath.Base(name))
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", fmt.Errorf("write loot file: %w", err)
	}

	w.logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("loot stored")
	return path, nil
}
