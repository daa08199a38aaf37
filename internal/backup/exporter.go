// Package backup produces the encrypted-account portable export: a single
// zip archive holding the local database file, its write-ahead log when one
// exists, and a JSON metadata descriptor as the final entry.
package backup

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-ident-keeper/internal/config"
	"github.com/MKhiriev/go-ident-keeper/internal/logger"
	"github.com/MKhiriev/go-ident-keeper/models"
)

// ExclusiveFiles is the slice of the store layer the exporter needs: a way
// to run a function with exclusive access to the database files. Satisfied
// by *store.DB.
type ExclusiveFiles interface {
	ExclusiveFileAccess(fn func(dbPath, walPath string) error) error
}

// Exporter streams the local database into a portable archive. The exclusive
// file guard is held only while the database bytes are copied; the metadata
// entry is written after the guard is released.
type Exporter struct {
	files ExclusiveFiles
	dir   string

	platform string
	version  string

	logger *logger.Logger
}

// NewExporter constructs an [Exporter] writing archives into cfg.BackupDir.
func NewExporter(files ExclusiveFiles, cfg config.ClientApp, logger *logger.Logger) *Exporter {
	return &Exporter{
		files:    files,
		dir:      cfg.BackupDir,
		platform: cfg.Platform,
		version:  cfg.Version,
		logger:   logger,
	}
}

// Export produces the archive for user and returns its path. The archive
// contains the database under the user id as entry name, optionally a
// second entry with the -wal suffix, and export.json last. Any failure
// aborts the whole operation, removes the partial archive, and yields a
// typed [*Error].
func (e *Exporter) Export(user models.User, state models.RegistrationState) (string, error) {
	archivePath := filepath.Join(e.dir, archiveName(user.Handle, time.Now().UTC()))

	out, err := os.Create(archivePath)
	if err != nil {
		return "", ioError(fmt.Errorf("create archive: %w", err))
	}

	if err := e.writeArchive(out, user, state); err != nil {
		out.Close()
		// Частичный архив невалиден — убираем его сразу
		if rmErr := os.Remove(archivePath); rmErr != nil {
			e.logger.Err(rmErr).Str("archive", archivePath).Msg("failed to remove partial archive")
		}
		return "", err
	}

	if err := out.Close(); err != nil {
		_ = os.Remove(archivePath)
		return "", ioError(fmt.Errorf("close archive: %w", err))
	}

	e.logger.Info().Str("archive", archivePath).Msg("database export complete")
	return archivePath, nil
}

func (e *Exporter) writeArchive(out io.Writer, user models.User, state models.RegistrationState) error {
	zw := zip.NewWriter(out)

	// Эксклюзивный доступ держим только на время копирования байтов
	err := e.files.ExclusiveFileAccess(func(dbPath, walPath string) error {
		if err := copyFileEntry(zw, user.UserID, dbPath); err != nil {
			return err
		}
		if walPath != "" {
			if err := copyFileEntry(zw, user.UserID+models.BackupWALSuffix, walPath); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zw.Close()
		return err
	}

	if err := writeMetadataEntry(zw, user, state, e.platform, e.version); err != nil {
		zw.Close()
		return err
	}

	if err := zw.Close(); err != nil {
		return zipError(fmt.Errorf("finalize archive: %w", err))
	}

	return nil
}

func copyFileEntry(zw *zip.Writer, name, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return ioError(fmt.Errorf("open %s: %w", path, err))
	}
	defer src.Close()

	entry, err := zw.Create(name)
	if err != nil {
		return zipError(fmt.Errorf("create entry %s: %w", name, err))
	}

	if _, err = io.Copy(entry, src); err != nil {
		return ioError(fmt.Errorf("copy %s: %w", path, err))
	}

	return nil
}

func writeMetadataEntry(zw *zip.Writer, user models.User, state models.RegistrationState, platform, version string) error {
	meta := models.BackupMetadata{
		UserID:       user.UserID,
		Version:      version,
		ClientID:     state.ClientID,
		CreationTime: time.Now().UTC().Format(time.RFC3339),
		Platform:     platform,
	}

	payload, err := json.Marshal(meta)
	if err != nil {
		return otherError(fmt.Errorf("encode metadata: %w", err))
	}

	entry, err := zw.Create(models.BackupMetadataEntryName)
	if err != nil {
		return zipError(fmt.Errorf("create metadata entry: %w", err))
	}
	if _, err = entry.Write(payload); err != nil {
		return zipError(fmt.Errorf("write metadata entry: %w", err))
	}

	return nil
}

// archiveName builds the archive filename from the human handle (possibly
// empty) and an ISO timestamp.
func archiveName(handle string, now time.Time) string {
	return fmt.Sprintf("ident-keeper-%s-backup_%s.zip", handle, now.Format("20060102T150405Z"))
}
