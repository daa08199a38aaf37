package backup

import (
	"archive/zip"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-ident-keeper/internal/config"
	"github.com/MKhiriev/go-ident-keeper/internal/logger"
	"github.com/MKhiriev/go-ident-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFiles реализует ExclusiveFiles поверх фиксированных путей
type fakeFiles struct {
	db  string
	wal string

	calls int
}

func (f *fakeFiles) ExclusiveFileAccess(fn func(dbPath, walPath string) error) error {
	f.calls++
	return fn(f.db, f.wal)
}

func newTestExporter(t *testing.T, files *fakeFiles) (*Exporter, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.ClientApp{Platform: "linux", Version: "7", BackupDir: dir}
	return NewExporter(files, cfg, logger.Nop()), dir
}

func readEntries(t *testing.T, archivePath string) ([]string, map[string][]byte) {
	t.Helper()
	zr, err := zip.OpenReader(archivePath)
	require.NoError(t, err)
	defer zr.Close()

	var names []string
	contents := make(map[string][]byte)
	for _, f := range zr.File {
		names = append(names, f.Name)
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		contents[f.Name] = data
	}
	return names, contents
}

func TestExport_WithWAL_ThreeEntriesByteIdentical(t *testing.T) {
	srcDir := t.TempDir()
	dbPath := filepath.Join(srcDir, "account.db")
	walPath := filepath.Join(srcDir, "account.db-wal")
	dbBytes := []byte("main database content of some length")
	walBytes := []byte("wal bytes")
	require.NoError(t, os.WriteFile(dbPath, dbBytes, 0o600))
	require.NoError(t, os.WriteFile(walPath, walBytes, 0o600))

	files := &fakeFiles{db: dbPath, wal: walPath}
	exporter, _ := newTestExporter(t, files)

	user := models.User{UserID: "u-1", Handle: "alice"}
	archivePath, err := exporter.Export(user, models.Registered("c-1", "7"))
	require.NoError(t, err)
	assert.Equal(t, 1, files.calls)

	names, contents := readEntries(t, archivePath)
	require.Equal(t, []string{"u-1", "u-1-wal", "export.json"}, names)
	assert.Equal(t, dbBytes, contents["u-1"])
	assert.Equal(t, walBytes, contents["u-1-wal"])

	var meta models.BackupMetadata
	require.NoError(t, json.Unmarshal(contents["export.json"], &meta))
	assert.Equal(t, "u-1", meta.UserID)
	assert.Equal(t, "c-1", meta.ClientID)
	assert.Equal(t, "7", meta.Version)
	assert.Equal(t, "linux", meta.Platform)

	_, err = time.Parse(time.RFC3339, meta.CreationTime)
	assert.NoError(t, err, "creation_time должен быть ISO-8601")
}

func TestExport_NoWAL_TwoEntries(t *testing.T) {
	srcDir := t.TempDir()
	dbPath := filepath.Join(srcDir, "account.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("db"), 0o600))

	files := &fakeFiles{db: dbPath, wal: ""}
	exporter, _ := newTestExporter(t, files)

	archivePath, err := exporter.Export(models.User{UserID: "u-1"}, models.Unregistered())
	require.NoError(t, err)

	names, _ := readEntries(t, archivePath)
	assert.Equal(t, []string{"u-1", "export.json"}, names)
}

func TestExport_MissingDatabase_IOErrorAndNoPartialArchive(t *testing.T) {
	files := &fakeFiles{db: "/nonexistent/account.db"}
	exporter, dir := newTestExporter(t, files)

	_, err := exporter.Export(models.User{UserID: "u-1"}, models.Unregistered())
	require.Error(t, err)

	var be *Error
	require.True(t, errors.As(err, &be))
	assert.Equal(t, IOError, be.Kind)

	leftovers, globErr := filepath.Glob(filepath.Join(dir, "*"))
	require.NoError(t, globErr)
	assert.Empty(t, leftovers, "частичный архив должен быть удалён")
}

func TestExport_CopyFaultMidStream_IOError(t *testing.T) {
	// Каталог вместо файла: os.Open проходит, io.Copy падает
	files := &fakeFiles{db: t.TempDir()}
	exporter, dir := newTestExporter(t, files)

	_, err := exporter.Export(models.User{UserID: "u-1"}, models.Unregistered())
	require.Error(t, err)

	var be *Error
	require.True(t, errors.As(err, &be))
	assert.Equal(t, IOError, be.Kind)

	leftovers, globErr := filepath.Glob(filepath.Join(dir, "*"))
	require.NoError(t, globErr)
	assert.Empty(t, leftovers)
}

func TestExport_EmptyHandleAllowed(t *testing.T) {
	srcDir := t.TempDir()
	dbPath := filepath.Join(srcDir, "account.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("db"), 0o600))

	exporter, _ := newTestExporter(t, &fakeFiles{db: dbPath})

	archivePath, err := exporter.Export(models.User{UserID: "u-1"}, models.Unregistered())
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(archivePath), "ident-keeper--backup_")
}

func TestArchiveName_Deterministic(t *testing.T) {
	at := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	assert.Equal(t, "ident-keeper-alice-backup_20260203T040506Z.zip", archiveName("alice", at))
}
