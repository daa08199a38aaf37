package models

// BackupMetadataEntryName is the fixed, well-known name of the metadata
// entry inside every exported archive. A restoring process locates it by
// name without scanning the archive.
const BackupMetadataEntryName = "export.json"

// BackupWALSuffix is appended to the database entry name for the
// write-ahead-log entry, when a WAL file exists alongside the database.
const BackupWALSuffix = "-wal"

// BackupMetadata is the descriptor embedded in every exported archive.
// It is always present and always written as the final entry.
type BackupMetadata struct {
	// UserID is the account the archive belongs to.
	UserID string `json:"user_id"`

	// Version is the database schema version at export time.
	Version string `json:"version"`

	// ClientID is the registered client at export time, if any.
	ClientID string `json:"client_id,omitempty"`

	// CreationTime is the export timestamp in ISO-8601 form.
	CreationTime string `json:"creation_time"`

	// Platform tags the producing platform.
	Platform string `json:"platform"`
}
