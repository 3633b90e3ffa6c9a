package service

import (
	"context"
	"time"

	"places/internal/domain/entity"
)

// MirrorStatistics describes the mirror file and its in-memory cache.
type MirrorStatistics struct {
	FileExists       bool      `json:"file_exists"`
	Path             string    `json:"path"`
	SyncEnabled      bool      `json:"sync_enabled"`
	CacheEnabled     bool      `json:"cache_enabled"`
	BackupEnabled    bool      `json:"backup_enabled"`
	SizeBytes        int64     `json:"file_size_bytes"`
	SizeMB           float64   `json:"file_size_mb"`
	SizeHuman        string    `json:"file_size_human"`
	LastModified     time.Time `json:"last_modified,omitzero"`
	RecordCount      int       `json:"record_count"`
	CacheValid       bool      `json:"cache_valid"`
	CacheRecordCount int       `json:"cache_record_count"`
	CacheAge         string    `json:"cache_age,omitempty"`
	BackupCount      int       `json:"backup_count"`
	Checksum         string    `json:"checksum,omitempty"`
	OperationCount   int       `json:"operation_count"`
}

// PlaceMirror is the file-backed, best-effort read cache of the place store.
// It is never the source of truth and can always be rebuilt with ForceFullResync.
type PlaceMirror interface {
	// Enabled reports whether mirror sync is switched on.
	Enabled() bool

	// PreferExcel reports whether full reads should try the mirror first.
	PreferExcel() bool

	// Read returns the mirror contents. A missing file yields an empty, correctly shaped table.
	Read(ctx context.Context, useCache bool) (*entity.PlaceTable, error)

	// Write replaces the mirror contents, optionally backing up the current file first.
	Write(ctx context.Context, table *entity.PlaceTable, createBackup bool) error

	// SyncFromDatabase writes a full database snapshot; every Nth call also backs up.
	SyncFromDatabase(ctx context.Context, table *entity.PlaceTable) error

	// AddRow appends one place.
	AddRow(ctx context.Context, place *entity.Place) error

	// UpdateRow replaces the row with the same id. A row missing from the mirror is appended.
	UpdateRow(ctx context.Context, place *entity.Place) error

	// DeleteRow removes the row with the given id.
	DeleteRow(ctx context.Context, id string) error

	// ForceFullResync clears the cache and writes table with a mandatory backup.
	ForceFullResync(ctx context.Context, table *entity.PlaceTable) error

	// Statistics reports file and cache state.
	Statistics(ctx context.Context) (*MirrorStatistics, error)
}
