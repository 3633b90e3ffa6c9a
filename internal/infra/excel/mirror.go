// Package excel implements the spreadsheet mirror of the place store.
package excel

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"places/config"
	"places/internal/domain/entity"
	"places/internal/domain/service"
	"places/internal/errors"
	"places/internal/infra/metrics"
	"places/internal/util"

	"go.uber.org/fx"
)

const backupDirName = "backups"

var _ service.PlaceMirror = (*Mirror)(nil)

// Mirror keeps an .xlsx copy of the place table. Only its in-memory cache and
// counter are synchronised; the file itself is not locked.
type Mirror struct {
	cfg     *config.ExcelConfig
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	cache   *snapshotCache
	counter *operationCounter
	backups *backupStore
}

// Option customises a Mirror.
type Option func(*Mirror)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Mirror) {
		m.now = now
	}
}

// MirrorParams defines the dependencies of NewPlaceMirror.
type MirrorParams struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// NewPlaceMirror builds the mirror from configuration and closes its backup
// bucket when the application stops.
func NewPlaceMirror(params MirrorParams) (service.PlaceMirror, error) {
	mirror, err := New(params.Config.Excel, params.Logger, params.Metrics)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return mirror.Close()
		},
	})

	return mirror, nil
}

// New creates a Mirror for cfg.
func New(cfg *config.ExcelConfig, logger *slog.Logger, m *metrics.Metrics, opts ...Option) (*Mirror, error) {
	if cfg == nil {
		return nil, errors.New("excel configuration is missing")
	}
	if logger == nil {
		logger = slog.Default()
	}

	mirror := &Mirror{
		cfg:     cfg,
		logger:  logger.With(slog.String("component", "excel_mirror"), slog.String("path", cfg.Path)),
		metrics: m,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(mirror)
	}

	mirror.cache = newSnapshotCache(cfg.CacheTTL, mirror.now)
	mirror.counter = newOperationCounter(cfg.AutoSaveThreshold)

	if cfg.BackupEnabled {
		backups, err := openBackupStore(mirror.backupDir(), mirror.stem(), cfg.BackupCount, mirror.now)
		if err != nil {
			return nil, err
		}
		mirror.backups = backups
	}

	return mirror, nil
}

// Close releases the backup bucket.
func (m *Mirror) Close() error {
	if m.backups == nil {
		return nil
	}

	return m.backups.close()
}

func (m *Mirror) Enabled() bool {
	return m.cfg.SyncEnabled
}

func (m *Mirror) PreferExcel() bool {
	return m.cfg.PreferExcel
}

func (m *Mirror) stem() string {
	return strings.TrimSuffix(filepath.Base(m.cfg.Path), filepath.Ext(m.cfg.Path))
}

func (m *Mirror) backupDir() string {
	return filepath.Join(filepath.Dir(m.cfg.Path), backupDirName)
}

func (m *Mirror) fileExists() bool {
	info, err := os.Stat(m.cfg.Path)

	return err == nil && !info.IsDir()
}

// Read returns the mirror contents, from the cache when allowed and fresh.
func (m *Mirror) Read(_ context.Context, useCache bool) (*entity.PlaceTable, error) {
	if useCache && m.cfg.CacheEnabled {
		table, ok := m.cache.get()
		m.metrics.MirrorCacheHit(ok)
		if ok {
			return table, nil
		}
	}

	if !m.fileExists() {
		return entity.EmptyPlaceTable(), nil
	}

	table, err := readWorkbook(m.cfg.Path, m.cfg.SheetName)
	if err != nil {
		return nil, err
	}

	if m.cfg.CacheEnabled {
		m.cache.set(table)
	}
	m.logger.Debug("Read mirror workbook", slog.Int("records", table.Len()))

	return table, nil
}

// Write replaces the workbook. Duplicate ids collapse to the last occurrence.
// A failed backup is logged and does not stop the write.
func (m *Mirror) Write(ctx context.Context, table *entity.PlaceTable, createBackup bool) error {
	if table == nil {
		table = entity.EmptyPlaceTable()
	}
	table = dedupeByID(table)

	if createBackup {
		m.backup(ctx)
	}

	err := writeWorkbook(m.cfg.Path, m.cfg.SheetName, table)
	m.metrics.MirrorWrite(err, table.Len())
	if err != nil {
		return err
	}

	if m.cfg.CacheEnabled {
		m.cache.set(table)
	}
	m.logger.Info("Wrote mirror workbook", slog.Int("records", table.Len()), slog.Bool("backup", createBackup))

	return nil
}

func (m *Mirror) backup(ctx context.Context) {
	if m.backups == nil || !m.fileExists() {
		return
	}

	key, err := m.backups.create(ctx, m.cfg.Path)
	if err != nil {
		m.logger.Warn("Failed to back up mirror workbook", slog.Any("error", err))

		return
	}
	m.metrics.MirrorBackup()
	m.logger.Info("Backed up mirror workbook", slog.String("backup", key))
}

// SyncFromDatabase writes a full database snapshot; every AutoSaveThreshold-th
// sync also takes a backup.
func (m *Mirror) SyncFromDatabase(ctx context.Context, table *entity.PlaceTable) error {
	if !m.Enabled() {
		return nil
	}

	return m.Write(ctx, table, m.counter.increment())
}

func (m *Mirror) AddRow(ctx context.Context, place *entity.Place) error {
	if !m.Enabled() || place == nil {
		return nil
	}

	table, err := m.Read(ctx, true)
	if err != nil {
		return err
	}
	table.Columns = entity.AllColumns()
	table.Rows = append(table.Rows, place.Clone())

	return m.Write(ctx, table, false)
}

func (m *Mirror) UpdateRow(ctx context.Context, place *entity.Place) error {
	if !m.Enabled() || place == nil {
		return nil
	}

	table, err := m.Read(ctx, true)
	if err != nil {
		return err
	}
	table.Columns = entity.AllColumns()

	replaced := false
	for i, row := range table.Rows {
		if row.ID == place.ID {
			table.Rows[i] = place.Clone()
			replaced = true
		}
	}
	if !replaced {
		m.logger.Warn("Updated place missing from mirror, appending", slog.String("place_id", place.ID))
		table.Rows = append(table.Rows, place.Clone())
	}

	return m.Write(ctx, table, false)
}

func (m *Mirror) DeleteRow(ctx context.Context, id string) error {
	if !m.Enabled() {
		return nil
	}

	table, err := m.Read(ctx, true)
	if err != nil {
		return err
	}

	kept := make([]*entity.Place, 0, len(table.Rows))
	for _, row := range table.Rows {
		if row.ID != id {
			kept = append(kept, row)
		}
	}
	if len(kept) == len(table.Rows) {
		return nil
	}
	table.Rows = kept

	return m.Write(ctx, table, false)
}

// ForceFullResync drops the cache and rewrites the workbook with a backup.
func (m *Mirror) ForceFullResync(ctx context.Context, table *entity.PlaceTable) error {
	m.cache.invalidate()

	return m.Write(ctx, table, true)
}

func (m *Mirror) Statistics(ctx context.Context) (*service.MirrorStatistics, error) {
	stats := &service.MirrorStatistics{
		Path:           m.cfg.Path,
		SyncEnabled:    m.cfg.SyncEnabled,
		CacheEnabled:   m.cfg.CacheEnabled,
		BackupEnabled:  m.cfg.BackupEnabled,
		OperationCount: m.counter.value(),
	}

	if info, err := os.Stat(m.cfg.Path); err == nil && !info.IsDir() {
		stats.FileExists = true
		stats.SizeBytes = info.Size()
		stats.SizeMB = util.RoundFloat(float64(info.Size())/(1024*1024), 2)
		stats.SizeHuman = util.FormatBytes(info.Size())
		stats.LastModified = info.ModTime().UTC()

		table, err := m.Read(ctx, true)
		if err != nil {
			return nil, err
		}
		stats.RecordCount = table.Len()

		checksum, err := util.CalculateFileChecksum(m.cfg.Path)
		if err != nil {
			return nil, err
		}
		stats.Checksum = checksum
	}

	state := m.cache.state()
	stats.CacheValid = state.Valid
	stats.CacheRecordCount = state.Records
	if state.Loaded {
		stats.CacheAge = util.FormatDuration(state.Age)
	}

	if m.backups != nil {
		count, err := m.backups.count(ctx)
		if err != nil {
			return nil, err
		}
		stats.BackupCount = count
	}

	return stats, nil
}

// dedupeByID keeps the first position of every id with the values of its last occurrence.
func dedupeByID(table *entity.PlaceTable) *entity.PlaceTable {
	position := make(map[string]int, len(table.Rows))
	rows := make([]*entity.Place, 0, len(table.Rows))
	for _, row := range table.Rows {
		if row == nil {
			continue
		}
		if idx, seen := position[row.ID]; seen {
			rows[idx] = row

			continue
		}
		position[row.ID] = len(rows)
		rows = append(rows, row)
	}

	deduped := *table
	deduped.Rows = rows
	if deduped.Columns == nil {
		deduped.Columns = entity.AllColumns()
	}

	return &deduped
}
