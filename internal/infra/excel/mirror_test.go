package excel

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"places/config"
	"places/internal/domain/analytics"
	"places/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var testStart = time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func testConfig(dir string) *config.ExcelConfig {
	return &config.ExcelConfig{
		Path:              filepath.Join(dir, "places.xlsx"),
		SheetName:         "Places",
		SyncEnabled:       true,
		PreferExcel:       true,
		BackupEnabled:     true,
		BackupCount:       2,
		CacheEnabled:      true,
		CacheTTL:          5 * time.Minute,
		AutoSaveThreshold: 3,
	}
}

func newTestMirror(t *testing.T, cfg *config.ExcelConfig) (*Mirror, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: testStart}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mirror, err := New(cfg, logger, nil, WithClock(clock.Now))
	require.NoError(t, err)
	t.Cleanup(func() { _ = mirror.Close() })

	return mirror, clock
}

func samplePlace(id, name string) *entity.Place {
	return &entity.Place{
		ID:        id,
		Latitude:  12.971599,
		Longitude: 77.594566,
		Types:     "cafe, restaurant",
		Name:      name,
		Address:   "1 Church Street, Bengaluru",
		Pincode:   "560001",
		Rating:    4.5,
		Followers: 1200,
		Country:   "India",
		CreatedAt: testStart.Add(123456 * time.Microsecond),
		UpdatedAt: testStart.Add(time.Hour),
	}
}

func TestMirror_ReadMissingFileReturnsShapedEmptyTable(t *testing.T) {
	mirror, _ := newTestMirror(t, testConfig(t.TempDir()))

	table, err := mirror.Read(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, table.IsEmpty())
	for _, column := range entity.Columns {
		assert.True(t, table.HasColumn(column), column)
	}
}

func TestMirror_WriteReadRoundTrip(t *testing.T) {
	cfg := testConfig(t.TempDir())
	mirror, _ := newTestMirror(t, cfg)
	ctx := context.Background()

	leadingZero := samplePlace("p-2", "Zero Pin")
	leadingZero.Pincode = "012345"
	table := entity.NewPlaceTable([]*entity.Place{samplePlace("p-1", "Third Wave"), leadingZero})

	require.NoError(t, mirror.Write(ctx, table, false))

	got, err := mirror.Read(ctx, false)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())

	first := got.FindByID("p-1")
	require.NotNil(t, first)
	assert.Equal(t, "Third Wave", first.Name)
	assert.Equal(t, "cafe, restaurant", first.Types)
	assert.InDelta(t, 12.971599, first.Latitude, 1e-12)
	assert.InDelta(t, 4.5, first.Rating, 1e-12)
	assert.InDelta(t, 1200, first.Followers, 1e-12)
	assert.True(t, first.CreatedAt.Equal(samplePlace("p-1", "").CreatedAt), first.CreatedAt)
	assert.True(t, first.UpdatedAt.Equal(testStart.Add(time.Hour)))

	assert.Equal(t, "012345", got.FindByID("p-2").Pincode)
	assert.Empty(t, got.CoercionFailures)
}

func TestMirror_WriteCollapsesDuplicateIDs(t *testing.T) {
	mirror, _ := newTestMirror(t, testConfig(t.TempDir()))
	ctx := context.Background()

	table := entity.NewPlaceTable([]*entity.Place{
		samplePlace("a", "Old"),
		samplePlace("b", "Other"),
		samplePlace("a", "New"),
	})
	require.NoError(t, mirror.Write(ctx, table, false))

	got, err := mirror.Read(ctx, false)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "a", got.Rows[0].ID)
	assert.Equal(t, "New", got.Rows[0].Name)
}

func TestMirror_SyncFromDatabaseIsIdempotent(t *testing.T) {
	mirror, _ := newTestMirror(t, testConfig(t.TempDir()))
	ctx := context.Background()
	table := entity.NewPlaceTable([]*entity.Place{samplePlace("a", "Alpha"), samplePlace("b", "Beta")})

	require.NoError(t, mirror.SyncFromDatabase(ctx, table))
	first, err := mirror.Read(ctx, false)
	require.NoError(t, err)

	require.NoError(t, mirror.SyncFromDatabase(ctx, table))
	second, err := mirror.Read(ctx, false)
	require.NoError(t, err)

	assert.Equal(t, first.Rows, second.Rows)
}

func TestMirror_ForceFullResyncIsIdempotent(t *testing.T) {
	mirror, clock := newTestMirror(t, testConfig(t.TempDir()))
	ctx := context.Background()
	table := entity.NewPlaceTable([]*entity.Place{samplePlace("a", "Alpha"), samplePlace("b", "Beta")})

	for range 2 {
		clock.Advance(time.Second)
		require.NoError(t, mirror.ForceFullResync(ctx, table))

		got, err := mirror.Read(ctx, false)
		require.NoError(t, err)
		require.Equal(t, table.Len(), got.Len())
		for i, want := range table.Rows {
			row := got.Rows[i]
			assert.Equal(t, want.ID, row.ID)
			assert.Equal(t, want.Name, row.Name)
			assert.Equal(t, want.Pincode, row.Pincode)
			assert.InDelta(t, want.Latitude, row.Latitude, 1e-12)
			assert.InDelta(t, want.Longitude, row.Longitude, 1e-12)
			assert.True(t, want.CreatedAt.Equal(row.CreatedAt))
			assert.True(t, want.UpdatedAt.Equal(row.UpdatedAt))
		}
	}
}

func TestMirror_SyncDisabledIsNoop(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.SyncEnabled = false
	mirror, _ := newTestMirror(t, cfg)

	require.NoError(t, mirror.SyncFromDatabase(context.Background(), entity.NewPlaceTable([]*entity.Place{samplePlace("a", "A")})))
	require.NoError(t, mirror.AddRow(context.Background(), samplePlace("b", "B")))

	_, err := os.Stat(cfg.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestMirror_RowOperations(t *testing.T) {
	mirror, _ := newTestMirror(t, testConfig(t.TempDir()))
	ctx := context.Background()

	require.NoError(t, mirror.AddRow(ctx, samplePlace("a", "Alpha")))
	require.NoError(t, mirror.AddRow(ctx, samplePlace("b", "Beta")))

	updated := samplePlace("a", "Alpha Prime")
	require.NoError(t, mirror.UpdateRow(ctx, updated))
	require.NoError(t, mirror.UpdateRow(ctx, samplePlace("c", "Appended")))
	require.NoError(t, mirror.DeleteRow(ctx, "b"))
	require.NoError(t, mirror.DeleteRow(ctx, "unknown"))

	got, err := mirror.Read(ctx, false)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "Alpha Prime", got.FindByID("a").Name)
	assert.NotNil(t, got.FindByID("c"))
	assert.Nil(t, got.FindByID("b"))
}

func TestMirror_CacheHonoursTTL(t *testing.T) {
	cfg := testConfig(t.TempDir())
	mirror, clock := newTestMirror(t, cfg)
	ctx := context.Background()

	require.NoError(t, mirror.Write(ctx, entity.NewPlaceTable([]*entity.Place{samplePlace("a", "Cached")}), false))

	// Replace the file behind the mirror's back.
	require.NoError(t, writeWorkbook(cfg.Path, cfg.SheetName, entity.NewPlaceTable([]*entity.Place{samplePlace("a", "On Disk")})))

	cached, err := mirror.Read(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "Cached", cached.Rows[0].Name)

	cached.Rows[0].Name = "Mutated"
	again, err := mirror.Read(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "Cached", again.Rows[0].Name)

	clock.Advance(cfg.CacheTTL + time.Second)
	fresh, err := mirror.Read(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "On Disk", fresh.Rows[0].Name)
}

func TestMirror_BackupRotation(t *testing.T) {
	cfg := testConfig(t.TempDir())
	mirror, clock := newTestMirror(t, cfg)
	ctx := context.Background()
	table := entity.NewPlaceTable([]*entity.Place{samplePlace("a", "Alpha")})

	// No backup while the workbook does not exist yet.
	require.NoError(t, mirror.ForceFullResync(ctx, table))

	for range 4 {
		clock.Advance(time.Second)
		require.NoError(t, mirror.ForceFullResync(ctx, table))
	}

	entries, err := os.ReadDir(filepath.Join(filepath.Dir(cfg.Path), backupDirName))
	require.NoError(t, err)

	var backups []string
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == workbookExt {
			backups = append(backups, entry.Name())
		}
	}
	require.Len(t, backups, cfg.BackupCount)
	assert.ElementsMatch(t, []string{
		"places_" + testStart.Add(3*time.Second).Format(backupTimestampLayout) + workbookExt,
		"places_" + testStart.Add(4*time.Second).Format(backupTimestampLayout) + workbookExt,
	}, backups)
}

func TestMirror_SyncBacksUpEveryThresholdOperations(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.BackupCount = 10
	mirror, clock := newTestMirror(t, cfg)
	ctx := context.Background()
	table := entity.NewPlaceTable([]*entity.Place{samplePlace("a", "Alpha")})

	for range 7 {
		clock.Advance(time.Second)
		require.NoError(t, mirror.SyncFromDatabase(ctx, table))
	}

	stats, err := mirror.Statistics(ctx)
	require.NoError(t, err)
	// Syncs 3 and 6 reach the threshold of 3.
	assert.Equal(t, 2, stats.BackupCount)
	assert.Equal(t, 1, stats.OperationCount)
}

func TestMirror_Statistics(t *testing.T) {
	cfg := testConfig(t.TempDir())
	mirror, clock := newTestMirror(t, cfg)
	ctx := context.Background()

	empty, err := mirror.Statistics(ctx)
	require.NoError(t, err)
	assert.False(t, empty.FileExists)
	assert.Zero(t, empty.RecordCount)
	assert.Empty(t, empty.CacheAge)

	require.NoError(t, mirror.Write(ctx, entity.NewPlaceTable([]*entity.Place{samplePlace("a", "A"), samplePlace("b", "B")}), false))
	clock.Advance(90 * time.Second)

	stats, err := mirror.Statistics(ctx)
	require.NoError(t, err)
	assert.True(t, stats.FileExists)
	assert.Equal(t, cfg.Path, stats.Path)
	assert.Equal(t, 2, stats.RecordCount)
	assert.Positive(t, stats.SizeBytes)
	assert.NotEmpty(t, stats.SizeHuman)
	assert.Len(t, stats.Checksum, 64)
	assert.True(t, stats.CacheValid)
	assert.Equal(t, 2, stats.CacheRecordCount)
	assert.Equal(t, "1m30s", stats.CacheAge)
	assert.True(t, stats.SyncEnabled)
}

func TestReadWorkbook_ToleratesForeignLayouts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foreign.xlsx")

	f := excelize.NewFile()
	rows := [][]any{
		{"ID", "Name", "Latitude", "Longitude", "Types", "Address", "Pincode", "Created_At", "Notes"},
		{"x1", "Serial Date", 12.5, 77.5, "park", "Cubbon Park Road", 560001, 45292.5, "ignored"},
		{"x2", "Broken", "north", 77.6, "park", "Lalbagh Road 2", "560004", "yesterday", ""},
		{nil, nil, nil, nil, nil, nil, nil, nil, nil},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	// The configured sheet does not exist, so the first sheet is read.
	table, err := readWorkbook(path, "Places")
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	assert.True(t, table.HasColumn(entity.ColumnCreatedAt))
	assert.False(t, table.HasColumn(entity.ColumnRating))
	assert.False(t, table.HasColumn(entity.ColumnUpdatedAt))

	serial := table.FindByID("x1")
	require.NotNil(t, serial)
	assert.Equal(t, "560001", serial.Pincode)
	assert.WithinDuration(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), serial.CreatedAt, time.Second)

	broken := table.FindByID("x2")
	require.NotNil(t, broken)
	assert.Zero(t, broken.Latitude)
	assert.True(t, broken.CreatedAt.IsZero())
	assert.Equal(t, 1, table.CoercionFailures[entity.ColumnLatitude])
	assert.Equal(t, 1, table.CoercionFailures[entity.ColumnCreatedAt])
}

func writeSheet(t *testing.T, path string, rows [][]any) {
	t.Helper()

	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
}

func TestReadWorkbook_BlankNumericCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blanks.xlsx")
	writeSheet(t, path, [][]any{
		{"id", "name", "latitude", "longitude", "types", "address", "pincode", "rating", "followers", "country", "created_at", "updated_at"},
		{"a", "Alpha", 12.9, 77.6, "cafe", "1 Main St", "560001", 4.0, 10, "India", "2024-05-10 08:00:00", "2024-05-10 08:00:00"},
		{"b", "Beta", nil, nil, "cafe", "2 Main St", "560001", nil, 5, "India", "2024-05-10 08:00:00", "2024-05-10 08:00:00"},
	})

	table, err := readWorkbook(path, "Sheet1")
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	blank := table.FindByID("b")
	require.NotNil(t, blank)
	assert.True(t, blank.IsBlank(entity.ColumnLatitude))
	assert.True(t, blank.IsBlank(entity.ColumnLongitude))
	assert.True(t, blank.IsBlank(entity.ColumnRating))
	assert.False(t, blank.IsBlank(entity.ColumnFollowers))
	assert.False(t, blank.HasCoordinates())
	assert.False(t, table.FindByID("a").IsBlank(entity.ColumnLatitude))
	assert.Empty(t, table.CoercionFailures)

	quality := analytics.CalculateDataQuality(table)
	assert.Equal(t, 1, quality.ValidCoordinates)
	assert.InDelta(t, 50.0, quality.CoordinateValidity, 1e-9)
	assert.Less(t, quality.Completeness, 100.0)

	// Blank cells stay blank through a rewrite.
	rewritten := filepath.Join(t.TempDir(), "rewritten.xlsx")
	require.NoError(t, writeWorkbook(rewritten, "Places", table))
	again, err := readWorkbook(rewritten, "Places")
	require.NoError(t, err)
	assert.True(t, again.FindByID("b").IsBlank(entity.ColumnLatitude))
	assert.True(t, again.FindByID("b").IsBlank(entity.ColumnRating))
}

func TestReadWorkbook_TextIDsAreKeptVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.xlsx")
	writeSheet(t, path, [][]any{
		{"id", "name", "pincode"},
		{"10.0", "Text Id", "560001.0"},
		{"ChIJ.9", "Opaque Id", 560002},
	})

	table, err := readWorkbook(path, "Sheet1")
	require.NoError(t, err)

	require.NotNil(t, table.FindByID("10.0"))
	assert.Equal(t, "560001", table.FindByID("10.0").Pincode)
	assert.Equal(t, "560002", table.FindByID("ChIJ.9").Pincode)
}

func TestOperationCounter(t *testing.T) {
	t.Parallel()

	counter := newOperationCounter(2)
	var fired []bool
	for range 5 {
		fired = append(fired, counter.increment())
	}

	assert.Equal(t, []bool{false, true, false, true, false}, fired)
	assert.Equal(t, 1, counter.value())
}

func TestDedupeByID(t *testing.T) {
	t.Parallel()

	table := &entity.PlaceTable{Rows: []*entity.Place{
		{ID: "1", Name: "first"}, nil, {ID: "2"}, {ID: "1", Name: "last"},
	}}
	got := dedupeByID(table)

	require.Len(t, got.Rows, 2)
	assert.Equal(t, "last", got.Rows[0].Name)
	assert.Len(t, got.Columns, len(entity.Columns))
	assert.Len(t, table.Rows, 4, "input untouched")
}
