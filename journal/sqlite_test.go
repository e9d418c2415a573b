package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/fxsignal/signals"
)

func newTestSQLite(t *testing.T) (*SQLiteJournal, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)

	return j, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('runs','signals')`)
	require.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["runs"])
	assert.True(t, found["signals"])
}

func TestSQLiteRecordRun(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)

	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)

	rec := RunRecord{
		RunID:     "01HTEST",
		Pair:      "EURUSD",
		Window:    14,
		Start:     start,
		End:       end,
		Points:    87,
		Generated: end.Add(6 * time.Hour),
	}

	require.NoError(t, j.RecordRun(rec))
	require.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var (
		runID     string
		pair      string
		window    int
		startGot  time.Time
		endGot    time.Time
		points    int
		generated time.Time
	)

	err = db.QueryRow(`
        SELECT run_id, pair, rsi_window, start_date, end_date, points, generated
        FROM runs LIMIT 1`).Scan(
		&runID, &pair, &window, &startGot, &endGot, &points, &generated,
	)
	require.NoError(t, err)

	assert.Equal(t, rec.RunID, runID)
	assert.Equal(t, rec.Pair, pair)
	assert.Equal(t, rec.Window, window)
	assert.True(t, startGot.Equal(rec.Start))
	assert.True(t, endGot.Equal(rec.End))
	assert.Equal(t, rec.Points, points)
	assert.True(t, generated.Equal(rec.Generated))
}

func TestSQLiteRecordSignal(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)

	rec := SignalRecord{
		RunID:  "01HTEST",
		Date:   time.Date(2024, 4, 29, 0, 0, 0, 0, time.UTC),
		Close:  1.0955,
		RSI:    27.3,
		Signal: signals.Buy,
	}

	require.NoError(t, j.RecordSignal(rec))
	require.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var (
		runID     string
		date      time.Time
		closeGot  float64
		rsi       float64
		signalGot string
	)

	err = db.QueryRow(`
        SELECT run_id, date, close_price, rsi, signal
        FROM signals LIMIT 1`).Scan(
		&runID, &date, &closeGot, &rsi, &signalGot,
	)
	require.NoError(t, err)

	assert.Equal(t, rec.RunID, runID)
	assert.True(t, date.Equal(rec.Date))
	assert.InDelta(t, rec.Close, closeGot, 1e-9)
	assert.InDelta(t, rec.RSI, rsi, 1e-9)
	assert.Equal(t, "BUY", signalGot)
}
