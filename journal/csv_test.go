package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/fxsignal/signals"
)

func TestCSVJournalWritesRows(t *testing.T) {
	dir := t.TempDir()
	runsPath := filepath.Join(dir, "runs.csv")
	signalsPath := filepath.Join(dir, "signals.csv")

	j, err := NewCSV(runsPath, signalsPath)
	require.NoError(t, err)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)

	require.NoError(t, j.RecordRun(RunRecord{
		RunID:     "01RUN",
		Pair:      "EURUSD",
		Window:    14,
		Start:     start,
		End:       end,
		Points:    87,
		Generated: end,
	}))
	require.NoError(t, j.RecordSignal(SignalRecord{
		RunID:  "01RUN",
		Date:   end,
		Close:  1.0955,
		RSI:    72.5,
		Signal: signals.Sell,
	}))
	require.NoError(t, j.Close())

	rf, err := os.Open(runsPath)
	require.NoError(t, err)
	defer rf.Close()

	runRows, err := csv.NewReader(rf).ReadAll()
	require.NoError(t, err)
	require.Len(t, runRows, 2)
	assert.Equal(t, []string{"run_id", "pair", "window", "start_date", "end_date", "points", "generated"}, runRows[0])
	assert.Equal(t, "01RUN", runRows[1][0])
	assert.Equal(t, "EURUSD", runRows[1][1])
	assert.Equal(t, "14", runRows[1][2])
	assert.Equal(t, "87", runRows[1][5])

	sf, err := os.Open(signalsPath)
	require.NoError(t, err)
	defer sf.Close()

	sigRows, err := csv.NewReader(sf).ReadAll()
	require.NoError(t, err)
	require.Len(t, sigRows, 2)
	assert.Equal(t, "SELL", sigRows[1][4])
	assert.Equal(t, "72.500000", sigRows[1][3])
}
