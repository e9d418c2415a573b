package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, pair, rsi_window, start_date, end_date, points, generated)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Pair, r.Window, r.Start, r.End, r.Points, r.Generated,
	)
	return err
}

func (j *SQLiteJournal) RecordSignal(s SignalRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO signals
		(run_id, date, close_price, rsi, signal)
		VALUES (?, ?, ?, ?, ?)`,
		s.RunID, s.Date, s.Close, s.RSI, s.Signal.String(),
	)
	return err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
