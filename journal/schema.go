package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id     TEXT PRIMARY KEY,
	pair       TEXT NOT NULL,
	rsi_window INTEGER NOT NULL,
	start_date TIMESTAMP NOT NULL,
	end_date   TIMESTAMP NOT NULL,
	points     INTEGER NOT NULL,
	generated  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS signals (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT NOT NULL,
	date        TIMESTAMP NOT NULL,
	close_price REAL NOT NULL,
	rsi         REAL NOT NULL,
	signal      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_signals_run ON signals(run_id);
`
