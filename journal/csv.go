package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	runs    *csv.Writer
	signals *csv.Writer
	rf, sf  *os.File
}

func NewCSV(runsPath, signalsPath string) (*CSVJournal, error) {
	rf, err := os.Create(runsPath)
	if err != nil {
		return nil, err
	}
	sf, err := os.Create(signalsPath)
	if err != nil {
		return nil, err
	}

	rw := csv.NewWriter(rf)
	sw := csv.NewWriter(sf)

	if err := rw.Write([]string{"run_id", "pair", "window", "start_date", "end_date", "points", "generated"}); err != nil {
		return nil, err
	}
	if err := sw.Write([]string{"run_id", "date", "close", "rsi", "signal"}); err != nil {
		return nil, err
	}

	rw.Flush()
	if err := rw.Error(); err != nil {
		return nil, err
	}
	sw.Flush()
	if err := sw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{rw, sw, rf, sf}, nil
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	err := j.runs.Write([]string{
		r.RunID,
		r.Pair,
		strconv.Itoa(r.Window),
		r.Start.Format(time.RFC3339),
		r.End.Format(time.RFC3339),
		strconv.Itoa(r.Points),
		r.Generated.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) RecordSignal(s SignalRecord) error {
	err := j.signals.Write([]string{
		s.RunID,
		s.Date.Format(time.RFC3339),
		f(s.Close),
		f(s.RSI),
		s.Signal.String(),
	})
	if err != nil {
		return err
	}

	j.signals.Flush()
	return j.signals.Error()
}

func (j *CSVJournal) Close() error {
	j.runs.Flush()
	if err := j.runs.Error(); err != nil {
		return err
	}
	j.signals.Flush()
	if err := j.signals.Error(); err != nil {
		return err
	}

	if err := j.rf.Close(); err != nil {
		return err
	}
	return j.sf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
