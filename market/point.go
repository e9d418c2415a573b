package market

import "time"

// PricePoint represents one daily OHLC (Open, High, Low, Close) observation
// for a currency pair.
type PricePoint struct {
	Date  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
}
