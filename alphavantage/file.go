package alphavantage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/rustyeddy/fxsignal/market"
)

// ReadSeriesFile loads a saved FX_DAILY response body from disk, for offline
// runs and replaying cached fetches. Files ending in .xz are decompressed
// transparently.
func ReadSeriesFile(path string) (market.RawSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open xz %s: %w", path, err)
		}
		r = xr
	}

	var apiResp fxDailyResponse
	if err := json.NewDecoder(r).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return seriesFromResponse(apiResp)
}
