// Loading previously exported runs for replay
package sim

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadResult reads an exported result back from disk and checks it is
// internally consistent before handing it to a writer.
func LoadResult(path string) (*Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read run: %w", err)
	}
	var res Result
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, fmt.Errorf("parse run: %w", err)
	}

	want := res.Years + 1
	if len(res.Series.Baseline) != want || len(res.Series.Scenario) != want || len(res.Series.Loss) != want {
		return nil, fmt.Errorf("run %s is inconsistent: %d years but series of %d/%d/%d records",
			res.RunID, res.Years, len(res.Series.Baseline), len(res.Series.Scenario), len(res.Series.Loss))
	}
	return &res, nil
}
