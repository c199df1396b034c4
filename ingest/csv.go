package ingest

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/ubcspin/REMO1-dataProcessing/errors"
	"github.com/ubcspin/REMO1-dataProcessing/logger"
)

// Null cell policies.
const (
	NullZero        = "zero"
	NullInterpolate = "interpolate"
)

// CSVConfig describes the layout of a sensor CSV export.
type CSVConfig struct {
	// Delimiter separates cells; comma when zero.
	Delimiter rune `json:"delimiter" mapstructure:"delimiter"`
	// HeaderRow is the zero-based row index of the header line. Rows above
	// it are free-form metadata and are skipped.
	HeaderRow int `json:"header_row" mapstructure:"header_row" validate:"gte=0"`
	// SignalColumn selects the sample column, by header name or by
	// zero-based index when the name is numeric and absent from the header.
	SignalColumn string `json:"signal_column" mapstructure:"signal_column" validate:"required"`
	// TimerColumn selects the millisecond timer column the same way.
	// Empty when the export carries no timer.
	TimerColumn string `json:"timer_column" mapstructure:"timer_column"`
	// NullPolicy selects how empty or non-numeric cells are filled:
	// "zero" substitutes 0, "interpolate" bridges them linearly from the
	// nearest numeric neighbours.
	NullPolicy string `json:"null_policy" mapstructure:"null_policy" validate:"oneof=zero interpolate"`
}

// ApplyDefaults fills unset fields with their defaults.
func (c *CSVConfig) ApplyDefaults() {
	if c.Delimiter == 0 {
		c.Delimiter = ','
	}
	if c.NullPolicy == "" {
		c.NullPolicy = NullZero
	}
}

// Recording is one parsed sensor export.
type Recording struct {
	// Samples holds the signal column values.
	Samples []float64 `json:"samples"`
	// Timer holds the millisecond timer values, nil when no timer column
	// was configured.
	Timer []float64 `json:"timer,omitempty"`
}

// ReadCSV parses a sensor CSV export. Cells that are empty or fail to
// parse count as null and are filled per the configured policy; the cell
// positions are logged at debug level so bad exports are diagnosable.
func ReadCSV(r io.Reader, cfg CSVConfig) (*Recording, error) {
	cfg.ApplyDefaults()
	log := logger.WithComponent("ingest")

	reader := csv.NewReader(r)
	reader.Comma = cfg.Delimiter
	// Metadata rows above the header have arbitrary cell counts.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.InvalidInput("csv", err.Error())
	}
	if cfg.HeaderRow >= len(rows) {
		return nil, errors.InvalidInput("header_row", "beyond end of file")
	}

	header := rows[cfg.HeaderRow]
	signalIdx := columnIndex(header, cfg.SignalColumn)
	if signalIdx < 0 {
		return nil, errors.MissingField(cfg.SignalColumn)
	}
	timerIdx := -1
	if cfg.TimerColumn != "" {
		timerIdx = columnIndex(header, cfg.TimerColumn)
		if timerIdx < 0 {
			return nil, errors.MissingField(cfg.TimerColumn)
		}
	}

	dataRows := rows[cfg.HeaderRow+1:]
	rec := &Recording{
		Samples: make([]float64, 0, len(dataRows)),
	}
	if timerIdx >= 0 {
		rec.Timer = make([]float64, 0, len(dataRows))
	}

	var nulls []int
	for i, row := range dataRows {
		v, ok := cellValue(row, signalIdx)
		if !ok {
			nulls = append(nulls, len(rec.Samples))
		}
		rec.Samples = append(rec.Samples, v)

		if timerIdx >= 0 {
			tv, ok := cellValue(row, timerIdx)
			if !ok {
				return nil, errors.InvalidInput(cfg.TimerColumn,
					"non-numeric timer value at data row "+strconv.Itoa(i))
			}
			rec.Timer = append(rec.Timer, tv)
		}
	}

	if len(rec.Samples) == 0 {
		return nil, errors.InsufficientData("csv", 1, 0)
	}

	if len(nulls) > 0 {
		log.Debug("null cells filled", logger.Fields(
			"count", len(nulls),
			"policy", cfg.NullPolicy,
		))
		if cfg.NullPolicy == NullInterpolate {
			bridgeNulls(rec.Samples, nulls)
		}
	}
	return rec, nil
}

// columnIndex finds a header cell by trimmed name. A numeric name absent
// from the header counts as a zero-based column index. Returns -1 when
// the column cannot be resolved.
func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	if idx, err := strconv.Atoi(name); err == nil && idx >= 0 && idx < len(header) {
		return idx
	}
	return -1
}

// cellValue parses a cell as a float; null cells report ok=false and 0.
func cellValue(row []string, idx int) (float64, bool) {
	if idx >= len(row) {
		return 0, false
	}
	s := strings.TrimSpace(row[idx])
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// bridgeNulls overwrites null positions with a linear bridge between the
// nearest numeric neighbours. Leading and trailing nulls copy the nearest
// numeric value; an all-null series stays zero.
func bridgeNulls(samples []float64, nulls []int) {
	for k := 0; k < len(nulls); {
		start := nulls[k]
		end := start
		for k++; k < len(nulls) && nulls[k] == end+1; k++ {
			end = nulls[k]
		}

		prev := start - 1
		next := end + 1
		switch {
		case prev < 0 && next >= len(samples):
			// nothing numeric to bridge from
		case prev < 0:
			for i := start; i <= end; i++ {
				samples[i] = samples[next]
			}
		case next >= len(samples):
			for i := start; i <= end; i++ {
				samples[i] = samples[prev]
			}
		default:
			span := float64(next - prev)
			for i := start; i <= end; i++ {
				frac := float64(i-prev) / span
				samples[i] = samples[prev] + frac*(samples[next]-samples[prev])
			}
		}
	}
}
