package results

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"maat/internal/errors"
)

// Parse converts the engine's CSV output into an ordered sequence of typed
// records. The first line is the header row; every data row is zipped with
// it. Empty or whitespace-only input yields an empty sequence, not an error.
//
// Field coercion is an observable contract and applies in order: a
// trimmed-empty field is absent, then integer parse, then float parse, then
// the trimmed string. "007" therefore comes back as integer 7; callers that
// need leading zeros preserved must not rely on this parser.
//
// A data row whose field count differs from the header fails the whole
// parse. The engine is not expected to emit such rows, and silently padding
// or dropping them would misattribute columns.
func Parse(raw string) ([]Record, error) {
	if strings.TrimSpace(raw) == "" {
		return []Record{}, nil
	}

	r := csv.NewReader(strings.NewReader(raw))

	header, err := r.Read()
	if err != nil {
		return nil, errors.NewMaatError(errors.Parse, "cannot read header row", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	records := []Record{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.ParseError already names the offending line
			return nil, errors.NewMaatError(errors.Parse, "malformed row", err)
		}

		values := make([]Value, len(row))
		for i, field := range row {
			values[i] = coerce(field)
		}
		records = append(records, NewRecord(header, values))
	}

	return records, nil
}

// coerce applies the ordered absent -> int -> float -> string fallback
func coerce(field string) Value {
	trimmed := strings.TrimSpace(field)
	if trimmed == "" {
		return AbsentValue()
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return IntValue(i)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return FloatValue(f)
	}
	return StringValue(trimmed)
}
