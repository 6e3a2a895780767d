package results

import (
	"bytes"
	"encoding/json"
)

// ValueKind discriminates the typed field values a record can hold
type ValueKind int

const (
	// Absent marks a field whose trimmed value was empty
	Absent ValueKind = iota
	// Int marks an integer field
	Int
	// Float marks a floating-point field
	Float
	// String marks a plain string field
	String
)

// Value is one typed field of a parsed engine row
type Value struct {
	kind ValueKind
	i    int64
	f    float64
	s    string
}

// AbsentValue returns the absent value
func AbsentValue() Value { return Value{kind: Absent} }

// IntValue wraps an integer
func IntValue(i int64) Value { return Value{kind: Int, i: i} }

// FloatValue wraps a float
func FloatValue(f float64) Value { return Value{kind: Float, f: f} }

// StringValue wraps a string
func StringValue(s string) Value { return Value{kind: String, s: s} }

// Kind returns the value's kind
func (v Value) Kind() ValueKind { return v.kind }

// Int returns the integer value (zero unless Kind is Int)
func (v Value) Int() int64 { return v.i }

// Float returns the float value (zero unless Kind is Float)
func (v Value) Float() float64 { return v.f }

// Str returns the string value (empty unless Kind is String)
func (v Value) Str() string { return v.s }

// MarshalJSON renders the native value: number, string, or null for absent
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case Int:
		return json.Marshal(v.i)
	case Float:
		return json.Marshal(v.f)
	case String:
		return json.Marshal(v.s)
	default:
		return []byte("null"), nil
	}
}

// Record is one parsed engine row: an ordered mapping from column name
// (as emitted in the engine's header row) to a typed value. The column set
// varies by analysis kind and is whatever the engine emitted.
type Record struct {
	columns []string
	values  map[string]Value
}

// NewRecord builds a record zipping columns with values. Both slices must
// have the same length; callers guarantee that.
func NewRecord(columns []string, values []Value) Record {
	m := make(map[string]Value, len(columns))
	for i, c := range columns {
		m[c] = values[i]
	}
	return Record{columns: columns, values: m}
}

// Columns returns the column names in engine order
func (r Record) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// Get returns the value for a column and whether the column exists
func (r Record) Get(column string) (Value, bool) {
	v, ok := r.values[column]
	return v, ok
}

// MarshalJSON renders the record as a JSON object preserving column order
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.values[c])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
