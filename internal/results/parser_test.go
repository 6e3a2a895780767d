package results

import (
	"encoding/json"
	"reflect"
	"testing"

	"maat/internal/errors"
)

func TestParse_CouplingRoundTrip(t *testing.T) {
	records, err := Parse("entity,coupled,degree\nfile1.java,file2.java,78\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}

	rec := records[0]
	if got := rec.Columns(); !reflect.DeepEqual(got, []string{"entity", "coupled", "degree"}) {
		t.Errorf("Columns() = %v", got)
	}

	entity, _ := rec.Get("entity")
	if entity.Kind() != String || entity.Str() != "file1.java" {
		t.Errorf("entity = %+v, want string file1.java", entity)
	}
	coupled, _ := rec.Get("coupled")
	if coupled.Kind() != String || coupled.Str() != "file2.java" {
		t.Errorf("coupled = %+v, want string file2.java", coupled)
	}
	degree, _ := rec.Get("degree")
	if degree.Kind() != Int || degree.Int() != 78 {
		t.Errorf("degree = %+v, want integer 78", degree)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\n", " \t \n"} {
		records, err := Parse(raw)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", raw, err)
		}
		if len(records) != 0 {
			t.Errorf("Parse(%q) = %d records, want 0", raw, len(records))
		}
	}
}

func TestCoerce_FallbackOrder(t *testing.T) {
	tests := []struct {
		field string
		want  Value
	}{
		{"3.5", FloatValue(3.5)},
		{"07", IntValue(7)},
		{"007", IntValue(7)},
		{"  hi  ", StringValue("hi")},
		{"", AbsentValue()},
		{"   ", AbsentValue()},
		{"-12", IntValue(-12)},
		{"2.5e3", FloatValue(2500)},
		{"src/core.clj", StringValue("src/core.clj")},
	}

	for _, tt := range tests {
		if got := coerce(tt.field); got != tt.want {
			t.Errorf("coerce(%q) = %+v, want %+v", tt.field, got, tt.want)
		}
	}
}

func TestParse_AbsentFields(t *testing.T) {
	records, err := Parse("entity,main-dev,added\nfoo.go,,10\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	v, ok := records[0].Get("main-dev")
	if !ok {
		t.Fatal("column main-dev missing")
	}
	if v.Kind() != Absent {
		t.Errorf("main-dev kind = %v, want Absent", v.Kind())
	}
}

func TestParse_RowOrderPreserved(t *testing.T) {
	records, err := Parse("statistic,value\nnumber-of-commits,919\nnumber-of-entities,730\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	first, _ := records[0].Get("statistic")
	second, _ := records[1].Get("statistic")
	if first.Str() != "number-of-commits" || second.Str() != "number-of-entities" {
		t.Errorf("row order not preserved: %q then %q", first.Str(), second.Str())
	}
}

func TestParse_MismatchedRowFails(t *testing.T) {
	_, err := Parse("a,b,c\n1,2\n")
	if !errors.IsKind(err, errors.Parse) {
		t.Fatalf("Parse() error = %v, want PARSE", err)
	}
}

func TestRecord_MarshalJSON(t *testing.T) {
	records, err := Parse("entity,degree,note\ncore.clj,78,\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	data, err := json.Marshal(records[0])
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"entity":"core.clj","degree":78,"note":null}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}
