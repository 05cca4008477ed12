package typelayout

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/layoutkit/typelayout/errors"
)

func TestReportJSONKeys(t *testing.T) {
	report := &Report{
		TypeName:      "Pair",
		Size:          16,
		Alignment:     8,
		GenericParams: []string{"int", "string"},
		Fields: []Field{
			{Name: "first", TypeName: "int", Size: 8, Offset: 0},
			{Name: "second", TypeName: "string", Size: 8, Offset: 8},
		},
	}

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"type_name", "size", "alignment", "fields", "generic_parameters"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing report key %q", key)
		}
	}
	if len(decoded) != 5 {
		t.Errorf("report has %d keys, want 5: %s", len(decoded), data)
	}

	var fields []map[string]json.RawMessage
	if err := json.Unmarshal(decoded["fields"], &fields); err != nil {
		t.Fatalf("unmarshal fields: %v", err)
	}
	for _, key := range []string{"name", "type_name", "size", "offset"} {
		if _, ok := fields[0][key]; !ok {
			t.Errorf("missing field key %q", key)
		}
	}
	if len(fields[0]) != 4 {
		t.Errorf("field has %d keys, want 4", len(fields[0]))
	}
}

func TestReportJSONRoundTrip(t *testing.T) {
	original := &Report{
		TypeName:  "Header",
		Size:      8,
		Alignment: 4,
		Fields: []Field{
			{Name: "a", TypeName: "uint8", Size: 1, Offset: 0},
			{Name: "b", TypeName: "uint32", Size: 4, Offset: 4},
		},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded.String() != original.String() {
		t.Errorf("round-tripped report renders differently:\ngot:\n%s\nwant:\n%s",
			decoded.String(), original.String())
	}
}

func TestValidate(t *testing.T) {
	malformed := &errors.Error{Phase: errors.PhaseRender, Kind: errors.KindMalformedReport}

	t.Run("well_formed", func(t *testing.T) {
		report := &Report{
			TypeName: "Foo", Size: 8, Alignment: 4,
			Fields: []Field{
				{Name: "b", TypeName: "u32", Size: 4, Offset: 4},
				{Name: "a", TypeName: "u8", Size: 1, Offset: 0},
			},
		}
		if err := report.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("out_of_bounds", func(t *testing.T) {
		report := &Report{
			TypeName: "Broken", Size: 4, Alignment: 4,
			Fields: []Field{
				{Name: "a", TypeName: "u64", Size: 8, Offset: 0},
			},
		}
		if err := report.Validate(); !stderrors.Is(err, malformed) {
			t.Errorf("expected malformed_report error, got %v", err)
		}
	})

	t.Run("overlap", func(t *testing.T) {
		report := &Report{
			TypeName: "Broken", Size: 8, Alignment: 4,
			Fields: []Field{
				{Name: "a", TypeName: "u32", Size: 4, Offset: 0},
				{Name: "b", TypeName: "u32", Size: 4, Offset: 2},
			},
		}
		if err := report.Validate(); !stderrors.Is(err, malformed) {
			t.Errorf("expected malformed_report error, got %v", err)
		}
	})

	t.Run("malformed_still_renders", func(t *testing.T) {
		report := &Report{
			TypeName: "Broken", Size: 8, Alignment: 4,
			Fields: []Field{
				{Name: "a", TypeName: "u32", Size: 4, Offset: 0},
				{Name: "b", TypeName: "u32", Size: 4, Offset: 2},
			},
		}
		out := report.String()
		if out == "" {
			t.Error("renderer produced no output for malformed report")
		}
	})
}
