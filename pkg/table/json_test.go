package table

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFormatJSON(t *testing.T) {
	got, err := sampleTable().FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}
	want := "[\n  {\"a\":1,\"b\":2},\n  {\"a\":3,\"b\":4}\n]\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatJSON_Empty(t *testing.T) {
	got, err := New("a").FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}
	if got != "[]\n" {
		t.Errorf("expected empty array, got %q", got)
	}
}

func TestFormatJSON_ColumnOrder(t *testing.T) {
	// Column order must come from the table, not map iteration or
	// alphabetical sorting.
	tab := New("z", "a")
	tab.Append(Row{"z": 1, "a": 2})

	got, err := tab.FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}
	want := "[\n  {\"z\":1,\"a\":2}\n]\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatJSON_NilValue(t *testing.T) {
	tab := New("a")
	tab.Append(Row{"a": nil})

	got, err := tab.FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}
	if got != "[\n  {\"a\":null}\n]\n" {
		t.Errorf("expected null cell, got %q", got)
	}
}

func TestParseJSON(t *testing.T) {
	tab, err := ParseJSON(`[{"z":1,"a":"x"},{"z":2,"a":"y"}]`)
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if len(tab.Columns()) != 2 || tab.Columns()[0] != "z" || tab.Columns()[1] != "a" {
		t.Errorf("expected key order z,a; got %v", tab.Columns())
	}
	if tab.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", tab.Len())
	}
	if tab.Row(0)["z"] != float64(1) {
		t.Errorf("expected float64(1), got %T %v", tab.Row(0)["z"], tab.Row(0)["z"])
	}
	if tab.Row(1)["a"] != "y" {
		t.Errorf("unexpected row value: %v", tab.Row(1))
	}
}

func TestParseJSON_ColumnUnion(t *testing.T) {
	tab, err := ParseJSON(`[{"a":1},{"a":2,"b":3}]`)
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if len(tab.Columns()) != 2 || tab.Columns()[0] != "a" || tab.Columns()[1] != "b" {
		t.Errorf("expected column union a,b; got %v", tab.Columns())
	}
}

func TestParseJSON_NestedValues(t *testing.T) {
	tab, err := ParseJSON(`[{"a":{"x":1},"b":[1,2]}]`)
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if len(tab.Columns()) != 2 {
		t.Errorf("nested values must not leak keys: %v", tab.Columns())
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := ParseJSON(`[{"a":1},`)
	if err == nil {
		t.Fatal("expected parse error for truncated input")
	}
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Errorf("expected *json.SyntaxError, got %T: %v", err, err)
	}
}

func TestParseJSON_NotAnArray(t *testing.T) {
	_, err := ParseJSON(`{"a":1}`)
	if err == nil {
		t.Fatal("expected error for non-array input")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	orig := New("a", "b")
	orig.Append(
		Row{"a": float64(1), "b": "x"},
		Row{"a": float64(3), "b": nil},
	)

	text, err := orig.FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}
	back, err := ParseJSON(text)
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if !back.Equal(orig) {
		t.Errorf("round trip mismatch:\norig %v\nback %v", orig.Rows(), back.Rows())
	}
}
