package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/seokit/keyfan/pkg/expand"
)

func sampleResult() *expand.Result {
	buckets := map[string]expand.Buckets{
		"solar": {
			Questions:    []string{"what solar is", "why solar"},
			Prepositions: []string{"solar for homes"},
			Comparisons:  []string{"solar vs wind"},
		},
		"wind": {
			Questions: []string{"how wind works"},
		},
	}
	return expand.NewResult("IN", buckets, []string{"solar", "wind"})
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleResult()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading written CSV: %v", err)
	}

	want := [][]string{
		{"Seed", "Bucket", "Suggestion"},
		{"solar", "Questions", "what solar is"},
		{"solar", "Questions", "why solar"},
		{"solar", "Prepositions", "solar for homes"},
		{"solar", "Comparisons", "solar vs wind"},
		{"wind", "Questions", "how wind works"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("CSV records = %v, want %v", records, want)
	}
}

func TestWriteCSVEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	result := expand.NewResult("IN", map[string]expand.Buckets{}, nil)

	if err := WriteCSV(&buf, result); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading written CSV: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("empty result wrote %d records, want header only", len(records))
	}
}

func TestWriteCSVQuoting(t *testing.T) {
	buckets := map[string]expand.Buckets{
		"tricky": {Questions: []string{`suggestion with, comma`, `and "quotes"`}},
	}
	result := expand.NewResult("US", buckets, []string{"tricky"})

	var buf bytes.Buffer
	if err := WriteCSV(&buf, result); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("round-trip failed: %v", err)
	}
	if records[1][2] != `suggestion with, comma` {
		t.Errorf("comma row = %q", records[1][2])
	}
	if records[2][2] != `and "quotes"` {
		t.Errorf("quote row = %q", records[2][2])
	}
}

func TestSaveCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := SaveCSV(path, sampleResult()); err != nil {
		t.Fatalf("SaveCSV() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("Seed,Bucket,Suggestion\n")) {
		t.Errorf("export missing header: %q", data[:32])
	}
}
