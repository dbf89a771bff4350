package controllers

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteCSV(t *testing.T) {
	rows := [][]string{
		{"Student Name", "01", "02", "Present (Days)", "Absent (Days)"},
		{"Bob", "F", "A", "1.0", "1"},
	}

	data, err := writeCSV(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(parsed))
	}
	if parsed[1][0] != "Bob" || parsed[1][3] != "1.0" {
		t.Fatalf("unexpected row content: %v", parsed[1])
	}
}

func TestWriteXLSX(t *testing.T) {
	rows := [][]string{
		{"Student Name", "01"},
		{"Bob", "F"},
	}

	data, err := writeXLSX(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Report", "A2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Bob" {
		t.Fatalf("expected Bob in A2, got %q", got)
	}
}
