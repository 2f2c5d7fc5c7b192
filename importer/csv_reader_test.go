package importer

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestCSVReader_Read(t *testing.T) {
	path := writeTempCSV(t, "CharterNumber,FirstName,LastName,Email\nC100,Jane,Doe,jane@x.com\nC100,Ann,Lee,ann@x.com\n")

	reader := &CSVReader{}
	records, err := reader.Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].RowNumber != 2 || records[1].RowNumber != 3 {
		t.Fatalf("expected spreadsheet row numbers 2 and 3, got %d and %d", records[0].RowNumber, records[1].RowNumber)
	}
	if got := records[0].Get("CharterNumber"); got != "C100" {
		t.Fatalf("unexpected charter number: %q", got)
	}
	if got := records[1].Get("FirstName"); got != "Ann" {
		t.Fatalf("unexpected first name: %q", got)
	}
}

func TestCSVReader_ShortRowsPadEmpty(t *testing.T) {
	path := writeTempCSV(t, "CharterNumber,FirstName,LastName\nC100,Jane\n")

	reader := &CSVReader{}
	records, err := reader.Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := records[0].Get("LastName"); got != "" {
		t.Fatalf("expected missing cell to read as empty, got %q", got)
	}
}

func TestCSVReader_MissingFile(t *testing.T) {
	reader := &CSVReader{}
	if _, err := reader.Read(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestReaderForPath(t *testing.T) {
	if _, err := ReaderForPath("roster.csv"); err != nil {
		t.Fatalf("expected csv reader, got error: %v", err)
	}
	if _, err := ReaderForPath("roster.xlsx"); err != nil {
		t.Fatalf("expected excel reader, got error: %v", err)
	}
	if _, err := ReaderForPath("roster.pdf"); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}
