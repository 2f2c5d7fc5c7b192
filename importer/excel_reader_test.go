package importer

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTempXLSX(t *testing.T, rows [][]string) string {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				t.Fatalf("set cell value: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "roster.xlsx")
	if err := file.SaveAs(path); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}
	return path
}

func TestExcelReader_Read(t *testing.T) {
	path := writeTempXLSX(t, [][]string{
		{"CharterNumber", "FirstName", "LastName", "Email"},
		{"C100", "Jane", "Doe", "jane@x.com"},
		{"C200", "Ann", "Lee", ""},
	})

	reader := &ExcelReader{}
	records, err := reader.Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].RowNumber != 2 {
		t.Fatalf("expected first data row to be row 2, got %d", records[0].RowNumber)
	}
	if got := records[0].Get("FirstName"); got != "Jane" {
		t.Fatalf("unexpected first name: %q", got)
	}
	if got := records[1].Get("Email"); got != "" {
		t.Fatalf("expected empty email cell, got %q", got)
	}
}

func TestExcelReader_MissingFile(t *testing.T) {
	reader := &ExcelReader{}
	if _, err := reader.Read(filepath.Join(t.TempDir(), "absent.xlsx")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
