package importer

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Reader interface {
	Read(path string) ([]Record, error)
}

// ReaderForPath picks a reader from the file extension.
func ReaderForPath(path string) (Reader, error) {
	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "csv":
		return &CSVReader{}, nil
	case "xlsx", "xlsm", "xls":
		return &ExcelReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension for %s", path)
	}
}
