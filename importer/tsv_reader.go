package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// TSVReader reads bare tab-delimited duty ledgers. The files are typically
// exported from Windows tooling, so UTF-16 with a BOM is decoded
// transparently; plain UTF-8 passes through unchanged. There is no header
// row: every non-empty line is one positional record.
type TSVReader struct{}

func (r *TSVReader) Read(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tsv file %s: %w", path, err)
	}
	defer file.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	utf8Reader := transform.NewReader(file, decoder)

	csvReader := csv.NewReader(utf8Reader)
	csvReader.Comma = '\t'
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	records := make([]Record, 0, 128)
	rowNumber := 0
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tsv row %d: %w", rowNumber+1, err)
		}
		rowNumber++

		if isEmptyRow(row) {
			continue
		}

		records = append(records, Record{RowNumber: rowNumber, Fields: row})
	}

	return records, nil
}

func isEmptyRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
