package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/galushin/overtime/roster"
)

type Result struct {
	FilesProcessed int
	RowsRead       int
	RowsMapped     int
	RowsSkipped    int
	Shifts         []roster.Shift
}

func Run(paths []string, format string, mapper Mapper) (*Result, error) {
	result := &Result{Shifts: make([]roster.Shift, 0, 256)}
	mapperName := mapper.Name()
	for _, path := range paths {
		sourceFormat, err := inferFormat(path, format)
		if err != nil {
			return nil, err
		}
		reader, err := ReaderForFormat(sourceFormat)
		if err != nil {
			return nil, err
		}

		records, err := reader.Read(path)
		if err != nil {
			return nil, err
		}

		result.FilesProcessed++
		result.RowsRead += len(records)
		for _, record := range records {
			shifts, ok, mapErr := mapper.Map(record, sourceFormat, path)
			if mapErr != nil {
				return nil, fmt.Errorf("%s: %w", path, mapErr)
			}
			if !ok || len(shifts) == 0 {
				result.RowsSkipped++
				continue
			}

			result.RowsMapped++
			for i := range shifts {
				shifts[i].SourceMapper = mapperName
			}
			result.Shifts = append(result.Shifts, shifts...)
		}
	}

	return result, nil
}

func inferFormat(path string, format string) (string, error) {
	if strings.TrimSpace(format) != "" {
		return format, nil
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "tsv", "txt":
		return "tsv", nil
	case "csv":
		return "csv", nil
	case "xlsx", "xlsm", "xls":
		return "excel", nil
	default:
		return "", fmt.Errorf("unsupported file extension for %s", path)
	}
}
