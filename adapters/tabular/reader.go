package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"heartdash/internal"
	"heartdash/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet read from .xlsx files
const DefaultSheet = "Sheet1"

// DataReader reads a CSV or Excel file into header + data records
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	logger   *internal.Logger
}

// NewDataReader creates a reader; the file type is taken from the extension
func NewDataReader(filePath string) *DataReader {
	fileType := "csv"
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".xlsx", ".xlsm":
		fileType = "xlsx"
	}
	return &DataReader{
		filePath: filePath,
		fileType: fileType,
		logger:   internal.DefaultLogger.With("DataReader"),
	}
}

// WithLogger replaces the reader's logger
func (r *DataReader) WithLogger(logger *internal.Logger) *DataReader {
	r.logger = logger.With("DataReader")
	return r
}

// Read returns every record of the file; the first record is the header row.
// The file must hold a header and at least one data row.
func (r *DataReader) Read() ([][]string, error) {
	r.logger.Debug("Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); err != nil {
		return nil, errors.DataLoad(r.filePath, err)
	}

	var (
		rows [][]string
		err  error
	)
	start := time.Now()
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcel()
	default:
		rows, err = r.readCSV()
	}
	if err != nil {
		return nil, errors.DataLoad(r.filePath, err)
	}
	if len(rows) == 0 {
		return nil, errors.DataLoad(r.filePath, fmt.Errorf("file is empty"))
	}

	records := normalize(rows)
	if len(records) < 2 {
		return nil, errors.DataLoad(r.filePath, fmt.Errorf("file must have a header row and at least one data row"))
	}
	r.logger.Info("%s file read in %.2fms (%d columns, %d rows)",
		strings.ToUpper(r.fileType), float64(time.Since(start).Nanoseconds())/1e6,
		len(records[0]), len(records)-1)
	return records, nil
}

func (r *DataReader) readCSV() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Every record must have as many fields as the header.
	reader.FieldsPerRecord = 0
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func (r *DataReader) readExcel() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(DefaultSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", DefaultSheet, err)
	}
	return rows, nil
}

// normalize trims header cells and pads short rows, which excelize returns
// when trailing cells are empty.
func normalize(rows [][]string) [][]string {
	width := len(rows[0])
	out := make([][]string, 0, len(rows))

	header := make([]string, width)
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	out = append(out, header)

	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		rec := make([]string, width)
		for j := 0; j < width && j < len(row); j++ {
			rec[j] = strings.TrimSpace(row[j])
		}
		out = append(out, rec)
	}
	return out
}
