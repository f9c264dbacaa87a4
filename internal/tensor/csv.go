package tensor

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrColumnMismatch is returned when the target and prediction columns
// of a paired CSV do not have the same width.
var ErrColumnMismatch = errors.New("target and prediction column counts differ")

// LoadPairCSV loads ground truth and predictions from a CSV file.
// trueCols specifies the indices of columns holding ground truth values.
// All other columns are predictions, taken in file order.
// hasHeader skips the first line if true.
func LoadPairCSV(filename string, trueCols []int, hasHeader bool) (yTrue, yPred *Tensor, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadPairCSV(file, trueCols, hasHeader)
}

// ReadPairCSV is LoadPairCSV over an arbitrary reader.
// Both results have shape [rows, len(trueCols)].
func ReadPairCSV(r io.Reader, trueCols []int, hasHeader bool) (yTrue, yPred *Tensor, err error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv: %w", err)
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("csv file is empty")
	}

	startRow := 0
	if hasHeader {
		startRow = 1
	}

	if len(records) <= startRow {
		return nil, nil, fmt.Errorf("csv file has no data rows")
	}

	numCols := len(records[0])
	isTrueCol := make(map[int]bool, len(trueCols))
	for _, col := range trueCols {
		if col < 0 || col >= numCols {
			return nil, nil, fmt.Errorf("target column %d out of range [0, %d)", col, numCols)
		}
		isTrueCol[col] = true
	}

	width := len(trueCols)
	if width == 0 || numCols-len(isTrueCol) != width {
		return nil, nil, fmt.Errorf("%w: %d target, %d prediction", ErrColumnMismatch, width, numCols-len(isTrueCol))
	}

	numRows := len(records) - startRow
	trueData := make([]float64, 0, numRows*width)
	predData := make([]float64, 0, numRows*width)
	values := make([]float64, numCols)

	for i := startRow; i < len(records); i++ {
		record := records[i]
		if len(record) != numCols {
			return nil, nil, fmt.Errorf("inconsistent number of columns at row %d", i)
		}

		for j, valStr := range record {
			val, err := strconv.ParseFloat(valStr, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to parse value at row %d, col %d: %w", i, j, err)
			}
			values[j] = val
		}

		// Targets keep the order given by trueCols, predictions keep file order.
		for _, col := range trueCols {
			trueData = append(trueData, values[col])
		}
		for j, val := range values {
			if !isTrueCol[j] {
				predData = append(predData, val)
			}
		}
	}

	shape := Shape{numRows, width}
	return New(shape, trueData), New(shape, predData), nil
}
