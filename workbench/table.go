package workbench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// ColumnType identifies how the host should type a column's cells.
type ColumnType string

const (
	ColumnText      ColumnType = "text"
	ColumnNumber    ColumnType = "number"
	ColumnTimestamp ColumnType = "timestamp"
)

// Column describes one table column.
type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// Table is a column-ordered, row-major tabular fetch result.
//
// Cell values are typed by their column: text cells hold string, number cells
// hold int64 or float64, timestamp cells hold time.Time. A nil cell is null.
type Table struct {
	Columns []Column `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.Rows) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.Columns) }

// Validate checks that every row has one cell per column and that every
// non-nil cell's dynamic type matches its column type. It returns an error
// describing the first violation.
func (t *Table) Validate() error {
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(t.Columns))
		}
		for j, cell := range row {
			if cell == nil {
				continue
			}
			if err := checkCell(t.Columns[j].Type, cell); err != nil {
				return fmt.Errorf("row %d column %q: %w", i, t.Columns[j].Name, err)
			}
		}
	}
	return nil
}

func checkCell(ct ColumnType, cell any) error {
	switch ct {
	case ColumnText:
		if _, ok := cell.(string); !ok {
			return fmt.Errorf("text cell holds %T", cell)
		}
	case ColumnNumber:
		switch cell.(type) {
		case int64, float64:
		default:
			return fmt.Errorf("number cell holds %T", cell)
		}
	case ColumnTimestamp:
		if _, ok := cell.(time.Time); !ok {
			return fmt.Errorf("timestamp cell holds %T", cell)
		}
	default:
		return fmt.Errorf("unknown column type %q", ct)
	}
	return nil
}

// WriteCSV renders the table to w: a header row of column names, then one
// record per row. Null cells render empty; timestamps render as RFC 3339 UTC.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col.Name
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, len(t.Columns))
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(t.Columns))
		}
		for j, cell := range row {
			s, err := formatCell(cell)
			if err != nil {
				return fmt.Errorf("row %d column %q: %w", i, t.Columns[j].Name, err)
			}
			record[j] = s
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(cell any) (string, error) {
	switch v := cell.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case time.Time:
		return v.UTC().Format(time.RFC3339), nil
	default:
		return "", fmt.Errorf("unsupported cell type %T", cell)
	}
}
