package contracts

import (
	"errors"
	"time"
)

var RowNotFoundError = errors.New("row not found")

// RowPayload is a cell mapping as submitted by a caller, values still
// carrying their raw JSON kind. Keys need not cover every column.
type RowPayload map[string]CellValue

// RowCells is a cell mapping after validation, values converted to their
// column kind.
type RowCells map[string]CellValue

// Row is addressed by its position in the spreadsheet's row sequence;
// deleting row k shifts every later row down by one, so indices must not
// be cached across a delete.
type Row struct {
	Cells     RowCells  `json:"data"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Table is the full snapshot of one spreadsheet id.
type Table struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}
