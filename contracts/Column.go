package contracts

import "errors"

type ColumnType string

const (
	TextColumn     ColumnType = "text"
	NumberColumn   ColumnType = "number"
	DateColumn     ColumnType = "date"
	BooleanColumn  ColumnType = "boolean"
	CurrencyColumn ColumnType = "currency"
)

func (t ColumnType) IsValid() bool {
	switch t {
	case TextColumn, NumberColumn, DateColumn, BooleanColumn, CurrencyColumn:
		return true
	}
	return false
}

var ColumnNotFoundError = errors.New("column not found")
var DuplicateColumnError = errors.New("column already exists")
var InvalidColumnSpecError = errors.New("invalid column spec")

// Column name is the identity key: renaming is delete+add, never an
// in-place change, and no two live columns of a spreadsheet share a name.
type Column struct {
	Name         string            `json:"name"`
	Type         ColumnType        `json:"type"`
	Order        int               `json:"order"`
	DefaultValue *CellValue        `json:"defaultValue,omitempty"`
	Validation   *ColumnValidation `json:"validation,omitempty"`
}

// ColumnValidation rules; Min/Max apply to number and currency columns
// only, Pattern to text columns only.
type ColumnValidation struct {
	Required bool     `json:"required,omitempty"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Pattern  string   `json:"pattern,omitempty"`
}

type ColumnSpec struct {
	Name         string            `json:"name"`
	Type         ColumnType        `json:"type"`
	DefaultValue *CellValue        `json:"defaultValue,omitempty"`
	Validation   *ColumnValidation `json:"validation,omitempty"`
}

// ColumnPatch carries the fields of an update; nil fields stay untouched.
// Validation is overwritten wholesale when present, not merged.
type ColumnPatch struct {
	Type         *ColumnType       `json:"type,omitempty"`
	Order        *int              `json:"order,omitempty"`
	DefaultValue *CellValue        `json:"defaultValue,omitempty"`
	Validation   *ColumnValidation `json:"validation,omitempty"`
}
