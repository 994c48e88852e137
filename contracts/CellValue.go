package contracts

import (
	"errors"
	"fmt"
	"time"

	json "github.com/bytedance/sonic"
)

type CellKind uint8

const (
	CellAbsent CellKind = iota
	CellText
	CellNumber
	CellDate
	CellBoolean
	CellCurrency
)

var CellValueError = errors.New("unsupported cell value")

// CellValue is a closed sum over the value kinds a cell can hold.
// Payload values arrive with their raw JSON kind (text, number, boolean
// or absent); the validator converts them to the column kind exactly once.
type CellValue struct {
	Kind   CellKind
	Text   string
	Number float64
	Date   time.Time
	Bool   bool
}

func TextCell(s string) CellValue {
	return CellValue{Kind: CellText, Text: s}
}

func NumberCell(f float64) CellValue {
	return CellValue{Kind: CellNumber, Number: f}
}

func DateCell(t time.Time) CellValue {
	return CellValue{Kind: CellDate, Date: t}
}

func BoolCell(b bool) CellValue {
	return CellValue{Kind: CellBoolean, Bool: b}
}

func CurrencyCell(f float64) CellValue {
	return CellValue{Kind: CellCurrency, Number: f}
}

func AbsentCell() CellValue {
	return CellValue{Kind: CellAbsent}
}

func (v CellValue) IsAbsent() bool {
	return v.Kind == CellAbsent
}

// IsEmpty reports values the required-check treats as missing: absent and "".
func (v CellValue) IsEmpty() bool {
	return v.Kind == CellAbsent || (v.Kind == CellText && v.Text == "")
}

func (v CellValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case CellAbsent:
		return []byte("null"), nil
	case CellText:
		return json.Marshal(v.Text)
	case CellNumber, CellCurrency:
		return json.Marshal(v.Number)
	case CellDate:
		return json.Marshal(v.Date.Format(time.RFC3339))
	case CellBoolean:
		return json.Marshal(v.Bool)
	}

	return nil, fmt.Errorf("%w: kind %d", CellValueError, v.Kind)
}

func (v *CellValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case nil:
		*v = AbsentCell()
	case string:
		*v = TextCell(value)
	case float64:
		*v = NumberCell(value)
	case bool:
		*v = BoolCell(value)
	default:
		return fmt.Errorf("%w: %T", CellValueError, raw)
	}

	return nil
}
