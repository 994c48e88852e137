package main

import (
	"testing"
	"time"

	"github.com/JatinVermaJv/sheetSync-dashboard/contracts"
	"github.com/stretchr/testify/assert"
)

func TestRowValidator_Validate(t *testing.T) {
	validator := NewRowValidator()

	floatPtr := func(f float64) *float64 { return &f }

	t.Run("no columns accepts any payload", func(t *testing.T) {
		payload := contracts.RowPayload{"foo": contracts.TextCell("bar")}

		cells, err := validator.Validate(payload, []contracts.Column{})

		assert.NoError(t, err)
		assert.Equal(t, contracts.TextCell("bar"), cells["foo"])
	})

	t.Run("required", func(t *testing.T) {
		columns := []contracts.Column{
			{Name: "Name", Type: contracts.TextColumn, Validation: &contracts.ColumnValidation{Required: true}},
		}

		t.Run("absent key fails", func(t *testing.T) {
			_, err := validator.Validate(contracts.RowPayload{}, columns)

			assert.ErrorIs(t, err, contracts.MissingRequiredError)
		})

		t.Run("null value fails", func(t *testing.T) {
			_, err := validator.Validate(contracts.RowPayload{"Name": contracts.AbsentCell()}, columns)

			assert.ErrorIs(t, err, contracts.MissingRequiredError)
		})

		t.Run("empty string fails", func(t *testing.T) {
			_, err := validator.Validate(contracts.RowPayload{"Name": contracts.TextCell("")}, columns)

			assert.ErrorIs(t, err, contracts.MissingRequiredError)
		})

		t.Run("error names the column", func(t *testing.T) {
			_, err := validator.Validate(contracts.RowPayload{}, columns)

			fieldError := &contracts.FieldError{}
			assert.ErrorAs(t, err, &fieldError)
			assert.Equal(t, "Name", fieldError.Column)
		})

		t.Run("present value passes", func(t *testing.T) {
			cells, err := validator.Validate(contracts.RowPayload{"Name": contracts.TextCell("Ada")}, columns)

			assert.NoError(t, err)
			assert.Equal(t, contracts.TextCell("Ada"), cells["Name"])
		})
	})

	t.Run("number bounds", func(t *testing.T) {
		columns := []contracts.Column{
			{
				Name: "Qty",
				Type: contracts.NumberColumn,
				Validation: &contracts.ColumnValidation{
					Min: floatPtr(5),
					Max: floatPtr(10),
				},
			},
		}

		t.Run("below minimum", func(t *testing.T) {
			_, err := validator.Validate(contracts.RowPayload{"Qty": contracts.NumberCell(3)}, columns)

			assert.ErrorIs(t, err, contracts.BelowMinimumError)
		})

		t.Run("above maximum", func(t *testing.T) {
			_, err := validator.Validate(contracts.RowPayload{"Qty": contracts.NumberCell(12)}, columns)

			assert.ErrorIs(t, err, contracts.AboveMaximumError)
		})

		t.Run("within bounds", func(t *testing.T) {
			cells, err := validator.Validate(contracts.RowPayload{"Qty": contracts.NumberCell(7)}, columns)

			assert.NoError(t, err)
			assert.Equal(t, contracts.NumberCell(7), cells["Qty"])
		})

		t.Run("numeric string is parsed", func(t *testing.T) {
			cells, err := validator.Validate(contracts.RowPayload{"Qty": contracts.TextCell("7.5")}, columns)

			assert.NoError(t, err)
			assert.Equal(t, contracts.NumberCell(7.5), cells["Qty"])
		})

		t.Run("non-numeric string fails", func(t *testing.T) {
			_, err := validator.Validate(contracts.RowPayload{"Qty": contracts.TextCell("many")}, columns)

			assert.ErrorIs(t, err, contracts.TypeMismatchError)
		})

		t.Run("empty string is not coerced to zero", func(t *testing.T) {
			optional := []contracts.Column{{Name: "Qty", Type: contracts.NumberColumn}}

			_, err := validator.Validate(contracts.RowPayload{"Qty": contracts.TextCell("")}, optional)

			assert.ErrorIs(t, err, contracts.TypeMismatchError)
		})

		t.Run("bound check applies to parsed string", func(t *testing.T) {
			_, err := validator.Validate(contracts.RowPayload{"Qty": contracts.TextCell("3")}, columns)

			assert.ErrorIs(t, err, contracts.BelowMinimumError)
		})
	})

	t.Run("currency converts like number", func(t *testing.T) {
		columns := []contracts.Column{{Name: "Price", Type: contracts.CurrencyColumn}}

		cells, err := validator.Validate(contracts.RowPayload{"Price": contracts.NumberCell(19.99)}, columns)

		assert.NoError(t, err)
		assert.Equal(t, contracts.CurrencyCell(19.99), cells["Price"])
	})

	t.Run("date", func(t *testing.T) {
		columns := []contracts.Column{{Name: "Due", Type: contracts.DateColumn}}

		t.Run("iso date string", func(t *testing.T) {
			cells, err := validator.Validate(contracts.RowPayload{"Due": contracts.TextCell("2024-03-01")}, columns)

			assert.NoError(t, err)
			assert.Equal(t, contracts.CellDate, cells["Due"].Kind)
			assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), cells["Due"].Date)
		})

		t.Run("rfc3339 string", func(t *testing.T) {
			cells, err := validator.Validate(contracts.RowPayload{"Due": contracts.TextCell("2024-03-01T10:30:00Z")}, columns)

			assert.NoError(t, err)
			assert.Equal(t, contracts.CellDate, cells["Due"].Kind)
		})

		t.Run("garbage fails", func(t *testing.T) {
			_, err := validator.Validate(contracts.RowPayload{"Due": contracts.TextCell("yesterday-ish")}, columns)

			assert.ErrorIs(t, err, contracts.TypeMismatchError)
		})

		t.Run("number fails", func(t *testing.T) {
			_, err := validator.Validate(contracts.RowPayload{"Due": contracts.NumberCell(20240301)}, columns)

			assert.ErrorIs(t, err, contracts.TypeMismatchError)
		})
	})

	t.Run("boolean", func(t *testing.T) {
		columns := []contracts.Column{{Name: "Done", Type: contracts.BooleanColumn}}

		t.Run("genuine boolean passes", func(t *testing.T) {
			cells, err := validator.Validate(contracts.RowPayload{"Done": contracts.BoolCell(true)}, columns)

			assert.NoError(t, err)
			assert.Equal(t, contracts.BoolCell(true), cells["Done"])
		})

		t.Run("truthy string fails", func(t *testing.T) {
			_, err := validator.Validate(contracts.RowPayload{"Done": contracts.TextCell("true")}, columns)

			assert.ErrorIs(t, err, contracts.TypeMismatchError)
		})
	})

	t.Run("text pattern", func(t *testing.T) {
		columns := []contracts.Column{
			{
				Name:       "Code",
				Type:       contracts.TextColumn,
				Validation: &contracts.ColumnValidation{Pattern: "^[A-Z]{3}$"},
			},
		}

		t.Run("match passes", func(t *testing.T) {
			cells, err := validator.Validate(contracts.RowPayload{"Code": contracts.TextCell("ABC")}, columns)

			assert.NoError(t, err)
			assert.Equal(t, contracts.TextCell("ABC"), cells["Code"])
		})

		t.Run("mismatch fails", func(t *testing.T) {
			_, err := validator.Validate(contracts.RowPayload{"Code": contracts.TextCell("abc")}, columns)

			assert.ErrorIs(t, err, contracts.PatternMismatchError)
		})

		t.Run("non-string fails type check first", func(t *testing.T) {
			_, err := validator.Validate(contracts.RowPayload{"Code": contracts.NumberCell(1)}, columns)

			assert.ErrorIs(t, err, contracts.TypeMismatchError)
		})
	})

	t.Run("optional column skips type checks when value missing", func(t *testing.T) {
		columns := []contracts.Column{{Name: "Qty", Type: contracts.NumberColumn}}

		cells, err := validator.Validate(contracts.RowPayload{}, columns)

		assert.NoError(t, err)
		assert.Empty(t, cells)
	})

	t.Run("stops at first failing column", func(t *testing.T) {
		columns := []contracts.Column{
			{Name: "A", Type: contracts.NumberColumn, Order: 0},
			{Name: "B", Type: contracts.BooleanColumn, Order: 1},
		}
		payload := contracts.RowPayload{
			"A": contracts.TextCell("not a number"),
			"B": contracts.TextCell("not a bool"),
		}

		_, err := validator.Validate(payload, columns)

		fieldError := &contracts.FieldError{}
		assert.ErrorAs(t, err, &fieldError)
		assert.Equal(t, "A", fieldError.Column)
	})

	t.Run("keys without a column pass through unconverted", func(t *testing.T) {
		columns := []contracts.Column{{Name: "Qty", Type: contracts.NumberColumn}}
		payload := contracts.RowPayload{
			"Qty":   contracts.TextCell("5"),
			"extra": contracts.BoolCell(true),
		}

		cells, err := validator.Validate(payload, columns)

		assert.NoError(t, err)
		assert.Equal(t, contracts.NumberCell(5), cells["Qty"])
		assert.Equal(t, contracts.BoolCell(true), cells["extra"])
	})
}
