package main

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/JatinVermaJv/sheetSync-dashboard/contracts"
)

// dateLayouts accepted for date cells, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
}

type RowValidator struct {
}

func NewRowValidator() *RowValidator {
	return &RowValidator{}
}

// Validate checks payload against columns in the given order and stops at
// the first violation. On success it returns the payload converted to
// typed cells: column-typed keys coerced to the column kind, the rest
// kept with their raw kind.
func (v *RowValidator) Validate(payload contracts.RowPayload, columns []contracts.Column) (contracts.RowCells, error) {
	cells := make(contracts.RowCells, len(payload))
	for key, value := range payload {
		cells[key] = value
	}

	for _, column := range columns {
		value, present := payload[column.Name]

		if column.Validation != nil && column.Validation.Required && (!present || value.IsEmpty()) {
			return nil, &contracts.FieldError{Column: column.Name, Reason: contracts.MissingRequiredError}
		}

		if !present || value.IsAbsent() {
			continue
		}

		converted, err := v.convert(value, column)
		if err != nil {
			return nil, err
		}

		cells[column.Name] = converted
	}

	return cells, nil
}

func (v *RowValidator) convert(value contracts.CellValue, column contracts.Column) (contracts.CellValue, error) {
	switch column.Type {
	case contracts.NumberColumn, contracts.CurrencyColumn:
		return v.convertNumeric(value, column)
	case contracts.DateColumn:
		return v.convertDate(value, column)
	case contracts.BooleanColumn:
		if value.Kind != contracts.CellBoolean {
			return value, &contracts.FieldError{
				Column: column.Name,
				Reason: contracts.TypeMismatchError,
				Detail: "must be a boolean",
			}
		}
		return value, nil
	case contracts.TextColumn:
		return v.convertText(value, column)
	}

	return value, nil
}

func (v *RowValidator) convertNumeric(value contracts.CellValue, column contracts.Column) (contracts.CellValue, error) {
	var number float64

	switch value.Kind {
	case contracts.CellNumber, contracts.CellCurrency:
		number = value.Number
	case contracts.CellText:
		parsed, err := strconv.ParseFloat(value.Text, 64)
		if err != nil {
			return value, &contracts.FieldError{
				Column: column.Name,
				Reason: contracts.TypeMismatchError,
				Detail: "must be a number",
			}
		}
		number = parsed
	default:
		return value, &contracts.FieldError{
			Column: column.Name,
			Reason: contracts.TypeMismatchError,
			Detail: "must be a number",
		}
	}

	if column.Validation != nil {
		if column.Validation.Min != nil && number < *column.Validation.Min {
			return value, &contracts.FieldError{
				Column: column.Name,
				Reason: contracts.BelowMinimumError,
				Detail: fmt.Sprintf("must be at least %v", *column.Validation.Min),
			}
		}
		if column.Validation.Max != nil && number > *column.Validation.Max {
			return value, &contracts.FieldError{
				Column: column.Name,
				Reason: contracts.AboveMaximumError,
				Detail: fmt.Sprintf("must be at most %v", *column.Validation.Max),
			}
		}
	}

	if column.Type == contracts.CurrencyColumn {
		return contracts.CurrencyCell(number), nil
	}

	return contracts.NumberCell(number), nil
}

func (v *RowValidator) convertDate(value contracts.CellValue, column contracts.Column) (contracts.CellValue, error) {
	if value.Kind == contracts.CellDate {
		return value, nil
	}

	if value.Kind == contracts.CellText {
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, value.Text); err == nil {
				return contracts.DateCell(parsed), nil
			}
		}
	}

	return value, &contracts.FieldError{
		Column: column.Name,
		Reason: contracts.TypeMismatchError,
		Detail: "must be a valid date",
	}
}

func (v *RowValidator) convertText(value contracts.CellValue, column contracts.Column) (contracts.CellValue, error) {
	if value.Kind != contracts.CellText {
		return value, &contracts.FieldError{
			Column: column.Name,
			Reason: contracts.TypeMismatchError,
			Detail: "must be text",
		}
	}

	if column.Validation != nil && column.Validation.Pattern != "" {
		regex, err := regexp.Compile(column.Validation.Pattern)
		if err != nil {
			return value, &contracts.FieldError{
				Column: column.Name,
				Reason: contracts.PatternMismatchError,
				Detail: "invalid pattern",
			}
		}

		if !regex.MatchString(value.Text) {
			return value, &contracts.FieldError{
				Column: column.Name,
				Reason: contracts.PatternMismatchError,
			}
		}
	}

	return value, nil
}
