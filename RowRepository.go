package main

import (
	"fmt"
	"time"

	"github.com/JatinVermaJv/sheetSync-dashboard/contracts"
	json "github.com/bytedance/sonic"
)

// RowDocument is the persisted row sequence of one spreadsheet id.
type RowDocument struct {
	SpreadsheetId string          `json:"spreadsheetId"`
	Rows          []contracts.Row `json:"rows"`
}

// RowRepository validates every mutation against the current column
// schema before touching row state. The column list is read outside the
// row-document transaction; two concurrent writers for the same id may
// interleave their cycles (accepted, no cross-document locking).
type RowRepository struct {
	store     contracts.DocumentStore
	columns   contracts.ColumnRepository
	validator contracts.RowValidator
	now       func() time.Time
}

func NewRowRepository(
	store contracts.DocumentStore,
	columns contracts.ColumnRepository,
	validator contracts.RowValidator,
) *RowRepository {
	return &RowRepository{
		store:     store,
		columns:   columns,
		validator: validator,
		now:       time.Now,
	}
}

func (r *RowRepository) GetTable(spreadsheetId string) (*contracts.Table, error) {
	columns, err := r.columns.ListColumns(spreadsheetId)
	if err != nil {
		return nil, err
	}

	rows := []contracts.Row{}

	data, err := r.store.Find(contracts.RowDocuments, spreadsheetId)
	if err != nil {
		return nil, err
	}

	if data != nil {
		document, err := unmarshalRowDocument(data)
		if err != nil {
			return nil, err
		}
		rows = document.Rows
	}

	return &contracts.Table{Columns: columns, Rows: rows}, nil
}

// AddRow appends a row built from the payload's own keys only; columns
// without a supplied value are not filled with their default (defaults
// are a presentation concern).
func (r *RowRepository) AddRow(spreadsheetId string, payload contracts.RowPayload) ([]contracts.Row, error) {
	cells, err := r.validate(spreadsheetId, payload)
	if err != nil {
		return nil, err
	}

	return r.mutate(spreadsheetId, func(document *RowDocument) error {
		now := r.now()
		document.Rows = append(document.Rows, contracts.Row{
			Cells:     cells,
			CreatedAt: now,
			UpdatedAt: now,
		})

		return nil
	})
}

// UpdateRow replaces the cell mapping of the addressed row wholesale, not
// as a merge, and refreshes its updated timestamp. A bad index is rejected
// before the payload is validated.
func (r *RowRepository) UpdateRow(spreadsheetId string, rowIndex int, payload contracts.RowPayload) ([]contracts.Row, error) {
	if err := r.checkRowIndex(spreadsheetId, rowIndex); err != nil {
		return nil, err
	}

	cells, err := r.validate(spreadsheetId, payload)
	if err != nil {
		return nil, err
	}

	return r.mutate(spreadsheetId, func(document *RowDocument) error {
		if rowIndex < 0 || rowIndex >= len(document.Rows) {
			return fmt.Errorf("row %d: %w", rowIndex, contracts.RowNotFoundError)
		}

		document.Rows[rowIndex].Cells = cells
		document.Rows[rowIndex].UpdatedAt = r.now()

		return nil
	})
}

// DeleteRow shifts every later row down by one; indices are a live view,
// not stable identities.
func (r *RowRepository) DeleteRow(spreadsheetId string, rowIndex int) ([]contracts.Row, error) {
	return r.mutate(spreadsheetId, func(document *RowDocument) error {
		if rowIndex < 0 || rowIndex >= len(document.Rows) {
			return fmt.Errorf("row %d: %w", rowIndex, contracts.RowNotFoundError)
		}

		document.Rows = append(document.Rows[:rowIndex], document.Rows[rowIndex+1:]...)

		return nil
	})
}

// checkRowIndex reads the current row count outside the write transaction;
// the mutate closures re-check under the transaction in case rows shifted.
func (r *RowRepository) checkRowIndex(spreadsheetId string, rowIndex int) error {
	count := 0

	data, err := r.store.Find(contracts.RowDocuments, spreadsheetId)
	if err != nil {
		return err
	}

	if data != nil {
		document, err := unmarshalRowDocument(data)
		if err != nil {
			return err
		}
		count = len(document.Rows)
	}

	if rowIndex < 0 || rowIndex >= count {
		return fmt.Errorf("row %d: %w", rowIndex, contracts.RowNotFoundError)
	}

	return nil
}

func (r *RowRepository) validate(spreadsheetId string, payload contracts.RowPayload) (contracts.RowCells, error) {
	columns, err := r.columns.ListColumns(spreadsheetId)
	if err != nil {
		return nil, err
	}

	return r.validator.Validate(payload, columns)
}

func (r *RowRepository) mutate(spreadsheetId string, apply func(document *RowDocument) error) ([]contracts.Row, error) {
	var rows []contracts.Row

	_, err := r.store.Update(contracts.RowDocuments, spreadsheetId, func(current []byte) ([]byte, error) {
		document := &RowDocument{SpreadsheetId: spreadsheetId, Rows: []contracts.Row{}}

		if current != nil {
			var err error
			document, err = unmarshalRowDocument(current)
			if err != nil {
				return nil, err
			}
		}

		if err := apply(document); err != nil {
			return nil, err
		}

		rows = document.Rows

		return json.Marshal(document)
	})

	if err != nil {
		return nil, err
	}

	return rows, nil
}

func unmarshalRowDocument(data []byte) (*RowDocument, error) {
	document := &RowDocument{}
	if err := json.Unmarshal(data, document); err != nil {
		return nil, fmt.Errorf("%w: %v", contracts.StorageError, err)
	}

	if document.Rows == nil {
		document.Rows = []contracts.Row{}
	}

	return document, nil
}
