package main

import (
	"fmt"
	"sort"

	"github.com/JatinVermaJv/sheetSync-dashboard/contracts"
	json "github.com/bytedance/sonic"
)

// ColumnDocument is the persisted column set of one spreadsheet id.
type ColumnDocument struct {
	SpreadsheetId string             `json:"spreadsheetId"`
	Columns       []contracts.Column `json:"columns"`
}

type ColumnRepository struct {
	store contracts.DocumentStore
}

func NewColumnRepository(store contracts.DocumentStore) *ColumnRepository {
	return &ColumnRepository{store: store}
}

func (r *ColumnRepository) ListColumns(spreadsheetId string) ([]contracts.Column, error) {
	data, err := r.store.Find(contracts.ColumnDocuments, spreadsheetId)
	if err != nil {
		return nil, err
	}

	if data == nil {
		return []contracts.Column{}, nil
	}

	document, err := unmarshalColumnDocument(data)
	if err != nil {
		return nil, err
	}

	sortColumns(document.Columns)

	return document.Columns, nil
}

func (r *ColumnRepository) AddColumn(spreadsheetId string, spec contracts.ColumnSpec) ([]contracts.Column, error) {
	if spec.Name == "" || spec.Type == "" {
		return nil, fmt.Errorf("name and type are required: %w", contracts.InvalidColumnSpecError)
	}

	if !spec.Type.IsValid() {
		return nil, fmt.Errorf("unknown column type `%s`: %w", spec.Type, contracts.InvalidColumnSpecError)
	}

	return r.mutate(spreadsheetId, func(document *ColumnDocument) error {
		nextOrder := 0
		for _, column := range document.Columns {
			if column.Name == spec.Name {
				return fmt.Errorf("%s: %w", spec.Name, contracts.DuplicateColumnError)
			}
			if column.Order >= nextOrder {
				nextOrder = column.Order + 1
			}
		}

		document.Columns = append(document.Columns, contracts.Column{
			Name:         spec.Name,
			Type:         spec.Type,
			Order:        nextOrder,
			DefaultValue: spec.DefaultValue,
			Validation:   spec.Validation,
		})

		return nil
	})
}

func (r *ColumnRepository) UpdateColumn(spreadsheetId string, columnName string, patch contracts.ColumnPatch) ([]contracts.Column, error) {
	if patch.Type != nil && !patch.Type.IsValid() {
		return nil, fmt.Errorf("unknown column type `%s`: %w", *patch.Type, contracts.InvalidColumnSpecError)
	}

	return r.mutate(spreadsheetId, func(document *ColumnDocument) error {
		for i := range document.Columns {
			if document.Columns[i].Name != columnName {
				continue
			}

			if patch.Type != nil {
				document.Columns[i].Type = *patch.Type
			}
			if patch.Order != nil {
				document.Columns[i].Order = *patch.Order
			}
			if patch.DefaultValue != nil {
				document.Columns[i].DefaultValue = patch.DefaultValue
			}
			if patch.Validation != nil {
				document.Columns[i].Validation = patch.Validation
			}

			return nil
		}

		return fmt.Errorf("%s: %w", columnName, contracts.ColumnNotFoundError)
	})
}

// DeleteColumn removes nothing and reports no error when the column is
// absent; removal is idempotent.
func (r *ColumnRepository) DeleteColumn(spreadsheetId string, columnName string) ([]contracts.Column, error) {
	return r.mutate(spreadsheetId, func(document *ColumnDocument) error {
		remaining := document.Columns[:0]
		for _, column := range document.Columns {
			if column.Name != columnName {
				remaining = append(remaining, column)
			}
		}
		document.Columns = remaining

		return nil
	})
}

// ReorderColumns assigns each named column the order of its position in
// columnNames. Columns not mentioned keep their prior order, which may
// collide with newly assigned values; the stable sort keeps such ties in
// insertion order.
func (r *ColumnRepository) ReorderColumns(spreadsheetId string, columnNames []string) ([]contracts.Column, error) {
	return r.mutate(spreadsheetId, func(document *ColumnDocument) error {
		for position, name := range columnNames {
			for i := range document.Columns {
				if document.Columns[i].Name == name {
					document.Columns[i].Order = position
					break
				}
			}
		}

		return nil
	})
}

// mutate runs a read-modify-write cycle on the column document inside one
// store transaction, auto-vivifying an empty document for an unknown id.
// The returned list is sorted by order ascending.
func (r *ColumnRepository) mutate(spreadsheetId string, apply func(document *ColumnDocument) error) ([]contracts.Column, error) {
	var columns []contracts.Column

	_, err := r.store.Update(contracts.ColumnDocuments, spreadsheetId, func(current []byte) ([]byte, error) {
		document := &ColumnDocument{SpreadsheetId: spreadsheetId, Columns: []contracts.Column{}}

		if current != nil {
			var err error
			document, err = unmarshalColumnDocument(current)
			if err != nil {
				return nil, err
			}
		}

		if err := apply(document); err != nil {
			return nil, err
		}

		sortColumns(document.Columns)
		columns = document.Columns

		return json.Marshal(document)
	})

	if err != nil {
		return nil, err
	}

	return columns, nil
}

func unmarshalColumnDocument(data []byte) (*ColumnDocument, error) {
	document := &ColumnDocument{}
	if err := json.Unmarshal(data, document); err != nil {
		return nil, fmt.Errorf("%w: %v", contracts.StorageError, err)
	}

	if document.Columns == nil {
		document.Columns = []contracts.Column{}
	}

	return document, nil
}

func sortColumns(columns []contracts.Column) {
	sort.SliceStable(columns, func(i, j int) bool {
		return columns[i].Order < columns[j].Order
	})
}
