package main

import (
	"testing"

	"github.com/JatinVermaJv/sheetSync-dashboard/contracts"
	"github.com/stretchr/testify/assert"
)

func _createSheetsClient(t *testing.T) *WorkbookSheetsClient {
	client, err := NewWorkbookSheetsClient(t.TempDir())
	assert.NoError(t, err)
	return client
}

func TestWorkbookSheetsClient_CreateSpreadsheet(t *testing.T) {
	t.Run("creates a workbook with the given title", func(t *testing.T) {
		client := _createSheetsClient(t)

		spreadsheet, err := client.CreateSpreadsheet("Budget")

		assert.NoError(t, err)
		assert.NotEmpty(t, spreadsheet.SpreadsheetId)
		assert.Equal(t, "Budget", spreadsheet.Title)

		values, err := client.GetRange(spreadsheet.SpreadsheetId, "Budget!A1")

		assert.NoError(t, err)
		assert.Equal(t, [][]string{{""}}, values)
	})
}

func TestWorkbookSheetsClient_UpdateRange(t *testing.T) {
	t.Run("writes and reads back a range", func(t *testing.T) {
		client := _createSheetsClient(t)

		spreadsheet, err := client.CreateSpreadsheet("Budget")
		assert.NoError(t, err)

		err = client.UpdateRange(spreadsheet.SpreadsheetId, "Budget!A1:B2", [][]string{
			{"Name", "Qty"},
			{"Widget", "7"},
		})
		assert.NoError(t, err)

		values, err := client.GetRange(spreadsheet.SpreadsheetId, "Budget!A1:B2")

		assert.NoError(t, err)
		assert.Equal(t, [][]string{
			{"Name", "Qty"},
			{"Widget", "7"},
		}, values)
	})

	t.Run("range without a sheet name targets the first sheet", func(t *testing.T) {
		client := _createSheetsClient(t)

		spreadsheet, err := client.CreateSpreadsheet("Budget")
		assert.NoError(t, err)

		err = client.UpdateRange(spreadsheet.SpreadsheetId, "A1", [][]string{{"hello"}})
		assert.NoError(t, err)

		values, err := client.GetRange(spreadsheet.SpreadsheetId, "A1")

		assert.NoError(t, err)
		assert.Equal(t, [][]string{{"hello"}}, values)
	})

	t.Run("unknown spreadsheet id", func(t *testing.T) {
		client := _createSheetsClient(t)

		err := client.UpdateRange("missing", "A1", [][]string{{"x"}})

		assert.ErrorIs(t, err, contracts.SpreadsheetNotFoundError)
	})

	t.Run("invalid range expression", func(t *testing.T) {
		client := _createSheetsClient(t)

		spreadsheet, err := client.CreateSpreadsheet("Budget")
		assert.NoError(t, err)

		err = client.UpdateRange(spreadsheet.SpreadsheetId, "Budget!C5:A1", [][]string{{"x"}})

		assert.Error(t, err)
	})
}

func TestWorkbookSheetsClient_AppendRange(t *testing.T) {
	t.Run("appends below the last occupied row", func(t *testing.T) {
		client := _createSheetsClient(t)

		spreadsheet, err := client.CreateSpreadsheet("Budget")
		assert.NoError(t, err)

		err = client.UpdateRange(spreadsheet.SpreadsheetId, "Budget!A1:B1", [][]string{{"Name", "Qty"}})
		assert.NoError(t, err)

		err = client.AppendRange(spreadsheet.SpreadsheetId, "Budget!A1", [][]string{{"Widget", "7"}})
		assert.NoError(t, err)

		values, err := client.GetRange(spreadsheet.SpreadsheetId, "Budget!A1:B2")

		assert.NoError(t, err)
		assert.Equal(t, [][]string{
			{"Name", "Qty"},
			{"Widget", "7"},
		}, values)
	})
}
