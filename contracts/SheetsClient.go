package contracts

import "errors"

var SpreadsheetNotFoundError = errors.New("spreadsheet not found")

// Spreadsheet identifies one workbook on the remote provider.
type Spreadsheet struct {
	SpreadsheetId string `json:"spreadsheetId"`
	Title         string `json:"title"`
}

// SheetsClient is the remote spreadsheet provider. Range expressions
// ("Sheet1!A1:C5") and value shapes pass through opaquely; only the
// concrete client interprets them.
type SheetsClient interface {
	CreateSpreadsheet(title string) (*Spreadsheet, error)
	GetRange(spreadsheetId string, rangeExpr string) ([][]string, error)
	UpdateRange(spreadsheetId string, rangeExpr string, values [][]string) error
	AppendRange(spreadsheetId string, rangeExpr string, values [][]string) error
}
