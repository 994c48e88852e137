package contracts

// RowRepository owns the ordered row sequence of each spreadsheet id.
// Mutations validate the payload against the current column schema before
// touching row state; a validation failure leaves the sequence unchanged.
type RowRepository interface {
	GetTable(spreadsheetId string) (*Table, error)
	AddRow(spreadsheetId string, payload RowPayload) ([]Row, error)
	UpdateRow(spreadsheetId string, rowIndex int, payload RowPayload) ([]Row, error)
	DeleteRow(spreadsheetId string, rowIndex int) ([]Row, error)
}
