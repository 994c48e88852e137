package contracts

// ColumnRepository owns the ordered column set of each spreadsheet id.
// The set is created empty on the first mutating call for an unknown id.
// Every operation returns the resulting full list ordered by Order ascending.
type ColumnRepository interface {
	ListColumns(spreadsheetId string) ([]Column, error)
	AddColumn(spreadsheetId string, spec ColumnSpec) ([]Column, error)
	UpdateColumn(spreadsheetId string, columnName string, patch ColumnPatch) ([]Column, error)
	DeleteColumn(spreadsheetId string, columnName string) ([]Column, error)
	ReorderColumns(spreadsheetId string, columnNames []string) ([]Column, error)
}
