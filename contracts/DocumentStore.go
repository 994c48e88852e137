package contracts

import "errors"

type DocumentKind string

const (
	ColumnDocuments DocumentKind = "column_documents"
	RowDocuments    DocumentKind = "row_documents"
)

var StorageError = errors.New("storage failure")

// DocumentStore keeps one serialized document per spreadsheet id per kind.
type DocumentStore interface {
	// Find returns the stored document, or nil when none exists.
	Find(kind DocumentKind, spreadsheetId string) ([]byte, error)

	// Update runs a read-modify-write cycle in a single write transaction:
	// mutate receives the current document (nil when absent) and returns
	// the document to store. A mutate error aborts with nothing written.
	Update(kind DocumentKind, spreadsheetId string, mutate func(current []byte) ([]byte, error)) ([]byte, error)
}
