package contracts

type ChangeEventKind string

const (
	SchemaChanged ChangeEventKind = "schema_changed"
	RowChanged    ChangeEventKind = "row_changed"
)

type ChangeOp string

const (
	ChangeOpAdd     ChangeOp = "add"
	ChangeOpUpdate  ChangeOp = "update"
	ChangeOpDelete  ChangeOp = "delete"
	ChangeOpReorder ChangeOp = "reorder"
)

// ChangeEvent describes one successful schema or row mutation. Index is
// set for row update/delete ops only. Payload is the resulting full
// column or row list.
type ChangeEvent struct {
	Kind    ChangeEventKind `json:"kind"`
	Op      ChangeOp        `json:"op"`
	Index   *int            `json:"index,omitempty"`
	Payload interface{}     `json:"payload"`
}

// ChangeNotifier fans mutation events out to viewers joined to a
// spreadsheet id. Delivery is best-effort and at-most-once: a viewer not
// joined at publish time never sees the event and re-fetches on reconnect.
type ChangeNotifier interface {
	Join(connectionId string, spreadsheetId string) <-chan ChangeEvent
	Leave(connectionId string, spreadsheetId string)
	Publish(spreadsheetId string, event ChangeEvent)
}
