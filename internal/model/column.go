package model

// ColumnType is the host platform's column type identifier. The set below
// covers the types the layout builder knows how to render; anything else is
// carried through verbatim and treated as plain text downstream.
type ColumnType string

const (
	ColumnTypeName          ColumnType = "name"
	ColumnTypeText          ColumnType = "text"
	ColumnTypeLongText      ColumnType = "long_text"
	ColumnTypeNumbers       ColumnType = "numbers"
	ColumnTypeDate          ColumnType = "date"
	ColumnTypeStatus        ColumnType = "status"
	ColumnTypeDropdown      ColumnType = "dropdown"
	ColumnTypeCheckbox      ColumnType = "checkbox"
	ColumnTypeEmail         ColumnType = "email"
	ColumnTypePhone         ColumnType = "phone"
	ColumnTypeBoardRelation ColumnType = "board_relation"
)

// Column is an immutable snapshot of a board column as reported by the host
// platform. SettingsPayload is the raw column settings JSON; it is only
// meaningful for board_relation columns, where it names the linked boards.
type Column struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Type            ColumnType `json:"type"`
	SettingsPayload string     `json:"settings_payload,omitempty"`
}

// BoardSummary is the discovery-engine input: one board with its full column
// list. Never mutated by the core.
type BoardSummary struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}
