package model

// RelationRecord describes one inbound link: a relation column on another
// board that targets the board under inspection. Records are derived fresh
// on every discovery run and never persisted.
type RelationRecord struct {
	ID                  string `json:"id"`
	SourceBoardID       string `json:"source_board_id"`
	SourceBoardName     string `json:"source_board_name"`
	RelationColumnID    string `json:"relation_column_id"`
	RelationColumnLabel string `json:"relation_column_label"`
	Label               string `json:"label"`
}
