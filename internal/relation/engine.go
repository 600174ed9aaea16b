package relation

import (
	"encoding/json"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"

	"boardform/internal/model"
)

// relationSettings is the parsed shape of a board_relation column's settings
// payload. The host serializes board ids as either JSON numbers or strings
// depending on API version; json.Number accepts both and canonicalizes to a
// decimal string.
type relationSettings struct {
	BoardIDs []json.Number `json:"boardIds"`
}

// Discover scans every board except the target for relation columns whose
// settings list the target board, and returns one record per such column.
// The result is sorted ascending, case-insensitively, by label and is a
// pure derivation: same input, same output, nothing cached.
func Discover(targetBoardID string, boards []model.BoardSummary) []model.RelationRecord {
	records := []model.RelationRecord{}

	for _, board := range boards {
		if board.ID == targetBoardID {
			continue
		}
		for _, col := range board.Columns {
			if col.Type != model.ColumnTypeBoardRelation {
				continue
			}
			targets, err := parseRelationTargets(col.SettingsPayload)
			if err != nil {
				// A single malformed payload must not abort the scan.
				log.Printf("⚠️  Skipping relation column %s on board %s: %v", col.ID, board.ID, err)
				continue
			}
			if !containsBoard(targets, targetBoardID) {
				continue
			}
			label := board.Name + " - " + col.Title
			records = append(records, model.RelationRecord{
				ID:                  board.ID + ":" + col.ID,
				SourceBoardID:       board.ID,
				SourceBoardName:     board.Name,
				RelationColumnID:    col.ID,
				RelationColumnLabel: col.Title,
				Label:               label,
			})
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return strings.ToLower(records[i].Label) < strings.ToLower(records[j].Label)
	})
	return records
}

// parseRelationTargets extracts the linked board ids from a relation
// column's settings payload, canonicalized to decimal strings.
func parseRelationTargets(payload string) ([]string, error) {
	var settings relationSettings
	if err := json.Unmarshal([]byte(payload), &settings); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(settings.BoardIDs))
	for _, n := range settings.BoardIDs {
		ids = append(ids, canonicalBoardID(n))
	}
	return ids, nil
}

// canonicalBoardID normalizes a board id literal to a decimal integer
// string, so "100", 100, 100.0 and 1.0e2 all compare equal. Non-integer
// literals pass through as written.
func canonicalBoardID(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := n.Float64(); err == nil && f == math.Trunc(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return n.String()
}

func containsBoard(targets []string, boardID string) bool {
	for _, t := range targets {
		if t == boardID {
			return true
		}
	}
	return false
}
