package model

// Field is one data-entry slot in a section, bound to a board column.
// The engine assigns the ID at creation time and it stays stable across
// saves. Default fields cannot be removed.
type Field struct {
	ID        string `json:"id"`
	ColumnID  string `json:"column_id"`
	Label     string `json:"label"`
	Type      string `json:"type"`
	IsDefault bool   `json:"is_default"`
}

// Section is an ordered group of fields. Exactly one default section exists
// per layout and cannot be deleted.
type Section struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	IsDefault bool    `json:"is_default"`
	Fields    []Field `json:"fields"`
}

// LayoutConfig is the persisted artifact: the full ordered section tree for
// one widget instance.
type LayoutConfig struct {
	Sections []Section `json:"sections"`
}

// Clone returns a deep copy. The engine keeps two live copies of the config
// (working and saved) and must never let them share field slices.
func (lc *LayoutConfig) Clone() *LayoutConfig {
	out := &LayoutConfig{Sections: make([]Section, len(lc.Sections))}
	for i, s := range lc.Sections {
		cs := s
		cs.Fields = make([]Field, len(s.Fields))
		copy(cs.Fields, s.Fields)
		out.Sections[i] = cs
	}
	return out
}

// FindSection returns a pointer into the config's section slice, or nil.
func (lc *LayoutConfig) FindSection(sectionID string) *Section {
	for i := range lc.Sections {
		if lc.Sections[i].ID == sectionID {
			return &lc.Sections[i]
		}
	}
	return nil
}

// HasColumn reports whether any field in any section is bound to columnID.
func (lc *LayoutConfig) HasColumn(columnID string) bool {
	for i := range lc.Sections {
		for j := range lc.Sections[i].Fields {
			if lc.Sections[i].Fields[j].ColumnID == columnID {
				return true
			}
		}
	}
	return false
}
