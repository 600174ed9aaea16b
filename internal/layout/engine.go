package layout

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"math/rand"
	"reflect"
	"strings"
	"time"

	"boardform/internal/model"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Well-known ids of the always-present default entities. The default field
// represents the board's identity (name) column and can never be removed.
const (
	DefaultSectionID    = "section_default"
	DefaultFieldID      = "field_name"
	defaultSectionTitle = "Item Details"
	defaultFieldLabel   = "Name"
)

// Gateway is the persistence boundary for layout blobs: a key/value store
// scoped to widget instances. Get reports absence via ok=false rather than
// an error.
type Gateway interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Engine owns the layout state for one widget instance: a working copy
// mutated by every user gesture and a saved copy matching the last durable
// write. The engine is not safe for concurrent use; callers serialize
// access per instance (see Manager).
type Engine struct {
	store      Gateway
	instanceID string

	working *model.LayoutConfig
	saved   *model.LayoutConfig

	entropy io.Reader
}

func NewEngine(store Gateway, instanceID string) *Engine {
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Engine{
		store:      store,
		instanceID: instanceID,
		entropy:    ulid.Monotonic(src, 0),
	}
}

// defaultConfig builds the canonical initial layout: one default section
// holding the identity field.
func defaultConfig() *model.LayoutConfig {
	return &model.LayoutConfig{
		Sections: []model.Section{
			{
				ID:        DefaultSectionID,
				Title:     defaultSectionTitle,
				IsDefault: true,
				Fields: []model.Field{
					{
						ID:        DefaultFieldID,
						ColumnID:  string(model.ColumnTypeName),
						Label:     defaultFieldLabel,
						Type:      string(model.ColumnTypeName),
						IsDefault: true,
					},
				},
			},
		},
	}
}

// Load reads the persisted layout for this instance, falling back to the
// default config when the blob is absent or unreadable. A fallback is a
// recoverable condition, never an error: only storage unavailability is
// surfaced. After Load the engine is clean.
func (e *Engine) Load(ctx context.Context) error {
	blob, ok, err := e.store.Get(ctx, model.LayoutSettingKey(e.instanceID))
	if err != nil {
		return err
	}

	cfg := defaultConfig()
	if ok {
		var stored model.LayoutConfig
		if err := json.Unmarshal([]byte(blob), &stored); err != nil {
			log.Printf("⚠️  Stored layout for instance %s is unreadable, using default: %v", e.instanceID, err)
		} else if stored.FindSection(DefaultSectionID) == nil {
			// A blob without the default section was not written by this
			// engine; treat it like a corrupt one.
			log.Printf("⚠️  Stored layout for instance %s is missing the default section, using default", e.instanceID)
		} else {
			cfg = &stored
		}
	}

	// Clone both copies so nil-vs-empty slice differences from decoding
	// can never register as phantom dirt.
	e.saved = cfg.Clone()
	e.working = cfg.Clone()
	return nil
}

// Config returns a deep copy of the working copy for rendering. Callers
// never get pointers into engine state.
func (e *Engine) Config() *model.LayoutConfig {
	return e.working.Clone()
}

// Dirty reports whether the working copy has diverged from the saved copy.
func (e *Engine) Dirty() bool {
	return !reflect.DeepEqual(e.working, e.saved)
}

// CreateSection appends a new empty section and returns its id.
func (e *Engine) CreateSection(title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", ErrValidation
	}

	id := "section_" + uuid.New().String()
	e.working.Sections = append(e.working.Sections, model.Section{
		ID:     id,
		Title:  title,
		Fields: []model.Field{},
	})
	return id, nil
}

// DeleteSection removes a section and all its fields. The default section
// is protected. Confirmation is the caller's concern; deletion here is
// unconditional.
func (e *Engine) DeleteSection(sectionID string) error {
	for i := range e.working.Sections {
		if e.working.Sections[i].ID != sectionID {
			continue
		}
		if e.working.Sections[i].IsDefault {
			return ErrProtectedEntity
		}
		e.working.Sections = append(e.working.Sections[:i], e.working.Sections[i+1:]...)
		return nil
	}
	return ErrNotFound
}

// AssignColumn creates a field bound to the given column in the target
// section. A column may back at most one field across the whole layout.
func (e *Engine) AssignColumn(col model.Column, sectionID string) (string, error) {
	if e.working.HasColumn(col.ID) {
		return "", ErrDuplicateAssignment
	}

	section := e.working.FindSection(sectionID)
	if section == nil {
		return "", ErrNotFound
	}

	id := e.newFieldID(col.ID)
	section.Fields = append(section.Fields, model.Field{
		ID:       id,
		ColumnID: col.ID,
		Label:    col.Title,
		Type:     string(col.Type),
	})
	return id, nil
}

// RemoveField removes one field from a section. The default field is
// protected.
func (e *Engine) RemoveField(sectionID, fieldID string) error {
	section := e.working.FindSection(sectionID)
	if section == nil {
		return ErrNotFound
	}

	for i := range section.Fields {
		if section.Fields[i].ID != fieldID {
			continue
		}
		if section.Fields[i].IsDefault {
			return ErrProtectedEntity
		}
		section.Fields = append(section.Fields[:i], section.Fields[i+1:]...)
		return nil
	}
	return ErrNotFound
}

// IsColumnAssigned reports whether the column already backs a field in the
// working copy.
func (e *Engine) IsColumnAssigned(columnID string) bool {
	return e.working.HasColumn(columnID)
}

// Save writes the working copy under the instance key and promotes it to
// be the new saved copy. Write and promotion happen together: a failed
// write leaves the saved copy and the dirty state exactly as they were so
// the caller can retry without losing edits.
func (e *Engine) Save(ctx context.Context) error {
	blob, err := json.Marshal(e.working)
	if err != nil {
		return err
	}
	if err := e.store.Set(ctx, model.LayoutSettingKey(e.instanceID), string(blob)); err != nil {
		return err
	}
	e.saved = e.working.Clone()
	return nil
}

// Cancel discards the working copy, restoring the last saved state.
func (e *Engine) Cancel() {
	e.working = e.saved.Clone()
}

// newFieldID derives a field id from the column id plus a ULID, which
// carries the creation timestamp. Ids stay stable across saves.
func (e *Engine) newFieldID(columnID string) string {
	return "field_" + columnID + "_" + ulid.MustNew(ulid.Timestamp(time.Now()), e.entropy).String()
}
