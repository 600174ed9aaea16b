package layout

import "errors"

// Engine error kinds. Every rejection is atomic: the working copy is left
// exactly as it was before the failed call.
var (
	// ErrValidation is returned for bad input, e.g. a blank section title
	ErrValidation = errors.New("validation failed")

	// ErrProtectedEntity is returned on attempts to delete the default
	// section or remove the default field
	ErrProtectedEntity = errors.New("entity is protected")

	// ErrDuplicateAssignment is returned when a column is already bound
	// to a field somewhere in the layout
	ErrDuplicateAssignment = errors.New("column already assigned")

	// ErrNotFound is returned when a section or field id does not exist
	ErrNotFound = errors.New("not found")
)
