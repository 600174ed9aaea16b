package layout

import "boardform/internal/model"

// FieldKind is the render kind a field takes in the data-entry form.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindNumber   FieldKind = "number"
	KindDate     FieldKind = "date"
	KindSelect   FieldKind = "select"
	KindCheckbox FieldKind = "checkbox"
	KindEmail    FieldKind = "email"
	KindPhone    FieldKind = "phone"
)

var kindByColumnType = map[model.ColumnType]FieldKind{
	model.ColumnTypeName:     KindText,
	model.ColumnTypeText:     KindText,
	model.ColumnTypeLongText: KindTextarea,
	model.ColumnTypeNumbers:  KindNumber,
	model.ColumnTypeDate:     KindDate,
	model.ColumnTypeStatus:   KindSelect,
	model.ColumnTypeDropdown: KindSelect,
	model.ColumnTypeCheckbox: KindCheckbox,
	model.ColumnTypeEmail:    KindEmail,
	model.ColumnTypePhone:    KindPhone,
}

// FieldKindFor maps a column type to its render kind. Total: unknown column
// types fall back to plain text.
func FieldKindFor(t model.ColumnType) FieldKind {
	if kind, ok := kindByColumnType[t]; ok {
		return kind
	}
	return KindText
}
