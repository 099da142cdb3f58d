package models

import dErrors "formtypes/pkg/domain-errors"

// FormTypeFieldName is the reserved field name carrying a form's FORM_TYPE (XEP-0068).
const FormTypeFieldName = "FORM_TYPE"

// NoFormTypeField clears the marker when passed to WithFormTypeField.
const NoFormTypeField = -1

// FormType names a class of data forms, usually a protocol namespace.
// The zero value means "no form type".
type FormType string

// IsZero reports whether no form type is set.
func (f FormType) IsZero() bool { return f == "" }

func (f FormType) String() string { return string(f) }

// DataFormType is the kind of a data form.
type DataFormType string

const (
	DataFormTypeForm   DataFormType = "form"
	DataFormTypeSubmit DataFormType = "submit"
	DataFormTypeCancel DataFormType = "cancel"
	DataFormTypeResult DataFormType = "result"
)

// ParseDataFormType validates a data form kind from external input.
func ParseDataFormType(s string) (DataFormType, error) {
	switch t := DataFormType(s); t {
	case DataFormTypeForm, DataFormTypeSubmit, DataFormTypeCancel, DataFormTypeResult:
		return t, nil
	case "":
		return "", dErrors.New(dErrors.CodeInvalidInput, "data form type cannot be empty")
	default:
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unsupported data form type %q", s)
	}
}

// FormField is a single field declaration of a data form.
// Name may be empty; Type is empty when the field was untyped on the wire.
type FormField struct {
	Name   string
	Type   FieldType
	Values []string
}

// FirstValue returns the field's first value, if any.
func (f FormField) FirstValue() (string, bool) {
	if len(f.Values) == 0 {
		return "", false
	}
	return f.Values[0], true
}

// DataForm is the parsed form handed over by the protocol layer.
//
// The form-type field is marked structurally by the parser: HasFormTypeField
// is set and FormTypeIndex holds its position in Fields. The zero value marks
// nothing, so a form literal without the marker has no form type. Consumers
// identify the form-type field by this position only; a second field with
// the same name and type is an ordinary field.
type DataForm struct {
	Type             DataFormType
	Fields           []FormField
	FormTypeIndex    int
	HasFormTypeField bool
}

// NewDataForm builds a form and marks the first field named FORM_TYPE.
func NewDataForm(kind DataFormType, fields []FormField) DataForm {
	form := DataForm{Type: kind, Fields: fields}
	for i := range fields {
		if fields[i].Name == FormTypeFieldName {
			return form.WithFormTypeField(i)
		}
	}
	return form
}

// WithFormTypeField returns a copy of d with position i marked as the
// form-type field. A negative i clears the marker.
func (d DataForm) WithFormTypeField(i int) DataForm {
	if i < 0 {
		d.FormTypeIndex, d.HasFormTypeField = 0, false
		return d
	}
	d.FormTypeIndex, d.HasFormTypeField = i, true
	return d
}

// FormTypeField returns the marked form-type field.
func (d DataForm) FormTypeField() (FormField, bool) {
	if !d.HasFormTypeField || d.FormTypeIndex < 0 || d.FormTypeIndex >= len(d.Fields) {
		return FormField{}, false
	}
	return d.Fields[d.FormTypeIndex], true
}

// FormType resolves the form's FORM_TYPE from the marked field's first value.
// It reports false when no form-type field is marked or its value is empty.
func (d DataForm) FormType() (FormType, bool) {
	field, ok := d.FormTypeField()
	if !ok {
		return "", false
	}
	v, ok := field.FirstValue()
	if !ok || v == "" {
		return "", false
	}
	return FormType(v), true
}

// IsFormTypeField reports whether position i holds the marked form-type field.
func (d DataForm) IsFormTypeField(i int) bool {
	return d.HasFormTypeField && i == d.FormTypeIndex
}

// Declaration is one recorded (form type, field, type) entry.
type Declaration struct {
	FormType FormType  `json:"form_type"`
	Field    string    `json:"field"`
	Type     FieldType `json:"type"`
}
