package models

import dErrors "formtypes/pkg/domain-errors"

// FieldType is the declared interpretation of a data form field's values.
// Invariant: the value must be one of the XEP-0004 field types.
//
// Usage: construct via ParseFieldType at trust boundaries; direct casting
// bypasses validation.
type FieldType string

// Supported field types.
const (
	FieldTypeBoolean     FieldType = "boolean"
	FieldTypeFixed       FieldType = "fixed"
	FieldTypeHidden      FieldType = "hidden"
	FieldTypeJIDMulti    FieldType = "jid-multi"
	FieldTypeJIDSingle   FieldType = "jid-single"
	FieldTypeListMulti   FieldType = "list-multi"
	FieldTypeListSingle  FieldType = "list-single"
	FieldTypeTextMulti   FieldType = "text-multi"
	FieldTypeTextPrivate FieldType = "text-private"
	FieldTypeTextSingle  FieldType = "text-single"
)

// validFieldTypes is the single source of truth for valid field types.
var validFieldTypes = map[FieldType]bool{
	FieldTypeBoolean:     true,
	FieldTypeFixed:       true,
	FieldTypeHidden:      true,
	FieldTypeJIDMulti:    true,
	FieldTypeJIDSingle:   true,
	FieldTypeListMulti:   true,
	FieldTypeListSingle:  true,
	FieldTypeTextMulti:   true,
	FieldTypeTextPrivate: true,
	FieldTypeTextSingle:  true,
}

// ParseFieldType constructs a FieldType from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseFieldType(s string) (FieldType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "field type cannot be empty")
	}
	t := FieldType(s)
	if !t.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unsupported field type %q", s)
	}
	return t, nil
}

// IsValid checks if the field type is one of the supported enum values.
func (t FieldType) IsValid() bool {
	return validFieldTypes[t]
}

func (t FieldType) String() string {
	return string(t)
}
