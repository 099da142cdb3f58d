// Package seed loads start-up field type declarations from YAML and applies
// them to a registry through ordinary RegisterField calls.
//
// File format:
//
//	form_types:
//	  - form_type: http://jabber.org/protocol/muc#roomconfig
//	    fields:
//	      - name: muc#roomconfig_roomname
//	        type: text-single
//	      - name: muc#roomconfig_persistentroom
//	        type: boolean
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"formtypes/internal/formtypes/models"
	dErrors "formtypes/pkg/domain-errors"
)

// Registrar is the registry operation the seed needs.
type Registrar interface {
	RegisterField(formType models.FormType, fieldName string, fieldType models.FieldType) error
}

// File is a parsed seed file.
type File struct {
	FormTypes []FormTypeEntry `yaml:"form_types"`
}

type FormTypeEntry struct {
	FormType string       `yaml:"form_type"`
	Fields   []FieldEntry `yaml:"fields"`
}

type FieldEntry struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Declarations flattens the file into validated declarations, in file order.
func (f *File) Declarations() ([]models.Declaration, error) {
	var out []models.Declaration
	for i, entry := range f.FormTypes {
		if entry.FormType == "" {
			return nil, dErrors.Newf(dErrors.CodeValidation, "form_types[%d]: form_type is required", i)
		}
		for j, field := range entry.Fields {
			ft, err := models.ParseFieldType(field.Type)
			if err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeValidation, fieldPath(i, j))
			}
			out = append(out, models.Declaration{
				FormType: models.FormType(entry.FormType),
				Field:    field.Name,
				Type:     ft,
			})
		}
	}
	return out, nil
}

func fieldPath(i, j int) string {
	return fmt.Sprintf("form_types[%d].fields[%d]", i, j)
}

// Parse decodes and validates a seed document. Unknown keys are rejected.
// An empty document yields an empty File.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &File{}, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "invalid seed file")
	}
	if _, err := f.Declarations(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses the seed file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "open seed file")
	}
	defer fh.Close()
	return Parse(fh)
}

// Apply registers every declaration of f in file order and returns how many
// were applied. It stops at the first failure; earlier declarations remain.
func Apply(reg Registrar, f *File) (int, error) {
	decls, err := f.Declarations()
	if err != nil {
		return 0, err
	}
	for i, d := range decls {
		if err := reg.RegisterField(d.FormType, d.Field, d.Type); err != nil {
			return i, err
		}
	}
	return len(decls), nil
}
