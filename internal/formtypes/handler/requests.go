package handler

import (
	"formtypes/internal/formtypes/models"
	dErrors "formtypes/pkg/domain-errors"
)

type registerFieldRequest struct {
	FormType string `json:"form_type"`
	Field    string `json:"field"`
	Type     string `json:"type"`
}

type formFieldRequest struct {
	Var    string   `json:"var"`
	Type   string   `json:"type,omitempty"`
	Values []string `json:"values,omitempty"`
}

// dataFormRequest is the JSON rendering of a data form. When FormTypeIndex
// is omitted the first field named FORM_TYPE is used; -1 marks none.
type dataFormRequest struct {
	Type          string             `json:"type"`
	Fields        []formFieldRequest `json:"fields"`
	FormTypeIndex *int               `json:"form_type_index,omitempty"`
}

func (r dataFormRequest) toModel() (models.DataForm, error) {
	kind, err := models.ParseDataFormType(r.Type)
	if err != nil {
		return models.DataForm{}, err
	}

	fields := make([]models.FormField, 0, len(r.Fields))
	for _, f := range r.Fields {
		field := models.FormField{Name: f.Var, Values: f.Values}
		if f.Type != "" {
			ft, err := models.ParseFieldType(f.Type)
			if err != nil {
				return models.DataForm{}, err
			}
			field.Type = ft
		}
		fields = append(fields, field)
	}

	form := models.NewDataForm(kind, fields)
	if r.FormTypeIndex != nil {
		idx := *r.FormTypeIndex
		if idx < models.NoFormTypeField || idx >= len(fields) {
			return models.DataForm{}, dErrors.Newf(dErrors.CodeValidation, "form_type_index %d out of range", idx)
		}
		form = form.WithFormTypeField(idx)
	}
	return form, nil
}

type formTypesResponse struct {
	FormTypes []models.FormType `json:"form_types"`
}

type fieldsResponse struct {
	FormType models.FormType      `json:"form_type"`
	Fields   []models.Declaration `json:"fields"`
}
