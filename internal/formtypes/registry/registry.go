// Package registry remembers the declared type of every data form field seen
// for a FORM_TYPE, so untyped fields received later can be interpreted the
// same way everywhere in the process.
//
// The registry is passive: nothing is recorded unless a caller registers a
// form or a single field. Entries are never removed.
//
// A field's type is assumed stable for a given form type. A declaration that
// contradicts an earlier one is rejected with CodeConflict and the earlier
// entry is kept.
package registry

import (
	"io"
	"log/slog"
	"sort"
	"sync"

	"formtypes/internal/formtypes/metrics"
	"formtypes/internal/formtypes/models"
	dErrors "formtypes/pkg/domain-errors"
)

// Registry maps form type -> field name -> field type.
// It is safe for concurrent use; one mutex guards the whole table.
type Registry struct {
	mu      sync.Mutex
	types   map[models.FormType]map[string]models.FieldType
	entries int

	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(r *Registry)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{types: make(map[models.FormType]map[string]models.FieldType)}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// RegisterFromForm records the type of every field of form under the form's
// FORM_TYPE.
//
// Only forms of type "form" are accepted. A form without a determinable
// FORM_TYPE registers nothing and returns nil. The marked form-type field is
// skipped by position; fields without a declared type are skipped too.
//
// Each field is registered atomically on its own. The first failing field
// stops the scan and its error is returned; fields registered before it stay
// registered.
func (r *Registry) RegisterFromForm(form models.DataForm) error {
	if form.Type != models.DataFormTypeForm {
		r.incrementForm(metrics.FormRejected)
		return dErrors.Newf(dErrors.CodeInvalidInput, "only forms of type 'form' can be registered, got %q", form.Type)
	}

	formType, ok := form.FormType()
	if !ok {
		r.incrementForm(metrics.FormSkipped)
		r.logger.Debug("data form has no FORM_TYPE, nothing registered",
			"fields", len(form.Fields),
		)
		return nil
	}

	for i, field := range form.Fields {
		if form.IsFormTypeField(i) {
			continue
		}
		// An untyped field declares nothing, so there is nothing to remember.
		if field.Type == "" {
			continue
		}
		if err := r.RegisterField(formType, field.Name, field.Type); err != nil {
			r.incrementForm(metrics.FormRejected)
			return err
		}
	}
	r.incrementForm(metrics.FormRegistered)
	return nil
}

// RegisterField records fieldType for (formType, fieldName).
//
// Re-registering the same type is a no-op. A different type for an existing
// entry fails with CodeConflict and leaves the entry untouched. An empty
// formType or an invalid fieldType fails with CodeInvalidInput.
func (r *Registry) RegisterField(formType models.FormType, fieldName string, fieldType models.FieldType) error {
	if formType.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "cannot register a field without a FORM_TYPE")
	}
	if !fieldType.IsValid() {
		return dErrors.Newf(dErrors.CodeInvalidInput, "unsupported field type %q", fieldType)
	}

	existing, outcome := r.register(formType, fieldName, fieldType)
	r.incrementRegistration(outcome)

	switch outcome {
	case metrics.OutcomeConflict:
		r.logger.Warn("conflicting field type declaration rejected",
			"form_type", formType,
			"field", fieldName,
			"existing_type", existing,
			"declared_type", fieldType,
		)
		return dErrors.Newf(dErrors.CodeConflict,
			"field %q of form type %q is registered as %s, cannot change to %s",
			fieldName, formType, existing, fieldType)
	case metrics.OutcomeAdded:
		r.logger.Debug("field type registered",
			"form_type", formType,
			"field", fieldName,
			"type", fieldType,
		)
	}
	return nil
}

// register applies the conflict rule under the lock and returns the type
// recorded before the call together with the outcome.
func (r *Registry) register(formType models.FormType, fieldName string, fieldType models.FieldType) (models.FieldType, string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fields := r.types[formType]
	if fields == nil {
		fields = make(map[string]models.FieldType)
		r.types[formType] = fields
	}

	existing, ok := fields[fieldName]
	switch {
	case !ok:
		fields[fieldName] = fieldType
		r.entries++
		r.setEntries(r.entries)
		return "", metrics.OutcomeAdded
	case existing == fieldType:
		return existing, metrics.OutcomeUnchanged
	default:
		return existing, metrics.OutcomeConflict
	}
}

// LookupFieldType returns the type recorded for (formType, fieldName).
// A missing entry is reported with ok == false and a nil error; callers fall
// back to other means of interpreting the field. An empty formType fails with
// CodeInvalidInput.
func (r *Registry) LookupFieldType(formType models.FormType, fieldName string) (models.FieldType, bool, error) {
	if formType.IsZero() {
		return "", false, dErrors.New(dErrors.CodeInvalidInput, "cannot look up a field type without a FORM_TYPE")
	}

	r.mu.Lock()
	fieldType, ok := r.types[formType][fieldName]
	r.mu.Unlock()

	if r.metrics != nil {
		r.metrics.IncrementLookup(ok)
	}
	return fieldType, ok, nil
}

// FormTypes returns every form type with at least one entry, sorted.
func (r *Registry) FormTypes() []models.FormType {
	r.mu.Lock()
	out := make([]models.FormType, 0, len(r.types))
	for ft, fields := range r.types {
		if len(fields) > 0 {
			out = append(out, ft)
		}
	}
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Fields returns a snapshot of the entries recorded for formType, sorted by
// field name. An unknown form type yields an empty slice.
func (r *Registry) Fields(formType models.FormType) ([]models.Declaration, error) {
	if formType.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "cannot list fields without a FORM_TYPE")
	}

	r.mu.Lock()
	fields := r.types[formType]
	out := make([]models.Declaration, 0, len(fields))
	for name, ft := range fields {
		out = append(out, models.Declaration{FormType: formType, Field: name, Type: ft})
	}
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out, nil
}

// Len returns the total number of (form type, field) entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries
}

func (r *Registry) incrementRegistration(outcome string) {
	if r.metrics != nil {
		r.metrics.IncrementFieldRegistration(outcome)
	}
}

func (r *Registry) incrementForm(outcome string) {
	if r.metrics != nil {
		r.metrics.IncrementFormRegistered(outcome)
	}
}

// setEntries must be called while holding r.mu so gauge updates follow table order.
func (r *Registry) setEntries(n int) {
	if r.metrics != nil {
		r.metrics.SetEntries(n)
	}
}
