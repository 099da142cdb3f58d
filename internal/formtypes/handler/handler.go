package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"formtypes/internal/formtypes/models"
	"formtypes/internal/platform/middleware"
	dErrors "formtypes/pkg/domain-errors"
	"formtypes/pkg/platform/httputil"
)

// Service defines the registry operations exposed over HTTP.
type Service interface {
	RegisterFromForm(form models.DataForm) error
	RegisterField(formType models.FormType, fieldName string, fieldType models.FieldType) error
	LookupFieldType(formType models.FormType, fieldName string) (models.FieldType, bool, error)
	FormTypes() []models.FormType
	Fields(formType models.FormType) ([]models.Declaration, error)
}

// Handler serves the form type admin endpoints.
type Handler struct {
	logger     *slog.Logger
	registry   Service
	adminToken string
}

// New creates a new form type Handler. An empty adminToken leaves the
// mutating routes open.
func New(registry Service, logger *slog.Logger, adminToken string) *Handler {
	return &Handler{
		logger:     logger,
		registry:   registry,
		adminToken: adminToken,
	}
}

// Register registers the form type routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/form-types", func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON(h.logger))
		r.Get("/", h.handleListFormTypes)
		r.Get("/fields", h.handleListFields)
		r.Get("/lookup", h.handleLookup)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdminToken(h.adminToken, h.logger))
			r.Put("/fields", h.handleRegisterField)
			r.Post("/forms", h.handleRegisterForm)
		})
	})
}

func (h *Handler) handleListFormTypes(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, formTypesResponse{FormTypes: h.registry.FormTypes()})
}

func (h *Handler) handleListFields(w http.ResponseWriter, r *http.Request) {
	formType := models.FormType(r.URL.Query().Get("form_type"))
	fields, err := h.registry.Fields(formType)
	if err != nil {
		h.writeError(w, r, "list fields failed", err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, fieldsResponse{FormType: formType, Fields: fields})
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("field") {
		h.writeErrorResponse(w, r, dErrors.New(dErrors.CodeBadRequest, "field query parameter is required"))
		return
	}
	formType := models.FormType(q.Get("form_type"))
	field := q.Get("field")

	fieldType, ok, err := h.registry.LookupFieldType(formType, field)
	if err != nil {
		h.writeError(w, r, "lookup failed", err)
		return
	}
	if !ok {
		h.writeErrorResponse(w, r, dErrors.Newf(dErrors.CodeNotFound, "no type registered for field %q of form type %q", field, formType))
		return
	}
	h.writeJSON(w, r, http.StatusOK, models.Declaration{FormType: formType, Field: field, Type: fieldType})
}

func (h *Handler) handleRegisterField(w http.ResponseWriter, r *http.Request) {
	var req registerFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid register field request",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err.Error(),
		)
		h.writeErrorResponse(w, r, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	fieldType, err := models.ParseFieldType(req.Type)
	if err != nil {
		h.writeErrorResponse(w, r, err)
		return
	}

	if err := h.registry.RegisterField(models.FormType(req.FormType), req.Field, fieldType); err != nil {
		h.writeError(w, r, "register field failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	var req dataFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid register form request",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err.Error(),
		)
		h.writeErrorResponse(w, r, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	form, err := req.toModel()
	if err != nil {
		h.writeErrorResponse(w, r, err)
		return
	}

	if err := h.registry.RegisterFromForm(form); err != nil {
		h.writeError(w, r, "register form failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeError logs conflicts at warn level (a peer or protocol anomaly) and
// unexpected failures at error level, then writes the mapped response.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	switch dErrors.CodeOf(err) {
	case dErrors.CodeConflict:
		h.logger.WarnContext(ctx, msg, "request_id", requestID, "error", err.Error())
	case dErrors.CodeInternal:
		h.logger.ErrorContext(ctx, msg, "request_id", requestID, "error", err.Error())
	}
	h.writeErrorResponse(w, r, err)
}

func (h *Handler) writeErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if werr := httputil.WriteError(w, err); werr != nil {
		h.logWriteFailure(r, werr)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := httputil.WriteJSON(w, status, v); err != nil {
		h.logWriteFailure(r, err)
	}
}

func (h *Handler) logWriteFailure(r *http.Request, err error) {
	ctx := r.Context()
	h.logger.ErrorContext(ctx, "failed to write response",
		"error", err,
		"request_id", middleware.GetRequestID(ctx),
	)
}
