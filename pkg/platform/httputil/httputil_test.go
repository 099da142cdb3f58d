package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	dErrors "formtypes/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		if err := WriteError(w, dErrors.New(dErrors.CodeInternal, "db failed")); err != nil {
			t.Fatalf("unexpected write error: %v", err)
		}

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "internal_error" {
			t.Fatalf("expected error code internal_error, got %q", body["error"])
		}
		if _, ok := body["error_description"]; ok {
			t.Fatalf("expected error_description to be omitted for internal errors")
		}
	})

	t.Run("conflict includes description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeConflict, "field already registered as boolean"))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "conflict" {
			t.Fatalf("expected error code conflict, got %q", body["error"])
		}
		if body["error_description"] != "field already registered as boolean" {
			t.Fatalf("expected error_description to be returned for conflict")
		}
	})

	t.Run("uncoded error is internal", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, http.ErrBodyNotAllowed)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
	})
}

func TestStatusFor(t *testing.T) {
	cases := map[dErrors.Code]int{
		dErrors.CodeBadRequest:   http.StatusBadRequest,
		dErrors.CodeValidation:   http.StatusBadRequest,
		dErrors.CodeInvalidInput: http.StatusBadRequest,
		dErrors.CodeNotFound:     http.StatusNotFound,
		dErrors.CodeConflict:     http.StatusConflict,
		dErrors.CodeInternal:     http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := StatusFor(code); got != want {
			t.Errorf("StatusFor(%s) = %d, want %d", code, got, want)
		}
	}
}

type failingWriter struct {
	*httptest.ResponseRecorder
}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriteJSON(t *testing.T) {
	t.Run("writes body and content type", func(t *testing.T) {
		w := httptest.NewRecorder()
		if err := WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/json" {
			t.Fatalf("expected application/json, got %q", ct)
		}
		if w.Body.String() != "{\"status\":\"ok\"}\n" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("unencodable value reports the error", func(t *testing.T) {
		w := httptest.NewRecorder()
		err := WriteJSON(w, http.StatusOK, make(chan int))
		if err == nil {
			t.Fatalf("expected encode error")
		}
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
	})

	t.Run("write failure reports the error", func(t *testing.T) {
		w := failingWriter{httptest.NewRecorder()}
		if err := WriteError(w, dErrors.New(dErrors.CodeConflict, "taken")); err == nil {
			t.Fatalf("expected write error")
		}
	})
}
