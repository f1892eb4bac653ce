package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	dErrors "starnotary/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInternal, "archive write failed"))

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

	t.Run("unauthorized maps to 403 with description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "only the owner can list a star"))

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected status %d, got %d", http.StatusForbidden, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "unauthorized" {
			t.Fatalf("expected error code unauthorized, got %q", body["error"])
		}
		if body["error_description"] != "only the owner can list a star" {
			t.Fatalf("expected error_description for unauthorized errors")
		}
	})

	t.Run("conflict and payment failures map to 400", func(t *testing.T) {
		for _, code := range []dErrors.Code{
			dErrors.CodeConflict,
			dErrors.CodeInsufficientPayment,
			dErrors.CodeUnavailable,
			dErrors.CodeBadRequest,
		} {
			w := httptest.NewRecorder()
			WriteError(w, dErrors.New(code, "rejected"))
			if w.Code != http.StatusBadRequest {
				t.Fatalf("code %s: expected status 400, got %d", code, w.Code)
			}
		}
	})

	t.Run("uncoded error treated as internal", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, http.ErrHandlerTimeout)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status 500, got %d", w.Code)
		}
	})
}

func TestWriteErrorStatusOverridesMapping(t *testing.T) {
	w := httptest.NewRecorder()
	WriteErrorStatus(w, http.StatusBadRequest, dErrors.New(dErrors.CodeUnauthorized, "sender may not transfer this star"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["error"] != "unauthorized" {
		t.Fatalf("expected error code unauthorized, got %q", body["error"])
	}
	if body["error_description"] != "sender may not transfer this star" {
		t.Fatalf("expected error_description to carry the original message")
	}
}
