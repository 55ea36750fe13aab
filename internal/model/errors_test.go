package model

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// ============================================================================
// Error() Interface Tests
// ============================================================================

func TestProblemDetails_Error_ReturnsFormattedMessage(t *testing.T) {
	t.Parallel()

	pd := &ProblemDetails{
		Status: http.StatusNotFound,
		Title:  "Not Found",
		Detail: "Activity not found",
	}

	errMsg := pd.Error()

	if !strings.Contains(errMsg, "404") {
		t.Errorf("error message should contain status code, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "Not Found") {
		t.Errorf("error message should contain title, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "Activity not found") {
		t.Errorf("error message should contain detail, got: %s", errMsg)
	}
}

// ============================================================================
// WriteJSON Tests
// ============================================================================

func TestProblemDetails_WriteJSON_SetsContentType(t *testing.T) {
	t.Parallel()

	pd := NewNotFoundError("Activity")
	rr := httptest.NewRecorder()

	pd.WriteJSON(rr)

	contentType := rr.Header().Get("Content-Type")
	if contentType != "application/problem+json" {
		t.Errorf("expected Content-Type 'application/problem+json', got %q", contentType)
	}
}

func TestProblemDetails_WriteJSON_SetsStatusCode(t *testing.T) {
	t.Parallel()

	pd := NewBadRequestError("email query parameter is required")
	rr := httptest.NewRecorder()

	pd.WriteJSON(rr)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestProblemDetails_WriteJSON_EncodesBody(t *testing.T) {
	t.Parallel()

	pd := NewNotFoundError("Activity")
	rr := httptest.NewRecorder()

	pd.WriteJSON(rr)

	var decoded ProblemDetails
	if err := json.NewDecoder(rr.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if decoded.Detail != "Activity not found" {
		t.Errorf("expected detail 'Activity not found', got %q", decoded.Detail)
	}
	if decoded.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", decoded.Status)
	}
}

// ============================================================================
// Constructor Tests
// ============================================================================

func TestNewNotFoundError(t *testing.T) {
	t.Parallel()

	pd := NewNotFoundError("Activity")

	if pd.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", pd.Status)
	}
	if pd.Detail != "Activity not found" {
		t.Errorf("expected detail 'Activity not found', got %q", pd.Detail)
	}
	if pd.Code != ErrCodeNotFound {
		t.Errorf("expected code %d, got %d", ErrCodeNotFound, pd.Code)
	}
}

func TestNewBadRequestError(t *testing.T) {
	t.Parallel()

	pd := NewBadRequestError("student is already signed up for this activity")

	if pd.Status != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", pd.Status)
	}
	if !strings.Contains(pd.Detail, "already signed up") {
		t.Errorf("expected detail to carry the message, got %q", pd.Detail)
	}
}

func TestNewInternalError_DefaultDetail(t *testing.T) {
	t.Parallel()

	pd := NewInternalError("")

	if pd.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", pd.Status)
	}
	if pd.Detail == "" {
		t.Error("expected a default detail message")
	}
}

func TestNewRateLimitError(t *testing.T) {
	t.Parallel()

	pd := NewRateLimitError(30)

	if pd.Status != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", pd.Status)
	}
	if !strings.Contains(pd.Detail, "30") {
		t.Errorf("expected retry seconds in detail, got %q", pd.Detail)
	}
}
