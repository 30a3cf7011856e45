package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dicri/evidencetrack/internal/core/domain"
)

func newBodyContext(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func validationItems(t *testing.T, err error) []domain.ValidationErrorItem {
	t.Helper()
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %s", apiErr.Code)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", apiErr.Status)
	}
	return apiErr.ValidationErrors
}

func TestBindBody_ItemsFollowFieldOrder(t *testing.T) {
	rv := NewRequestValidator()

	var req loginRequest
	err := rv.BindBody(newBodyContext(t, `{}`), &req)

	items := validationItems(t, err)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %v", len(items), items)
	}
	if items[0].Field != "email" || items[1].Field != "password" {
		t.Fatalf("items out of declaration order: %v", items)
	}
	if items[0].Message != "This field is required" {
		t.Fatalf("unexpected message: %q", items[0].Message)
	}
}

func TestBindBody_WireNamesNotGoNames(t *testing.T) {
	rv := NewRequestValidator()

	var req createCaseFileRequest
	err := rv.BindBody(newBodyContext(t, `{"caseCode":"ab"}`), &req)

	items := validationItems(t, err)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %v", items)
	}
	if items[0].Field != "caseCode" {
		t.Fatalf("expected wire name caseCode, got %q", items[0].Field)
	}
	if items[0].Message != "Must have at least 3 characters" {
		t.Fatalf("unexpected message: %q", items[0].Message)
	}
}

func TestBindBody_MalformedJSON(t *testing.T) {
	rv := NewRequestValidator()

	var req loginRequest
	err := rv.BindBody(newBodyContext(t, `{`), &req)

	items := validationItems(t, err)
	if len(items) != 1 || items[0].Field != "body" {
		t.Fatalf("expected single body item, got %v", items)
	}
	if items[0].Message != "Request body must be valid JSON" {
		t.Fatalf("unexpected message: %q", items[0].Message)
	}
}

func TestBindBody_TypeMismatchNamesField(t *testing.T) {
	rv := NewRequestValidator()

	var req createEvidenceItemRequest
	err := rv.BindBody(newBodyContext(t, `{"caseFileId":"abc","description":"a knife"}`), &req)

	items := validationItems(t, err)
	if len(items) != 1 || items[0].Field != "caseFileId" {
		t.Fatalf("expected caseFileId item, got %v", items)
	}
}

func TestBindBody_ValidPayloadPasses(t *testing.T) {
	rv := NewRequestValidator()

	var req loginRequest
	if err := rv.BindBody(newBodyContext(t, `{"email":"a@b.com","password":"secret1"}`), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Email != "a@b.com" {
		t.Fatalf("body not bound: %+v", req)
	}

	// Validation is idempotent: the same struct passes again.
	if err := rv.check(&req); err != nil {
		t.Fatalf("second validation failed: %v", err)
	}
}

func TestBindBody_RejectedRequiresReason(t *testing.T) {
	rv := NewRequestValidator()

	var req updateCaseFileRequest
	err := rv.BindBody(newBodyContext(t, `{"status":"REJECTED"}`), &req)

	items := validationItems(t, err)
	if len(items) != 1 || items[0].Field != "rejectionReason" {
		t.Fatalf("expected rejectionReason item, got %v", items)
	}
	if items[0].Message != "Rejection reason is required when status is REJECTED" {
		t.Fatalf("unexpected message: %q", items[0].Message)
	}

	// With a reason present the same transition passes.
	var ok updateCaseFileRequest
	if err := rv.BindBody(newBodyContext(t,
		`{"status":"REJECTED","rejectionReason":"blurry photos"}`), &ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBindBody_InvalidStatus(t *testing.T) {
	rv := NewRequestValidator()

	var req updateCaseFileRequest
	err := rv.BindBody(newBodyContext(t, `{"status":"BOGUS"}`), &req)

	items := validationItems(t, err)
	if len(items) != 1 || items[0].Field != "status" {
		t.Fatalf("expected status item, got %v", items)
	}
	if !strings.HasPrefix(items[0].Message, "Must be one of:") {
		t.Fatalf("unexpected message: %q", items[0].Message)
	}
}

func TestBindParams_NumericCoercion(t *testing.T) {
	rv := NewRequestValidator()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("caseFileId")
	c.SetParamValues("abc")

	var params caseFileIDParams
	err := rv.BindParams(c, &params)

	items := validationItems(t, err)
	if len(items) != 1 || items[0].Field != "caseFileId" {
		t.Fatalf("expected caseFileId item, got %v", items)
	}
	if items[0].Message != "Must be a numeric value" {
		t.Fatalf("unexpected message: %q", items[0].Message)
	}
}

func TestBindParams_NonPositiveID(t *testing.T) {
	rv := NewRequestValidator()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("caseFileId")
	c.SetParamValues("0")

	var params caseFileIDParams
	err := rv.BindParams(c, &params)

	items := validationItems(t, err)
	if len(items) != 1 || items[0].Field != "caseFileId" {
		t.Fatalf("expected caseFileId item, got %v", items)
	}
}

func TestBindQuery_RequiredFilter(t *testing.T) {
	rv := NewRequestValidator()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/?limit=5", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	var query listEvidenceItemsQuery
	err := rv.BindQuery(c, &query)

	items := validationItems(t, err)
	if len(items) != 1 || items[0].Field != "caseFileId" {
		t.Fatalf("expected caseFileId item, got %v", items)
	}
}
