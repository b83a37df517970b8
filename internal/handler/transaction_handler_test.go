package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hanifw/kantong-sync/internal/domain"
	"github.com/hanifw/kantong-sync/internal/service"
	"github.com/hanifw/kantong-sync/internal/testutil"
	"github.com/labstack/echo/v4"
)

func newTransactionHandler() (*TransactionHandler, *testutil.MockTransactionAPI, *testutil.RecordingNotifier) {
	api := testutil.NewMockTransactionAPI()
	notifier := &testutil.RecordingNotifier{}
	return NewTransactionHandler(service.NewTransactionService(api, notifier)), api, notifier
}

func TestCreateTransaction_Success(t *testing.T) {
	e := echo.New()
	handler, api, notifier := newTransactionHandler()

	body := `{"amount": "50000", "type": "expense", "category": "Food", "date": "2025-03-10T00:00:00Z", "account_id": 1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}
	if len(api.Created) != 1 {
		t.Fatalf("Expected 1 created transaction, got %d", len(api.Created))
	}
	if notifier.Len() != 1 {
		t.Errorf("Expected 1 mutation notification, got %d", notifier.Len())
	}

	var tx domain.Transaction
	if err := json.Unmarshal(rec.Body.Bytes(), &tx); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if tx.Category != "Food" {
		t.Errorf("Expected category Food, got %s", tx.Category)
	}
}

func TestCreateTransaction_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero amount", `{"amount": "0", "type": "expense", "category": "Food", "account_id": 1}`},
		{"invalid type", `{"amount": "100", "type": "loan", "category": "Food", "account_id": 1}`},
		{"missing category", `{"amount": "100", "type": "expense", "category": "", "account_id": 1}`},
		{"missing account", `{"amount": "100", "type": "expense", "category": "Food"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			handler, api, _ := newTransactionHandler()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := handler.CreateTransaction(c); err != nil {
				t.Fatalf("Expected JSON response, got error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rec.Code)
			}
			if len(api.Created) != 0 {
				t.Error("Validation failure must not reach the API")
			}

			var problem ProblemDetails
			if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
				t.Fatalf("Failed to unmarshal response: %v", err)
			}
			if problem.Type != ErrorTypeValidation {
				t.Errorf("Expected problem type %s, got %s", ErrorTypeValidation, problem.Type)
			}
		})
	}
}

func TestCreateTransfer_SameAccount(t *testing.T) {
	e := echo.New()
	handler, api, _ := newTransactionHandler()

	body := `{"amount": "100", "source_account_id": 1, "destination_account_id": 1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/transfers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateTransfer(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
	if len(api.Transfers) != 0 {
		t.Error("Validation failure must not reach the API")
	}
}

func TestDeleteTransaction(t *testing.T) {
	e := echo.New()
	handler, api, _ := newTransactionHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/transactions/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := handler.DeleteTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}
	if len(api.Deleted) != 1 || api.Deleted[0] != 7 {
		t.Errorf("Expected transaction 7 deleted, got %v", api.Deleted)
	}
}

func TestDeleteTransaction_InvalidID(t *testing.T) {
	e := echo.New()
	handler, _, _ := newTransactionHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/transactions/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := handler.DeleteTransaction(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}
