package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Tiri0n/abkhazia-tax-service/internal/middleware"
	"github.com/Tiri0n/abkhazia-tax-service/internal/model"
	"github.com/Tiri0n/abkhazia-tax-service/internal/repository"
	"github.com/Tiri0n/abkhazia-tax-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the full API against a fresh in-memory store,
// mirroring the wiring in cmd/api
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	store := repository.NewMemoryStore()

	authService := service.NewAuthService(store.Users(), store.Tokens(), middleware.GetJWTSecret())
	obligationService := service.NewObligationService(store.Obligations())
	paymentService := service.NewPaymentService(store.Payments(), store.Obligations())
	documentService := service.NewDocumentService(store.Documents())
	notificationService := service.NewNotificationService(store.Notifications(), nil)
	inquiryService := service.NewInquiryService(store.Inquiries())
	dashboardService := service.NewDashboardService(store.Obligations(), store.Notifications())

	router := gin.New()
	api := router.Group("/api")
	NewAuthHandler(authService).RegisterRoutes(api)
	NewObligationHandler(obligationService).RegisterRoutes(api)
	NewPaymentHandler(paymentService).RegisterRoutes(api)
	NewDocumentHandler(documentService).RegisterRoutes(api)
	NewNotificationHandler(notificationService).RegisterRoutes(api)
	NewInquiryHandler(inquiryService).RegisterRoutes(api)
	NewDashboardHandler(dashboardService).RegisterRoutes(api)
	return router
}

type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func registerUser(t *testing.T, router *gin.Engine, username, taxID string) (string, int64) {
	t.Helper()
	w, env := doJSON(t, router, http.MethodPost, "/api/register", "", gin.H{
		"username":  username,
		"password":  "secret123",
		"email":     username + "@example.com",
		"firstName": "Test",
		"lastName":  "User",
		"taxId":     taxID,
	})
	require.Equal(t, http.StatusCreated, w.Code, "register failed: %s", w.Body.String())

	var tokens struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tokens))
	require.NotEmpty(t, tokens.Token)
	return tokens.Token, tokens.User.ID
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/tax-obligations",
		"/api/payments",
		"/api/documents",
		"/api/notifications",
		"/api/inquiries",
		"/api/dashboard/summary",
		"/api/user",
	} {
		w, _ := doJSON(t, router, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, "expected 401 for %s", path)
	}

	w, _ := doJSON(t, router, http.MethodPost, "/api/payments", "", gin.H{"amount": "10"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestObligationEndToEnd(t *testing.T) {
	router := newTestRouter(t)
	token, userID := registerUser(t, router, "alice", "TID-1")
	require.Equal(t, int64(1), userID)

	dueDate := time.Now().AddDate(0, 0, 10).Format(time.RFC3339)
	w, env := doJSON(t, router, http.MethodPost, "/api/tax-obligations", token, gin.H{
		"name":     "Income Tax",
		"amount":   "500",
		"dueDate":  dueDate,
		"status":   "pending",
		"category": "income",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created model.TaxObligation
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, int64(1), created.UserID)
	require.Equal(t, "500", created.Amount.String())

	w, env = doJSON(t, router, http.MethodGet, "/api/tax-obligations/upcoming", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var upcoming []model.TaxObligation
	require.NoError(t, json.Unmarshal(env.Data, &upcoming))
	require.Len(t, upcoming, 1)
	require.Equal(t, created.ID, upcoming[0].ID)
}

func TestUpcomingOrderingAndFiltering(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerUser(t, router, "alice", "TID-1")

	post := func(name string, days int, status string) {
		w, _ := doJSON(t, router, http.MethodPost, "/api/tax-obligations", token, gin.H{
			"name":     name,
			"amount":   "100",
			"dueDate":  time.Now().AddDate(0, 0, days).Format(time.RFC3339),
			"status":   status,
			"category": "income",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	post("far", 40, "pending")
	post("soon", 5, "pending")
	post("past", -3, "pending")
	post("settled", 20, "paid")

	w, env := doJSON(t, router, http.MethodGet, "/api/tax-obligations/upcoming", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var upcoming []model.TaxObligation
	require.NoError(t, json.Unmarshal(env.Data, &upcoming))
	require.Len(t, upcoming, 2)
	require.Equal(t, "soon", upcoming[0].Name)
	require.Equal(t, "far", upcoming[1].Name)
}

func TestPaymentSideEffectOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerUser(t, router, "alice", "TID-1")

	w, env := doJSON(t, router, http.MethodPost, "/api/tax-obligations", token, gin.H{
		"name":     "Income Tax",
		"amount":   "500",
		"dueDate":  time.Now().AddDate(0, 0, 10).Format(time.RFC3339),
		"status":   "pending",
		"category": "income",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var obligation model.TaxObligation
	require.NoError(t, json.Unmarshal(env.Data, &obligation))

	w, env = doJSON(t, router, http.MethodPost, "/api/payments", token, gin.H{
		"obligationId": obligation.ID,
		"amount":       "500",
		"method":       "bank_transfer",
		"status":       "completed",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var payment model.Payment
	require.NoError(t, json.Unmarshal(env.Data, &payment))
	require.NotEmpty(t, payment.Reference)

	w, env = doJSON(t, router, http.MethodGet, "/api/tax-obligations", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var obligations []model.TaxObligation
	require.NoError(t, json.Unmarshal(env.Data, &obligations))
	require.Len(t, obligations, 1)
	require.Equal(t, model.ObligationPaid, obligations[0].Status)
}

func TestCrossUserIsolation(t *testing.T) {
	router := newTestRouter(t)
	aliceToken, _ := registerUser(t, router, "alice", "TID-1")
	bobToken, _ := registerUser(t, router, "bob", "TID-2")

	w, env := doJSON(t, router, http.MethodPost, "/api/payments", aliceToken, gin.H{
		"amount": "100",
		"method": "credit_card",
		"status": "completed",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var payment model.Payment
	require.NoError(t, json.Unmarshal(env.Data, &payment))

	// another user's row: existence is admitted, content is not
	w, _ = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/payments/%d", payment.ID), bobToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doJSON(t, router, http.MethodGet, "/api/payments/999", bobToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w, env = doJSON(t, router, http.MethodGet, "/api/payments", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var payments []model.Payment
	require.NoError(t, json.Unmarshal(env.Data, &payments))
	require.Empty(t, payments)
}

func TestInquiryValidationFailureAddsNothing(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerUser(t, router, "alice", "TID-1")

	w, env := doJSON(t, router, http.MethodPost, "/api/inquiries", token, gin.H{
		"message": "no subject provided",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, env.Error, "Subject")

	w, env = doJSON(t, router, http.MethodGet, "/api/inquiries", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var inquiries []model.Inquiry
	require.NoError(t, json.Unmarshal(env.Data, &inquiries))
	require.Empty(t, inquiries)
}

func TestInquiryStatusForcedOpen(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerUser(t, router, "alice", "TID-1")

	w, env := doJSON(t, router, http.MethodPost, "/api/inquiries", token, gin.H{
		"subject":          "Refund request",
		"message":          "Please review my assessment.",
		"supportDocuments": []string{"/files/receipt.pdf"},
		"status":           "resolved", // must be ignored
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var inquiry model.Inquiry
	require.NoError(t, json.Unmarshal(env.Data, &inquiry))
	require.Equal(t, model.InquiryOpen, inquiry.Status)
	require.Equal(t, model.StringList{"/files/receipt.pdf"}, inquiry.SupportDocuments)
}

func TestNotificationMarkReadFlow(t *testing.T) {
	router := newTestRouter(t)
	aliceToken, _ := registerUser(t, router, "alice", "TID-1")
	bobToken, _ := registerUser(t, router, "bob", "TID-2")

	w, env := doJSON(t, router, http.MethodPost, "/api/notifications", aliceToken, gin.H{
		"title":   "Deadline approaching",
		"message": "Income tax due in 5 days.",
		"type":    "deadline",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var notification model.Notification
	require.NoError(t, json.Unmarshal(env.Data, &notification))
	require.False(t, notification.Read)

	readPath := fmt.Sprintf("/api/notifications/%d/read", notification.ID)

	// marking twice succeeds both times and never reverts
	for i := 0; i < 2; i++ {
		w, env = doJSON(t, router, http.MethodPost, readPath, aliceToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var read model.Notification
		require.NoError(t, json.Unmarshal(env.Data, &read))
		require.True(t, read.Read)
	}

	// foreign notification is indistinguishable from a missing one
	w, _ = doJSON(t, router, http.MethodPost, readPath, bobToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w, env = doJSON(t, router, http.MethodGet, "/api/notifications/unread", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var unread []model.Notification
	require.NoError(t, json.Unmarshal(env.Data, &unread))
	require.Empty(t, unread)
}

func TestDocumentListSortedByUploadDateDesc(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerUser(t, router, "alice", "TID-1")

	now := time.Now()
	for _, doc := range []gin.H{
		{"title": "old", "type": "receipt", "fileUrl": "/f/old.pdf", "uploadDate": now.AddDate(0, -2, 0).Format(time.RFC3339)},
		{"title": "new", "type": "receipt", "fileUrl": "/f/new.pdf", "uploadDate": now.Format(time.RFC3339)},
	} {
		w, _ := doJSON(t, router, http.MethodPost, "/api/documents", token, doc)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, env := doJSON(t, router, http.MethodGet, "/api/documents", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var documents []model.Document
	require.NoError(t, json.Unmarshal(env.Data, &documents))
	require.Len(t, documents, 2)
	require.Equal(t, "new", documents[0].Title)
	require.Equal(t, "old", documents[1].Title)
}

func TestDashboardSummaryOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerUser(t, router, "alice", "TID-1")

	w, _ := doJSON(t, router, http.MethodPost, "/api/tax-obligations", token, gin.H{
		"name":     "Income Tax",
		"amount":   "500",
		"dueDate":  time.Now().AddDate(0, 0, 10).Format(time.RFC3339),
		"status":   "pending",
		"category": "income",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, router, http.MethodGet, "/api/dashboard/summary", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary service.DashboardSummary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	require.Equal(t, 1, summary.PendingCount)
	require.Equal(t, 1, summary.UpcomingCount)
	require.NotNil(t, summary.NextDueDate)
}

func TestProfileUpdateOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerUser(t, router, "alice", "TID-1")

	w, env := doJSON(t, router, http.MethodPut, "/api/user", token, gin.H{
		"email": "updated@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var user model.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	require.Equal(t, "updated@example.com", user.Email)

	w, _ = doJSON(t, router, http.MethodPut, "/api/user", token, gin.H{
		"email": "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginFailures(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "alice", "TID-1")

	w, _ := doJSON(t, router, http.MethodPost, "/api/login", "", gin.H{
		"username": "alice",
		"password": "wrongpass",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// bad payload is a schema violation, not an auth failure
	w, _ = doJSON(t, router, http.MethodPost, "/api/login", "", gin.H{
		"username": "alice",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNonNumericIDBehavesAsNotFound(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerUser(t, router, "alice", "TID-1")

	w, _ := doJSON(t, router, http.MethodGet, "/api/payments/abc", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
