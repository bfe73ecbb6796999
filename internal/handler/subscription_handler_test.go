package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSubscriptionService mocks the SubscriptionService interface
type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) Register(ctx context.Context, userID, endpoint, p256dh, authSecret string) error {
	args := m.Called(ctx, userID, endpoint, p256dh, authSecret)
	return args.Error(0)
}

func (m *MockSubscriptionService) Unregister(ctx context.Context, userID, endpoint string) error {
	args := m.Called(ctx, userID, endpoint)
	return args.Error(0)
}

// fakeAuth stands in for the auth middleware and stamps the user id.
func fakeAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func TestVAPIDPublicKey_Configured(t *testing.T) {
	mockSvc := new(MockSubscriptionService)
	h := NewSubscriptionHandler(mockSvc, "BPublicKey123")
	router := setupRouter()
	router.GET("/vapid-public-key", h.VAPIDPublicKey)

	req, _ := http.NewRequest("GET", "/vapid-public-key", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "BPublicKey123", response["public_key"])
}

func TestVAPIDPublicKey_NotConfigured(t *testing.T) {
	mockSvc := new(MockSubscriptionService)
	h := NewSubscriptionHandler(mockSvc, "")
	router := setupRouter()
	router.GET("/vapid-public-key", h.VAPIDPublicKey)

	req, _ := http.NewRequest("GET", "/vapid-public-key", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubscribe_Success(t *testing.T) {
	mockSvc := new(MockSubscriptionService)
	h := NewSubscriptionHandler(mockSvc, "BPublicKey123")
	router := setupRouter()
	router.POST("/subscribe", fakeAuth("user-1"), h.Subscribe)

	mockSvc.On("Register", mock.Anything, "user-1", "https://push.example.com/ep-1", "p256dh-key", "auth-secret").
		Return(nil)

	body := `{"endpoint":"https://push.example.com/ep-1","keys":{"p256dh":"p256dh-key","auth":"auth-secret"}}`
	req, _ := http.NewRequest("POST", "/subscribe", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestSubscribe_MissingKeys(t *testing.T) {
	mockSvc := new(MockSubscriptionService)
	h := NewSubscriptionHandler(mockSvc, "BPublicKey123")
	router := setupRouter()
	router.POST("/subscribe", fakeAuth("user-1"), h.Subscribe)

	body := `{"endpoint":"https://push.example.com/ep-1"}`
	req, _ := http.NewRequest("POST", "/subscribe", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscribe_Unauthenticated(t *testing.T) {
	mockSvc := new(MockSubscriptionService)
	h := NewSubscriptionHandler(mockSvc, "BPublicKey123")
	router := setupRouter()
	router.POST("/subscribe", h.Subscribe)

	body := `{"endpoint":"https://push.example.com/ep-1","keys":{"p256dh":"k","auth":"a"}}`
	req, _ := http.NewRequest("POST", "/subscribe", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUnsubscribe_Idempotent(t *testing.T) {
	mockSvc := new(MockSubscriptionService)
	h := NewSubscriptionHandler(mockSvc, "BPublicKey123")
	router := setupRouter()
	router.POST("/unsubscribe", fakeAuth("user-1"), h.Unsubscribe)

	mockSvc.On("Unregister", mock.Anything, "user-1", "https://push.example.com/gone").
		Return(nil)

	body := `{"endpoint":"https://push.example.com/gone"}`
	req, _ := http.NewRequest("POST", "/unsubscribe", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}
