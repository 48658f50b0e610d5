package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/uniswap/internal/models"
	services "github.com/magabrotheeeer/uniswap/internal/services/user"
)

// Мок сервиса пользователей с методом Login
type UserServiceMock struct {
	mock.Mock
}

func (m *UserServiceMock) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.LoginResult), args.Error(1)
}

func str(s string) *string {
	return &s
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockResult     *models.LoginResult
		mockErr        error
		wantStatusCode int
		wantStatus     float64
		wantMsg        string
		wantData       map[string]any
	}{
		{
			name: "valid email login",
			requestBody: models.LoginRequest{
				Type: models.AccountEmail,
				Data: models.LoginCredentials{Userinfo: str("a@b.c"), Pwd: str("pw")},
			},
			mockResult:     &models.LoginResult{Token: "alice", Username: "alice"},
			wantStatusCode: http.StatusOK,
			wantStatus:     200,
			wantMsg:        "ok",
			wantData:       map[string]any{"token": "alice", "username": "alice"},
		},
		{
			name: "wrong password",
			requestBody: models.LoginRequest{
				Type: models.AccountPhone,
				Data: models.LoginCredentials{Userinfo: str("+100"), Pwd: str("bad")},
			},
			mockResult:     &models.LoginResult{Token: "-1", Username: "-1"},
			mockErr:        fmt.Errorf("services.UserService.Login: %w", services.ErrInvalidCredentials),
			wantStatusCode: http.StatusOK,
			wantStatus:     400,
			wantMsg:        "bad request",
			wantData:       map[string]any{"token": "-1", "username": "-1"},
		},
		{
			name: "empty password is a failed login",
			requestBody: map[string]any{
				"type": "phone",
				"data": map[string]any{"userinfo": "12345", "pwd": ""},
			},
			mockResult:     &models.LoginResult{Token: "-1", Username: "-1"},
			mockErr:        fmt.Errorf("services.UserService.Login: %w", services.ErrInvalidCredentials),
			wantStatusCode: http.StatusOK,
			wantStatus:     400,
			wantMsg:        "bad request",
			wantData:       map[string]any{"token": "-1", "username": "-1"},
		},
		{
			name: "weixin without password",
			requestBody: map[string]any{
				"type": "weixin",
				"data": map[string]any{"userinfo": "code"},
			},
			mockResult:     &models.LoginResult{Token: "-2", Username: "-2"},
			wantStatusCode: http.StatusOK,
			wantStatus:     200,
			wantMsg:        "ok",
			wantData:       map[string]any{"token": "-2", "username": "-2"},
		},
		{
			name: "storage error",
			requestBody: models.LoginRequest{
				Type: models.AccountEmail,
				Data: models.LoginCredentials{Userinfo: str("a@b.c"), Pwd: str("pw")},
			},
			mockResult:     &models.LoginResult{},
			mockErr:        errors.New("db down"),
			wantStatusCode: http.StatusOK,
			wantStatus:     500,
			wantMsg:        "internal error",
			wantData:       map[string]any{},
		},
		{
			name: "email without password",
			requestBody: map[string]any{
				"type": "email",
				"data": map[string]any{"userinfo": "a@b.c"},
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantStatus:     422,
			wantMsg:        "field Pwd is a required field",
			wantData:       map[string]any{},
		},
		{
			name: "unsupported type",
			requestBody: map[string]any{
				"type": "qq",
				"data": map[string]any{"userinfo": "a", "pwd": "b"},
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantStatus:     422,
			wantMsg:        "field Type has unsupported value qq",
			wantData:       map[string]any{},
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     400,
			wantMsg:        "invalid request body",
			wantData:       map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(UserServiceMock)
			if tt.mockResult != nil {
				svc.On("Login", mock.Anything, mock.Anything).Return(*tt.mockResult, tt.mockErr).Once()
			}
			handler := New(newNoopLogger(), svc)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				var err error
				bodyBytes, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/user/login", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.wantStatus, got["status"])
			assert.Equal(t, tt.wantMsg, got["msg"])
			assert.Equal(t, tt.wantData, got["data"])
			svc.AssertExpectations(t)
		})
	}
}
