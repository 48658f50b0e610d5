package signup

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/uniswap/internal/models"
)

type UserServiceMock struct {
	mock.Mock
}

func (m *UserServiceMock) Signup(ctx context.Context, req models.SignupRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func str(s string) *string {
	return &s
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestSignupHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *UserServiceMock)
		wantStatusCode int
		wantStatus     float64
		wantMsg        string
	}{
		{
			name: "email signup",
			body: `{"type":"email","data":{"username":"alice","pwd":"pw1","userinfo":"a@b.c"}}`,
			setupMock: func(m *UserServiceMock) {
				m.On("Signup", mock.Anything, models.SignupRequest{
					Type: models.AccountEmail,
					Data: models.SignupInfo{Username: str("alice"), Pwd: str("pw1"), Userinfo: str("a@b.c")},
				}).Return(int64(1), nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantStatus:     200,
			wantMsg:        "ok",
		},
		{
			// Пользователь не создаётся, но клиент получает SUCCESS.
			name: "weixin signup reports success without persisting",
			body: `{"type":"weixin","data":{"username":"carol","pwd":"pw","userinfo":"wx"}}`,
			setupMock: func(m *UserServiceMock) {
				m.On("Signup", mock.Anything, mock.Anything).Return(int64(-1), nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantStatus:     200,
			wantMsg:        "ok",
		},
		{
			name: "storage error",
			body: `{"type":"phone","data":{"username":"bob","pwd":"pw","userinfo":"+100"}}`,
			setupMock: func(m *UserServiceMock) {
				m.On("Signup", mock.Anything, mock.Anything).Return(int64(0), errors.New("insert failed")).Once()
			},
			wantStatusCode: http.StatusOK,
			wantStatus:     500,
			wantMsg:        "internal error",
		},
		{
			name:           "unsupported type",
			body:           `{"type":"fax","data":{"username":"bob","pwd":"pw","userinfo":"+100"}}`,
			wantStatusCode: http.StatusUnprocessableEntity,
			wantStatus:     422,
			wantMsg:        "field Type has unsupported value fax",
		},
		{
			name:           "missing data",
			body:           `{"type":"phone"}`,
			wantStatusCode: http.StatusUnprocessableEntity,
			wantStatus:     422,
			wantMsg:        "field Username is a required field, field Pwd is a required field, field Userinfo is a required field",
		},
		{
			name:           "invalid json",
			body:           `{"type":`,
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     400,
			wantMsg:        "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(UserServiceMock)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}
			handler := New(newNoopLogger(), svc)

			req := httptest.NewRequest(http.MethodPost, "/user/signup", strings.NewReader(tt.body))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.wantStatus, got["status"])
			assert.Equal(t, tt.wantMsg, got["msg"])
			assert.Equal(t, map[string]any{}, got["data"])
			svc.AssertExpectations(t)
		})
	}
}
