package search

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/uniswap/internal/models"
)

type CatalogServiceMock struct {
	mock.Mock
}

func (m *CatalogServiceMock) Search(ctx context.Context, req models.SearchRequest) models.GoodsList {
	return m.Called(ctx, req).Get(0).(models.GoodsList)
}

func str(s string) *string {
	return &s
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSearchHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantReq    *models.SearchRequest
		wantCode   int
		wantStatus float64
		wantMsg    string
	}{
		{
			name: "details default to all",
			body: `{"keywords":"sofa"}`,
			wantReq: &models.SearchRequest{
				Keywords: str("sofa"),
				Details:  models.SearchDetails{Area: "all", Type: "all", Time: "all"},
			},
			wantCode:   http.StatusOK,
			wantStatus: 200,
			wantMsg:    "ok",
		},
		{
			name: "partial details",
			body: `{"keywords":"sofa","details":{"area":"B1","time":"three days"}}`,
			wantReq: &models.SearchRequest{
				Keywords: str("sofa"),
				Details:  models.SearchDetails{Area: "B1", Type: "all", Time: "three days"},
			},
			wantCode:   http.StatusOK,
			wantStatus: 200,
			wantMsg:    "ok",
		},
		{
			name: "empty keywords",
			body: `{"keywords":""}`,
			wantReq: &models.SearchRequest{
				Keywords: str(""),
				Details:  models.SearchDetails{Area: "all", Type: "all", Time: "all"},
			},
			wantCode:   http.StatusOK,
			wantStatus: 200,
			wantMsg:    "ok",
		},
		{
			name:       "unknown area",
			body:       `{"keywords":"sofa","details":{"area":"Z9"}}`,
			wantCode:   http.StatusUnprocessableEntity,
			wantStatus: 422,
			wantMsg:    "field Area has unsupported value Z9",
		},
		{
			name:       "unknown time",
			body:       `{"keywords":"sofa","details":{"time":"year"}}`,
			wantCode:   http.StatusUnprocessableEntity,
			wantStatus: 422,
			wantMsg:    "field Time has unsupported value year",
		},
		{
			name:       "missing keywords",
			body:       `{"details":{"type":"type1"}}`,
			wantCode:   http.StatusUnprocessableEntity,
			wantStatus: 422,
			wantMsg:    "field Keywords is a required field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(CatalogServiceMock)
			if tt.wantReq != nil {
				svc.On("Search", mock.Anything, *tt.wantReq).Return(models.SampleSearchResult()).Once()
			}
			rec := httptest.NewRecorder()

			New(newNoopLogger(), svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/goods/search", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.wantStatus, got["status"])
			assert.Equal(t, tt.wantMsg, got["msg"])
			if tt.wantReq != nil {
				data := got["data"].(map[string]any)
				assert.Equal(t, float64(2), data["len"])
			}
			svc.AssertExpectations(t)
		})
	}
}
