package summary_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	summaryHandler "github.com/jmcortinhal/centavo/internal/http/summary"
	"github.com/jmcortinhal/centavo/internal/transaction"
)

func newRouter(repo transaction.Repository) http.Handler {
	h := summaryHandler.NewHandler(transaction.NewService(repo))

	r := chi.NewRouter()
	r.Route("/api/summary", h.Routes)

	return r
}

func TestHandler_Month(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wantRange := transaction.MonthRange(2024, time.January)

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any(), &wantRange).
		Return([]*transaction.Transaction{
			{Amount: 500.005, Type: transaction.TypeIncome},
			{Amount: 200.001, Type: transaction.TypeExpense},
		}, nil)

	router := newRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/summary/month?month=1&year=2024", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Month        int     `json:"month"`
		Year         int     `json:"year"`
		TotalIncome  float64 `json:"total_income"`
		TotalExpense float64 `json:"total_expense"`
		Balance      float64 `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 1, resp.Month)
	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, 500.01, resp.TotalIncome)
	assert.Equal(t, 200.0, resp.TotalExpense)
	assert.Equal(t, 300.01, resp.Balance)
}

func TestHandler_Month_DefaultsToNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	wantRange := transaction.MonthRange(now.Year(), now.Month())

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any(), &wantRange).
		Return(nil, nil)

	router := newRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/summary/month", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Month        int     `json:"month"`
		Year         int     `json:"year"`
		TotalIncome  float64 `json:"total_income"`
		TotalExpense float64 `json:"total_expense"`
		Balance      float64 `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, int(now.Month()), resp.Month)
	assert.Equal(t, now.Year(), resp.Year)
	assert.Zero(t, resp.TotalIncome)
	assert.Zero(t, resp.TotalExpense)
	assert.Zero(t, resp.Balance)
}

func TestHandler_Month_BadParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	router := newRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/summary/month?month=13", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
