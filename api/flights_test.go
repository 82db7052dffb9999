package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mahatoankit/flightbook/internal/domain"
	"github.com/mahatoankit/flightbook/internal/service/flights"
)

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]domain.PricedFlight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricedFlight), args.Error(1)
}

func (m *MockFlightUseCase) ListAll(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Create(ctx context.Context, input flights.CreateFlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newFlightRouter(service flights.FlightUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewFlightHandler(service)
	h.Register(router.Group("/"))
	h.RegisterAdmin(router.Group("/admin"))
	return router
}

func TestFlightHandler_List(t *testing.T) {
	service := new(MockFlightUseCase)
	f := domain.NewFlight(1, "FB100", "KTM", "DEL",
		time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), 500, 150)
	service.On("List", mock.Anything).Return([]domain.PricedFlight{
		{Flight: *f, CurrentFee: 625, SeatsLeft: 150},
	}, nil)

	router := newFlightRouter(service)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/flights", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "FB100", body[0]["flight_number"])
	assert.Equal(t, "2026-06-01", body[0]["departure_date"])
	assert.Equal(t, 625.0, body[0]["current_fee"])
	assert.Equal(t, 150.0, body[0]["seats_left"])
}

func TestFlightHandler_Get(t *testing.T) {
	service := new(MockFlightUseCase)
	f := domain.NewFlight(7, "FB700", "KTM", "DXB",
		time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), 500, 150)
	service.On("GetByID", mock.Anything, int64(7)).Return(f, nil)

	router := newFlightRouter(service)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/flights/7", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 7.0, body["id"])
}

func TestFlightHandler_Get_NotFound(t *testing.T) {
	service := new(MockFlightUseCase)
	service.On("GetByID", mock.Anything, int64(42)).Return(nil, domain.ErrNotFound)

	router := newFlightRouter(service)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/flights/42", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlightHandler_Get_InvalidID(t *testing.T) {
	service := new(MockFlightUseCase)

	router := newFlightRouter(service)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/flights/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "GetByID")
}

func TestFlightHandler_Create(t *testing.T) {
	service := new(MockFlightUseCase)
	created := domain.NewFlight(1, "FB100", "KTM", "DEL",
		time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), 500, 150)
	service.On("Create", mock.Anything, flights.CreateFlightInput{
		FlightNumber:  "FB100",
		Origin:        "KTM",
		Destination:   "DEL",
		DepartureDate: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		BasePrice:     500,
		Capacity:      150,
	}).Return(created, nil)

	router := newFlightRouter(service)
	w := httptest.NewRecorder()
	payload := `{"flight_number":"FB100","origin":"KTM","destination":"DEL","departure_date":"2026-06-01","base_price":500,"capacity":150}`
	req := httptest.NewRequest(http.MethodPost, "/admin/flights", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	service.AssertExpectations(t)
}

func TestFlightHandler_Create_BadDate(t *testing.T) {
	service := new(MockFlightUseCase)

	router := newFlightRouter(service)
	w := httptest.NewRecorder()
	payload := `{"flight_number":"FB100","departure_date":"01-06-2026","capacity":150}`
	req := httptest.NewRequest(http.MethodPost, "/admin/flights", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "YYYY-MM-DD")
	service.AssertNotCalled(t, "Create")
}

func TestFlightHandler_Create_Duplicate(t *testing.T) {
	service := new(MockFlightUseCase)
	service.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateFlight)

	router := newFlightRouter(service)
	w := httptest.NewRecorder()
	payload := `{"flight_number":"FB100","departure_date":"2026-06-01","capacity":150}`
	req := httptest.NewRequest(http.MethodPost, "/admin/flights", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestFlightHandler_Remove(t *testing.T) {
	service := new(MockFlightUseCase)
	service.On("Remove", mock.Anything, int64(3)).Return(nil)

	router := newFlightRouter(service)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/flights/3", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	service.AssertExpectations(t)
}
