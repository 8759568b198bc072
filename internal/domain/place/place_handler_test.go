package place

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cailurus/hearth/internal/types"
)

// MockService is a mock implementation of Service
type MockService struct {
	mock.Mock
}

func (m *MockService) SearchCities(ctx context.Context, query string, count int, language string) ([]types.GeoPoint, error) {
	args := m.Called(ctx, query, count, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.GeoPoint), args.Error(1)
}

func (m *MockService) GeocodeCity(ctx context.Context, city, language string) (types.GeoPoint, error) {
	args := m.Called(ctx, city, language)
	return args.Get(0).(types.GeoPoint), args.Error(1)
}

func setupHandlerTest() (*Handler, *MockService) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockSvc := new(MockService)
	return NewHandler(mockSvc, logger), mockSvc
}

func TestHandler_SearchCities(t *testing.T) {
	t.Run("returns places as JSON", func(t *testing.T) {
		handler, mockSvc := setupHandlerTest()
		points := []types.GeoPoint{{Latitude: 41.1, Longitude: -8.6, DisplayName: "Porto, Portugal"}}
		mockSvc.On("SearchCities", mock.Anything, "porto", 5, "en").Return(points, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/places/search?q=porto&count=5&lang=en", nil)
		rec := httptest.NewRecorder()
		handler.SearchCities(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var resp searchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Places, 1)
		assert.Equal(t, "Porto, Portugal", resp.Places[0].DisplayName)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing count defaults to zero for the service to clamp", func(t *testing.T) {
		handler, mockSvc := setupHandlerTest()
		mockSvc.On("SearchCities", mock.Anything, "porto", 0, "").
			Return([]types.GeoPoint{{DisplayName: "Porto, Portugal"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/places/search?q=porto", nil)
		rec := httptest.NewRecorder()
		handler.SearchCities(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("non-numeric count is a 400", func(t *testing.T) {
		handler, mockSvc := setupHandlerTest()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/places/search?q=porto&count=lots", nil)
		rec := httptest.NewRecorder()
		handler.SearchCities(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "SearchCities")
	})

	t.Run("validation errors map to 400", func(t *testing.T) {
		handler, mockSvc := setupHandlerTest()
		mockSvc.On("SearchCities", mock.Anything, "", 0, "").
			Return(nil, types.ErrBadRequest).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/places/search", nil)
		rec := httptest.NewRecorder()
		handler.SearchCities(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not-found maps to 404", func(t *testing.T) {
		handler, mockSvc := setupHandlerTest()
		mockSvc.On("SearchCities", mock.Anything, "nowhereville", 0, "").
			Return(nil, types.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/places/search?q=nowhereville", nil)
		rec := httptest.NewRecorder()
		handler.SearchCities(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("provider failures map to 502", func(t *testing.T) {
		handler, mockSvc := setupHandlerTest()
		mockSvc.On("SearchCities", mock.Anything, "porto", 0, "").
			Return(nil, &types.ProviderError{StatusCode: 500}).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/places/search?q=porto", nil)
		rec := httptest.NewRecorder()
		handler.SearchCities(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestHandler_GeocodeCity(t *testing.T) {
	t.Run("returns the geocoded point", func(t *testing.T) {
		handler, mockSvc := setupHandlerTest()
		point := types.GeoPoint{Latitude: 31.23, Longitude: 121.47, DisplayName: "Shanghai, China", Timezone: "Asia/Shanghai"}
		mockSvc.On("GeocodeCity", mock.Anything, "Shanghai", "en").Return(point, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/places/geocode?city=Shanghai&lang=en", nil)
		rec := httptest.NewRecorder()
		handler.GeocodeCity(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got types.GeoPoint
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, point, got)
	})

	t.Run("timeouts map to 504", func(t *testing.T) {
		handler, mockSvc := setupHandlerTest()
		mockSvc.On("GeocodeCity", mock.Anything, "Shanghai", "").
			Return(types.GeoPoint{}, context.DeadlineExceeded).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/places/geocode?city=Shanghai", nil)
		rec := httptest.NewRecorder()
		handler.GeocodeCity(rec, req)

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	})
}
