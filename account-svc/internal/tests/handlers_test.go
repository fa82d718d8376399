package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "github.com/Second-Serve/backend/account-svc/internal/api/http"
	"github.com/Second-Serve/backend/account-svc/internal/domain"
	"github.com/Second-Serve/backend/account-svc/internal/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(campus *mocks.CampusServiceInterface) *mux.Router {
	r := mux.NewRouter()
	httpapi.NewHandler(campus).RegisterRoutes(r)
	return r
}

func TestHandler_VerifyCampusID(t *testing.T) {
	campus := mocks.NewCampusServiceInterface(t)
	campus.On("VerifyCampusID", "91234567890").Return(true).Once()

	rec := httptest.NewRecorder()
	newRouter(campus).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/campus/verify?barcode=91234567890", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "true", rec.Body.String())
}

func TestHandler_VerifyCampusID_MissingBarcode(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(mocks.NewCampusServiceInterface(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/campus/verify", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CheckLocation(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(*mocks.CampusServiceInterface)
		expectedCode int
		expected     domain.LocationResult
	}{
		{
			name: "outside campus",
			body: `{"latitude":43.0389,"longitude":-87.9065}`,
			prepareMock: func(campus *mocks.CampusServiceInterface) {
				campus.On("CheckLocation", domain.Location{Latitude: 43.0389, Longitude: -87.9065}).
					Return(domain.LocationResult{Reason: "Address is not within the UW-Madison campus."}).Once()
			},
			expectedCode: http.StatusOK,
			expected:     domain.LocationResult{Reason: "Address is not within the UW-Madison campus."},
		},
		{
			name:         "bad payload",
			body:         `[1,2]`,
			prepareMock:  func(*mocks.CampusServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			campus := mocks.NewCampusServiceInterface(t)
			testCase.prepareMock(campus)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/campus/location", bytes.NewBufferString(testCase.body))
			newRouter(campus).ServeHTTP(rec, req)

			assert.Equal(t, testCase.expectedCode, rec.Code)
			if testCase.expectedCode == http.StatusOK {
				var result domain.LocationResult
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
				assert.Equal(t, testCase.expected, result)
			}
		})
	}
}
