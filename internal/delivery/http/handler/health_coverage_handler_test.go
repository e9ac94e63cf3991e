package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"patient-health-api/internal/delivery/dto"
	"patient-health-api/internal/domain/entity"
	"patient-health-api/internal/service"
	"patient-health-api/internal/usecase"
	"patient-health-api/pkg/response"
	"patient-health-api/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCoverageHandler() (*HealthCoverageHandler, *MockHealthCoverageUsecase) {
	uc := new(MockHealthCoverageUsecase)
	return NewHealthCoverageHandler(uc, validator.NewValidator()), uc
}

func TestHealthCoverageHandler_ListCoverages(t *testing.T) {
	h, uc := newCoverageHandler()
	list := &dto.HealthCoverageListResponse{
		Mutuals:       []dto.HealthCoverageResponse{{ID: 1, Type: 0, SType: "MUTUAL", PatientID: 7}},
		Supplementals: []dto.HealthCoverageResponse{},
	}
	uc.On("ListCoverages", mock.Anything, int64(7)).Return(list, nil)

	rec := httptest.NewRecorder()
	h.ListCoverages(rec, newRequest(t, http.MethodGet, "/api/v1/health-coverages/patients/7", nil, map[string]string{"patientId": "7"}, entity.RolePatient))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"mutuals":[{"id":1,"name":null,"identity_number":null,"type":0,"stype":"MUTUAL","patient_id":7,"created_at":"0001-01-01T00:00:00Z","updated_at":"0001-01-01T00:00:00Z"}],"supplementals":[]}`, string(env.Data))
	uc.AssertExpectations(t)
}

func TestHealthCoverageHandler_ListCoverages_InvalidPatientID(t *testing.T) {
	h, uc := newCoverageHandler()

	for _, raw := range []string{"abc", "0", "-3"} {
		rec := httptest.NewRecorder()
		h.ListCoverages(rec, newRequest(t, http.MethodGet, "/", nil, map[string]string{"patientId": raw}, entity.RolePatient))

		assert.Equal(t, http.StatusBadRequest, rec.Code, raw)
		assert.Equal(t, response.CodeBadRequest, decodeAPIError(t, rec).Code)
	}
	uc.AssertNotCalled(t, "ListCoverages", mock.Anything, mock.Anything)
}

func TestHealthCoverageHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", fmt.Errorf("%w: id 9", usecase.ErrCoverageNotFound), http.StatusNotFound, "HEALTH_COVERAGE_NOT_FOUND"},
		{"patient not found", usecase.ErrPatientNotFound, http.StatusNotFound, "PATIENT_NOT_FOUND"},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, response.CodeForbidden},
		{"unauthenticated", service.ErrUnauthenticated, http.StatusUnauthorized, response.CodeUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newCoverageHandler()
			uc.On("GetCoverage", mock.Anything, int64(9)).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			h.GetCoverage(rec, newRequest(t, http.MethodGet, "/", nil, map[string]string{"id": "9"}, entity.RolePatient))

			assert.Equal(t, tt.status, rec.Code)
			apiErr := decodeAPIError(t, rec)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, "trace-test", apiErr.TraceID)
		})
	}
}

func TestHealthCoverageHandler_UnknownErrorIsGeneric500(t *testing.T) {
	h, uc := newCoverageHandler()
	uc.On("GetCoverage", mock.Anything, int64(3)).Return(nil, errors.New("pq: connection refused"))

	rec := httptest.NewRecorder()
	h.GetCoverage(rec, newRequest(t, http.MethodGet, "/", nil, map[string]string{"id": "3"}, entity.RoleAdmin))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Internal server error", env.Message)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Equal(t, response.CodeInternalServer, decodeAPIError(t, rec).Code)
}

func TestHealthCoverageHandler_CreateCoverage(t *testing.T) {
	h, uc := newCoverageHandler()
	created := &dto.HealthCoverageResponse{ID: 4, Type: 1, SType: "SUPPLEMENTAL", PatientID: 7}
	uc.On("CreateCoverage", mock.Anything, int64(7), mock.MatchedBy(func(req *dto.CreateHealthCoverageRequest) bool {
		return req.Type == "SUPPLEMENTAL" && req.Name != nil && *req.Name == "Axa"
	})).Return(created, nil)

	rec := httptest.NewRecorder()
	body := map[string]interface{}{"type": "SUPPLEMENTAL", "name": "Axa"}
	h.CreateCoverage(rec, newRequest(t, http.MethodPost, "/", body, map[string]string{"patientId": "7"}, entity.RolePatient))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"stype":"SUPPLEMENTAL"`)
	uc.AssertExpectations(t)
}

func TestHealthCoverageHandler_CreateCoverage_RejectsUnknownLabel(t *testing.T) {
	h, uc := newCoverageHandler()

	rec := httptest.NewRecorder()
	h.CreateCoverage(rec, newRequest(t, http.MethodPost, "/", map[string]string{"type": "PRIVATE"}, map[string]string{"patientId": "7"}, entity.RolePatient))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", decodeEnvelope(t, rec).Message)
	uc.AssertNotCalled(t, "CreateCoverage", mock.Anything, mock.Anything, mock.Anything)
}

func TestHealthCoverageHandler_CreateCoverage_MalformedBody(t *testing.T) {
	h, _ := newCoverageHandler()

	rec := httptest.NewRecorder()
	h.CreateCoverage(rec, newRequest(t, http.MethodPost, "/", "{not json", map[string]string{"patientId": "7"}, entity.RolePatient))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeEnvelope(t, rec).Message)
}

func TestHealthCoverageHandler_UpdateCoverage_Mismatch(t *testing.T) {
	h, uc := newCoverageHandler()
	uc.On("UpdateCoverage", mock.Anything, int64(5), int64(8), mock.Anything).
		Return(nil, fmt.Errorf("%w: coverage 5", usecase.ErrCoverageNotMatchPatient))

	rec := httptest.NewRecorder()
	vars := map[string]string{"id": "5", "patientId": "8"}
	h.UpdateCoverage(rec, newRequest(t, http.MethodPut, "/", map[string]string{"name": "New"}, vars, entity.RolePatient))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "HEALTH_COVERAGE_NOT_MATCH_PATIENT", decodeAPIError(t, rec).Code)
}

func TestHealthCoverageHandler_DeleteCoverage(t *testing.T) {
	tests := []struct {
		name    string
		deleted bool
		message string
	}{
		{"deleted", true, "Health coverage with id 5 is deleted"},
		{"not deleted", false, "Health coverage with id 5 cannot be deleted."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newCoverageHandler()
			uc.On("DeleteCoverage", mock.Anything, int64(5), int64(7)).Return(tt.deleted, nil)

			rec := httptest.NewRecorder()
			vars := map[string]string{"id": "5", "patientId": "7"}
			h.DeleteCoverage(rec, newRequest(t, http.MethodDelete, "/", nil, vars, entity.RolePatient))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, fmt.Sprintf("[%q]", tt.message), string(decodeEnvelope(t, rec).Data))
		})
	}
}
