package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"patient-health-api/internal/delivery/dto"
	"patient-health-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	logrus.SetOutput(io.Discard)
}

type MockHealthCoverageUsecase struct {
	mock.Mock
}

func (m *MockHealthCoverageUsecase) ListCoverages(ctx context.Context, patientID int64) (*dto.HealthCoverageListResponse, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.HealthCoverageListResponse), args.Error(1)
}

func (m *MockHealthCoverageUsecase) GetCoverage(ctx context.Context, id int64) (*dto.HealthCoverageResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.HealthCoverageResponse), args.Error(1)
}

func (m *MockHealthCoverageUsecase) CreateCoverage(ctx context.Context, patientID int64, req *dto.CreateHealthCoverageRequest) (*dto.HealthCoverageResponse, error) {
	args := m.Called(ctx, patientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.HealthCoverageResponse), args.Error(1)
}

func (m *MockHealthCoverageUsecase) UpdateCoverage(ctx context.Context, id, patientID int64, req *dto.UpdateHealthCoverageRequest) (*dto.HealthCoverageResponse, error) {
	args := m.Called(ctx, id, patientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.HealthCoverageResponse), args.Error(1)
}

func (m *MockHealthCoverageUsecase) DeleteCoverage(ctx context.Context, id, patientID int64) (bool, error) {
	args := m.Called(ctx, id, patientID)
	return args.Bool(0), args.Error(1)
}

type MockHealthProfessionalUsecase struct {
	mock.Mock
}

func (m *MockHealthProfessionalUsecase) ListAll(ctx context.Context) (*dto.HealthProfessionalListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.HealthProfessionalListResponse), args.Error(1)
}

func (m *MockHealthProfessionalUsecase) ListByPatient(ctx context.Context, patientID int64) (*dto.HealthProfessionalListResponse, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.HealthProfessionalListResponse), args.Error(1)
}

func (m *MockHealthProfessionalUsecase) GetProfessional(ctx context.Context, id int64) (*dto.HealthProfessionalResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.HealthProfessionalResponse), args.Error(1)
}

func (m *MockHealthProfessionalUsecase) CreateProfessional(ctx context.Context, req *dto.CreateHealthProfessionalRequest) (*dto.HealthProfessionalResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.HealthProfessionalResponse), args.Error(1)
}

func (m *MockHealthProfessionalUsecase) UpdateProfessional(ctx context.Context, id int64, req *dto.UpdateHealthProfessionalRequest) (*dto.HealthProfessionalResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.HealthProfessionalResponse), args.Error(1)
}

func (m *MockHealthProfessionalUsecase) DeleteProfessional(ctx context.Context, id, patientID int64) (bool, error) {
	args := m.Called(ctx, id, patientID)
	return args.Bool(0), args.Error(1)
}

type MockPatientAccountLinkedUsecase struct {
	mock.Mock
}

func (m *MockPatientAccountLinkedUsecase) ListLinks(ctx context.Context, patientID int64) (*dto.AccountLinkListResponse, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountLinkListResponse), args.Error(1)
}

func (m *MockPatientAccountLinkedUsecase) CheckLinks(ctx context.Context, patientID int64) (*dto.CheckAccountLinkedResponse, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CheckAccountLinkedResponse), args.Error(1)
}

func (m *MockPatientAccountLinkedUsecase) CreateLink(ctx context.Context, req *dto.CreateAccountLinkRequest) (*dto.AccountLinkResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountLinkResponse), args.Error(1)
}

func (m *MockPatientAccountLinkedUsecase) RemoveLink(ctx context.Context, patientID, linkedPatientID int64) error {
	args := m.Called(ctx, patientID, linkedPatientID)
	return args.Error(0)
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) GetCurrentAccount(ctx context.Context) (*dto.AccountResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountResponse), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

type apiError struct {
	TraceID string `json:"trace_id"`
	Code    string `json:"code"`
	Status  int    `json:"status"`
}

// newRequest builds a request carrying route vars, an account and a request id.
func newRequest(t *testing.T, method, target string, body interface{}, vars map[string]string, role string) *http.Request {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			encoded, err := json.Marshal(body)
			require.NoError(t, err)
			raw = string(encoded)
		}
		reader = bytes.NewBufferString(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	ctx := middleware.WithAccount(req.Context(), "acc-test", role)
	ctx = context.WithValue(ctx, middleware.RequestIDKey, "trace-test")
	req = req.WithContext(ctx)
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiError {
	t.Helper()
	var apiErr apiError
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Error, &apiErr))
	return apiErr
}

type MockAuditLogUsecase struct {
	mock.Mock
}

func (m *MockAuditLogUsecase) GetAllAuditLogs(ctx context.Context, req *dto.AuditLogListRequest) (*dto.AuditLogListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuditLogListResponse), args.Error(1)
}

func (m *MockAuditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuditLogResponse), args.Error(1)
}
