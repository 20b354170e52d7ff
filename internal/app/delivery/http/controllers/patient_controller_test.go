package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"healthai-service/internal/app/models"
	"healthai-service/internal/pkg/constvars"
	"healthai-service/internal/pkg/dto/requests"
	"healthai-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type deadlineRecordingPatientUsecase struct {
	deadline    time.Time
	hasDeadline bool
}

func (s *deadlineRecordingPatientUsecase) capture(ctx context.Context) {
	s.deadline, s.hasDeadline = ctx.Deadline()
}

func (s *deadlineRecordingPatientUsecase) RegisterPatient(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error) {
	s.capture(ctx)
	return &models.Patient{}, nil
}

func (s *deadlineRecordingPatientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	s.capture(ctx)
	return &models.Patient{}, nil
}

func (s *deadlineRecordingPatientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	s.capture(ctx)
	return nil
}

func (s *deadlineRecordingPatientUsecase) GetPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	s.capture(ctx)
	return &models.Patient{}, nil
}

func (s *deadlineRecordingPatientUsecase) ListPatients(ctx context.Context, searchTerm string) ([]responses.PatientSummary, error) {
	s.capture(ctx)
	return nil, nil
}

func (s *deadlineRecordingPatientUsecase) GetPatientStats(ctx context.Context) (*responses.PatientStats, error) {
	s.capture(ctx)
	return &responses.PatientStats{}, nil
}

func (s *deadlineRecordingPatientUsecase) SaveAIAnalysis(ctx context.Context, patientID, narrative string) error {
	s.capture(ctx)
	return nil
}

func newPatientRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(req.Context(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
	return req.WithContext(ctx)
}

func TestPatientControllerRequestTimeout(t *testing.T) {
	t.Run("Configured timeout bounds the usecase context", func(t *testing.T) {
		usecase := &deadlineRecordingPatientUsecase{}
		controller := NewPatientController(zap.NewNop(), usecase, 3*time.Second)
		recorder := httptest.NewRecorder()

		controller.GetPatientStats(recorder, newPatientRequest(http.MethodGet, "/patients/stats"))

		require.True(t, usecase.hasDeadline, "usecase context should carry a deadline")
		remaining := time.Until(usecase.deadline)
		assert.Greater(t, remaining, 1*time.Second)
		assert.LessOrEqual(t, remaining, 3*time.Second)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
