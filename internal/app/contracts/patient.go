package contracts

import (
	"context"

	"healthai-service/internal/app/models"
	"healthai-service/internal/pkg/dto/requests"
	"healthai-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	RegisterPatient(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
	GetPatient(ctx context.Context, patientID string) (*models.Patient, error)
	ListPatients(ctx context.Context, searchTerm string) ([]responses.PatientSummary, error)
	GetPatientStats(ctx context.Context) (*responses.PatientStats, error)
	SaveAIAnalysis(ctx context.Context, patientID, narrative string) error
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, update map[string]interface{}) (*models.Patient, error)
	SoftDeletePatient(ctx context.Context, patientID string) error
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	// FindAllPatients returns patients with active != false, newest-created
	// first when the store can order, unordered otherwise.
	FindAllPatients(ctx context.Context) ([]models.Patient, error)
}
