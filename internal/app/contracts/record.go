package contracts

import (
	"context"

	"healthai-service/internal/app/models"
	"healthai-service/internal/pkg/dto/requests"
	"healthai-service/internal/pkg/dto/responses"
)

type RecordUsecase interface {
	// GetPatientRecords fetches all six categories; a failing category
	// degrades to an empty list so the rest of the page can render.
	GetPatientRecords(ctx context.Context, patientID string) (*responses.RecordBundle, error)
	GetTimeline(ctx context.Context, patientID, filter string) (*responses.Timeline, error)
	GetCategory(ctx context.Context, patientID, category string) (interface{}, error)
	AddMedication(ctx context.Context, patientID string, request *requests.AddMedication) (*models.Medication, error)
	AddCondition(ctx context.Context, patientID string, request *requests.AddCondition) (*models.Condition, error)
}

type RecordRepository interface {
	FindEncountersByPatientID(ctx context.Context, patientID string) ([]models.Encounter, error)
	FindConditionsByPatientID(ctx context.Context, patientID string) ([]models.Condition, error)
	FindMedicationsByPatientID(ctx context.Context, patientID string) ([]models.Medication, error)
	FindProceduresByPatientID(ctx context.Context, patientID string) ([]models.Procedure, error)
	FindObservationsByPatientID(ctx context.Context, patientID string) ([]models.Observation, error)
	FindAllergiesByPatientID(ctx context.Context, patientID string) ([]models.Allergy, error)
	InsertMedication(ctx context.Context, medication *models.Medication) (*models.Medication, error)
	InsertCondition(ctx context.Context, condition *models.Condition) (*models.Condition, error)
}
