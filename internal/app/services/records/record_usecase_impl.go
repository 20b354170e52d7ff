package records

import (
	"context"
	"sort"

	"healthai-service/internal/app/contracts"
	"healthai-service/internal/app/models"
	"healthai-service/internal/app/services/timeline"
	"healthai-service/internal/pkg/constvars"
	"healthai-service/internal/pkg/dto/requests"
	"healthai-service/internal/pkg/dto/responses"
	"healthai-service/internal/pkg/exceptions"
	"healthai-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type recordUsecase struct {
	RecordRepository contracts.RecordRepository
	SummaryCache     contracts.SummaryCache
	Log              *zap.Logger
}

func NewRecordUsecase(
	recordRepository contracts.RecordRepository,
	summaryCache contracts.SummaryCache,
	logger *zap.Logger,
) contracts.RecordUsecase {
	return &recordUsecase{
		RecordRepository: recordRepository,
		SummaryCache:     summaryCache,
		Log:              logger,
	}
}

// logDegraded records a category fetch failure that was collapsed to an empty
// list. The detail view renders whatever categories survived.
func (uc *recordUsecase) logDegraded(ctx context.Context, category, patientID string, err error) {
	uc.Log.Warn("Record category fetch degraded to empty list",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingCategoryKey, category),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Error(err),
	)
}

func (uc *recordUsecase) getEncounters(ctx context.Context, patientID string) []models.Encounter {
	encounters, err := uc.RecordRepository.FindEncountersByPatientID(ctx, patientID)
	if err != nil {
		uc.logDegraded(ctx, constvars.RecordCategoryEncounter, patientID, err)
		return []models.Encounter{}
	}
	sort.SliceStable(encounters, func(i, j int) bool {
		return timeline.NormalizeEncounter(encounters[i]).Date.After(timeline.NormalizeEncounter(encounters[j]).Date)
	})
	return encounters
}

func (uc *recordUsecase) getConditions(ctx context.Context, patientID string) []models.Condition {
	conditions, err := uc.RecordRepository.FindConditionsByPatientID(ctx, patientID)
	if err != nil {
		uc.logDegraded(ctx, constvars.RecordCategoryCondition, patientID, err)
		return []models.Condition{}
	}

	active := make([]models.Condition, 0, len(conditions))
	for _, condition := range conditions {
		if condition.ClinicalStatus == constvars.ConditionStatusResolved {
			continue
		}
		active = append(active, condition)
	}
	return active
}

func (uc *recordUsecase) getMedications(ctx context.Context, patientID string) []models.Medication {
	medications, err := uc.RecordRepository.FindMedicationsByPatientID(ctx, patientID)
	if err != nil {
		uc.logDegraded(ctx, constvars.RecordCategoryMedication, patientID, err)
		return []models.Medication{}
	}
	sort.SliceStable(medications, func(i, j int) bool {
		return timeline.ParseDate(medications[i].AuthoredOn).After(timeline.ParseDate(medications[j].AuthoredOn))
	})
	return medications
}

func (uc *recordUsecase) getProcedures(ctx context.Context, patientID string) []models.Procedure {
	procedures, err := uc.RecordRepository.FindProceduresByPatientID(ctx, patientID)
	if err != nil {
		uc.logDegraded(ctx, constvars.RecordCategoryProcedure, patientID, err)
		return []models.Procedure{}
	}
	return procedures
}

func (uc *recordUsecase) getObservations(ctx context.Context, patientID string) []models.Observation {
	observations, err := uc.RecordRepository.FindObservationsByPatientID(ctx, patientID)
	if err != nil {
		uc.logDegraded(ctx, constvars.RecordCategoryObservation, patientID, err)
		return []models.Observation{}
	}
	return observations
}

func (uc *recordUsecase) getAllergies(ctx context.Context, patientID string) []models.Allergy {
	allergies, err := uc.RecordRepository.FindAllergiesByPatientID(ctx, patientID)
	if err != nil {
		uc.logDegraded(ctx, constvars.RecordCategoryAllergy, patientID, err)
		return []models.Allergy{}
	}
	return allergies
}

func (uc *recordUsecase) GetPatientRecords(ctx context.Context, patientID string) (*responses.RecordBundle, error) {
	return &responses.RecordBundle{
		Encounters:   uc.getEncounters(ctx, patientID),
		Conditions:   uc.getConditions(ctx, patientID),
		Medications:  uc.getMedications(ctx, patientID),
		Procedures:   uc.getProcedures(ctx, patientID),
		Observations: uc.getObservations(ctx, patientID),
		Allergies:    uc.getAllergies(ctx, patientID),
	}, nil
}

func (uc *recordUsecase) GetTimeline(ctx context.Context, patientID, filter string) (*responses.Timeline, error) {
	if filter == "" {
		filter = constvars.TimelineFilterAll
	}
	if !timeline.ValidFilter(filter) {
		return nil, exceptions.ErrUnknownRecordCategory(filter)
	}

	// Only fetch the categories the filter selects.
	collections := timeline.Collections{}
	all := filter == constvars.TimelineFilterAll
	if all || filter == constvars.RecordCategoryEncounter {
		collections.Encounters = uc.getEncounters(ctx, patientID)
	}
	if all || filter == constvars.RecordCategoryCondition {
		collections.Conditions = uc.getConditions(ctx, patientID)
	}
	if all || filter == constvars.RecordCategoryMedication {
		collections.Medications = uc.getMedications(ctx, patientID)
	}
	if all || filter == constvars.RecordCategoryAllergy {
		collections.Allergies = uc.getAllergies(ctx, patientID)
	}
	if all || filter == constvars.RecordCategoryObservation {
		collections.Observations = uc.getObservations(ctx, patientID)
	}
	if all || filter == constvars.RecordCategoryProcedure {
		collections.Procedures = uc.getProcedures(ctx, patientID)
	}

	events := timeline.Merge(collections, filter)
	if events == nil {
		events = []models.TimelineEvent{}
	}
	return &responses.Timeline{Filter: filter, Events: events}, nil
}

func (uc *recordUsecase) GetCategory(ctx context.Context, patientID, category string) (interface{}, error) {
	switch category {
	case constvars.MongoCollectionEncounters, constvars.RecordCategoryEncounter:
		return uc.getEncounters(ctx, patientID), nil
	case constvars.MongoCollectionConditions, constvars.RecordCategoryCondition:
		return uc.getConditions(ctx, patientID), nil
	case constvars.MongoCollectionMedications, constvars.RecordCategoryMedication:
		return uc.getMedications(ctx, patientID), nil
	case constvars.MongoCollectionProcedures, constvars.RecordCategoryProcedure:
		return uc.getProcedures(ctx, patientID), nil
	case constvars.MongoCollectionObservations, constvars.RecordCategoryObservation:
		return uc.getObservations(ctx, patientID), nil
	case constvars.MongoCollectionAllergies, constvars.RecordCategoryAllergy:
		return uc.getAllergies(ctx, patientID), nil
	}
	return nil, exceptions.ErrUnknownRecordCategory(category)
}

func (uc *recordUsecase) AddMedication(ctx context.Context, patientID string, request *requests.AddMedication) (*models.Medication, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err, utils.FormatAllValidationErrors(err))
	}

	medication := &models.Medication{
		PatientID:    patientID,
		Display:      request.Display,
		Dosage:       request.Dosage,
		Frequency:    request.Frequency,
		Prescriber:   request.Prescriber,
		Instructions: request.Instructions,
		ReasonCode:   request.ReasonCode,
		AuthoredOn:   request.AuthoredOn,
		Status:       "active",
	}

	created, err := uc.RecordRepository.InsertMedication(ctx, medication)
	if err != nil {
		return nil, err
	}

	uc.SummaryCache.Invalidate(ctx, patientID)
	return created, nil
}

func (uc *recordUsecase) AddCondition(ctx context.Context, patientID string, request *requests.AddCondition) (*models.Condition, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err, utils.FormatAllValidationErrors(err))
	}

	condition := &models.Condition{
		PatientID:      patientID,
		Display:        request.Display,
		Severity:       request.Severity,
		Notes:          request.Notes,
		OnsetDateTime:  request.OnsetDateTime,
		ClinicalStatus: "active",
	}

	created, err := uc.RecordRepository.InsertCondition(ctx, condition)
	if err != nil {
		return nil, err
	}

	uc.SummaryCache.Invalidate(ctx, patientID)
	return created, nil
}
