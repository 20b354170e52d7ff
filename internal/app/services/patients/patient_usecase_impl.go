package patients

import (
	"context"
	"strings"
	"time"

	"healthai-service/internal/app/contracts"
	"healthai-service/internal/app/models"
	"healthai-service/internal/pkg/dto/requests"
	"healthai-service/internal/pkg/dto/responses"
	"healthai-service/internal/pkg/exceptions"
	"healthai-service/internal/pkg/utils"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	SummaryCache      contracts.SummaryCache
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	summaryCache contracts.SummaryCache,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		SummaryCache:      summaryCache,
	}
}

// validateRegistration mirrors the registration form: every missing required
// field is collected and surfaced as one joined message.
func validateRegistration(request *requests.CreatePatient) error {
	var missing []string

	hasName := false
	if len(request.Name) > 0 {
		name := request.Name[0]
		hasName = len(name.Given) > 0 && name.Given[0] != "" && name.Family != ""
	}
	if !hasName {
		missing = append(missing, "First and last name required")
	}
	if request.Gender == "" {
		missing = append(missing, "Gender required")
	}
	if request.BirthDate == "" {
		missing = append(missing, "Birth date required")
	}
	if request.PhoneNumber() == "" {
		missing = append(missing, "Phone number required")
	}

	if len(missing) > 0 {
		return exceptions.ErrInputValidation(nil, strings.Join(missing, ", "))
	}
	return nil
}

func (uc *patientUsecase) RegisterPatient(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error) {
	if err := validateRegistration(request); err != nil {
		return nil, err
	}

	patient := &models.Patient{
		Name:              request.Name,
		Gender:            request.Gender,
		BirthDate:         request.BirthDate,
		Telecom:           request.Telecom,
		Address:           request.Address,
		Race:              request.Race,
		Ethnicity:         request.Ethnicity,
		MaritalStatus:     request.MaritalStatus,
		EmergencyContact:  request.EmergencyContact,
		Insurance:         request.Insurance,
		SymptomAssessment: request.SymptomAssessment,
	}
	if request.SymptomAssessment != nil {
		patient.HasSymptomAssessment = len(request.SymptomAssessment.Symptoms) > 0
	}

	return uc.PatientRepository.CreatePatient(ctx, patient)
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	update := map[string]interface{}{
		"name":          request.Name,
		"gender":        request.Gender,
		"birthDate":     request.BirthDate,
		"telecom":       request.Telecom,
		"address":       request.Address,
		"race":          request.Race,
		"ethnicity":     request.Ethnicity,
		"maritalStatus": request.MaritalStatus,
	}
	if request.EmergencyContact != nil {
		update["emergencyContact"] = request.EmergencyContact
	}
	if request.Insurance != nil {
		update["insurance"] = request.Insurance
	}
	if request.SymptomAssessment != nil {
		update["symptomAssessment"] = request.SymptomAssessment
		update["hasSymptomAssessment"] = len(request.SymptomAssessment.Symptoms) > 0
	}
	if request.AIAnalysis != "" {
		update["aiAnalysis"] = request.AIAnalysis
	}

	patient, err := uc.PatientRepository.UpdatePatient(ctx, patientID, update)
	if err != nil {
		return nil, err
	}

	uc.SummaryCache.Invalidate(ctx, patientID)
	return patient, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	if err := uc.PatientRepository.SoftDeletePatient(ctx, patientID); err != nil {
		return err
	}
	uc.SummaryCache.Invalidate(ctx, patientID)
	return nil
}

func (uc *patientUsecase) GetPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	return uc.PatientRepository.FindPatientByID(ctx, patientID)
}

func (uc *patientUsecase) ListPatients(ctx context.Context, searchTerm string) ([]responses.PatientSummary, error) {
	patients, err := uc.PatientRepository.FindAllPatients(ctx)
	if err != nil {
		return nil, err
	}

	searchLower := strings.ToLower(strings.TrimSpace(searchTerm))

	summaries := make([]responses.PatientSummary, 0, len(patients))
	for i := range patients {
		patient := &patients[i]
		fullName := utils.FormatName(patient.Name)
		if searchLower != "" && !strings.Contains(strings.ToLower(fullName), searchLower) {
			continue
		}
		summaries = append(summaries, responses.PatientSummary{
			Patient:  patient,
			FullName: fullName,
			Age:      utils.FormatAge(patient.BirthDate),
		})
	}
	return summaries, nil
}

func (uc *patientUsecase) GetPatientStats(ctx context.Context) (*responses.PatientStats, error) {
	patients, err := uc.PatientRepository.FindAllPatients(ctx)
	if err != nil {
		return nil, err
	}

	stats := &responses.PatientStats{
		Total:      len(patients),
		ByAgeGroup: map[string]int{"0-18": 0, "19-35": 0, "36-50": 0, "51-65": 0, "65+": 0},
	}

	oneMonthAgo := time.Now().AddDate(0, -1, 0)
	for _, patient := range patients {
		switch patient.Gender {
		case "male":
			stats.ByGender.Male++
		case "female":
			stats.ByGender.Female++
		case "other":
			stats.ByGender.Other++
		}

		if age, ok := utils.CalculateAge(patient.BirthDate); ok {
			switch {
			case age <= 18:
				stats.ByAgeGroup["0-18"]++
			case age <= 35:
				stats.ByAgeGroup["19-35"]++
			case age <= 50:
				stats.ByAgeGroup["36-50"]++
			case age <= 65:
				stats.ByAgeGroup["51-65"]++
			default:
				stats.ByAgeGroup["65+"]++
			}
		}

		if patient.CreatedAt.After(oneMonthAgo) {
			stats.NewThisMonth++
		}
	}
	return stats, nil
}

func (uc *patientUsecase) SaveAIAnalysis(ctx context.Context, patientID, narrative string) error {
	_, err := uc.PatientRepository.UpdatePatient(ctx, patientID, map[string]interface{}{
		"aiAnalysis": narrative,
	})
	return err
}
