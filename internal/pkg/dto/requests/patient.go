package requests

import "healthai-service/internal/app/models"

// CreatePatient mirrors the registration form. Required-field checks are done
// in the usecase so all missing fields surface as one joined message.
type CreatePatient struct {
	Name              []models.HumanName        `json:"name"`
	Gender            string                    `json:"gender"`
	BirthDate         string                    `json:"birthDate"`
	Telecom           []models.ContactPoint     `json:"telecom"`
	Address           []models.Address          `json:"address"`
	Race              string                    `json:"race"`
	Ethnicity         string                    `json:"ethnicity"`
	MaritalStatus     string                    `json:"maritalStatus"`
	EmergencyContact  *models.EmergencyContact  `json:"emergencyContact"`
	Insurance         *models.Insurance         `json:"insurance"`
	SymptomAssessment *models.SymptomAssessment `json:"symptomAssessment"`
}

type UpdatePatient struct {
	Name              []models.HumanName        `json:"name"`
	Gender            string                    `json:"gender"`
	BirthDate         string                    `json:"birthDate"`
	Telecom           []models.ContactPoint     `json:"telecom"`
	Address           []models.Address          `json:"address"`
	Race              string                    `json:"race"`
	Ethnicity         string                    `json:"ethnicity"`
	MaritalStatus     string                    `json:"maritalStatus"`
	EmergencyContact  *models.EmergencyContact  `json:"emergencyContact"`
	Insurance         *models.Insurance         `json:"insurance"`
	SymptomAssessment *models.SymptomAssessment `json:"symptomAssessment"`
	AIAnalysis        string                    `json:"aiAnalysis"`
}

func (r *CreatePatient) PhoneNumber() string {
	for _, telecom := range r.Telecom {
		if telecom.System == "phone" {
			return telecom.Value
		}
	}
	return ""
}
