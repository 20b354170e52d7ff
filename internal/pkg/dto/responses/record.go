package responses

import "healthai-service/internal/app/models"

// RecordBundle carries all six category collections for the detail view. A
// category whose fetch failed arrives as an empty list, never as an error.
type RecordBundle struct {
	Encounters   []models.Encounter   `json:"encounters"`
	Conditions   []models.Condition   `json:"conditions"`
	Medications  []models.Medication  `json:"medications"`
	Procedures   []models.Procedure   `json:"procedures"`
	Observations []models.Observation `json:"observations"`
	Allergies    []models.Allergy     `json:"allergies"`
}

type Timeline struct {
	Filter string                 `json:"filter"`
	Events []models.TimelineEvent `json:"events"`
}
