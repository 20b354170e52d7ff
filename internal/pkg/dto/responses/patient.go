package responses

import "healthai-service/internal/app/models"

// PatientSummary is the registry list entry: the stored document plus the
// derived display fields the cards render.
type PatientSummary struct {
	*models.Patient
	FullName string `json:"fullName"`
	Age      string `json:"age"`
}

type PatientStats struct {
	Total        int            `json:"total"`
	ByGender     GenderStats    `json:"byGender"`
	ByAgeGroup   map[string]int `json:"byAgeGroup"`
	NewThisMonth int            `json:"newThisMonth"`
}

type GenderStats struct {
	Male   int `json:"male"`
	Female int `json:"female"`
	Other  int `json:"other"`
}
