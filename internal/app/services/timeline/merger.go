package timeline

import (
	"sort"

	"healthai-service/internal/app/models"
	"healthai-service/internal/pkg/constvars"
)

// Collections holds the six per-category record sets backing one patient's
// detail view. Any of them may be empty.
type Collections struct {
	Encounters   []models.Encounter
	Conditions   []models.Condition
	Medications  []models.Medication
	Allergies    []models.Allergy
	Observations []models.Observation
	Procedures   []models.Procedure
}

// ValidFilter reports whether the selector is "all" or one of the six
// category names.
func ValidFilter(filter string) bool {
	switch filter {
	case constvars.TimelineFilterAll,
		constvars.RecordCategoryEncounter,
		constvars.RecordCategoryCondition,
		constvars.RecordCategoryMedication,
		constvars.RecordCategoryAllergy,
		constvars.RecordCategoryObservation,
		constvars.RecordCategoryProcedure:
		return true
	}
	return false
}

// Merge normalizes every record of the selected categories and returns one
// sequence ordered by resolved date descending. Categories outside the filter
// are not normalized at all. Equal and unresolvable dates keep their original
// per-category order.
func Merge(collections Collections, filter string) []models.TimelineEvent {
	var events []models.TimelineEvent

	include := func(category string) bool {
		return filter == constvars.TimelineFilterAll || filter == category
	}

	if include(constvars.RecordCategoryEncounter) {
		for _, encounter := range collections.Encounters {
			events = append(events, NormalizeEncounter(encounter))
		}
	}
	if include(constvars.RecordCategoryCondition) {
		for _, condition := range collections.Conditions {
			events = append(events, NormalizeCondition(condition))
		}
	}
	if include(constvars.RecordCategoryMedication) {
		for _, medication := range collections.Medications {
			events = append(events, NormalizeMedication(medication))
		}
	}
	if include(constvars.RecordCategoryAllergy) {
		for _, allergy := range collections.Allergies {
			events = append(events, NormalizeAllergy(allergy))
		}
	}
	if include(constvars.RecordCategoryObservation) {
		for _, observation := range collections.Observations {
			events = append(events, NormalizeObservation(observation))
		}
	}
	if include(constvars.RecordCategoryProcedure) {
		for _, procedure := range collections.Procedures {
			events = append(events, NormalizeProcedure(procedure))
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.After(events[j].Date)
	})

	return events
}
