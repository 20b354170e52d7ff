package timeline

import (
	"fmt"
	"strings"
	"time"

	"healthai-service/internal/app/models"
	"healthai-service/internal/pkg/constvars"
)

// Fallback titles when a record carries no display text. Never empty.
const (
	genericEncounterTitle   = "Medical Encounter"
	genericConditionTitle   = "Medical Condition"
	genericMedicationTitle  = "Medication"
	genericProcedureTitle   = "Procedure"
	genericObservationTitle = "Observation"
	genericAllergyTitle     = "Allergy"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate resolves a stored date string to a sortable time. Unparseable or
// absent dates come back zero, which sorts as oldest.
func ParseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// resolveDate walks the per-type fallback chain and lands on the
// record-creation time when every primary date is absent.
func resolveDate(createdAt time.Time, candidates ...string) (string, time.Time) {
	for _, candidate := range candidates {
		if candidate != "" {
			return candidate, ParseDate(candidate)
		}
	}
	if createdAt.IsZero() {
		return "", time.Time{}
	}
	return createdAt.Format(time.RFC3339), createdAt
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func NormalizeEncounter(e models.Encounter) models.TimelineEvent {
	periodStart := ""
	if e.Period != nil {
		periodStart = e.Period.Start
	}
	raw, date := resolveDate(e.CreatedAt, periodStart)
	return models.TimelineEvent{
		Type:        constvars.RecordCategoryEncounter,
		Date:        date,
		RawDate:     raw,
		Title:       orDefault(e.Type, genericEncounterTitle),
		Description: orDefault(e.ReasonCode, "Medical encounter"),
		Icon:        "🏥",
		Color:       "#f59e0b",
		Record:      e,
	}
}

func NormalizeCondition(c models.Condition) models.TimelineEvent {
	raw, date := resolveDate(c.CreatedAt, c.OnsetDateTime)
	return models.TimelineEvent{
		Type:        constvars.RecordCategoryCondition,
		Date:        date,
		RawDate:     raw,
		Title:       orDefault(c.Display, genericConditionTitle),
		Description: fmt.Sprintf("Status: %s", orDefault(c.ClinicalStatus, "Active")),
		Icon:        "🩺",
		Color:       "#ef4444",
		Record:      c,
	}
}

func NormalizeMedication(m models.Medication) models.TimelineEvent {
	effectiveStart := ""
	if m.EffectivePeriod != nil {
		effectiveStart = m.EffectivePeriod.Start
	}
	raw, date := resolveDate(m.CreatedAt, effectiveStart, m.AuthoredOn)

	description := strings.TrimSpace(fmt.Sprintf("%s - %s", m.Dosage, m.ReasonCode))
	description = strings.Trim(description, "- ")
	return models.TimelineEvent{
		Type:        constvars.RecordCategoryMedication,
		Date:        date,
		RawDate:     raw,
		Title:       orDefault(m.Display, genericMedicationTitle),
		Description: description,
		Icon:        "💊",
		Color:       "#10b981",
		Record:      m,
	}
}

func NormalizeAllergy(a models.Allergy) models.TimelineEvent {
	raw, date := resolveDate(a.CreatedAt, a.OnsetDateTime, a.RecordedDate)
	return models.TimelineEvent{
		Type:        constvars.RecordCategoryAllergy,
		Date:        date,
		RawDate:     raw,
		Title:       orDefault(a.Display, genericAllergyTitle),
		Description: fmt.Sprintf("%s - %s criticality", a.Type, a.Criticality),
		Icon:        "🚨",
		Color:       "#f97316",
		Record:      a,
	}
}

func NormalizeObservation(o models.Observation) models.TimelineEvent {
	raw, date := resolveDate(o.CreatedAt, o.EffectiveDateTime)

	description := "Test result"
	if o.ValueQuantity != nil {
		description = strings.TrimSpace(fmt.Sprintf("%v %s", o.ValueQuantity.Value, o.ValueQuantity.Unit))
	} else if o.ValueString != "" {
		description = o.ValueString
	}
	return models.TimelineEvent{
		Type:        constvars.RecordCategoryObservation,
		Date:        date,
		RawDate:     raw,
		Title:       orDefault(o.Display, genericObservationTitle),
		Description: description,
		Icon:        "📊",
		Color:       "#06b6d4",
		Record:      o,
	}
}

func NormalizeProcedure(p models.Procedure) models.TimelineEvent {
	raw, date := resolveDate(p.CreatedAt, p.PerformedDateTime)
	return models.TimelineEvent{
		Type:        constvars.RecordCategoryProcedure,
		Date:        date,
		RawDate:     raw,
		Title:       orDefault(p.Display, genericProcedureTitle),
		Description: orDefault(p.ReasonCode, "Medical procedure"),
		Icon:        "⚕️",
		Color:       "#8b5cf6",
		Record:      p,
	}
}
