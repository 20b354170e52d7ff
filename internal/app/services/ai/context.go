package ai

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"healthai-service/internal/app/models"
	"healthai-service/internal/app/services/timeline"
	"healthai-service/internal/pkg/dto/responses"
	"healthai-service/internal/pkg/utils"
)

const contextDateLayout = "Jan 2, 2006"

func formatContextDate(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Format(contextDateLayout)
}

// topRecords orders a category by its resolved primary date, newest first,
// and keeps the first limit entries. The date fallback chains are the same
// ones the timeline uses, so the AI sees the record history the way the
// detail page renders it.
func topRecords[T any](records []T, resolve func(T) time.Time, limit int) []T {
	sorted := make([]T, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return resolve(sorted[i]).After(resolve(sorted[j]))
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func orNotSpecified(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Not specified"
	}
	return value
}

// BuildPatientContext renders the bounded natural-language context for the
// generative model: patient demographics plus the top-limit records from each
// of the five summarized categories, one formatted line per record.
func BuildPatientContext(patient *models.Patient, bundle *responses.RecordBundle, limit int) string {
	var b strings.Builder

	b.WriteString("PATIENT INFORMATION:\n")
	fmt.Fprintf(&b, "Name: %s\n", utils.FormatName(patient.Name))
	fmt.Fprintf(&b, "Age: %s\n", utils.FormatAge(patient.BirthDate))
	fmt.Fprintf(&b, "Gender: %s\n", orNotSpecified(patient.Gender))
	fmt.Fprintf(&b, "Race: %s\n", orNotSpecified(patient.Race))
	fmt.Fprintf(&b, "Ethnicity: %s\n", orNotSpecified(patient.Ethnicity))

	encounters := topRecords(bundle.Encounters, func(e models.Encounter) time.Time {
		return timeline.NormalizeEncounter(e).Date
	}, limit)
	fmt.Fprintf(&b, "\nRECENT ENCOUNTERS (Last %d):\n", limit)
	for i, e := range encounters {
		event := timeline.NormalizeEncounter(e)
		fmt.Fprintf(&b, "%d. %s on %s - %s (Status: %s)\n",
			i+1, event.Title, formatContextDate(event.Date), orNotSpecified(e.ReasonCode), orNotSpecified(e.Status))
	}

	conditions := topRecords(bundle.Conditions, func(c models.Condition) time.Time {
		return timeline.NormalizeCondition(c).Date
	}, limit)
	fmt.Fprintf(&b, "\nMEDICAL CONDITIONS (Last %d):\n", limit)
	for i, c := range conditions {
		event := timeline.NormalizeCondition(c)
		fmt.Fprintf(&b, "%d. %s - Status: %s (Since: %s)\n",
			i+1, event.Title, orNotSpecified(c.ClinicalStatus), formatContextDate(event.Date))
	}

	medications := topRecords(bundle.Medications, func(m models.Medication) time.Time {
		return timeline.NormalizeMedication(m).Date
	}, limit)
	fmt.Fprintf(&b, "\nMEDICATIONS (Last %d):\n", limit)
	for i, m := range medications {
		event := timeline.NormalizeMedication(m)
		dosage := m.Dosage
		if dosage == "" {
			dosage = "As prescribed"
		}
		fmt.Fprintf(&b, "%d. %s - %s (Status: %s) - Reason: %s\n",
			i+1, event.Title, dosage, orNotSpecified(m.Status), orNotSpecified(m.ReasonCode))
	}

	observations := topRecords(bundle.Observations, func(o models.Observation) time.Time {
		return timeline.NormalizeObservation(o).Date
	}, limit)
	fmt.Fprintf(&b, "\nLAB RESULTS/OBSERVATIONS (Last %d):\n", limit)
	for i, o := range observations {
		event := timeline.NormalizeObservation(o)
		value := "Result pending"
		if o.ValueQuantity != nil {
			value = strings.TrimSpace(fmt.Sprintf("%v %s", o.ValueQuantity.Value, o.ValueQuantity.Unit))
		} else if o.ValueString != "" {
			value = o.ValueString
		}
		fmt.Fprintf(&b, "%d. %s: %s on %s\n",
			i+1, event.Title, value, formatContextDate(event.Date))
	}

	procedures := topRecords(bundle.Procedures, func(p models.Procedure) time.Time {
		return timeline.NormalizeProcedure(p).Date
	}, limit)
	fmt.Fprintf(&b, "\nPROCEDURES (Last %d):\n", limit)
	for i, p := range procedures {
		event := timeline.NormalizeProcedure(p)
		fmt.Fprintf(&b, "%d. %s on %s - Status: %s\n",
			i+1, event.Title, formatContextDate(event.Date), orNotSpecified(p.Status))
	}

	return b.String()
}
