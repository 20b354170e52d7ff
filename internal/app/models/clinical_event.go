package models

// The six clinical event kinds each live in their own collection and are
// foreign-keyed to a patient through patientId. Primary dates are stored the
// way the registration forms submit them, as ISO 8601 strings; resolution to
// a sortable time happens in the timeline package.

type Period struct {
	Start string `json:"start,omitempty" bson:"start,omitempty"`
	End   string `json:"end,omitempty" bson:"end,omitempty"`
}

type ValueQuantity struct {
	Value float64 `json:"value" bson:"value"`
	Unit  string  `json:"unit,omitempty" bson:"unit,omitempty"`
}

type Encounter struct {
	ID         string  `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID  string  `json:"patientId" bson:"patientId"`
	Type       string  `json:"type,omitempty" bson:"type,omitempty"`
	Status     string  `json:"status,omitempty" bson:"status,omitempty"`
	Class      string  `json:"class,omitempty" bson:"class,omitempty"`
	ReasonCode string  `json:"reasonCode,omitempty" bson:"reasonCode,omitempty"`
	Location   string  `json:"location,omitempty" bson:"location,omitempty"`
	Cost       float64 `json:"cost,omitempty" bson:"cost,omitempty"`
	Notes      string  `json:"notes,omitempty" bson:"notes,omitempty"`
	Period     *Period `json:"period,omitempty" bson:"period,omitempty"`
	TimeModel  `bson:",inline"`
}

type Condition struct {
	ID             string `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID      string `json:"patientId" bson:"patientId"`
	Display        string `json:"display,omitempty" bson:"display,omitempty"`
	ClinicalStatus string `json:"clinicalStatus,omitempty" bson:"clinicalStatus,omitempty"`
	Severity       string `json:"severity,omitempty" bson:"severity,omitempty"`
	Code           string `json:"code,omitempty" bson:"code,omitempty"`
	Notes          string `json:"notes,omitempty" bson:"notes,omitempty"`
	OnsetDateTime  string `json:"onsetDateTime,omitempty" bson:"onsetDateTime,omitempty"`
	TimeModel      `bson:",inline"`
}

type Medication struct {
	ID              string  `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID       string  `json:"patientId" bson:"patientId"`
	Display         string  `json:"display,omitempty" bson:"display,omitempty"`
	Dosage          string  `json:"dosage,omitempty" bson:"dosage,omitempty"`
	Frequency       string  `json:"frequency,omitempty" bson:"frequency,omitempty"`
	Prescriber      string  `json:"prescriber,omitempty" bson:"prescriber,omitempty"`
	Instructions    string  `json:"instructions,omitempty" bson:"instructions,omitempty"`
	Status          string  `json:"status,omitempty" bson:"status,omitempty"`
	ReasonCode      string  `json:"reasonCode,omitempty" bson:"reasonCode,omitempty"`
	AuthoredOn      string  `json:"authoredOn,omitempty" bson:"authoredOn,omitempty"`
	EffectivePeriod *Period `json:"effectivePeriod,omitempty" bson:"effectivePeriod,omitempty"`
	TimeModel       `bson:",inline"`
}

type Procedure struct {
	ID                string  `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID         string  `json:"patientId" bson:"patientId"`
	Display           string  `json:"display,omitempty" bson:"display,omitempty"`
	Status            string  `json:"status,omitempty" bson:"status,omitempty"`
	ReasonCode        string  `json:"reasonCode,omitempty" bson:"reasonCode,omitempty"`
	Cost              float64 `json:"cost,omitempty" bson:"cost,omitempty"`
	PerformedDateTime string  `json:"performedDateTime,omitempty" bson:"performedDateTime,omitempty"`
	TimeModel         `bson:",inline"`
}

type Observation struct {
	ID                string         `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID         string         `json:"patientId" bson:"patientId"`
	Display           string         `json:"display,omitempty" bson:"display,omitempty"`
	Status            string         `json:"status,omitempty" bson:"status,omitempty"`
	Category          string         `json:"category,omitempty" bson:"category,omitempty"`
	ValueQuantity     *ValueQuantity `json:"valueQuantity,omitempty" bson:"valueQuantity,omitempty"`
	ValueString       string         `json:"valueString,omitempty" bson:"valueString,omitempty"`
	EffectiveDateTime string         `json:"effectiveDateTime,omitempty" bson:"effectiveDateTime,omitempty"`
	TimeModel         `bson:",inline"`
}

type Allergy struct {
	ID             string `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID      string `json:"patientId" bson:"patientId"`
	Display        string `json:"display,omitempty" bson:"display,omitempty"`
	Type           string `json:"type,omitempty" bson:"type,omitempty"`
	Criticality    string `json:"criticality,omitempty" bson:"criticality,omitempty"`
	Severity       string `json:"severity,omitempty" bson:"severity,omitempty"`
	ClinicalStatus string `json:"clinicalStatus,omitempty" bson:"clinicalStatus,omitempty"`
	OnsetDateTime  string `json:"onsetDateTime,omitempty" bson:"onsetDateTime,omitempty"`
	RecordedDate   string `json:"recordedDate,omitempty" bson:"recordedDate,omitempty"`
	TimeModel      `bson:",inline"`
}
