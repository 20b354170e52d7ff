package models

type HumanName struct {
	Use    string   `json:"use,omitempty" bson:"use,omitempty"`
	Given  []string `json:"given,omitempty" bson:"given,omitempty"`
	Family string   `json:"family,omitempty" bson:"family,omitempty"`
}

type ContactPoint struct {
	System string `json:"system,omitempty" bson:"system,omitempty"`
	Value  string `json:"value,omitempty" bson:"value,omitempty"`
	Use    string `json:"use,omitempty" bson:"use,omitempty"`
}

type Address struct {
	Use        string   `json:"use,omitempty" bson:"use,omitempty"`
	Line       []string `json:"line,omitempty" bson:"line,omitempty"`
	City       string   `json:"city,omitempty" bson:"city,omitempty"`
	State      string   `json:"state,omitempty" bson:"state,omitempty"`
	PostalCode string   `json:"postalCode,omitempty" bson:"postalCode,omitempty"`
	Country    string   `json:"country,omitempty" bson:"country,omitempty"`
}

type EmergencyContact struct {
	Name         string `json:"name,omitempty" bson:"name,omitempty"`
	Relationship string `json:"relationship,omitempty" bson:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty"`
}

type Insurance struct {
	Provider string `json:"provider,omitempty" bson:"provider,omitempty"`
	MemberID string `json:"memberId,omitempty" bson:"memberId,omitempty"`
}

type ReportedSymptom struct {
	ID       string `json:"id,omitempty" bson:"id,omitempty"`
	Symptom  string `json:"symptom,omitempty" bson:"symptom,omitempty"`
	Severity string `json:"severity,omitempty" bson:"severity,omitempty"`
	Duration string `json:"duration,omitempty" bson:"duration,omitempty"`
}

// SymptomAssessment is the payload captured by the registration symptom
// checker. It is stored on the patient document exactly as submitted.
type SymptomAssessment struct {
	Symptoms          []ReportedSymptom `json:"symptoms,omitempty" bson:"symptoms,omitempty"`
	AdditionalNotes   string            `json:"additionalNotes,omitempty" bson:"additionalNotes,omitempty"`
	AISymptomAnalysis string            `json:"aiSymptomAnalysis,omitempty" bson:"aiSymptomAnalysis,omitempty"`
	AssessmentDate    string            `json:"assessmentDate,omitempty" bson:"assessmentDate,omitempty"`
}

type Patient struct {
	ID                   string             `json:"id,omitempty" bson:"_id,omitempty"`
	Name                 []HumanName        `json:"name,omitempty" bson:"name,omitempty"`
	Gender               string             `json:"gender,omitempty" bson:"gender,omitempty"`
	BirthDate            string             `json:"birthDate,omitempty" bson:"birthDate,omitempty"`
	Telecom              []ContactPoint     `json:"telecom,omitempty" bson:"telecom,omitempty"`
	Address              []Address          `json:"address,omitempty" bson:"address,omitempty"`
	Race                 string             `json:"race,omitempty" bson:"race,omitempty"`
	Ethnicity            string             `json:"ethnicity,omitempty" bson:"ethnicity,omitempty"`
	MaritalStatus        string             `json:"maritalStatus,omitempty" bson:"maritalStatus,omitempty"`
	EmergencyContact     *EmergencyContact  `json:"emergencyContact,omitempty" bson:"emergencyContact,omitempty"`
	Insurance            *Insurance         `json:"insurance,omitempty" bson:"insurance,omitempty"`
	SymptomAssessment    *SymptomAssessment `json:"symptomAssessment,omitempty" bson:"symptomAssessment,omitempty"`
	HasSymptomAssessment bool               `json:"hasSymptomAssessment,omitempty" bson:"hasSymptomAssessment,omitempty"`
	AIAnalysis           string             `json:"aiAnalysis,omitempty" bson:"aiAnalysis,omitempty"`
	Active               bool               `json:"active" bson:"active"`
	TimeModel            `bson:",inline"`
}
