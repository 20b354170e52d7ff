package requests

type AddMedication struct {
	Display      string `json:"display" validate:"required"`
	Dosage       string `json:"dosage" validate:"required"`
	Frequency    string `json:"frequency" validate:"required"`
	Prescriber   string `json:"prescriber"`
	Instructions string `json:"instructions"`
	ReasonCode   string `json:"reasonCode"`
	AuthoredOn   string `json:"authoredOn"`
}

type AddCondition struct {
	Display       string `json:"display" validate:"required"`
	Severity      string `json:"severity" validate:"omitempty,oneof=mild moderate severe"`
	Notes         string `json:"notes"`
	OnsetDateTime string `json:"onsetDateTime"`
}
