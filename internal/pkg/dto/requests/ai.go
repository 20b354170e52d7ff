package requests

// AISummary requests a clinical summary over the patient's record. Persist
// writes the narrative back onto the patient document as aiAnalysis.
type AISummary struct {
	RecordLimit int  `json:"recordLimit"`
	Persist     bool `json:"persist"`
}

type AIChat struct {
	SessionID   string `json:"sessionId"`
	Message     string `json:"message" validate:"required"`
	RecordLimit int    `json:"recordLimit"`
}
