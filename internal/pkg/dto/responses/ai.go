package responses

type AISummary struct {
	PatientID   string `json:"patientId"`
	Summary     string `json:"summary"`
	RecordLimit int    `json:"recordLimit"`
	Persisted   bool   `json:"persisted"`
	Cached      bool   `json:"cached"`
}

type AIChat struct {
	SessionID string        `json:"sessionId"`
	Reply     string        `json:"reply"`
	History   []ChatMessage `json:"history"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
