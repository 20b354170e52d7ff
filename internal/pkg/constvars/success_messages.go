package constvars

const (
	PatientCreatedSuccess   = "Successfully registered patient"
	PatientUpdatedSuccess   = "Successfully updated patient"
	PatientDeletedSuccess   = "Successfully deleted patient"
	PatientGetSuccess       = "Successfully retrieved patient"
	PatientListSuccess      = "Successfully retrieved patients"
	PatientStatsSuccess     = "Successfully retrieved patient statistics"
	TimelineGetSuccess      = "Successfully retrieved medical timeline"
	RecordListSuccess       = "Successfully retrieved medical records"
	MedicationCreateSuccess = "Successfully added medication"
	ConditionCreateSuccess  = "Successfully added condition"
	AISummarySuccess        = "Successfully generated AI summary"
	AIChatSuccess           = "Successfully generated AI response"
	AIChatClearedSuccess    = "Successfully cleared chat history"
)
