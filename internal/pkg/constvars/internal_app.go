package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	MongoCollectionPatients     = "patients"
	MongoCollectionEncounters   = "encounters"
	MongoCollectionConditions   = "conditions"
	MongoCollectionMedications  = "medications"
	MongoCollectionProcedures   = "procedures"
	MongoCollectionObservations = "observations"
	MongoCollectionAllergies    = "allergies"
)

const (
	RecordCategoryEncounter   = "encounter"
	RecordCategoryCondition   = "condition"
	RecordCategoryMedication  = "medication"
	RecordCategoryProcedure   = "procedure"
	RecordCategoryObservation = "observation"
	RecordCategoryAllergy     = "allergy"

	TimelineFilterAll = "all"
)

const (
	// Firestore-era cap carried over: observation fetches are bounded
	// so a long vitals history cannot drown the detail view.
	ObservationFetchLimit = 50

	DefaultAIRecordLimit = 5
)

// AllowedAIRecordLimits are the per-category record counts the chat UI can
// request for AI context.
var AllowedAIRecordLimits = []int{5, 10, 15, 20, 50}

const (
	UnknownPatientName = "Unknown Patient"
	UnknownAge         = "Unknown"
)

const (
	ConditionStatusResolved = "resolved"
)

const (
	URLParamPatientID = "patientID"
	URLParamCategory  = "category"
	URLParamSessionID = "sessionID"

	QueryParamSearch = "search"
	QueryParamFilter = "filter"
)

const (
	AISummaryCacheKeyFormat = "ai:summary:%s:%d"
)
