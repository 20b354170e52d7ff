package constvars

// Client messages are safe to surface to the browser; dev messages carry the
// detail and stay out of production responses.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the server took too long to respond, please try again"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientCannotSavePatient             = "failed to save patient record"
	ErrClientCannotSaveRecord              = "failed to save medical record"
	ErrClientAIUnavailable                 = "the AI assistant is unavailable right now, please try again"
	ErrClientUnknownRecordCategory         = "unknown medical record category"
	ErrClientRouteNotFound                 = "the requested resource does not exist"
)

const (
	ErrDevCannotParseJSON          = "cannot parse request body as JSON"
	ErrDevCannotMarshalJSON        = "cannot marshal payload to JSON"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevMissingRequestID         = "request ID missing from context"
	ErrDevServerDeadlineExceeded   = "deadline exceeded while processing request"
	ErrDevPatientNotFound          = "patient document not found"
	ErrDevUnknownRecordCategory    = "record category is not one of the known clinical event kinds"
	ErrDevInvalidAIRecordLimit     = "record limit is not one of the allowed values"
	ErrDevMongoDBFindDocument      = "failed to find document(s)"
	ErrDevMongoDBInsertDocument    = "failed to insert document"
	ErrDevMongoDBUpdateDocument    = "failed to update document"
	ErrDevMongoDBIterateDocuments  = "failed to iterate documents from cursor"
	ErrDevCreateHTTPRequest        = "failed to create outbound HTTP request"
	ErrDevSendHTTPRequest          = "failed to send outbound HTTP request"
	ErrDevAIRequestFailed          = "generative AI request failed"
	ErrDevAIResponseMalformed      = "generative AI response has no usable candidate"
	ErrDevDecodeResponse           = "failed to decode upstream response body"
	ErrDevRouteNotFound            = "no route registered for this path"
	ErrDevUnhandledPanic           = "recovered from unhandled panic"
)
