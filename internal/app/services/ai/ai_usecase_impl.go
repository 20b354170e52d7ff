package ai

import (
	"context"
	"sync"
	"time"

	"healthai-service/internal/app/contracts"
	"healthai-service/internal/pkg/constvars"
	"healthai-service/internal/pkg/dto/requests"
	"healthai-service/internal/pkg/dto/responses"
	"healthai-service/internal/pkg/exceptions"
	"healthai-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type aiUsecase struct {
	PatientUsecase contracts.PatientUsecase
	RecordUsecase  contracts.RecordUsecase
	AIClient       contracts.AIClient
	SummaryCache   contracts.SummaryCache
	CacheTTL       time.Duration
	Log            *zap.Logger

	mu       sync.Mutex
	sessions map[string][]responses.ChatMessage
}

func NewAIUsecase(
	patientUsecase contracts.PatientUsecase,
	recordUsecase contracts.RecordUsecase,
	aiClient contracts.AIClient,
	summaryCache contracts.SummaryCache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.AIUsecase {
	return &aiUsecase{
		PatientUsecase: patientUsecase,
		RecordUsecase:  recordUsecase,
		AIClient:       aiClient,
		SummaryCache:   summaryCache,
		CacheTTL:       cacheTTL,
		Log:            logger,
		sessions:       make(map[string][]responses.ChatMessage),
	}
}

func resolveRecordLimit(limit int) (int, error) {
	if limit == 0 {
		return constvars.DefaultAIRecordLimit, nil
	}
	for _, allowed := range constvars.AllowedAIRecordLimits {
		if limit == allowed {
			return limit, nil
		}
	}
	return 0, exceptions.ErrInvalidAIRecordLimit(limit)
}

func (uc *aiUsecase) GenerateSummary(ctx context.Context, patientID string, request *requests.AISummary) (*responses.AISummary, error) {
	limit, err := resolveRecordLimit(request.RecordLimit)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientUsecase.GetPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if cached, ok := uc.SummaryCache.Get(ctx, patientID, limit); ok {
		persisted := false
		if request.Persist {
			persisted = uc.persistAnalysis(ctx, patientID, cached)
		}
		return &responses.AISummary{
			PatientID:   patientID,
			Summary:     cached,
			RecordLimit: limit,
			Persisted:   persisted,
			Cached:      true,
		}, nil
	}

	bundle, err := uc.RecordUsecase.GetPatientRecords(ctx, patientID)
	if err != nil {
		return nil, err
	}

	prompt := SummaryPrompt(BuildPatientContext(patient, bundle, limit))
	summary, err := uc.AIClient.GenerateContent(ctx, prompt, nil)
	if err != nil {
		return nil, err
	}

	uc.SummaryCache.Set(ctx, patientID, limit, summary, uc.CacheTTL)

	persisted := false
	if request.Persist {
		persisted = uc.persistAnalysis(ctx, patientID, summary)
	}

	return &responses.AISummary{
		PatientID:   patientID,
		Summary:     summary,
		RecordLimit: limit,
		Persisted:   persisted,
		Cached:      false,
	}, nil
}

// persistAnalysis writes the narrative onto the patient document. The
// narrative was already generated; losing the write-back should not hide it
// from the caller, so failures are logged and reported as Persisted=false.
func (uc *aiUsecase) persistAnalysis(ctx context.Context, patientID, summary string) bool {
	if err := uc.PatientUsecase.SaveAIAnalysis(ctx, patientID, summary); err != nil {
		uc.Log.Warn("Failed to persist AI analysis on patient document",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return false
	}
	return true
}

func (uc *aiUsecase) Chat(ctx context.Context, patientID string, request *requests.AIChat) (*responses.AIChat, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err, utils.FormatAllValidationErrors(err))
	}

	limit, err := resolveRecordLimit(request.RecordLimit)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientUsecase.GetPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	bundle, err := uc.RecordUsecase.GetPatientRecords(ctx, patientID)
	if err != nil {
		return nil, err
	}

	sessionID := request.SessionID
	if sessionID == "" {
		sessionID = utils.GenerateChatSessionID()
	}

	prompt := ChatPrompt(BuildPatientContext(patient, bundle, limit), limit, request.Message)
	reply, err := uc.AIClient.GenerateContent(ctx, prompt, nil)
	if err != nil {
		return nil, err
	}

	history := uc.appendHistory(sessionID,
		responses.ChatMessage{Role: "user", Content: request.Message},
		responses.ChatMessage{Role: "ai", Content: reply},
	)

	return &responses.AIChat{
		SessionID: sessionID,
		Reply:     reply,
		History:   history,
	}, nil
}

// appendHistory keeps the linear per-session transcript in memory only; it is
// never written to the document store.
func (uc *aiUsecase) appendHistory(sessionID string, messages ...responses.ChatMessage) []responses.ChatMessage {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.sessions[sessionID] = append(uc.sessions[sessionID], messages...)

	history := make([]responses.ChatMessage, len(uc.sessions[sessionID]))
	copy(history, uc.sessions[sessionID])
	return history
}

func (uc *aiUsecase) ClearChat(sessionID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.sessions, sessionID)
}
