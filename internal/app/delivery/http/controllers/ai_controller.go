package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"healthai-service/internal/app/contracts"
	"healthai-service/internal/pkg/constvars"
	"healthai-service/internal/pkg/dto/requests"
	"healthai-service/internal/pkg/exceptions"
	"healthai-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// aiRequestTimeout is longer than the service default so slow generative
// completions are not cut off mid-flight.
const aiRequestTimeout = 60 * time.Second

type AIController struct {
	Log       *zap.Logger
	AIUsecase contracts.AIUsecase
}

var (
	aiControllerInstance *AIController
	onceAIController     sync.Once
)

func NewAIController(logger *zap.Logger, aiUsecase contracts.AIUsecase) *AIController {
	onceAIController.Do(func() {
		instance := &AIController{
			Log:       logger,
			AIUsecase: aiUsecase,
		}
		aiControllerInstance = instance
	})
	return aiControllerInstance
}

func (ctrl *AIController) requestIDFromContext(w http.ResponseWriter, r *http.Request) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("Request ID missing from context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	return requestID, true
}

func (ctrl *AIController) GenerateSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := ctrl.requestIDFromContext(w, r)
	if !ok {
		return
	}

	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	ctrl.Log.Debug("AI summary generation started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	request := new(requests.AISummary)
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			ctrl.Log.Error("Failed to parse request body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
				zap.Error(err),
			)
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), aiRequestTimeout)
	defer cancel()

	summary, err := ctrl.AIUsecase.GenerateSummary(ctx, patientID, request)
	if err != nil {
		ctrl.Log.Error("Failed to generate AI summary",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.String(constvars.LoggingErrorTypeKey, "usecase error"),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "ai_summary_generated", requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Bool("cached", summary.Cached),
		zap.Bool("persisted", summary.Persisted),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AISummarySuccess, summary)
}

func (ctrl *AIController) Chat(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := ctrl.requestIDFromContext(w, r)
	if !ok {
		return
	}

	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.AIChat)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), aiRequestTimeout)
	defer cancel()

	reply, err := ctrl.AIUsecase.Chat(ctx, patientID, request)
	if err != nil {
		ctrl.Log.Error("Failed to generate AI chat reply",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.String(constvars.LoggingErrorTypeKey, "usecase error"),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "ai_chat_replied", requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String("session_id", reply.SessionID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AIChatSuccess, reply)
}

func (ctrl *AIController) ClearChat(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestIDFromContext(w, r)
	if !ok {
		return
	}

	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	ctrl.AIUsecase.ClearChat(sessionID)

	utils.LogBusinessEvent(ctrl.Log, "ai_chat_cleared", requestID,
		zap.String("session_id", sessionID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AIChatClearedSuccess, nil)
}
