package contracts

import (
	"context"
	"time"

	"healthai-service/internal/pkg/dto/requests"
	"healthai-service/internal/pkg/dto/responses"
)

type AIUsecase interface {
	GenerateSummary(ctx context.Context, patientID string, request *requests.AISummary) (*responses.AISummary, error)
	Chat(ctx context.Context, patientID string, request *requests.AIChat) (*responses.AIChat, error)
	ClearChat(sessionID string)
}

// GenerateOptions bound the generation on the AI side; zero values fall back
// to the client's configured defaults.
type GenerateOptions struct {
	Temperature     float64
	MaxOutputTokens int
	InlineImage     *InlineImage
}

type InlineImage struct {
	MimeType string
	Data     string
}

// AIClient is the generative-text boundary. GenerateContent returns the first
// candidate's text verbatim.
type AIClient interface {
	GenerateContent(ctx context.Context, prompt string, options *GenerateOptions) (string, error)
}

// SummaryCache keeps generated summaries for a bounded time so repeated
// detail-page visits do not re-bill the AI endpoint. A nil or unavailable
// cache degrades to always-miss.
type SummaryCache interface {
	Get(ctx context.Context, patientID string, recordLimit int) (string, bool)
	Set(ctx context.Context, patientID string, recordLimit int, summary string, ttl time.Duration)
	Invalidate(ctx context.Context, patientID string)
}
