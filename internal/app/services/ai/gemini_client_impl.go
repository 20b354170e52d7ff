package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"healthai-service/internal/app/contracts"
	"healthai-service/internal/pkg/constvars"
	"healthai-service/internal/pkg/exceptions"
)

const (
	defaultTemperature     = 0.7
	defaultTopK            = 40
	defaultTopP            = 0.95
	defaultMaxOutputTokens = 2048
)

var defaultSafetySettings = []safetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
}

type geminiClient struct {
	BaseURL    string
	Model      string
	APIKey     string
	HTTPClient *http.Client
}

func NewGeminiClient(baseURL, model, apiKey string, httpClient *http.Client) contracts.AIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &geminiClient{
		BaseURL:    baseURL,
		Model:      model,
		APIKey:     apiKey,
		HTTPClient: httpClient,
	}
}

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	CandidateCount  int     `json:"candidateCount"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateContentResponse struct {
	Candidates     []candidate     `json:"candidates"`
	PromptFeedback *promptFeedback `json:"promptFeedback"`
}

type candidate struct {
	Content      *content `json:"content"`
	FinishReason string   `json:"finishReason"`
}

type promptFeedback struct {
	BlockReason string `json:"blockReason"`
}

type upstreamError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *geminiClient) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, c.Model, url.QueryEscape(c.APIKey))
}

// GenerateContent submits a single prompt and returns the first candidate's
// text verbatim. No retry is attempted; the caller owns retry policy.
func (c *geminiClient) GenerateContent(ctx context.Context, prompt string, options *contracts.GenerateOptions) (string, error) {
	genConfig := generationConfig{
		Temperature:     defaultTemperature,
		TopK:            defaultTopK,
		TopP:            defaultTopP,
		MaxOutputTokens: defaultMaxOutputTokens,
		CandidateCount:  1,
	}

	parts := []part{{Text: prompt}}
	if options != nil {
		if options.Temperature > 0 {
			genConfig.Temperature = options.Temperature
		}
		if options.MaxOutputTokens > 0 {
			genConfig.MaxOutputTokens = options.MaxOutputTokens
		}
		if options.InlineImage != nil {
			parts = append(parts, part{InlineData: &inlineData{
				MimeType: options.InlineImage.MimeType,
				Data:     options.InlineImage.Data,
			}})
		}
	}

	requestBody := generateContentRequest{
		Contents:         []content{{Parts: parts}},
		GenerationConfig: genConfig,
		SafetySettings:   defaultSafetySettings,
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.endpoint(), bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var upstream upstreamError
		message := resp.Status
		if decodeErr := json.NewDecoder(resp.Body).Decode(&upstream); decodeErr == nil && upstream.Error.Message != "" {
			message = upstream.Error.Message
		}
		return "", exceptions.ErrAIRequestFailed(nil, resp.StatusCode, message)
	}

	var response generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", exceptions.ErrDecodeResponse(err)
	}

	if response.PromptFeedback != nil && response.PromptFeedback.BlockReason != "" {
		return "", exceptions.ErrAIResponseMalformed(fmt.Sprintf("prompt blocked by safety filter: %s", response.PromptFeedback.BlockReason))
	}
	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil || len(response.Candidates[0].Content.Parts) == 0 {
		return "", exceptions.ErrAIResponseMalformed("response contains no candidate content")
	}

	return response.Candidates[0].Content.Parts[0].Text, nil
}
