package ai

import (
	"context"
	"testing"
	"time"

	"healthai-service/internal/app/contracts"
	"healthai-service/internal/app/models"
	"healthai-service/internal/pkg/dto/requests"
	"healthai-service/internal/pkg/dto/responses"
	"healthai-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPatientUsecase struct {
	patient    *models.Patient
	aiAnalysis string
	saveErr    error
}

func (s *stubPatientUsecase) RegisterPatient(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error) {
	return nil, nil
}

func (s *stubPatientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	return nil, nil
}

func (s *stubPatientUsecase) DeletePatient(ctx context.Context, patientID string) error { return nil }

func (s *stubPatientUsecase) GetPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	if s.patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return s.patient, nil
}

func (s *stubPatientUsecase) ListPatients(ctx context.Context, searchTerm string) ([]responses.PatientSummary, error) {
	return nil, nil
}

func (s *stubPatientUsecase) GetPatientStats(ctx context.Context) (*responses.PatientStats, error) {
	return nil, nil
}

func (s *stubPatientUsecase) SaveAIAnalysis(ctx context.Context, patientID, narrative string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.aiAnalysis = narrative
	return nil
}

type stubRecordUsecase struct {
	bundle *responses.RecordBundle
}

func (s *stubRecordUsecase) GetPatientRecords(ctx context.Context, patientID string) (*responses.RecordBundle, error) {
	return s.bundle, nil
}

func (s *stubRecordUsecase) GetTimeline(ctx context.Context, patientID, filter string) (*responses.Timeline, error) {
	return nil, nil
}

func (s *stubRecordUsecase) GetCategory(ctx context.Context, patientID, category string) (interface{}, error) {
	return nil, nil
}

func (s *stubRecordUsecase) AddMedication(ctx context.Context, patientID string, request *requests.AddMedication) (*models.Medication, error) {
	return nil, nil
}

func (s *stubRecordUsecase) AddCondition(ctx context.Context, patientID string, request *requests.AddCondition) (*models.Condition, error) {
	return nil, nil
}

type stubAIClient struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubAIClient) GenerateContent(ctx context.Context, prompt string, options *contracts.GenerateOptions) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

type memorySummaryCache struct {
	entries map[string]string
}

func newMemorySummaryCache() *memorySummaryCache {
	return &memorySummaryCache{entries: make(map[string]string)}
}

func (c *memorySummaryCache) key(patientID string, recordLimit int) string {
	return patientID + ":" + string(rune('0'+recordLimit%10))
}

func (c *memorySummaryCache) Get(ctx context.Context, patientID string, recordLimit int) (string, bool) {
	value, ok := c.entries[c.key(patientID, recordLimit)]
	return value, ok
}

func (c *memorySummaryCache) Set(ctx context.Context, patientID string, recordLimit int, summary string, ttl time.Duration) {
	c.entries[c.key(patientID, recordLimit)] = summary
}

func (c *memorySummaryCache) Invalidate(ctx context.Context, patientID string) {
	for key := range c.entries {
		delete(c.entries, key)
	}
}

func testPatient() *models.Patient {
	return &models.Patient{
		ID:        "p1",
		Name:      []models.HumanName{{Use: "official", Given: []string{"Alice"}, Family: "Hartono"}},
		Gender:    "female",
		BirthDate: "1988-04-12",
	}
}

func newTestAIUsecase(patients *stubPatientUsecase, client *stubAIClient, cache contracts.SummaryCache) contracts.AIUsecase {
	records := &stubRecordUsecase{bundle: &responses.RecordBundle{}}
	return NewAIUsecase(patients, records, client, cache, time.Minute, zap.NewNop())
}

func TestGenerateSummary(t *testing.T) {
	t.Run("First call generates then second is served from cache", func(t *testing.T) {
		client := &stubAIClient{reply: "Patient is stable."}
		usecase := newTestAIUsecase(&stubPatientUsecase{patient: testPatient()}, client, newMemorySummaryCache())

		first, err := usecase.GenerateSummary(context.Background(), "p1", &requests.AISummary{})
		require.NoError(t, err)
		assert.False(t, first.Cached)
		assert.Equal(t, "Patient is stable.", first.Summary)
		assert.Equal(t, 5, first.RecordLimit)

		second, err := usecase.GenerateSummary(context.Background(), "p1", &requests.AISummary{})
		require.NoError(t, err)
		assert.True(t, second.Cached)
		assert.Equal(t, "Patient is stable.", second.Summary)
		assert.Len(t, client.prompts, 1, "model should be called once")
	})

	t.Run("Persist writes narrative onto patient", func(t *testing.T) {
		patients := &stubPatientUsecase{patient: testPatient()}
		usecase := newTestAIUsecase(patients, &stubAIClient{reply: "narrative"}, newMemorySummaryCache())

		summary, err := usecase.GenerateSummary(context.Background(), "p1", &requests.AISummary{Persist: true})

		require.NoError(t, err)
		assert.True(t, summary.Persisted)
		assert.Equal(t, "narrative", patients.aiAnalysis)
	})

	t.Run("Persist honored on a cached summary", func(t *testing.T) {
		patients := &stubPatientUsecase{patient: testPatient()}
		client := &stubAIClient{reply: "narrative"}
		usecase := newTestAIUsecase(patients, client, newMemorySummaryCache())

		_, err := usecase.GenerateSummary(context.Background(), "p1", &requests.AISummary{})
		require.NoError(t, err)
		require.Empty(t, patients.aiAnalysis)

		summary, err := usecase.GenerateSummary(context.Background(), "p1", &requests.AISummary{Persist: true})

		require.NoError(t, err)
		assert.True(t, summary.Cached)
		assert.True(t, summary.Persisted)
		assert.Equal(t, "narrative", patients.aiAnalysis)
		assert.Len(t, client.prompts, 1, "model should be called once")
	})

	t.Run("Failed persist still returns the summary", func(t *testing.T) {
		patients := &stubPatientUsecase{patient: testPatient(), saveErr: exceptions.ErrMongoDBUpdateDocument(nil)}
		usecase := newTestAIUsecase(patients, &stubAIClient{reply: "narrative"}, newMemorySummaryCache())

		summary, err := usecase.GenerateSummary(context.Background(), "p1", &requests.AISummary{Persist: true})

		require.NoError(t, err)
		assert.False(t, summary.Persisted)
		assert.Equal(t, "narrative", summary.Summary)
	})

	t.Run("Unknown patient propagates not found", func(t *testing.T) {
		usecase := newTestAIUsecase(&stubPatientUsecase{}, &stubAIClient{reply: "x"}, newMemorySummaryCache())

		_, err := usecase.GenerateSummary(context.Background(), "missing", &requests.AISummary{})

		require.Error(t, err)
	})

	t.Run("Disallowed record limit rejected", func(t *testing.T) {
		usecase := newTestAIUsecase(&stubPatientUsecase{patient: testPatient()}, &stubAIClient{reply: "x"}, newMemorySummaryCache())

		_, err := usecase.GenerateSummary(context.Background(), "p1", &requests.AISummary{RecordLimit: 7})

		require.Error(t, err)
	})

	t.Run("Allowed record limit accepted", func(t *testing.T) {
		usecase := newTestAIUsecase(&stubPatientUsecase{patient: testPatient()}, &stubAIClient{reply: "x"}, newMemorySummaryCache())

		summary, err := usecase.GenerateSummary(context.Background(), "p1", &requests.AISummary{RecordLimit: 20})

		require.NoError(t, err)
		assert.Equal(t, 20, summary.RecordLimit)
	})
}

func TestChat(t *testing.T) {
	t.Run("History accumulates across turns", func(t *testing.T) {
		usecase := newTestAIUsecase(&stubPatientUsecase{patient: testPatient()}, &stubAIClient{reply: "answer"}, newMemorySummaryCache())

		first, err := usecase.Chat(context.Background(), "p1", &requests.AIChat{Message: "first question"})
		require.NoError(t, err)
		assert.NotEmpty(t, first.SessionID)
		require.Len(t, first.History, 2)
		assert.Equal(t, "user", first.History[0].Role)
		assert.Equal(t, "first question", first.History[0].Content)
		assert.Equal(t, "ai", first.History[1].Role)

		second, err := usecase.Chat(context.Background(), "p1", &requests.AIChat{
			SessionID: first.SessionID,
			Message:   "second question",
		})
		require.NoError(t, err)
		assert.Equal(t, first.SessionID, second.SessionID)
		assert.Len(t, second.History, 4)
	})

	t.Run("Empty message rejected", func(t *testing.T) {
		usecase := newTestAIUsecase(&stubPatientUsecase{patient: testPatient()}, &stubAIClient{reply: "answer"}, newMemorySummaryCache())

		_, err := usecase.Chat(context.Background(), "p1", &requests.AIChat{})

		require.Error(t, err)
	})

	t.Run("ClearChat resets the session", func(t *testing.T) {
		usecase := newTestAIUsecase(&stubPatientUsecase{patient: testPatient()}, &stubAIClient{reply: "answer"}, newMemorySummaryCache())

		first, err := usecase.Chat(context.Background(), "p1", &requests.AIChat{Message: "question"})
		require.NoError(t, err)

		usecase.ClearChat(first.SessionID)

		next, err := usecase.Chat(context.Background(), "p1", &requests.AIChat{
			SessionID: first.SessionID,
			Message:   "again",
		})
		require.NoError(t, err)
		assert.Len(t, next.History, 2)
	})
}
