package patients

import (
	"context"
	"testing"
	"time"

	"healthai-service/internal/app/contracts"
	"healthai-service/internal/app/models"
	"healthai-service/internal/pkg/dto/requests"
	"healthai-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePatientRepository struct {
	patients map[string]*models.Patient
	nextID   int
}

func newFakePatientRepository() *fakePatientRepository {
	return &fakePatientRepository{patients: make(map[string]*models.Patient), nextID: 1}
}

func (r *fakePatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	patient.ID = string(rune('a' + r.nextID))
	r.nextID++
	patient.Active = true
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = patient.CreatedAt
	r.patients[patient.ID] = patient
	return patient, nil
}

func (r *fakePatientRepository) UpdatePatient(ctx context.Context, patientID string, update map[string]interface{}) (*models.Patient, error) {
	patient, ok := r.patients[patientID]
	if !ok {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	if narrative, ok := update["aiAnalysis"].(string); ok {
		patient.AIAnalysis = narrative
	}
	if gender, ok := update["gender"].(string); ok && gender != "" {
		patient.Gender = gender
	}
	patient.UpdatedAt = time.Now()
	return patient, nil
}

func (r *fakePatientRepository) SoftDeletePatient(ctx context.Context, patientID string) error {
	patient, ok := r.patients[patientID]
	if !ok {
		return exceptions.ErrPatientNotFound(nil)
	}
	patient.Active = false
	now := time.Now()
	patient.DeletedAt = &now
	return nil
}

func (r *fakePatientRepository) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, ok := r.patients[patientID]
	if !ok {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return patient, nil
}

func (r *fakePatientRepository) FindAllPatients(ctx context.Context) ([]models.Patient, error) {
	var all []models.Patient
	for _, patient := range r.patients {
		if !patient.Active {
			continue
		}
		all = append(all, *patient)
	}
	return all, nil
}

type spySummaryCache struct {
	invalidated []string
}

func (c *spySummaryCache) Get(ctx context.Context, patientID string, recordLimit int) (string, bool) {
	return "", false
}

func (c *spySummaryCache) Set(ctx context.Context, patientID string, recordLimit int, summary string, ttl time.Duration) {
}

func (c *spySummaryCache) Invalidate(ctx context.Context, patientID string) {
	c.invalidated = append(c.invalidated, patientID)
}

func validRegistration() *requests.CreatePatient {
	return &requests.CreatePatient{
		Name:      []models.HumanName{{Use: "official", Given: []string{"Alice"}, Family: "Hartono"}},
		Gender:    "female",
		BirthDate: "1988-04-12",
		Telecom:   []models.ContactPoint{{System: "phone", Value: "+62-811-555-0101"}},
	}
}

func newTestPatientUsecase() (contracts.PatientUsecase, *fakePatientRepository, *spySummaryCache) {
	repo := newFakePatientRepository()
	cache := &spySummaryCache{}
	return NewPatientUsecase(repo, cache), repo, cache
}

func TestRegisterPatient(t *testing.T) {
	t.Run("Valid registration round trips", func(t *testing.T) {
		usecase, _, _ := newTestPatientUsecase()

		patient, err := usecase.RegisterPatient(context.Background(), validRegistration())

		require.NoError(t, err)
		assert.NotEmpty(t, patient.ID)
		assert.True(t, patient.Active)
		assert.Equal(t, "female", patient.Gender)

		fetched, err := usecase.GetPatient(context.Background(), patient.ID)
		require.NoError(t, err)
		assert.Equal(t, patient.ID, fetched.ID)
	})

	t.Run("Missing fields are joined into one message", func(t *testing.T) {
		usecase, _, _ := newTestPatientUsecase()

		_, err := usecase.RegisterPatient(context.Background(), &requests.CreatePatient{})

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, "First and last name required, Gender required, Birth date required, Phone number required", customErr.ClientMessage)
	})

	t.Run("Single missing field message has no separator", func(t *testing.T) {
		usecase, _, _ := newTestPatientUsecase()

		request := validRegistration()
		request.Gender = ""
		_, err := usecase.RegisterPatient(context.Background(), request)

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, "Gender required", customErr.ClientMessage)
	})

	t.Run("Symptom assessment flag follows symptom presence", func(t *testing.T) {
		usecase, _, _ := newTestPatientUsecase()

		request := validRegistration()
		request.SymptomAssessment = &models.SymptomAssessment{
			Symptoms: []models.ReportedSymptom{{Symptom: "Headache", Severity: "mild"}},
		}
		patient, err := usecase.RegisterPatient(context.Background(), request)

		require.NoError(t, err)
		assert.True(t, patient.HasSymptomAssessment)
		require.NotNil(t, patient.SymptomAssessment)
		assert.Equal(t, "Headache", patient.SymptomAssessment.Symptoms[0].Symptom)
	})
}

func TestDeletePatient(t *testing.T) {
	usecase, repo, cache := newTestPatientUsecase()

	patient, err := usecase.RegisterPatient(context.Background(), validRegistration())
	require.NoError(t, err)

	require.NoError(t, usecase.DeletePatient(context.Background(), patient.ID))

	t.Run("Deleted patient disappears from listing", func(t *testing.T) {
		summaries, err := usecase.ListPatients(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, summaries)
	})

	t.Run("Direct fetch still works", func(t *testing.T) {
		fetched, err := usecase.GetPatient(context.Background(), patient.ID)
		require.NoError(t, err)
		assert.False(t, fetched.Active)
		assert.NotNil(t, fetched.DeletedAt)
	})

	t.Run("Summary cache invalidated", func(t *testing.T) {
		assert.Contains(t, cache.invalidated, patient.ID)
	})

	t.Run("Document kept in store", func(t *testing.T) {
		assert.Contains(t, repo.patients, patient.ID)
	})
}

func TestListPatients(t *testing.T) {
	usecase, _, _ := newTestPatientUsecase()

	_, err := usecase.RegisterPatient(context.Background(), validRegistration())
	require.NoError(t, err)

	second := validRegistration()
	second.Name = []models.HumanName{{Use: "official", Given: []string{"Budi"}, Family: "Santoso"}}
	second.Gender = "male"
	_, err = usecase.RegisterPatient(context.Background(), second)
	require.NoError(t, err)

	t.Run("No search returns everyone", func(t *testing.T) {
		summaries, err := usecase.ListPatients(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, summaries, 2)
	})

	t.Run("Search is case insensitive substring on full name", func(t *testing.T) {
		summaries, err := usecase.ListPatients(context.Background(), "hartono")
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "Alice Hartono", summaries[0].FullName)
	})

	t.Run("No match returns empty not nil", func(t *testing.T) {
		summaries, err := usecase.ListPatients(context.Background(), "nobody")
		require.NoError(t, err)
		assert.NotNil(t, summaries)
		assert.Empty(t, summaries)
	})
}

func TestGetPatientStats(t *testing.T) {
	usecase, _, _ := newTestPatientUsecase()

	first := validRegistration()
	_, err := usecase.RegisterPatient(context.Background(), first)
	require.NoError(t, err)

	second := validRegistration()
	second.Name = []models.HumanName{{Use: "official", Given: []string{"Budi"}, Family: "Santoso"}}
	second.Gender = "male"
	second.BirthDate = "1954-11-30"
	_, err = usecase.RegisterPatient(context.Background(), second)
	require.NoError(t, err)

	third := validRegistration()
	third.Name = []models.HumanName{{Use: "official", Given: []string{"Citra"}, Family: "Dewi"}}
	third.BirthDate = "2015-02-01"
	_, err = usecase.RegisterPatient(context.Background(), third)
	require.NoError(t, err)

	stats, err := usecase.GetPatientStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.ByGender.Male)
	assert.Equal(t, 2, stats.ByGender.Female)
	assert.Equal(t, 3, stats.NewThisMonth)
	assert.Equal(t, 1, stats.ByAgeGroup["0-18"])
	assert.Equal(t, 1, stats.ByAgeGroup["65+"])
}

func TestSaveAIAnalysis(t *testing.T) {
	usecase, repo, _ := newTestPatientUsecase()

	patient, err := usecase.RegisterPatient(context.Background(), validRegistration())
	require.NoError(t, err)

	require.NoError(t, usecase.SaveAIAnalysis(context.Background(), patient.ID, "stable overall"))
	assert.Equal(t, "stable overall", repo.patients[patient.ID].AIAnalysis)
}
