package utils

import (
	"testing"
	"time"

	"healthai-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatName(t *testing.T) {
	t.Run("Official name preferred", func(t *testing.T) {
		names := []models.HumanName{
			{Use: "nickname", Given: []string{"Ali"}, Family: "H"},
			{Use: "official", Given: []string{"Alice"}, Family: "Hartono"},
		}
		assert.Equal(t, "Alice Hartono", FormatName(names))
	})

	t.Run("Falls back to first entry", func(t *testing.T) {
		names := []models.HumanName{
			{Use: "nickname", Given: []string{"Ali"}, Family: "H"},
		}
		assert.Equal(t, "Ali H", FormatName(names))
	})

	t.Run("Multiple given parts joined", func(t *testing.T) {
		names := []models.HumanName{
			{Use: "official", Given: []string{"Maria", "Clara"}, Family: "Sitorus"},
		}
		assert.Equal(t, "Maria Clara Sitorus", FormatName(names))
	})

	t.Run("Empty list yields placeholder", func(t *testing.T) {
		assert.Equal(t, "Unknown Patient", FormatName(nil))
	})

	t.Run("Blank entry yields placeholder", func(t *testing.T) {
		assert.Equal(t, "Unknown Patient", FormatName([]models.HumanName{{}}))
	})
}

func TestCleanName(t *testing.T) {
	names := []models.HumanName{
		{Use: "official", Given: []string{"Alice2"}, Family: "Hartono99"},
	}
	assert.Equal(t, "Alice Hartono", CleanName(names))
}

func TestCalculateAgeAt(t *testing.T) {
	today := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Birthday already passed this year", func(t *testing.T) {
		age, ok := calculateAgeAt("1994-06-14", today)
		assert.True(t, ok)
		assert.Equal(t, 30, age)
	})

	t.Run("Birthday today counts the year", func(t *testing.T) {
		age, ok := calculateAgeAt("1994-06-15", today)
		assert.True(t, ok)
		assert.Equal(t, 30, age)
	})

	t.Run("Birthday tomorrow does not", func(t *testing.T) {
		age, ok := calculateAgeAt("1994-06-16", today)
		assert.True(t, ok)
		assert.Equal(t, 29, age)
	})

	t.Run("Empty birth date", func(t *testing.T) {
		_, ok := calculateAgeAt("", today)
		assert.False(t, ok)
	})

	t.Run("Unparseable birth date", func(t *testing.T) {
		_, ok := calculateAgeAt("15/06/1994", today)
		assert.False(t, ok)
	})
}

func TestFormatAge(t *testing.T) {
	assert.Equal(t, "Unknown", FormatAge(""))
	assert.Equal(t, "Unknown", FormatAge("junk"))
}

func TestFormatBirthDate(t *testing.T) {
	assert.Equal(t, "12 April 1988", FormatBirthDate("1988-04-12"))
	assert.Equal(t, "junk", FormatBirthDate("junk"))
}
