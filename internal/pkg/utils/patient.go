package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"healthai-service/internal/app/models"
	"healthai-service/internal/pkg/constvars"
)

var (
	digitPattern      = regexp.MustCompile(`\d+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// FormatName joins the given parts and family name of the entry tagged
// "official", falling back to the first entry. It never returns an empty
// string.
func FormatName(names []models.HumanName) string {
	if len(names) == 0 {
		return constvars.UnknownPatientName
	}

	selected := names[0]
	for _, name := range names {
		if name.Use == "official" {
			selected = name
			break
		}
	}

	fullName := strings.TrimSpace(strings.Join(selected.Given, " ") + " " + selected.Family)
	if fullName == "" {
		return constvars.UnknownPatientName
	}
	return fullName
}

// CleanName strips stray numerals that upstream data sometimes embeds in name
// fields and collapses the leftover whitespace.
func CleanName(names []models.HumanName) string {
	fullName := digitPattern.ReplaceAllString(FormatName(names), "")
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(fullName, " "))
}

func parseBirthDate(birthDate string) (time.Time, bool) {
	if birthDate == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if dob, err := time.Parse(layout, birthDate); err == nil {
			return dob, true
		}
	}
	return time.Time{}, false
}

// CalculateAge returns whole completed years between the birth date and now.
// The second return value is false when the birth date is absent or
// unparseable.
func CalculateAge(birthDate string) (int, bool) {
	return calculateAgeAt(birthDate, time.Now())
}

func calculateAgeAt(birthDate string, today time.Time) (int, bool) {
	dob, ok := parseBirthDate(birthDate)
	if !ok {
		return 0, false
	}

	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age, true
}

// FormatAge renders the age for display, "Unknown" when it cannot be computed.
func FormatAge(birthDate string) string {
	age, ok := CalculateAge(birthDate)
	if !ok {
		return constvars.UnknownAge
	}
	return strconv.Itoa(age)
}

func FormatBirthDate(birthDate string) string {
	dob, ok := parseBirthDate(birthDate)
	if !ok {
		return birthDate
	}
	return dob.Format("02 January 2006")
}
