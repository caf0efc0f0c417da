package scheduler

import (
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSessions(t *testing.T) {
	// Arrange
	content := "Monday\t9:00 AM - 10:00 AM\n\nTuesday\t10:00 AM - 11:00 AM\n"

	// Act
	sessions, err := ParseSessions(strings.NewReader(content))

	// Assert: blank lines are skipped, order is preserved
	assert.Nil(t, err)
	assert.Equal(t, []Session{
		{WeekDay: "Monday", StartTime: "9:00 AM", EndTime: "10:00 AM", Slot: Slot{Day: 0, Hour: 2}},
		{WeekDay: "Tuesday", StartTime: "10:00 AM", EndTime: "11:00 AM", Slot: Slot{Day: 1, Hour: 3}},
	}, sessions)
}

func TestParseSessionsMalformedLineAbortsFile(t *testing.T) {
	// Arrange: the second line misses its tab separator
	content := "Monday\t9:00 AM - 10:00 AM\nTuesday 10:00 AM - 11:00 AM\nWednesday\t9:00 AM - 10:00 AM\n"

	// Act
	sessions, err := ParseSessions(strings.NewReader(content))

	// Assert: the whole file is rejected, not just the bad line
	assert.ErrorIs(t, err, ErrMalformedInputLine)
	assert.Contains(t, err.Error(), "2")
	assert.Nil(t, sessions)
}

func TestParseSessionsOutOfRangeTimeAbortsFile(t *testing.T) {
	// Arrange
	content := "Monday\t6:00 AM - 7:00 AM\n"

	// Act
	_, err := ParseSessions(strings.NewReader(content))

	// Assert
	assert.ErrorIs(t, err, ErrOutOfRangeTime)
}

func TestParseSessionsMissingRangeSeparator(t *testing.T) {
	// Arrange
	content := "Monday\t9:00 AM to 10:00 AM\n"

	// Act
	_, err := ParseSessions(strings.NewReader(content))

	// Assert
	assert.ErrorIs(t, err, ErrMalformedInputLine)
}

func TestParsePreferences(t *testing.T) {
	// Arrange
	content := "gacu001\tUriel Garcilazo Cruz\tMonday\t9:00 AM - 10:00 AM\n" +
		"gacu001\tUriel Garcilazo Cruz\tMonday\t10:00 AM - 11:00 AM\n"

	// Act
	preferences, err := ParsePreferences(strings.NewReader(content))

	// Assert: one instructor may own several entries
	assert.Nil(t, err)
	assert.Equal(t, []Preference{
		{UID: "gacu001", Name: "Uriel Garcilazo Cruz", WeekDay: "Monday", StartTime: "9:00 AM", EndTime: "10:00 AM", Slot: Slot{Day: 0, Hour: 2}},
		{UID: "gacu001", Name: "Uriel Garcilazo Cruz", WeekDay: "Monday", StartTime: "10:00 AM", EndTime: "11:00 AM", Slot: Slot{Day: 0, Hour: 3}},
	}, preferences)
}

func TestParsePreferencesMalformedLineAbortsFile(t *testing.T) {
	// Arrange: three fields instead of four
	content := "gacu001\tMonday\t9:00 AM - 10:00 AM\n"

	// Act
	preferences, err := ParsePreferences(strings.NewReader(content))

	// Assert
	assert.ErrorIs(t, err, ErrMalformedInputLine)
	assert.Nil(t, preferences)
}

func TestParsePreferencesUnknownWeekdayAbortsFile(t *testing.T) {
	// Arrange
	content := "gacu001\tUriel Garcilazo Cruz\tFunday\t9:00 AM - 10:00 AM\n"

	// Act
	_, err := ParsePreferences(strings.NewReader(content))

	// Assert
	assert.ErrorIs(t, err, ErrUnknownWeekday)
}

func TestLoadCatalogs(t *testing.T) {
	// Arrange
	directory := t.TempDir()
	sessionsFile := path.Join(directory, "sessions.txt")
	prefsFile := path.Join(directory, "prefs.txt")
	assert.Nil(t, os.WriteFile(sessionsFile, []byte("Monday\t9:00 AM - 10:00 AM\n"), 0666))
	assert.Nil(t, os.WriteFile(prefsFile, []byte("I1\tA\tMonday\t9:00 AM - 10:00 AM\n"), 0666))

	// Act
	sessions, sessionsErr := LoadSessions(sessionsFile)
	preferences, prefsErr := LoadPreferences(prefsFile)

	// Assert
	assert.Nil(t, sessionsErr)
	assert.Nil(t, prefsErr)
	assert.Len(t, sessions, 1)
	assert.Len(t, preferences, 1)
}

func TestOptionsFromJson(t *testing.T) {
	// Arrange
	file := path.Join(t.TempDir(), "options.json")
	content := `{"epochs": 1000, "replicates": 5, "maxAttempts": 3, "verbose": true, "seed": 42}`
	assert.Nil(t, os.WriteFile(file, []byte(content), 0666))

	// Act
	options, err := OptionsFromJson(file)

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, Options{Epochs: 1000, Replicates: 5, MaxAttempts: 3, Verbose: true, Seed: 42}, options)
}

func TestOptionsFromJsonInvalidFile(t *testing.T) {
	// Arrange
	file := path.Join(t.TempDir(), "options.json")
	assert.Nil(t, os.WriteFile(file, []byte("not json"), 0666))

	// Act
	_, err := OptionsFromJson(file)

	// Assert
	assert.NotNil(t, err)
}
