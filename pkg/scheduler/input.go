package scheduler

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var ErrMalformedInputLine = errors.New("malformed input line")

// Preference is a single availability declaration made by an instructor.
// UID is not unique across the catalog: one instructor may declare many
// preference entries.
type Preference struct {
	UID       string
	Name      string
	WeekDay   string
	StartTime string
	EndTime   string
	Slot      Slot
}

// Session is a weekly class slot to be filled by exactly one preference entry.
type Session struct {
	WeekDay   string
	StartTime string
	EndTime   string
	Slot      Slot
}

// Options carries the search hyperparameters. Replicates and MaxAttempts are
// accepted and threaded through but do not alter per-epoch generation: every
// epoch performs a single full-permutation scan per session.
type Options struct {
	Epochs      int
	Replicates  int
	MaxAttempts int `mapstructure:"maxAttempts"`
	Verbose     bool
	Seed        int64
}

// ParseSessions reads a sessions catalog from tab-separated lines of the form
// "Weekday\tStart - End". Blank lines are skipped; any malformed line aborts
// the whole parse.
func ParseSessions(reader io.Reader) ([]Session, error) {
	sessions := []Session{}
	scanner := bufio.NewScanner(reader)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		day, timeRange, found := strings.Cut(line, "\t")
		if !found {
			return nil, fmt.Errorf("%w %v: expected 2 tab-separated fields", ErrMalformedInputLine, lineNumber)
		}
		start, end, err := splitTimeRange(timeRange, lineNumber)
		if err != nil {
			return nil, err
		}

		slot, err := EncodeSlot(day, start)
		if err != nil {
			return nil, fmt.Errorf("line %v: %w", lineNumber, err)
		}
		sessions = append(sessions, Session{
			WeekDay:   day,
			StartTime: start,
			EndTime:   end,
			Slot:      slot,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// ParsePreferences reads an instructor-preferences catalog from tab-separated
// lines of the form "UID\tName\tWeekday\tStart - End". Blank lines are
// skipped; any malformed line aborts the whole parse.
func ParsePreferences(reader io.Reader) ([]Preference, error) {
	preferences := []Preference{}
	scanner := bufio.NewScanner(reader)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w %v: expected 4 tab-separated fields", ErrMalformedInputLine, lineNumber)
		}
		uid, name, day := fields[0], fields[1], fields[2]
		start, end, err := splitTimeRange(fields[3], lineNumber)
		if err != nil {
			return nil, err
		}

		slot, err := EncodeSlot(day, start)
		if err != nil {
			return nil, fmt.Errorf("line %v: %w", lineNumber, err)
		}
		preferences = append(preferences, Preference{
			UID:       uid,
			Name:      name,
			WeekDay:   day,
			StartTime: start,
			EndTime:   end,
			Slot:      slot,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return preferences, nil
}

func splitTimeRange(timeRange string, lineNumber int) (start string, end string, err error) {
	start, end, found := strings.Cut(timeRange, " - ")
	if !found {
		return "", "", fmt.Errorf("%w %v: expected a \"Start - End\" time range", ErrMalformedInputLine, lineNumber)
	}
	return start, end, nil
}

func LoadSessions(file string) ([]Session, error) {
	reader, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return ParseSessions(reader)
}

func LoadPreferences(file string) ([]Preference, error) {
	reader, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return ParsePreferences(reader)
}

// OptionsFromJson decodes a search-options file.
func OptionsFromJson(file string) (Options, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Options{}, err
	}
	var optionsJson map[string]any
	if err := json.Unmarshal(bytes, &optionsJson); err != nil {
		return Options{}, err
	}

	var options Options
	if err := mapstructure.Decode(optionsJson, &options); err != nil {
		return Options{}, err
	}
	return options, nil
}
