package scheduler

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/samber/lo"
)

// ScheduleFileName is the fixed name of the flat output artifact.
const ScheduleFileName = "output_schedules.txt"

var ErrNoBestAssignment = errors.New("no best assignment has been retained")

// Row is one human-readable schedule entry for a filled session.
type Row struct {
	WeekDay   string
	StartTime string
	EndTime   string
	UID       string
	Name      string
}

// Project maps the retained best candidate back into ordered schedule rows.
// Unfilled sessions produce no row.
func Project(best Candidate, sessions []Session, preferences []Preference) ([]Row, error) {
	if best == nil {
		return nil, ErrNoBestAssignment
	}

	rows := make([]Row, 0, len(best))
	for idx, preferenceIdx := range best {
		if preferenceIdx == Unfilled {
			continue
		}
		session, preference := sessions[idx], preferences[preferenceIdx]
		rows = append(rows, Row{
			WeekDay:   session.WeekDay,
			StartTime: session.StartTime,
			EndTime:   session.EndTime,
			UID:       preference.UID,
			Name:      preference.Name,
		})
	}
	return rows, nil
}

// FormatRows renders rows as newline-terminated tab-separated lines:
//
//	Monday	9:00 AM - 10:00 AM	gacu001	Uriel Garcilazo Cruz
func FormatRows(rows []Row) string {
	lines := lo.Map(rows, func(row Row, _ int) string {
		return fmt.Sprintf("%v\t%v - %v\t%v\t%v\n", row.WeekDay, row.StartTime, row.EndTime, row.UID, row.Name)
	})
	return strings.Join(lines, "")
}

// WriteSchedule writes the formatted schedule into directory under the fixed
// ScheduleFileName.
func WriteSchedule(directory string, rows []Row) error {
	return os.WriteFile(path.Join(directory, ScheduleFileName), []byte(FormatRows(rows)), 0666)
}
