package services

import (
	"errors"
	"time"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

// Attendance resolves per-group, per-date presence state.
type Attendance struct {
	store store.Store
}

func NewAttendance(st store.Store) *Attendance {
	return &Attendance{store: st}
}

// DateOnly truncates a timestamp to its calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ResolvePresence partitions a group's students into present and absent
// for one date. A student with no record is absent: presence is an
// explicit opt-in. The read is pure; repeating it before any write
// yields the same partition.
func (s *Attendance) ResolvePresence(groupID string, date time.Time) (*models.PresenceSheet, error) {
	date = DateOnly(date)

	if _, err := s.store.GetGroup(groupID); err != nil {
		return nil, err
	}
	students, err := s.store.ListStudents(store.StudentFilters{GroupID: groupID})
	if err != nil {
		return nil, err
	}
	records, err := s.store.ListAttendanceByGroupAndDate(groupID, date)
	if err != nil {
		return nil, err
	}

	presentIDs := make(map[string]bool, len(records))
	for _, r := range records {
		if r.Status == models.Present {
			presentIDs[r.StudentID] = true
		}
	}

	sheet := &models.PresenceSheet{
		GroupID: groupID,
		Date:    date.Format(models.DateLayout),
		Present: []*models.Student{},
		Absent:  []*models.Student{},
	}
	for _, st := range students {
		if presentIDs[st.ID] {
			sheet.Present = append(sheet.Present, st)
		} else {
			sheet.Absent = append(sheet.Absent, st)
		}
	}
	return sheet, nil
}

// ToggleStatus flips a student's effective status for a date. An
// existing present record is removed, reverting the student to implicit
// absence; otherwise a present record is created. Applying the toggle
// twice restores the original effective status. The returned record
// reflects the effective state after the toggle; when the student ends
// up absent it is a descriptor, not a stored row.
func (s *Attendance) ToggleStatus(studentID, groupID string, date time.Time) (*models.AttendanceRecord, error) {
	date = DateOnly(date)

	// stored rows are always present; absence is the missing row
	_, err := s.store.GetAttendance(studentID, date)
	switch {
	case err == nil:
		if err := s.store.DeleteAttendance(studentID, date); err != nil {
			return nil, err
		}
		return &models.AttendanceRecord{
			StudentID: studentID,
			GroupID:   groupID,
			Date:      date,
			Status:    models.Absent,
		}, nil
	case !errors.Is(err, store.ErrNotFound):
		return nil, err
	}

	record := &models.AttendanceRecord{
		StudentID: studentID,
		GroupID:   groupID,
		Date:      date,
		Status:    models.Present,
	}
	if err := s.store.CreateAttendance(record); err != nil {
		return nil, err
	}
	return record, nil
}
