package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

// CheckIn resolves a student from a raw lookup query (manual search or
// scanned QR token) and records the attendance-and-payment event for the
// current day.
type CheckIn struct {
	store store.Store

	// Now is the service clock; tests override it.
	Now func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCheckIn(st store.Store) *CheckIn {
	return &CheckIn{
		store: st,
		Now:   time.Now,
		locks: make(map[string]*sync.Mutex),
	}
}

// studentLock serializes confirmations per student. Confirmations for
// different students proceed in parallel.
func (s *CheckIn) studentLock(studentID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[studentID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[studentID] = l
	}
	return l
}

// LookupStudent matches a raw query against phone, then student id, then
// QR token — exact matches only, first hit wins. The ordering is fixed:
// a query that happens to match several fields deterministically
// resolves as a phone first.
func (s *CheckIn) LookupStudent(query string) (*models.Student, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, store.ErrNotFound
	}

	if student, err := s.store.GetStudentByPhone(query); err == nil {
		return student, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	if _, err := uuid.Parse(query); err == nil {
		if student, err := s.store.GetStudent(query); err == nil {
			return student, nil
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	return s.store.GetStudentByQRToken(query)
}

// ConfirmAttendance records the student present for today and bills one
// session in a single logical unit: the presence record, the ledger
// transaction and the student's derived caches land together or not at
// all. The transaction snapshots the student and group names and the
// group's price at confirmation time. A second confirmation on the same
// calendar date fails with ErrAlreadyRecorded and writes nothing.
func (s *CheckIn) ConfirmAttendance(studentID string) (*models.AttendanceRecord, *models.Transaction, error) {
	lock := s.studentLock(studentID)
	lock.Lock()
	defer lock.Unlock()

	student, err := s.store.GetStudent(studentID)
	if err != nil {
		return nil, nil, err
	}
	if student.GroupID == nil {
		return nil, nil, ErrNoGroup
	}
	group, err := s.store.GetGroup(*student.GroupID)
	if err != nil {
		return nil, nil, err
	}

	today := DateOnly(s.Now())
	record := &models.AttendanceRecord{
		StudentID: student.ID,
		GroupID:   group.ID,
		Date:      today,
		Status:    models.Present,
	}
	txn := &models.Transaction{
		StudentID:   student.ID,
		GroupID:     group.ID,
		StudentName: student.Name,
		GroupName:   group.Name,
		Amount:      group.SessionPrice,
		Date:        today,
	}

	if err := s.store.RecordCheckIn(record, txn); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, nil, ErrAlreadyRecorded
		}
		return nil, nil, err
	}
	return record, txn, nil
}
