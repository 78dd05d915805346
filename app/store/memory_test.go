package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
)

func seedGroup(t *testing.T, m *Memory, name string, price float64) *models.Group {
	t.Helper()
	g := &models.Group{
		Name:         name,
		MeetingDays:  []string{"monday", "wednesday"},
		MeetingTime:  "16:00",
		SessionPrice: price,
	}
	require.NoError(t, m.CreateGroup(g))
	return g
}

func seedStudent(t *testing.T, m *Memory, name, phone string, groupID *string) *models.Student {
	t.Helper()
	s := &models.Student{
		Name:    name,
		Phone:   phone,
		GroupID: groupID,
		QRToken: "STU-" + phone,
	}
	require.NoError(t, m.CreateStudent(s))
	return s
}

func TestCreateStudentPhoneConflict(t *testing.T) {
	m := NewMemory()
	g := seedGroup(t, m, "Algebra", 50)
	seedStudent(t, m, "Amina", "0700000001", &g.ID)

	dup := &models.Student{Name: "Other", Phone: "0700000001", QRToken: "STU-x"}
	assert.ErrorIs(t, m.CreateStudent(dup), ErrConflict)
}

func TestUpdateStudentKeepsQRToken(t *testing.T) {
	m := NewMemory()
	s := seedStudent(t, m, "Amina", "0700000001", nil)
	original := s.QRToken

	s.Name = "Amina K"
	s.QRToken = "forged"
	require.NoError(t, m.UpdateStudent(s))

	got, err := m.GetStudent(s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Amina K", got.Name)
	assert.Equal(t, original, got.QRToken)
}

func TestDeleteGroupWithStudents(t *testing.T) {
	m := NewMemory()
	g := seedGroup(t, m, "Algebra", 50)
	seedStudent(t, m, "Amina", "0700000001", &g.ID)

	assert.ErrorIs(t, m.DeleteGroup(g.ID), ErrConflict)

	empty := seedGroup(t, m, "Physics", 60)
	assert.NoError(t, m.DeleteGroup(empty.ID))
	assert.ErrorIs(t, m.DeleteGroup(empty.ID), ErrNotFound)
}

func TestDeleteStudentKeepsTransactions(t *testing.T) {
	m := NewMemory()
	g := seedGroup(t, m, "Algebra", 50)
	s := seedStudent(t, m, "Amina", "0700000001", &g.ID)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, m.RecordCheckIn(
		&models.AttendanceRecord{StudentID: s.ID, GroupID: g.ID, Date: day, Status: models.Present},
		&models.Transaction{StudentID: s.ID, GroupID: g.ID, StudentName: s.Name, GroupName: g.Name, Amount: 50, Date: day},
	))

	require.NoError(t, m.DeleteStudent(s.ID))

	_, err := m.GetAttendance(s.ID, day)
	assert.ErrorIs(t, err, ErrNotFound)

	txns, err := m.ListTransactions(TransactionFilters{StudentID: s.ID})
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "Amina", txns[0].StudentName)
}

func TestRecordCheckInAtomic(t *testing.T) {
	m := NewMemory()
	g := seedGroup(t, m, "Algebra", 50)
	s := seedStudent(t, m, "Amina", "0700000001", &g.ID)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	record := &models.AttendanceRecord{StudentID: s.ID, GroupID: g.ID, Date: day, Status: models.Present}
	txn := &models.Transaction{StudentID: s.ID, GroupID: g.ID, StudentName: s.Name, GroupName: g.Name, Amount: 50, Date: day}
	require.NoError(t, m.RecordCheckIn(record, txn))

	got, err := m.GetStudent(s.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPaidCurrent)
	assert.Equal(t, 1, got.AttendanceCount)

	// second check-in for the same day writes nothing
	err = m.RecordCheckIn(
		&models.AttendanceRecord{StudentID: s.ID, GroupID: g.ID, Date: day, Status: models.Present},
		&models.Transaction{StudentID: s.ID, GroupID: g.ID, Amount: 50, Date: day},
	)
	assert.ErrorIs(t, err, ErrConflict)

	txns, err := m.ListTransactions(TransactionFilters{StudentID: s.ID})
	require.NoError(t, err)
	assert.Len(t, txns, 1)

	got, err = m.GetStudent(s.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.AttendanceCount)
}

func TestListTransactionsFilters(t *testing.T) {
	m := NewMemory()
	g := seedGroup(t, m, "Algebra", 50)
	s := seedStudent(t, m, "Amina", "0700000001", &g.ID)

	for day := 1; day <= 5; day++ {
		require.NoError(t, m.CreateTransaction(&models.Transaction{
			StudentID: s.ID,
			GroupID:   g.ID,
			Amount:    10,
			Date:      time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
		}))
	}

	// From inclusive, To exclusive
	txns, err := m.ListTransactions(TransactionFilters{
		From: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, txns, 2)

	txns, err = m.ListTransactions(TransactionFilters{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, txns, 3)

	txns, err = m.ListTransactions(TransactionFilters{GroupID: "nope"})
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestResetPaidFlags(t *testing.T) {
	m := NewMemory()
	g := seedGroup(t, m, "Algebra", 50)
	s := seedStudent(t, m, "Amina", "0700000001", &g.ID)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, m.RecordCheckIn(
		&models.AttendanceRecord{StudentID: s.ID, GroupID: g.ID, Date: day, Status: models.Present},
		&models.Transaction{StudentID: s.ID, GroupID: g.ID, Amount: 50, Date: day},
	))

	require.NoError(t, m.ResetPaidFlags())

	got, err := m.GetStudent(s.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPaidCurrent)
	assert.Equal(t, 1, got.AttendanceCount, "attendance history is not cleared")
}

func TestSetExamScoreUpsert(t *testing.T) {
	m := NewMemory()
	g := seedGroup(t, m, "Algebra", 50)
	e := &models.Exam{Name: "Midterm", GroupID: g.ID, Date: time.Now(), MaxScore: 100}
	require.NoError(t, m.CreateExam(e))

	require.NoError(t, m.SetExamScore(e.ID, "student-1", 70))
	require.NoError(t, m.SetExamScore(e.ID, "student-1", 85))

	got, err := m.GetExam(e.ID)
	require.NoError(t, err)
	require.Len(t, got.Scores, 1)
	assert.Equal(t, 85.0, got.Scores["student-1"])

	assert.ErrorIs(t, m.SetExamScore("missing", "student-1", 1), ErrNotFound)
}

func TestUserUniqueness(t *testing.T) {
	m := NewMemory()
	u := &models.User{Username: "admin", Name: "Admin", Role: models.RoleAdmin, Password: "x", IsActive: true}
	require.NoError(t, m.CreateUser(u))

	dup := &models.User{Username: "admin", Name: "Other", Role: models.RoleManager, Password: "y"}
	assert.ErrorIs(t, m.CreateUser(dup), ErrConflict)

	got, err := m.GetUserByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}
