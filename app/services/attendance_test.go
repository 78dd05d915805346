package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

func newGroup(t *testing.T, st *store.Memory, name string, price float64) *models.Group {
	t.Helper()
	g := &models.Group{
		Name:         name,
		MeetingDays:  []string{"monday"},
		MeetingTime:  "16:00",
		SessionPrice: price,
	}
	require.NoError(t, st.CreateGroup(g))
	return g
}

func newStudent(t *testing.T, st *store.Memory, name, phone string, groupID *string) *models.Student {
	t.Helper()
	s := &models.Student{
		Name:    name,
		Phone:   phone,
		GroupID: groupID,
		QRToken: "STU-" + phone,
	}
	require.NoError(t, st.CreateStudent(s))
	return s
}

func TestResolvePresencePartition(t *testing.T) {
	st := store.NewMemory()
	svc := NewAttendance(st)
	g := newGroup(t, st, "Algebra", 50)
	a := newStudent(t, st, "Amina", "0700000001", &g.ID)
	b := newStudent(t, st, "Bakr", "0700000002", &g.ID)
	c := newStudent(t, st, "Chris", "0700000003", &g.ID)

	day := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)
	require.NoError(t, st.CreateAttendance(&models.AttendanceRecord{
		StudentID: a.ID, GroupID: g.ID, Date: DateOnly(day), Status: models.Present,
	}))

	sheet, err := svc.ResolvePresence(g.ID, day)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", sheet.Date)
	require.Len(t, sheet.Present, 1)
	assert.Equal(t, a.ID, sheet.Present[0].ID)
	assert.Len(t, sheet.Absent, 2)

	// every student appears exactly once
	seen := map[string]int{}
	for _, s := range append(sheet.Present, sheet.Absent...) {
		seen[s.ID]++
	}
	assert.Equal(t, map[string]int{a.ID: 1, b.ID: 1, c.ID: 1}, seen)
}

func TestResolvePresenceUnknownGroup(t *testing.T) {
	st := store.NewMemory()
	svc := NewAttendance(st)

	_, err := svc.ResolvePresence("missing", time.Now())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestResolvePresenceEmptyGroup(t *testing.T) {
	st := store.NewMemory()
	svc := NewAttendance(st)
	g := newGroup(t, st, "Algebra", 50)

	sheet, err := svc.ResolvePresence(g.ID, time.Now())
	require.NoError(t, err)
	assert.NotNil(t, sheet.Present)
	assert.NotNil(t, sheet.Absent)
	assert.Empty(t, sheet.Present)
	assert.Empty(t, sheet.Absent)
}

func TestToggleStatusSelfInverse(t *testing.T) {
	st := store.NewMemory()
	svc := NewAttendance(st)
	g := newGroup(t, st, "Algebra", 50)
	s := newStudent(t, st, "Amina", "0700000001", &g.ID)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	record, err := svc.ToggleStatus(s.ID, g.ID, day)
	require.NoError(t, err)
	assert.Equal(t, models.Present, record.Status)

	// only present rows are ever stored
	stored, err := st.GetAttendance(s.ID, day)
	require.NoError(t, err)
	assert.Equal(t, models.Present, stored.Status)

	sheet, err := svc.ResolvePresence(g.ID, day)
	require.NoError(t, err)
	assert.Len(t, sheet.Present, 1)

	record, err = svc.ToggleStatus(s.ID, g.ID, day)
	require.NoError(t, err)
	assert.Equal(t, models.Absent, record.Status)

	// the present row is gone, the student is implicitly absent again
	_, err = st.GetAttendance(s.ID, day)
	assert.ErrorIs(t, err, store.ErrNotFound)

	sheet, err = svc.ResolvePresence(g.ID, day)
	require.NoError(t, err)
	assert.Empty(t, sheet.Present)
	assert.Len(t, sheet.Absent, 1)
}

func TestToggleDoesNotBill(t *testing.T) {
	st := store.NewMemory()
	svc := NewAttendance(st)
	g := newGroup(t, st, "Algebra", 50)
	s := newStudent(t, st, "Amina", "0700000001", &g.ID)

	_, err := svc.ToggleStatus(s.ID, g.ID, time.Now())
	require.NoError(t, err)

	txns, err := st.ListTransactions(store.TransactionFilters{})
	require.NoError(t, err)
	assert.Empty(t, txns)
}
