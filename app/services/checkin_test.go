package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestLookupStudentPriority(t *testing.T) {
	st := store.NewMemory()
	svc := NewCheckIn(st)
	g := newGroup(t, st, "Algebra", 50)
	s := newStudent(t, st, "Amina", "0700000001", &g.ID)

	byPhone, err := svc.LookupStudent("0700000001")
	require.NoError(t, err)
	assert.Equal(t, s.ID, byPhone.ID)

	byID, err := svc.LookupStudent(s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, byID.ID)

	byToken, err := svc.LookupStudent(s.QRToken)
	require.NoError(t, err)
	assert.Equal(t, s.ID, byToken.ID)

	_, err = svc.LookupStudent("no-such-student")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.LookupStudent("   ")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestConfirmAttendanceBillsOnce(t *testing.T) {
	st := store.NewMemory()
	svc := NewCheckIn(st)
	svc.Now = fixedClock(time.Date(2026, 3, 2, 15, 4, 0, 0, time.UTC))
	g := newGroup(t, st, "Algebra", 50)
	s := newStudent(t, st, "Amina", "0700000001", &g.ID)

	record, txn, err := svc.ConfirmAttendance(s.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Present, record.Status)
	assert.Equal(t, "2026-03-02", record.DateString())
	assert.Equal(t, 50.0, txn.Amount)
	assert.Equal(t, "Amina", txn.StudentName)
	assert.Equal(t, "Algebra", txn.GroupName)

	got, err := st.GetStudent(s.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPaidCurrent)
	assert.Equal(t, 1, got.AttendanceCount)

	// a second confirmation on the same day is rejected and writes nothing
	_, _, err = svc.ConfirmAttendance(s.ID)
	assert.ErrorIs(t, err, ErrAlreadyRecorded)

	txns, err := st.ListTransactions(store.TransactionFilters{})
	require.NoError(t, err)
	assert.Len(t, txns, 1)

	got, err = st.GetStudent(s.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.AttendanceCount)
}

func TestConfirmAttendanceNextDay(t *testing.T) {
	st := store.NewMemory()
	svc := NewCheckIn(st)
	svc.Now = fixedClock(time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC))
	g := newGroup(t, st, "Algebra", 50)
	s := newStudent(t, st, "Amina", "0700000001", &g.ID)

	_, _, err := svc.ConfirmAttendance(s.ID)
	require.NoError(t, err)

	svc.Now = fixedClock(time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC))
	_, _, err = svc.ConfirmAttendance(s.ID)
	require.NoError(t, err)

	got, err := st.GetStudent(s.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.AttendanceCount)
}

func TestConfirmAttendanceNoGroup(t *testing.T) {
	st := store.NewMemory()
	svc := NewCheckIn(st)
	s := newStudent(t, st, "Amina", "0700000001", nil)

	_, _, err := svc.ConfirmAttendance(s.ID)
	assert.ErrorIs(t, err, ErrNoGroup)

	txns, err := st.ListTransactions(store.TransactionFilters{})
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestConfirmAttendanceSnapshotsPrice(t *testing.T) {
	st := store.NewMemory()
	svc := NewCheckIn(st)
	svc.Now = fixedClock(time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC))
	g := newGroup(t, st, "Algebra", 50)
	s := newStudent(t, st, "Amina", "0700000001", &g.ID)

	_, txn, err := svc.ConfirmAttendance(s.ID)
	require.NoError(t, err)
	require.Equal(t, 50.0, txn.Amount)

	g.SessionPrice = 80
	require.NoError(t, st.UpdateGroup(g))

	txns, err := st.ListTransactions(store.TransactionFilters{})
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, 50.0, txns[0].Amount, "stored amount is a snapshot, not a reference")
}

func TestConcurrentConfirmsSingleWinner(t *testing.T) {
	st := store.NewMemory()
	svc := NewCheckIn(st)
	svc.Now = fixedClock(time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC))
	g := newGroup(t, st, "Algebra", 50)
	s := newStudent(t, st, "Amina", "0700000001", &g.ID)

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.ConfirmAttendance(s.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, already int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, ErrAlreadyRecorded):
			already++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, already)

	txns, err := st.ListTransactions(store.TransactionFilters{})
	require.NoError(t, err)
	assert.Len(t, txns, 1)

	got, err := st.GetStudent(s.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.AttendanceCount)
}
