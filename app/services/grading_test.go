package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

func newExam(t *testing.T, st *store.Memory, groupID string, maxScore float64) *models.Exam {
	t.Helper()
	e := &models.Exam{
		Name:     "Midterm",
		GroupID:  groupID,
		Date:     time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		MaxScore: maxScore,
	}
	require.NoError(t, st.CreateExam(e))
	return e
}

func TestSetScoreBounds(t *testing.T) {
	st := store.NewMemory()
	svc := NewGrading(st)
	g := newGroup(t, st, "Algebra", 50)
	s := newStudent(t, st, "Amina", "0700000001", &g.ID)
	e := newExam(t, st, g.ID, 100)

	// both ends of [0, max] are valid
	_, err := svc.SetScore(e.ID, s.ID, 0)
	assert.NoError(t, err)
	_, err = svc.SetScore(e.ID, s.ID, 100)
	assert.NoError(t, err)

	_, err = svc.SetScore(e.ID, s.ID, -1)
	assert.ErrorIs(t, err, ErrScoreOutOfRange)
	_, err = svc.SetScore(e.ID, s.ID, 100.5)
	assert.ErrorIs(t, err, ErrScoreOutOfRange)
}

func TestSetScoreOverwrites(t *testing.T) {
	st := store.NewMemory()
	svc := NewGrading(st)
	g := newGroup(t, st, "Algebra", 50)
	s := newStudent(t, st, "Amina", "0700000001", &g.ID)
	e := newExam(t, st, g.ID, 100)

	_, err := svc.SetScore(e.ID, s.ID, 70)
	require.NoError(t, err)
	exam, err := svc.SetScore(e.ID, s.ID, 85)
	require.NoError(t, err)

	require.Len(t, exam.Scores, 1)
	assert.Equal(t, 85.0, exam.Scores[s.ID])
}

func TestSetScoreUnknownExamOrStudent(t *testing.T) {
	st := store.NewMemory()
	svc := NewGrading(st)
	g := newGroup(t, st, "Algebra", 50)
	s := newStudent(t, st, "Amina", "0700000001", &g.ID)
	e := newExam(t, st, g.ID, 100)

	_, err := svc.SetScore("missing", s.ID, 50)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.SetScore(e.ID, "missing", 50)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStats(t *testing.T) {
	st := store.NewMemory()
	svc := NewGrading(st)
	g := newGroup(t, st, "Algebra", 50)
	a := newStudent(t, st, "Amina", "0700000001", &g.ID)
	b := newStudent(t, st, "Bakr", "0700000002", &g.ID)
	c := newStudent(t, st, "Chris", "0700000003", &g.ID)
	e := newExam(t, st, g.ID, 100)

	_, err := svc.SetScore(e.ID, a.ID, 60)
	require.NoError(t, err)
	_, err = svc.SetScore(e.ID, b.ID, 90)
	require.NoError(t, err)
	_, err = svc.SetScore(e.ID, c.ID, 75)
	require.NoError(t, err)

	stats, err := svc.Stats(e.ID)
	require.NoError(t, err)
	assert.Equal(t, 75.0, stats.Mean)
	assert.Equal(t, 90.0, stats.Max)
	assert.Equal(t, 60.0, stats.Min)
	assert.Equal(t, 3, stats.Count)
}

func TestStatsExcludesUnscored(t *testing.T) {
	st := store.NewMemory()
	svc := NewGrading(st)
	g := newGroup(t, st, "Algebra", 50)
	a := newStudent(t, st, "Amina", "0700000001", &g.ID)
	newStudent(t, st, "Bakr", "0700000002", &g.ID) // never scored
	e := newExam(t, st, g.ID, 100)

	_, err := svc.SetScore(e.ID, a.ID, 80)
	require.NoError(t, err)

	stats, err := svc.Stats(e.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, 80.0, stats.Mean, "unscored students are excluded, not counted as zero")
}

func TestStatsNoScores(t *testing.T) {
	st := store.NewMemory()
	svc := NewGrading(st)
	g := newGroup(t, st, "Algebra", 50)
	e := newExam(t, st, g.ID, 100)

	_, err := svc.Stats(e.ID)
	assert.ErrorIs(t, err, ErrNoScores)

	_, err = svc.Stats("missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
