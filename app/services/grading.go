package services

import (
	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

// Grading maintains per-student scores against exam definitions.
type Grading struct {
	store store.Store
}

func NewGrading(st store.Store) *Grading {
	return &Grading{store: st}
}

// SetScore upserts a student's score for an exam. Scores are bounded to
// [0, maxScore], both ends inclusive.
func (s *Grading) SetScore(examID, studentID string, score float64) (*models.Exam, error) {
	exam, err := s.store.GetExam(examID)
	if err != nil {
		return nil, err
	}
	if score < 0 || score > exam.MaxScore {
		return nil, ErrScoreOutOfRange
	}
	if _, err := s.store.GetStudent(studentID); err != nil {
		return nil, err
	}
	if err := s.store.SetExamScore(examID, studentID, score); err != nil {
		return nil, err
	}
	return s.store.GetExam(examID)
}

// Stats aggregates mean, max and min over the students who have a
// recorded score. Unscored students are excluded, not counted as zero.
// An exam with no scores yields ErrNoScores rather than a division by
// zero.
func (s *Grading) Stats(examID string) (*models.ExamStats, error) {
	exam, err := s.store.GetExam(examID)
	if err != nil {
		return nil, err
	}
	if len(exam.Scores) == 0 {
		return nil, ErrNoScores
	}

	stats := &models.ExamStats{Count: len(exam.Scores)}
	first := true
	sum := 0.0
	for _, score := range exam.Scores {
		sum += score
		if first || score > stats.Max {
			stats.Max = score
		}
		if first || score < stats.Min {
			stats.Min = score
		}
		first = false
	}
	stats.Mean = sum / float64(stats.Count)
	return stats, nil
}
