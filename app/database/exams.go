package database

import (
	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

func (p *Postgres) ListExams(groupID string) ([]*models.Exam, error) {
	query := `SELECT id, name, group_id, date, max_score, created_at, updated_at FROM exams`
	var args []interface{}
	if groupID != "" {
		query += ` WHERE group_id = $1`
		args = append(args, groupID)
	}
	query += ` ORDER BY date DESC`

	rows, err := p.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		e := &models.Exam{}
		err := rows.Scan(&e.ID, &e.Name, &e.GroupID, &e.Date, &e.MaxScore, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, e := range exams {
		if e.Scores, err = p.examScores(e.ID); err != nil {
			return nil, err
		}
	}
	return exams, nil
}

func (p *Postgres) GetExam(id string) (*models.Exam, error) {
	query := `SELECT id, name, group_id, date, max_score, created_at, updated_at FROM exams WHERE id = $1`

	e := &models.Exam{}
	err := p.db.QueryRow(query, id).Scan(&e.ID, &e.Name, &e.GroupID, &e.Date, &e.MaxScore, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	if e.Scores, err = p.examScores(id); err != nil {
		return nil, err
	}
	return e, nil
}

func (p *Postgres) examScores(examID string) (map[string]float64, error) {
	rows, err := p.db.Query(`SELECT student_id, score FROM exam_scores WHERE exam_id = $1`, examID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make(map[string]float64)
	for rows.Next() {
		var studentID string
		var score float64
		if err := rows.Scan(&studentID, &score); err != nil {
			return nil, err
		}
		scores[studentID] = score
	}
	return scores, rows.Err()
}

func (p *Postgres) CreateExam(e *models.Exam) error {
	query := `INSERT INTO exams (name, group_id, date, max_score)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at, updated_at`
	err := p.db.QueryRow(query, e.Name, e.GroupID, e.Date, e.MaxScore).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return translateErr(err)
}

func (p *Postgres) UpdateExam(e *models.Exam) error {
	query := `UPDATE exams SET name = $1, group_id = $2, date = $3, max_score = $4, updated_at = NOW()
			  WHERE id = $5
			  RETURNING created_at, updated_at`
	err := p.db.QueryRow(query, e.Name, e.GroupID, e.Date, e.MaxScore, e.ID).Scan(&e.CreatedAt, &e.UpdatedAt)
	return translateErr(err)
}

func (p *Postgres) DeleteExam(id string) error {
	res, err := p.db.Exec(`DELETE FROM exams WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// SetExamScore upserts one student's score for an exam.
func (p *Postgres) SetExamScore(examID, studentID string, score float64) error {
	res, err := p.db.Exec(`INSERT INTO exam_scores (exam_id, student_id, score)
						   VALUES ($1, $2, $3)
						   ON CONFLICT (exam_id, student_id)
						   DO UPDATE SET score = EXCLUDED.score, updated_at = NOW()`,
		examID, studentID, score)
	if err != nil {
		// FK violation means the exam is gone
		if translated := translateErr(err); translated == store.ErrConflict {
			return store.ErrNotFound
		}
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}
