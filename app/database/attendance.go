package database

import (
	"time"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

func (p *Postgres) GetAttendance(studentID string, date time.Time) (*models.AttendanceRecord, error) {
	query := `SELECT id, student_id, group_id, date, status, created_at
			  FROM attendance_records WHERE student_id = $1 AND date = $2`

	r := &models.AttendanceRecord{}
	err := p.db.QueryRow(query, studentID, date).Scan(
		&r.ID, &r.StudentID, &r.GroupID, &r.Date, &r.Status, &r.CreatedAt,
	)
	if err != nil {
		return nil, translateErr(err)
	}
	return r, nil
}

func (p *Postgres) ListAttendanceByGroupAndDate(groupID string, date time.Time) ([]*models.AttendanceRecord, error) {
	query := `SELECT id, student_id, group_id, date, status, created_at
			  FROM attendance_records WHERE group_id = $1 AND date = $2`

	rows, err := p.db.Query(query, groupID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		r := &models.AttendanceRecord{}
		err := rows.Scan(&r.ID, &r.StudentID, &r.GroupID, &r.Date, &r.Status, &r.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (p *Postgres) CreateAttendance(r *models.AttendanceRecord) error {
	query := `INSERT INTO attendance_records (student_id, group_id, date, status)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at`
	err := p.db.QueryRow(query, r.StudentID, r.GroupID, r.Date, r.Status).Scan(&r.ID, &r.CreatedAt)
	return translateErr(err)
}

func (p *Postgres) DeleteAttendance(studentID string, date time.Time) error {
	res, err := p.db.Exec(`DELETE FROM attendance_records WHERE student_id = $1 AND date = $2`, studentID, date)
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

// RecordCheckIn writes the presence record, the ledger entry and the
// student's derived caches in one transaction. The unique constraint on
// (student_id, date) rejects a second same-day check-in, rolling the
// whole unit back.
func (p *Postgres) RecordCheckIn(r *models.AttendanceRecord, t *models.Transaction) error {
	tx, err := p.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	queryRecord := `INSERT INTO attendance_records (student_id, group_id, date, status)
					VALUES ($1, $2, $3, $4)
					RETURNING id, created_at`
	err = tx.QueryRow(queryRecord, r.StudentID, r.GroupID, r.Date, r.Status).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return translateErr(err)
	}

	queryTxn := `INSERT INTO transactions (student_id, group_id, student_name, group_name, amount, date)
				 VALUES ($1, $2, $3, $4, $5, $6)
				 RETURNING id, created_at`
	err = tx.QueryRow(queryTxn, t.StudentID, t.GroupID, t.StudentName, t.GroupName, t.Amount, t.Date).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return translateErr(err)
	}

	queryCaches := `UPDATE students
					SET is_paid_current = true, attendance_count = attendance_count + 1, updated_at = NOW()
					WHERE id = $1`
	if _, err := tx.Exec(queryCaches, r.StudentID); err != nil {
		return translateErr(err)
	}

	return tx.Commit()
}
