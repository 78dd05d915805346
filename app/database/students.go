package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

const studentColumns = `id, name, phone, group_id, qr_token, is_paid_current, attendance_count, created_at, updated_at`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	var groupID sql.NullString
	err := row.Scan(
		&s.ID, &s.Name, &s.Phone, &groupID, &s.QRToken,
		&s.IsPaidCurrent, &s.AttendanceCount, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if groupID.Valid {
		s.GroupID = &groupID.String
	}
	return s, nil
}

func (p *Postgres) ListStudents(f store.StudentFilters) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students`
	var conditions []string
	var args []interface{}

	if f.GroupID != "" {
		args = append(args, f.GroupID)
		conditions = append(conditions, fmt.Sprintf("group_id = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR phone LIKE $%d)", len(args), len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY name"

	rows, err := p.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func (p *Postgres) GetStudent(id string) (*models.Student, error) {
	row := p.db.QueryRow(`SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
	s, err := scanStudent(row)
	if err != nil {
		return nil, translateErr(err)
	}
	return s, nil
}

func (p *Postgres) GetStudentByPhone(phone string) (*models.Student, error) {
	row := p.db.QueryRow(`SELECT `+studentColumns+` FROM students WHERE phone = $1`, phone)
	s, err := scanStudent(row)
	if err != nil {
		return nil, translateErr(err)
	}
	return s, nil
}

func (p *Postgres) GetStudentByQRToken(token string) (*models.Student, error) {
	row := p.db.QueryRow(`SELECT `+studentColumns+` FROM students WHERE qr_token = $1`, token)
	s, err := scanStudent(row)
	if err != nil {
		return nil, translateErr(err)
	}
	return s, nil
}

func (p *Postgres) CreateStudent(s *models.Student) error {
	query := `INSERT INTO students (name, phone, group_id, qr_token)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, is_paid_current, attendance_count, created_at, updated_at`
	err := p.db.QueryRow(query, s.Name, s.Phone, s.GroupID, s.QRToken).Scan(
		&s.ID, &s.IsPaidCurrent, &s.AttendanceCount, &s.CreatedAt, &s.UpdatedAt,
	)
	return translateErr(err)
}

// UpdateStudent writes the mutable fields. qr_token is immutable and the
// derived caches are owned by the check-in path, so neither is touched.
func (p *Postgres) UpdateStudent(s *models.Student) error {
	query := `UPDATE students SET name = $1, phone = $2, group_id = $3, updated_at = NOW()
			  WHERE id = $4
			  RETURNING qr_token, is_paid_current, attendance_count, created_at, updated_at`
	err := p.db.QueryRow(query, s.Name, s.Phone, s.GroupID, s.ID).Scan(
		&s.QRToken, &s.IsPaidCurrent, &s.AttendanceCount, &s.CreatedAt, &s.UpdatedAt,
	)
	return translateErr(err)
}

// DeleteStudent removes the student; attendance records follow via the
// ON DELETE CASCADE constraint, transactions are kept.
func (p *Postgres) DeleteStudent(id string) error {
	res, err := p.db.Exec(`DELETE FROM students WHERE id = $1`, id)
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

func (p *Postgres) ResetPaidFlags() error {
	_, err := p.db.Exec(`UPDATE students SET is_paid_current = false WHERE is_paid_current = true`)
	return err
}
