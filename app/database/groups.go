package database

import (
	"github.com/lib/pq"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

func (p *Postgres) ListGroups() ([]*models.Group, error) {
	query := `SELECT g.id, g.name, g.meeting_days, g.meeting_time, g.session_price, g.created_at, g.updated_at,
			  COUNT(s.id)
			  FROM groups g
			  LEFT JOIN students s ON s.group_id = g.id
			  GROUP BY g.id
			  ORDER BY g.name`

	rows, err := p.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		g := &models.Group{}
		err := rows.Scan(
			&g.ID, &g.Name, pq.Array(&g.MeetingDays), &g.MeetingTime,
			&g.SessionPrice, &g.CreatedAt, &g.UpdatedAt, &g.StudentCount,
		)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (p *Postgres) GetGroup(id string) (*models.Group, error) {
	query := `SELECT g.id, g.name, g.meeting_days, g.meeting_time, g.session_price, g.created_at, g.updated_at,
			  (SELECT COUNT(*) FROM students s WHERE s.group_id = g.id)
			  FROM groups g WHERE g.id = $1`

	g := &models.Group{}
	err := p.db.QueryRow(query, id).Scan(
		&g.ID, &g.Name, pq.Array(&g.MeetingDays), &g.MeetingTime,
		&g.SessionPrice, &g.CreatedAt, &g.UpdatedAt, &g.StudentCount,
	)
	if err != nil {
		return nil, translateErr(err)
	}
	return g, nil
}

func (p *Postgres) CreateGroup(g *models.Group) error {
	query := `INSERT INTO groups (name, meeting_days, meeting_time, session_price)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at, updated_at`
	err := p.db.QueryRow(query, g.Name, pq.Array(g.MeetingDays), g.MeetingTime, g.SessionPrice).
		Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	return translateErr(err)
}

func (p *Postgres) UpdateGroup(g *models.Group) error {
	query := `UPDATE groups SET name = $1, meeting_days = $2, meeting_time = $3, session_price = $4, updated_at = NOW()
			  WHERE id = $5
			  RETURNING created_at, updated_at`
	err := p.db.QueryRow(query, g.Name, pq.Array(g.MeetingDays), g.MeetingTime, g.SessionPrice, g.ID).
		Scan(&g.CreatedAt, &g.UpdatedAt)
	return translateErr(err)
}

// DeleteGroup refuses to orphan students: the delete only matches groups
// with no members and reports ErrConflict otherwise.
func (p *Postgres) DeleteGroup(id string) error {
	res, err := p.db.Exec(`DELETE FROM groups g WHERE g.id = $1
						   AND NOT EXISTS (SELECT 1 FROM students s WHERE s.group_id = g.id)`, id)
	if err != nil {
		return translateErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		count, err := p.CountStudentsInGroup(id)
		if err != nil {
			return err
		}
		if count > 0 {
			return store.ErrConflict
		}
		return store.ErrNotFound
	}
	return nil
}

func (p *Postgres) CountStudentsInGroup(id string) (int, error) {
	var count int
	err := p.db.QueryRow(`SELECT COUNT(*) FROM students WHERE group_id = $1`, id).Scan(&count)
	return count, err
}
