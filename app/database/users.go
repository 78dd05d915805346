package database

import (
	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

const userColumns = `id, username, name, phone, role, password, is_active, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID, &u.Username, &u.Name, &u.Phone, &u.Role,
		&u.Password, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (p *Postgres) ListUsers() ([]*models.User, error) {
	rows, err := p.db.Query(`SELECT ` + userColumns + ` FROM users ORDER BY username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (p *Postgres) GetUser(id string) (*models.User, error) {
	row := p.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, translateErr(err)
	}
	return u, nil
}

func (p *Postgres) GetUserByUsername(username string) (*models.User, error) {
	row := p.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	u, err := scanUser(row)
	if err != nil {
		return nil, translateErr(err)
	}
	return u, nil
}

func (p *Postgres) CreateUser(u *models.User) error {
	query := `INSERT INTO users (username, name, phone, role, password, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`
	err := p.db.QueryRow(query, u.Username, u.Name, u.Phone, u.Role, u.Password, u.IsActive).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	return translateErr(err)
}

func (p *Postgres) UpdateUser(u *models.User) error {
	query := `UPDATE users SET username = $1, name = $2, phone = $3, role = $4, password = $5, is_active = $6, updated_at = NOW()
			  WHERE id = $7
			  RETURNING created_at, updated_at`
	err := p.db.QueryRow(query, u.Username, u.Name, u.Phone, u.Role, u.Password, u.IsActive, u.ID).
		Scan(&u.CreatedAt, &u.UpdatedAt)
	return translateErr(err)
}

func (p *Postgres) DeleteUser(id string) error {
	res, err := p.db.Exec(`DELETE FROM users WHERE id = $1`, id)
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
