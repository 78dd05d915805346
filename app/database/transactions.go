package database

import (
	"fmt"
	"strings"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

// The transactions table is append-only: the store exposes no update or
// delete for ledger entries.

func (p *Postgres) ListTransactions(f store.TransactionFilters) ([]*models.Transaction, error) {
	query := `SELECT id, student_id, group_id, student_name, group_name, amount, date, created_at
			  FROM transactions`
	var conditions []string
	var args []interface{}

	if f.GroupID != "" {
		args = append(args, f.GroupID)
		conditions = append(conditions, fmt.Sprintf("group_id = $%d", len(args)))
	}
	if f.StudentID != "" {
		args = append(args, f.StudentID)
		conditions = append(conditions, fmt.Sprintf("student_id = $%d", len(args)))
	}
	if !f.From.IsZero() {
		args = append(args, f.From)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if !f.To.IsZero() {
		args = append(args, f.To)
		conditions = append(conditions, fmt.Sprintf("date < $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := p.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		t := &models.Transaction{}
		err := rows.Scan(
			&t.ID, &t.StudentID, &t.GroupID, &t.StudentName, &t.GroupName,
			&t.Amount, &t.Date, &t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (p *Postgres) CreateTransaction(t *models.Transaction) error {
	query := `INSERT INTO transactions (student_id, group_id, student_name, group_name, amount, date)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at`
	err := p.db.QueryRow(query, t.StudentID, t.GroupID, t.StudentName, t.GroupName, t.Amount, t.Date).
		Scan(&t.ID, &t.CreatedAt)
	return translateErr(err)
}
