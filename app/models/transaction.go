package models

import "time"

// Transaction is an append-only ledger entry for money collected against
// one attendance event. StudentName and GroupName are snapshots taken at
// creation time so later renames do not rewrite history. Transactions are
// never updated or deleted; corrections are new compensating entries.
type Transaction struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID   string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	GroupID     string    `json:"group_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StudentName string    `json:"student_name" gorm:"not null"`
	GroupName   string    `json:"group_name" gorm:"not null"`
	Amount      float64   `json:"amount" gorm:"not null;type:decimal(10,2)" validate:"gte=0"`
	Date        time.Time `json:"date" gorm:"not null;index;type:date"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}
