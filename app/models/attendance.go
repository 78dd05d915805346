package models

import "time"

// AttendanceRecord marks a student present for a group session on a date.
//
// Absence is implicit: a student with no record for a date is absent.
// At most one record may exist per (student, date).
type AttendanceRecord struct {
	ID        string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID string           `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	GroupID   string           `json:"group_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Date      time.Time        `json:"date" gorm:"not null;index;type:date" validate:"required"`
	Status    AttendanceStatus `json:"status" gorm:"not null;type:varchar(10)" validate:"required,oneof=present absent"`
	CreatedAt time.Time        `json:"created_at" gorm:"autoCreateTime"`
}

// DateString returns the record's calendar date in YYYY-MM-DD form.
func (r *AttendanceRecord) DateString() string {
	return r.Date.Format(DateLayout)
}
