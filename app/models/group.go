package models

import "time"

// Group represents a recurring class cohort with a fixed per-session price.
type Group struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name         string    `json:"name" gorm:"not null" validate:"required"`
	MeetingDays  []string  `json:"meeting_days" gorm:"type:text[]" validate:"required,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	MeetingTime  string    `json:"meeting_time" gorm:"size:20" validate:"required"`
	SessionPrice float64   `json:"session_price" gorm:"not null;type:decimal(10,2)" validate:"gte=0"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	StudentCount int `json:"student_count,omitempty" gorm:"-"`
}
