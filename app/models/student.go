package models

import "time"

// Student represents an enrolled student.
//
// IsPaidCurrent and AttendanceCount are derived caches maintained by the
// check-in path (and the nightly paid-flag reset); they are never written
// directly by API callers.
type Student struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name            string    `json:"name" gorm:"not null" validate:"required"`
	Phone           string    `json:"phone" gorm:"size:15;uniqueIndex;not null" validate:"required"`
	GroupID         *string   `json:"group_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	QRToken         string    `json:"qr_token" gorm:"size:20;uniqueIndex;not null"` // immutable once issued
	IsPaidCurrent   bool      `json:"is_paid_current" gorm:"default:false"`
	AttendanceCount int       `json:"attendance_count" gorm:"default:0"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Group *Group `json:"group,omitempty" gorm:"foreignKey:GroupID;references:ID"`
}
