package models

import "time"

// User is a staff account for the admin dashboard.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null" validate:"required"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	Phone     string    `json:"phone" gorm:"size:15"`
	Role      Role      `json:"role" gorm:"not null;type:varchar(20)" validate:"required,oneof=admin manager"`
	Password  string    `json:"-" gorm:"not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
