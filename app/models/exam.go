package models

import "time"

// Exam represents an exam definition for a group. Scores maps studentID
// to the recorded score; unscored students simply have no entry.
type Exam struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	GroupID   string    `json:"group_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Date      time.Time `json:"date" gorm:"not null;type:date" validate:"required"`
	MaxScore  float64   `json:"max_score" gorm:"not null" validate:"gt=0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Scores map[string]float64 `json:"scores" gorm:"-"`
}

// ExamStats holds aggregate statistics over an exam's recorded scores.
type ExamStats struct {
	Mean  float64 `json:"mean"`
	Max   float64 `json:"max"`
	Min   float64 `json:"min"`
	Count int     `json:"count"`
}
