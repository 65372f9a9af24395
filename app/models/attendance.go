package models

import "time"

// Attendance records one student's presence for one class date. One row
// per (enrollment, date); re-submitting a sheet updates the existing row.
type Attendance struct {
	ID           string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EnrollmentID string           `json:"enrollment_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Date         CustomTime       `json:"date" gorm:"not null;index;type:date" validate:"required"`
	Status       AttendanceStatus `json:"status" gorm:"not null;type:varchar(20)" validate:"required,oneof=present absent late excused"`
	RecordedBy   string           `json:"recorded_by" gorm:"not null"`
	CreatedAt    time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time        `json:"updated_at" gorm:"autoUpdateTime"`

	Enrollment *Enrollment `json:"enrollment,omitempty" gorm:"foreignKey:EnrollmentID;references:ID"`
}
