package models

import "time"

// Enrollment links one student to one group. The course fee is a snapshot
// computed at creation time and never recomputed afterwards, even if the
// pricing table or the student's registration-fee status changes later.
type Enrollment struct {
	ID                      string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID               string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	GroupID                 string    `json:"group_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Level                   int       `json:"level" gorm:"not null;default:1" validate:"required,min=1"`
	TotalCourseFee          float64   `json:"total_course_fee" gorm:"not null;type:numeric"`
	IncludesRegistrationFee bool      `json:"includes_registration_fee" gorm:"not null;default:false"`
	Active                  bool      `json:"enrollment_active" gorm:"not null;default:false;index"`
	EnrollmentDate          time.Time `json:"enrollment_date" gorm:"autoCreateTime"`

	Student  *Student   `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Group    *Group     `json:"group,omitempty" gorm:"foreignKey:GroupID;references:ID"`
	Payments []*Payment `json:"payments,omitempty" gorm:"foreignKey:EnrollmentID;references:ID"`
}
