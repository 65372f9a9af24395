package models

import "time"

// Student represents an enrolled or prospective student of the institute.
type Student struct {
	ID                  string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentCode         string     `json:"student_code" gorm:"uniqueIndex;not null"`
	FirstName           string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName            string     `json:"last_name" gorm:"not null" validate:"required"`
	Email               string     `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	PhoneNumber         *string    `json:"phone_number,omitempty" gorm:"type:varchar(20)"`
	IDDocumentLink      *string    `json:"id_document_link,omitempty"`
	BirthDate           *time.Time `json:"birth_date,omitempty" gorm:"type:date"`
	YearShort           int        `json:"year_short" gorm:"not null" validate:"required,min=20,max=99"`
	Number              int        `json:"number" gorm:"not null"`
	RegistrationFeePaid bool       `json:"registration_fee_paid" gorm:"not null;default:false"`
	CreatedAt           time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt           time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Enrollments []*Enrollment `json:"enrollments,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Payments    []*Payment    `json:"payments,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
