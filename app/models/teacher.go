package models

import "time"

// Teacher represents an instructor employed by the institute.
type Teacher struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	FirstName   string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName    string     `json:"last_name" gorm:"not null" validate:"required"`
	Email       string     `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	PhoneNumber *string    `json:"phone_number,omitempty" gorm:"type:varchar(20)"`
	Specialty   *string    `json:"specialty,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Groups []*Group `json:"groups,omitempty" gorm:"many2many:group_teacher;"`
}

// FullName returns the teacher's display name.
func (t *Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}
