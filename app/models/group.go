package models

import "time"

// Group represents a course offering: one language at one level in one mode.
type Group struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name           string     `json:"name" gorm:"not null" validate:"required"`
	LanguageID     string     `json:"language_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Level          int        `json:"level" gorm:"not null;default:1" validate:"required,min=1"`
	Mode           GroupMode  `json:"mode" gorm:"not null;type:varchar(30)" validate:"required"`
	DurationMonths int        `json:"duration_months" gorm:"not null;default:3" validate:"required,min=1"`
	MinStudents    int        `json:"min_students" gorm:"not null;default:5" validate:"required,min=1"`
	IsOldPricing   bool       `json:"is_old_pricing" gorm:"not null;default:false"`
	StartDate      *time.Time `json:"start_date,omitempty" gorm:"type:date"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Language *Language  `json:"language,omitempty" gorm:"foreignKey:LanguageID;references:ID"`
	Teachers []*Teacher `json:"teachers,omitempty" gorm:"many2many:group_teacher;"`
}

// PricingEra returns which tariff table applies to this group.
func (g *Group) PricingEra() PricingEra {
	if g.IsOldPricing {
		return OldPricing
	}
	return NewPricing
}
