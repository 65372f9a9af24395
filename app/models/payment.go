package models

import "time"

// Payment is one ledger entry. Payments are immutable: there is no update
// or delete path, only inserts. Every derived balance (amount paid,
// remaining, cash in register) is computed from this table.
type Payment struct {
	ID            string        `json:"id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	StudentID     string        `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	EnrollmentID  string        `json:"enrollment_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount        float64       `json:"amount" gorm:"not null;type:numeric" validate:"required,gt=0"`
	PaymentMethod PaymentMethod `json:"payment_method" gorm:"not null;type:varchar(20)" validate:"required"`
	ReceiptLink   *string       `json:"receipt_link,omitempty"`
	PaymentDate   time.Time     `json:"payment_date" gorm:"not null;index"`

	Student    *Student    `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Enrollment *Enrollment `json:"enrollment,omitempty" gorm:"foreignKey:EnrollmentID;references:ID"`
}
