package models

import "time"

// SystemSigner marks the seed row created at first migration. Statistics
// views exclude it; balance reconstruction does not.
const SystemSigner = "System"

// CashRegisterReset is a "signature" checkpoint over the physical cash
// register: a counted total, an amount withdrawn, and the amount left to
// carry forward. Rows are append-only; an erroneous signature can only be
// compensated by a later one.
type CashRegisterReset struct {
	ID               string    `json:"id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	ResetDate        time.Time `json:"reset_date" gorm:"not null;index"`
	ResetBy          string    `json:"reset_by" gorm:"not null" validate:"required"`
	AmountInRegister float64   `json:"amount_in_register" gorm:"not null;type:numeric"`
	AmountTaken      float64   `json:"amount_taken" gorm:"not null;type:numeric" validate:"gte=0"`
	AmountLeft       float64   `json:"amount_left" gorm:"not null;type:numeric"`
	Notes            *string   `json:"notes,omitempty"`
}
