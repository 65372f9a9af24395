package models

import "strings"

// GroupMode defines how a course group is delivered and billed.
type GroupMode string

const (
	OnlineGroup          GroupMode = "online_group"
	OnlineIndividual     GroupMode = "online_individual"
	PresentialGroup      GroupMode = "presential_group"
	PresentialIndividual GroupMode = "presential_individual"
)

// IsIndividual reports whether the mode is billed per hour.
func (m GroupMode) IsIndividual() bool {
	return strings.Contains(string(m), "individual")
}

// IsOnline reports whether the course is delivered online.
func (m GroupMode) IsOnline() bool {
	return strings.Contains(string(m), "online")
}

// Valid reports whether the mode is one of the four supported values.
func (m GroupMode) Valid() bool {
	switch m {
	case OnlineGroup, OnlineIndividual, PresentialGroup, PresentialIndividual:
		return true
	}
	return false
}

// PricingEra selects which tariff table applies to a group.
type PricingEra string

const (
	OldPricing PricingEra = "old"
	NewPricing PricingEra = "new"
)

// PaymentMethod defines how a payment was collected.
type PaymentMethod string

const (
	CashPayment   PaymentMethod = "cash"
	OnlinePayment PaymentMethod = "online"
)

// Valid reports whether the method is a supported value.
func (p PaymentMethod) Valid() bool {
	return p == CashPayment || p == OnlinePayment
}

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
	Excused AttendanceStatus = "excused"
)

// Role names used across the app.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
)
