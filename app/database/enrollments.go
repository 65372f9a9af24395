package database

import (
	"database/sql"
	"fmt"

	"github.com/yanis-san/torii-auto/app/models"
	"github.com/yanis-san/torii-auto/app/tuition"
)

// ErrUnknownPricing is reported when the pricing table has no entry for
// the group's language/mode/era combination. Without this guard a
// zero-fee enrollment would satisfy every activation rule on the first
// payment.
var ErrUnknownPricing = fmt.Errorf("no price configured for this language and mode")

// NewEnrollment carries the validated input for enrollment creation.
type NewEnrollment struct {
	StudentID          string
	GroupID            string
	Level              int
	Hours              int
	PricingEraOverride *models.PricingEra
	FirstPayment       float64
	PaymentMethod      models.PaymentMethod
	ReceiptLink        *string
}

// CreateEnrollment computes the fee snapshot, inserts the enrollment and
// records the first payment, all in one transaction. The activation
// guard runs on the payment inside the same transaction, so a
// sufficient first payment activates the enrollment atomically.
func CreateEnrollment(db *sql.DB, req NewEnrollment) (*models.Enrollment, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var languageName, mode string
	var isOldPricing bool
	err = tx.QueryRow(`SELECT l.name, g.mode, g.is_old_pricing
					   FROM groups g JOIN languages l ON g.language_id = l.id
					   WHERE g.id = $1`, req.GroupID).Scan(&languageName, &mode, &isOldPricing)
	if err != nil {
		return nil, err
	}

	var registrationFeePaid bool
	err = tx.QueryRow(`SELECT registration_fee_paid FROM students WHERE id = $1`, req.StudentID).
		Scan(&registrationFeePaid)
	if err != nil {
		return nil, err
	}

	groupMode := models.GroupMode(mode)
	era := models.NewPricing
	if isOldPricing {
		era = models.OldPricing
	}
	if req.PricingEraOverride != nil {
		era = *req.PricingEraOverride
	}

	baseFee := tuition.CalculateCourseFee(languageName, groupMode, era, req.Hours)
	if baseFee == 0 {
		return nil, ErrUnknownPricing
	}

	totalFee, includesRegistrationFee := tuition.ComputeTotalFee(baseFee, registrationFeePaid)

	enrollment := &models.Enrollment{
		StudentID:               req.StudentID,
		GroupID:                 req.GroupID,
		Level:                   req.Level,
		TotalCourseFee:          totalFee,
		IncludesRegistrationFee: includesRegistrationFee,
	}

	err = tx.QueryRow(`INSERT INTO enrollments (student_id, group_id, level, total_course_fee, includes_registration_fee)
					   VALUES ($1, $2, $3, $4, $5)
					   RETURNING id, enrollment_active, enrollment_date`,
		req.StudentID, req.GroupID, req.Level, totalFee, includesRegistrationFee,
	).Scan(&enrollment.ID, &enrollment.Active, &enrollment.EnrollmentDate)
	if err != nil {
		return nil, fmt.Errorf("failed to insert enrollment: %v", err)
	}

	if req.FirstPayment > 0 {
		payment := &models.Payment{
			StudentID:     req.StudentID,
			EnrollmentID:  enrollment.ID,
			Amount:        req.FirstPayment,
			PaymentMethod: req.PaymentMethod,
			ReceiptLink:   req.ReceiptLink,
		}
		if err := recordPaymentTx(tx, payment); err != nil {
			return nil, err
		}
		// reflect the activation outcome in the returned enrollment
		err = tx.QueryRow(`SELECT enrollment_active FROM enrollments WHERE id = $1`, enrollment.ID).
			Scan(&enrollment.Active)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// EnrollmentWithDetails decorates an enrollment with its student, group
// and derived payment totals for list screens. Paid and Remaining are
// always computed from the payment ledger, never stored.
type EnrollmentWithDetails struct {
	models.Enrollment
	StudentName  string  `json:"student_name"`
	StudentCode  string  `json:"student_code"`
	GroupName    string  `json:"group_name"`
	GroupMode    string  `json:"group_mode"`
	LanguageName string  `json:"language_name"`
	TotalPaid    float64 `json:"total_paid"`
	Remaining    float64 `json:"remaining"`
}

func GetEnrollmentsWithDetails(db *sql.DB) ([]*EnrollmentWithDetails, error) {
	query := `SELECT e.id, e.student_id, e.group_id, e.level, e.total_course_fee,
			  e.includes_registration_fee, e.enrollment_active, e.enrollment_date,
			  s.first_name || ' ' || s.last_name, s.student_code,
			  g.name, g.mode, l.name,
			  COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.enrollment_id = e.id), 0)
			  FROM enrollments e
			  JOIN students s ON e.student_id = s.id
			  JOIN groups g ON e.group_id = g.id
			  JOIN languages l ON g.language_id = l.id
			  ORDER BY e.enrollment_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*EnrollmentWithDetails
	for rows.Next() {
		e := &EnrollmentWithDetails{}
		err := rows.Scan(
			&e.ID, &e.StudentID, &e.GroupID, &e.Level, &e.TotalCourseFee,
			&e.IncludesRegistrationFee, &e.Active, &e.EnrollmentDate,
			&e.StudentName, &e.StudentCode,
			&e.GroupName, &e.GroupMode, &e.LanguageName,
			&e.TotalPaid,
		)
		if err != nil {
			return nil, err
		}
		e.Remaining = e.TotalCourseFee - e.TotalPaid
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

func GetEnrollmentsForStudent(db *sql.DB, studentID string) ([]*EnrollmentWithDetails, error) {
	query := `SELECT e.id, e.student_id, e.group_id, e.level, e.total_course_fee,
			  e.includes_registration_fee, e.enrollment_active, e.enrollment_date,
			  s.first_name || ' ' || s.last_name, s.student_code,
			  g.name, g.mode, l.name,
			  COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.enrollment_id = e.id), 0)
			  FROM enrollments e
			  JOIN students s ON e.student_id = s.id
			  JOIN groups g ON e.group_id = g.id
			  JOIN languages l ON g.language_id = l.id
			  WHERE e.student_id = $1
			  ORDER BY e.enrollment_date DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*EnrollmentWithDetails
	for rows.Next() {
		e := &EnrollmentWithDetails{}
		err := rows.Scan(
			&e.ID, &e.StudentID, &e.GroupID, &e.Level, &e.TotalCourseFee,
			&e.IncludesRegistrationFee, &e.Active, &e.EnrollmentDate,
			&e.StudentName, &e.StudentCode,
			&e.GroupName, &e.GroupMode, &e.LanguageName,
			&e.TotalPaid,
		)
		if err != nil {
			return nil, err
		}
		e.Remaining = e.TotalCourseFee - e.TotalPaid
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// DeleteEnrollment is an explicit admin action; payments cascade with it.
func DeleteEnrollment(db *sql.DB, enrollmentID string) error {
	result, err := db.Exec(`DELETE FROM enrollments WHERE id = $1`, enrollmentID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
