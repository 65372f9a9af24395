package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/yanis-san/torii-auto/app/models"
	"github.com/yanis-san/torii-auto/app/tuition"
)

// RecordPayment appends one immutable ledger entry and re-evaluates the
// activation guard for the affected enrollment inside the same
// transaction. Payments have no update or delete path.
func RecordPayment(db *sql.DB, payment *models.Payment) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := recordPaymentTx(tx, payment); err != nil {
		return err
	}

	return tx.Commit()
}

// recordPaymentTx does the actual work so enrollment creation can reuse
// it inside its own transaction.
//
// Order matters: the registration-fee ledger is updated before the
// activation check so a first payment covering the fee both marks the
// student and activates the enrollment in one unit of work.
func recordPaymentTx(tx *sql.Tx, payment *models.Payment) error {
	payment.ID = uuid.New().String()

	err := tx.QueryRow(`INSERT INTO payments (id, student_id, enrollment_id, amount, payment_method, receipt_link)
						VALUES ($1, $2, $3, $4, $5, $6)
						RETURNING payment_date`,
		payment.ID, payment.StudentID, payment.EnrollmentID,
		payment.Amount, string(payment.PaymentMethod), payment.ReceiptLink,
	).Scan(&payment.PaymentDate)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %v", err)
	}

	// The registration fee is per student per academic year, not per
	// enrollment: any payment covering it clears the student's flag no
	// matter which enrollment it was attached to.
	if payment.Amount >= tuition.RegistrationFee {
		_, err = tx.Exec(`UPDATE students SET registration_fee_paid = true, updated_at = NOW()
						  WHERE id = $1 AND registration_fee_paid = false`, payment.StudentID)
		if err != nil {
			return err
		}
	}

	var active, includesRegistrationFee bool
	var totalCourseFee float64
	var mode string
	err = tx.QueryRow(`SELECT e.enrollment_active, e.includes_registration_fee, e.total_course_fee, g.mode
					   FROM enrollments e JOIN groups g ON e.group_id = g.id
					   WHERE e.id = $1`, payment.EnrollmentID).
		Scan(&active, &includesRegistrationFee, &totalCourseFee, &mode)
	if err != nil {
		return err
	}

	// Already active: the re-check is an idempotent no-op. Activation is
	// irreversible, so the flag is only ever flipped false -> true.
	if active {
		return nil
	}

	var totalPaid float64
	err = tx.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE enrollment_id = $1`,
		payment.EnrollmentID).Scan(&totalPaid)
	if err != nil {
		return err
	}

	shouldActivate := tuition.ShouldActivate(tuition.ActivationInput{
		Mode:                    models.GroupMode(mode),
		TotalCourseFee:          totalCourseFee,
		TotalPaid:               totalPaid,
		IncludesRegistrationFee: includesRegistrationFee,
	})
	if shouldActivate {
		_, err = tx.Exec(`UPDATE enrollments SET enrollment_active = true WHERE id = $1`, payment.EnrollmentID)
		if err != nil {
			return err
		}
	}

	return nil
}

func GetPaymentsForEnrollment(db *sql.DB, enrollmentID string) ([]*models.Payment, error) {
	query := `SELECT id, student_id, enrollment_id, amount, payment_method, receipt_link, payment_date
			  FROM payments WHERE enrollment_id = $1 ORDER BY payment_date DESC`

	rows, err := db.Query(query, enrollmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func GetPaymentsForStudent(db *sql.DB, studentID string) ([]*models.Payment, error) {
	query := `SELECT id, student_id, enrollment_id, amount, payment_method, receipt_link, payment_date
			  FROM payments WHERE student_id = $1 ORDER BY payment_date DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func scanPayments(rows *sql.Rows) ([]*models.Payment, error) {
	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{}
		var method string
		err := rows.Scan(&p.ID, &p.StudentID, &p.EnrollmentID, &p.Amount, &method, &p.ReceiptLink, &p.PaymentDate)
		if err != nil {
			return nil, err
		}
		p.PaymentMethod = models.PaymentMethod(method)
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// TotalPaidForEnrollment sums the enrollment-scoped ledger. This is the
// authoritative per-enrollment figure used by the activation guard.
func TotalPaidForEnrollment(db *sql.DB, enrollmentID string) (float64, error) {
	var total float64
	err := db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE enrollment_id = $1`,
		enrollmentID).Scan(&total)
	return total, err
}

// PaymentStats summarizes the whole ledger for the payments screen.
type PaymentStats struct {
	TotalEnrollments  int     `json:"total_enrollments"`
	ActiveEnrollments int     `json:"active_enrollments"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalReceived     float64 `json:"total_received"`
}

func GetPaymentStats(db *sql.DB) (*PaymentStats, error) {
	stats := &PaymentStats{}
	query := `SELECT
			  (SELECT COUNT(*) FROM enrollments),
			  (SELECT COUNT(*) FROM enrollments WHERE enrollment_active = true),
			  COALESCE((SELECT SUM(total_course_fee) FROM enrollments), 0),
			  COALESCE((SELECT SUM(amount) FROM payments), 0)`

	err := db.QueryRow(query).Scan(
		&stats.TotalEnrollments, &stats.ActiveEnrollments,
		&stats.TotalRevenue, &stats.TotalReceived,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
