package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yanis-san/torii-auto/app/models"
	"github.com/yanis-san/torii-auto/app/tuition"
)

// GetLastCheckpoint returns the most recent signature, or nil when only
// balance reconstruction from an empty register is possible.
func GetLastCheckpoint(db *sql.DB) (*models.CashRegisterReset, error) {
	reset := &models.CashRegisterReset{}
	query := `SELECT id, reset_date, reset_by, amount_in_register, amount_taken, amount_left, notes
			  FROM cash_register_resets ORDER BY reset_date DESC LIMIT 1`

	err := db.QueryRow(query).Scan(
		&reset.ID, &reset.ResetDate, &reset.ResetBy,
		&reset.AmountInRegister, &reset.AmountTaken, &reset.AmountLeft, &reset.Notes,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return reset, nil
}

// CurrentCashBalance reconstructs the live register balance: the last
// checkpoint's carry-forward plus every cash payment since it. Online
// payments never enter the register.
func CurrentCashBalance(db *sql.DB) (float64, error) {
	last, err := GetLastCheckpoint(db)
	if err != nil {
		return 0, err
	}

	var lastLeft float64
	var since time.Time
	if last != nil {
		lastLeft = last.AmountLeft
		since = last.ResetDate
	}

	var cashSince float64
	err = db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM payments
					   WHERE payment_method = 'cash' AND payment_date >= $1`, since).Scan(&cashSince)
	if err != nil {
		return 0, err
	}

	return lastLeft + cashSince, nil
}

// SignCheckpoint appends a signature after counting the register. The
// balance read and the insert run in one serializable transaction so two
// concurrent signatures cannot both subtract the same cash.
func SignCheckpoint(db *sql.DB, signedBy string, amountTaken float64, notes *string) (*models.CashRegisterReset, error) {
	ctx := context.Background()
	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var lastLeft float64
	var since time.Time
	err = tx.QueryRow(`SELECT amount_left, reset_date FROM cash_register_resets
					   ORDER BY reset_date DESC LIMIT 1`).Scan(&lastLeft, &since)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	var cashSince float64
	err = tx.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM payments
					   WHERE payment_method = 'cash' AND payment_date >= $1`, since).Scan(&cashSince)
	if err != nil {
		return nil, err
	}

	balance := lastLeft + cashSince

	amountLeft, err := tuition.PlanCheckpoint(balance, amountTaken)
	if err != nil {
		return nil, err
	}

	reset := &models.CashRegisterReset{
		ID:               uuid.New().String(),
		ResetBy:          signedBy,
		AmountInRegister: balance,
		AmountTaken:      amountTaken,
		AmountLeft:       amountLeft,
		Notes:            notes,
	}

	err = tx.QueryRow(`INSERT INTO cash_register_resets (id, reset_by, amount_in_register, amount_taken, amount_left, notes)
					   VALUES ($1, $2, $3, $4, $5, $6)
					   RETURNING reset_date`,
		reset.ID, reset.ResetBy, reset.AmountInRegister, reset.AmountTaken, reset.AmountLeft, reset.Notes,
	).Scan(&reset.ResetDate)
	if err != nil {
		return nil, fmt.Errorf("failed to insert checkpoint: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return reset, nil
}

// GetCheckpointHistory lists signatures newest first, excluding the
// system seed row.
func GetCheckpointHistory(db *sql.DB) ([]*models.CashRegisterReset, error) {
	query := `SELECT id, reset_date, reset_by, amount_in_register, amount_taken, amount_left, notes
			  FROM cash_register_resets
			  WHERE reset_by <> $1
			  ORDER BY reset_date DESC`

	rows, err := db.Query(query, models.SystemSigner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resets []*models.CashRegisterReset
	for rows.Next() {
		r := &models.CashRegisterReset{}
		err := rows.Scan(&r.ID, &r.ResetDate, &r.ResetBy, &r.AmountInRegister, &r.AmountTaken, &r.AmountLeft, &r.Notes)
		if err != nil {
			return nil, err
		}
		resets = append(resets, r)
	}
	return resets, rows.Err()
}

// SignerStats aggregates signatures per person for audit review.
type SignerStats struct {
	Person         string  `json:"person"`
	SignatureCount int     `json:"signature_count"`
	TotalTaken     float64 `json:"total_taken"`
	AverageTaken   float64 `json:"average_taken"`
	MinTaken       float64 `json:"min_taken"`
	MaxTaken       float64 `json:"max_taken"`
}

func GetSignerStats(db *sql.DB) ([]*SignerStats, error) {
	query := `SELECT reset_by, COUNT(*), SUM(amount_taken), AVG(amount_taken), MIN(amount_taken), MAX(amount_taken)
			  FROM cash_register_resets
			  WHERE reset_by <> $1
			  GROUP BY reset_by
			  ORDER BY SUM(amount_taken) DESC`

	rows, err := db.Query(query, models.SystemSigner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*SignerStats
	for rows.Next() {
		s := &SignerStats{}
		err := rows.Scan(&s.Person, &s.SignatureCount, &s.TotalTaken, &s.AverageTaken, &s.MinTaken, &s.MaxTaken)
		if err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
