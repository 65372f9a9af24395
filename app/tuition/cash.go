package tuition

import (
	"errors"
	"time"

	"github.com/yanis-san/torii-auto/app/models"
)

// ErrOverWithdrawal is returned when a signature tries to take more cash
// than the register holds.
var ErrOverWithdrawal = errors.New("amount taken exceeds current cash balance")

// ErrNegativeWithdrawal is returned for a negative amount taken.
var ErrNegativeWithdrawal = errors.New("amount taken cannot be negative")

// CashBalance reconstructs the running register balance from the last
// checkpoint's carry-forward and the payment stream since it. Only
// cash-method payments count; online payments never touch the register.
// With no prior checkpoint, pass lastLeft = 0 and the zero time.
func CashBalance(lastLeft float64, since time.Time, payments []*models.Payment) float64 {
	balance := lastLeft
	for _, p := range payments {
		if p.PaymentMethod != models.CashPayment {
			continue
		}
		if p.PaymentDate.Before(since) {
			continue
		}
		balance += p.Amount
	}
	return balance
}

// PlanCheckpoint validates a withdrawal against the live balance and
// returns the amount left to carry forward. The guard lives here, at the
// input, not in a database constraint: an over-withdrawal must be
// rejected outright, never clamped.
func PlanCheckpoint(currentBalance, amountTaken float64) (amountLeft float64, err error) {
	if amountTaken < 0 {
		return 0, ErrNegativeWithdrawal
	}
	if amountTaken > currentBalance {
		return 0, ErrOverWithdrawal
	}
	return currentBalance - amountTaken, nil
}
