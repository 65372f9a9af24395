package tuition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yanis-san/torii-auto/app/models"
)

func pay(amount float64, method models.PaymentMethod, date time.Time) *models.Payment {
	return &models.Payment{Amount: amount, PaymentMethod: method, PaymentDate: date}
}

func TestCashBalanceOnlyCountsCashSinceCheckpoint(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 10, 0, 0, 0, time.UTC)
	}
	since := day(10)

	payments := []*models.Payment{
		pay(5000, models.CashPayment, day(5)),    // before the checkpoint
		pay(1000, models.CashPayment, day(11)),
		pay(2000, models.CashPayment, day(12)),
		pay(10000, models.OnlinePayment, day(12)), // never touches the register
		pay(500, models.CashPayment, day(13)),
	}

	assert.Equal(t, float64(3500), CashBalance(0, since, payments))
	assert.Equal(t, float64(3700), CashBalance(200, since, payments))
}

func TestCashBalanceEmptyRegister(t *testing.T) {
	assert.Equal(t, float64(0), CashBalance(0, time.Time{}, nil))
}

func TestPlanCheckpoint(t *testing.T) {
	tests := []struct {
		name     string
		balance  float64
		taken    float64
		wantLeft float64
		wantErr  error
	}{
		{"partial withdrawal", 3500, 3000, 500, nil},
		{"full withdrawal", 3500, 3500, 0, nil},
		{"zero withdrawal verification", 3500, 0, 3500, nil},
		{"over withdrawal", 3500, 3501, 0, ErrOverWithdrawal},
		{"negative withdrawal", 3500, -1, 0, ErrNegativeWithdrawal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, err := PlanCheckpoint(tt.balance, tt.taken)

			assert.Equal(t, tt.wantLeft, left)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestCashRegisterRoundTrip(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 4, d, 18, 0, 0, 0, time.UTC)
	}

	// Fresh register, three cash payments and one online payment come in.
	payments := []*models.Payment{
		pay(1000, models.CashPayment, day(1)),
		pay(2000, models.CashPayment, day(2)),
		pay(10000, models.OnlinePayment, day(2)),
		pay(500, models.CashPayment, day(3)),
	}
	balance := CashBalance(0, time.Time{}, payments)
	assert.Equal(t, float64(3500), balance)

	// An admin signs, taking 3000 and leaving 500 in the drawer.
	left, err := PlanCheckpoint(balance, 3000)
	assert.NoError(t, err)
	assert.Equal(t, float64(500), left)

	// One more cash payment after the signature.
	signedAt := day(4)
	payments = append(payments, pay(200, models.CashPayment, day(5)))

	assert.Equal(t, float64(700), CashBalance(left, signedAt, payments))
}
