package tuition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yanis-san/torii-auto/app/models"
)

func TestShouldActivateOnlineIndividualRequiresFullPayment(t *testing.T) {
	in := ActivationInput{
		Mode:                    models.OnlineIndividual,
		TotalCourseFee:          50000,
		IncludesRegistrationFee: true,
	}

	tests := []struct {
		name string
		paid float64
		want bool
	}{
		{"nothing paid", 0, false},
		{"registration fee alone is not enough", 1000, false},
		{"one unit short", 49999, false},
		{"exactly the full fee", 50000, true},
		{"overpaid", 50001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in.TotalPaid = tt.paid
			assert.Equal(t, tt.want, ShouldActivate(in))
		})
	}
}

func TestShouldActivateWithRegistrationFeeFolded(t *testing.T) {
	// All modes except online individual activate once the registration
	// fee portion of the total is covered.
	for _, mode := range []models.GroupMode{
		models.OnlineGroup,
		models.PresentialGroup,
		models.PresentialIndividual,
	} {
		in := ActivationInput{
			Mode:                    mode,
			TotalCourseFee:          17000,
			IncludesRegistrationFee: true,
		}

		in.TotalPaid = 999
		assert.False(t, ShouldActivate(in), "%s at 999", mode)

		in.TotalPaid = 1000
		assert.True(t, ShouldActivate(in), "%s at 1000", mode)
	}
}

func TestShouldActivateRegistrationAlreadyCleared(t *testing.T) {
	// A student who cleared the yearly registration fee before enrolling
	// activates on the first payment of any amount.
	in := ActivationInput{
		Mode:                    models.PresentialGroup,
		TotalCourseFee:          16000,
		IncludesRegistrationFee: false,
	}

	in.TotalPaid = 0
	assert.False(t, ShouldActivate(in))

	in.TotalPaid = 100
	assert.True(t, ShouldActivate(in))
}

func TestShouldActivateMonotonic(t *testing.T) {
	// Once the threshold is crossed it stays crossed for every larger
	// cumulative total, so re-running the guard after further payments
	// can never argue for deactivation.
	for _, mode := range []models.GroupMode{
		models.OnlineGroup,
		models.OnlineIndividual,
		models.PresentialGroup,
		models.PresentialIndividual,
	} {
		in := ActivationInput{
			Mode:                    mode,
			TotalCourseFee:          21000,
			IncludesRegistrationFee: true,
		}

		activated := false
		for paid := float64(0); paid <= 25000; paid += 500 {
			in.TotalPaid = paid
			got := ShouldActivate(in)
			if activated {
				assert.True(t, got, "%s regressed at %.0f", mode, paid)
			}
			activated = activated || got
		}
		assert.True(t, activated, "%s never activated", mode)
	}
}
