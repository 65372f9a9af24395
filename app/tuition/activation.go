package tuition

import "github.com/yanis-san/torii-auto/app/models"

// Enrollment activation has gone through several rule generations:
// the first required a full monthly installment plus the registration
// fee up front, later ones lowered the bar step by step. The current
// rule below is the only executable one; the older variants are kept
// here as history, not as code paths.
//
//   v1: first payment >= courseFee/durationMonths + registration fee
//   v2: first payment >= courseFee/durationMonths
//   v3 (current): see ShouldActivate

// ActivationInput is everything the activation guard looks at. TotalPaid
// is the cumulative sum of payments scoped to the one enrollment being
// evaluated, never the student's cross-enrollment total.
type ActivationInput struct {
	Mode                    models.GroupMode
	TotalCourseFee          float64
	TotalPaid               float64
	IncludesRegistrationFee bool
}

// ShouldActivate decides whether a Pending enrollment may transition to
// Active. The transition is irreversible; callers only ever flip
// enrollment_active from false to true, so re-running this on an
// already-active enrollment is a no-op by construction.
//
// Online individual courses require full payment. Every other mode
// activates once the registration fee is covered, or on the first
// payment of any amount when the student had already cleared the yearly
// registration fee before enrolling.
func ShouldActivate(in ActivationInput) bool {
	if in.Mode.IsIndividual() && in.Mode.IsOnline() {
		return in.TotalPaid >= in.TotalCourseFee
	}

	if in.IncludesRegistrationFee {
		return in.TotalPaid >= RegistrationFee
	}
	return in.TotalPaid > 0
}
