package tuition

// ComputeTotalFee derives the amount an enrollment will be charged from
// the base course fee and the student's registration-fee status for the
// current academic year. If the yearly registration fee has not been
// cleared yet it is folded into the total, and the returned flag records
// that fact on the enrollment.
//
// The result is a snapshot: it is stored on the enrollment at creation
// and never recomputed, even if the price list or the student's
// registration-fee status changes afterwards.
func ComputeTotalFee(baseCourseFee float64, registrationFeePaid bool) (totalFee float64, includesRegistrationFee bool) {
	if registrationFeePaid {
		return baseCourseFee, false
	}
	return baseCourseFee + RegistrationFee, true
}
