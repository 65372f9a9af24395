package tuition

import "github.com/yanis-san/torii-auto/app/models"

// RegistrationFee is the one-time per-student-per-academic-year charge,
// in DA. It is distinct from the recurring course fee.
const RegistrationFee = 1000

// DefaultHours is assumed for individual courses when no hour count is given.
const DefaultHours = 10

// tariff holds the base prices for one language. Group amounts are the
// all-inclusive program price; individual amounts are per hour.
type tariff struct {
	GroupOld      float64
	IndividualOld float64
	GroupNew      float64
	IndividualNew float64
}

// courseFees is the institute's price list. Online and presential
// delivery are priced identically; only group vs individual and the
// pricing era matter.
var courseFees = map[string]tariff{
	"Japanese": {
		GroupOld:      12000,
		IndividualOld: 1500,
		GroupNew:      16000,
		IndividualNew: 2000,
	},
	"Chinese": {
		GroupOld:      15000,
		IndividualOld: 2000,
		GroupNew:      20000,
		IndividualNew: 3000,
	},
	"Korean": {
		GroupOld:      16000,
		IndividualOld: 1500,
		GroupNew:      15000,
		IndividualNew: 2000,
	},
}

// Price returns the base amount for a language, mode and pricing era:
// the flat program price for group modes, the hourly rate for
// individual modes. Unknown combinations return 0, which callers must
// treat as a data error (see CreateEnrollment's zero-fee guard).
func Price(language string, mode models.GroupMode, era models.PricingEra) float64 {
	t, ok := courseFees[language]
	if !ok {
		return 0
	}

	if mode.IsIndividual() {
		if era == models.OldPricing {
			return t.IndividualOld
		}
		return t.IndividualNew
	}

	if era == models.OldPricing {
		return t.GroupOld
	}
	return t.GroupNew
}

// CalculateCourseFee computes the sticker price of a course. Individual
// modes are billed per hour; group modes take the table value as the
// all-inclusive price, independent of the group's duration in months.
func CalculateCourseFee(language string, mode models.GroupMode, era models.PricingEra, hours int) float64 {
	base := Price(language, mode, era)

	if mode.IsIndividual() {
		if hours <= 0 {
			hours = DefaultHours
		}
		return base * float64(hours)
	}

	return base
}

// Languages returns the names that have a price list entry.
func Languages() []string {
	names := make([]string, 0, len(courseFees))
	for name := range courseFees {
		names = append(names, name)
	}
	return names
}
