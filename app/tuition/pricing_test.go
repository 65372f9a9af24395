package tuition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yanis-san/torii-auto/app/models"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name     string
		language string
		mode     models.GroupMode
		era      models.PricingEra
		want     float64
	}{
		{"japanese group old", "Japanese", models.PresentialGroup, models.OldPricing, 12000},
		{"japanese group new", "Japanese", models.PresentialGroup, models.NewPricing, 16000},
		{"japanese individual old", "Japanese", models.PresentialIndividual, models.OldPricing, 1500},
		{"japanese individual new", "Japanese", models.PresentialIndividual, models.NewPricing, 2000},
		{"chinese group old", "Chinese", models.PresentialGroup, models.OldPricing, 15000},
		{"chinese group new", "Chinese", models.PresentialGroup, models.NewPricing, 20000},
		{"chinese individual old", "Chinese", models.OnlineIndividual, models.OldPricing, 2000},
		{"chinese individual new", "Chinese", models.OnlineIndividual, models.NewPricing, 3000},
		{"korean group old", "Korean", models.OnlineGroup, models.OldPricing, 16000},
		{"korean group new", "Korean", models.OnlineGroup, models.NewPricing, 15000},
		{"korean individual old", "Korean", models.PresentialIndividual, models.OldPricing, 1500},
		{"korean individual new", "Korean", models.PresentialIndividual, models.NewPricing, 2000},
		{"unknown language", "Esperanto", models.PresentialGroup, models.NewPricing, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Price(tt.language, tt.mode, tt.era))
		})
	}
}

func TestPriceOnlineEqualsPresential(t *testing.T) {
	for _, language := range Languages() {
		for _, era := range []models.PricingEra{models.OldPricing, models.NewPricing} {
			assert.Equal(t,
				Price(language, models.PresentialGroup, era),
				Price(language, models.OnlineGroup, era),
				"%s %s group", language, era)
			assert.Equal(t,
				Price(language, models.PresentialIndividual, era),
				Price(language, models.OnlineIndividual, era),
				"%s %s individual", language, era)
		}
	}
}

func TestCalculateCourseFeeGroupIsFlat(t *testing.T) {
	// Group pricing is the all-inclusive program price; the hour count
	// must not change it.
	for _, hours := range []int{0, 1, 10, 36} {
		assert.Equal(t, float64(16000),
			CalculateCourseFee("Japanese", models.PresentialGroup, models.NewPricing, hours),
			"hours=%d", hours)
	}
}

func TestCalculateCourseFeeIndividualScalesPerHour(t *testing.T) {
	base := Price("Chinese", models.OnlineIndividual, models.NewPricing)

	for _, hours := range []int{1, 5, 8, 20} {
		single := CalculateCourseFee("Chinese", models.OnlineIndividual, models.NewPricing, hours)
		double := CalculateCourseFee("Chinese", models.OnlineIndividual, models.NewPricing, 2*hours)

		assert.Equal(t, base*float64(hours), single)
		assert.Equal(t, 2*single, double)
	}
}

func TestCalculateCourseFeeIndividualDefaultHours(t *testing.T) {
	want := Price("Korean", models.PresentialIndividual, models.OldPricing) * DefaultHours

	assert.Equal(t, want, CalculateCourseFee("Korean", models.PresentialIndividual, models.OldPricing, 0))
	assert.Equal(t, want, CalculateCourseFee("Korean", models.PresentialIndividual, models.OldPricing, -3))
}

func TestLanguages(t *testing.T) {
	names := Languages()

	assert.Len(t, names, 3)
	assert.ElementsMatch(t, []string{"Japanese", "Chinese", "Korean"}, names)
}
