package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGroupMode(t *testing.T) {
	tests := []struct {
		mode       GroupMode
		individual bool
		online     bool
	}{
		{OnlineGroup, false, true},
		{OnlineIndividual, true, true},
		{PresentialGroup, false, false},
		{PresentialIndividual, true, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.True(t, tt.mode.Valid())
			assert.Equal(t, tt.individual, tt.mode.IsIndividual())
			assert.Equal(t, tt.online, tt.mode.IsOnline())
		})
	}

	assert.False(t, GroupMode("hybrid_group").Valid())
	assert.False(t, GroupMode("").Valid())
}

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, CashPayment.Valid())
	assert.True(t, OnlinePayment.Valid())
	assert.False(t, PaymentMethod("cheque").Valid())
}

func TestCustomTimeJSON(t *testing.T) {
	var ct CustomTime
	assert.NoError(t, json.Unmarshal([]byte(`"2026-09-15"`), &ct))
	assert.Equal(t, 2026, ct.Year())
	assert.Equal(t, time.September, ct.Month())

	out, err := json.Marshal(ct)
	assert.NoError(t, err)
	assert.Equal(t, `"2026-09-15"`, string(out))

	assert.NoError(t, json.Unmarshal([]byte(`null`), &ct))
	assert.True(t, ct.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"15/09/2026"`), &ct))
}

func TestAcademicYearHasEnded(t *testing.T) {
	past := &AcademicYear{EndDate: CustomTime{time.Now().AddDate(0, 0, -1)}}
	future := &AcademicYear{EndDate: CustomTime{time.Now().AddDate(0, 0, 1)}}

	assert.True(t, past.HasEnded())
	assert.False(t, future.HasEnded())
}
