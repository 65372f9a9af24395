package tuition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalFee(t *testing.T) {
	tests := []struct {
		name          string
		baseCourseFee float64
		feePaid       bool
		wantTotal     float64
		wantIncludes  bool
	}{
		{"unpaid adds registration fee", 16000, false, 17000, true},
		{"paid leaves base untouched", 16000, true, 16000, false},
		{"unpaid individual course", 20000, false, 21000, true},
		{"paid individual course", 20000, true, 20000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, includes := ComputeTotalFee(tt.baseCourseFee, tt.feePaid)

			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.wantIncludes, includes)
		})
	}
}
