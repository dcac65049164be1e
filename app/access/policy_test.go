package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name             string
		balance          int64
		admissionPending bool
		threshold        int64
		wantRestricted   bool
		wantReason       Reason
	}{
		{name: "clean slate", balance: 0},
		{name: "balance at threshold passes", balance: 50000, threshold: 50000},
		{name: "balance over threshold restricts", balance: 50001, threshold: 50000, wantRestricted: true, wantReason: ReasonFeeBalance},
		{name: "any balance over zero threshold restricts", balance: 1, wantRestricted: true, wantReason: ReasonFeeBalance},
		{name: "admission pending restricts regardless of balance", admissionPending: true, wantRestricted: true, wantReason: ReasonAdmissionPending},
		{name: "admission pending wins over balance reason", balance: 99999, admissionPending: true, wantRestricted: true, wantReason: ReasonAdmissionPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.balance, tt.admissionPending, tt.threshold)
			assert.Equal(t, tt.wantRestricted, got.IsRestricted())
			assert.Equal(t, tt.wantReason, got.Reason())
		})
	}
}

func TestReasonMessages(t *testing.T) {
	assert.NotEmpty(t, ReasonAdmissionPending.Message())
	assert.NotEmpty(t, ReasonFeeBalance.Message())
	assert.NotEqual(t, ReasonAdmissionPending.Message(), ReasonFeeBalance.Message())
}
