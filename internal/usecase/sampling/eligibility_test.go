package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promorang/sampling-service/internal/domain"
)

func TestCheckEligibilityNewMerchant(t *testing.T) {
	uc, _, _ := newTestUsecase()

	out, err := uc.CheckEligibility("adv-1")
	require.NoError(t, err)
	assert.True(t, out.Allowed)
	assert.Empty(t, out.Reason)
	assert.Equal(t, domain.DefaultSamplingLimits(), out.Limits)
}

func TestCheckEligibilityByState(t *testing.T) {
	tests := []struct {
		state  domain.MerchantState
		reason string
	}{
		{domain.StateSampling, "Merchant already has an active sampling period"},
		{domain.StateGraduated, "Merchant has already graduated from sampling"},
		{domain.StatePaid, "Merchant is already on a paid plan"},
	}

	for _, tc := range tests {
		t.Run(string(tc.state), func(t *testing.T) {
			uc, store, _ := newTestUsecase()
			seedMerchant(store, "adv-1", tc.state)

			out, err := uc.CheckEligibility("adv-1")
			require.NoError(t, err)
			assert.False(t, out.Allowed)
			assert.Equal(t, tc.reason, out.Reason)
		})
	}
}

// A NEW merchant with a prior activation row stays ineligible. The
// one-activation rule does not depend on the state machine being consistent.
func TestCheckEligibilityUsedActivation(t *testing.T) {
	uc, store, _ := newTestUsecase()
	seedMerchant(store, "adv-1", domain.StateNew)
	seedActivation(store, "adv-1", 10)

	out, err := uc.CheckEligibility("adv-1")
	require.NoError(t, err)
	assert.False(t, out.Allowed)
	assert.Equal(t, "Merchant has already used their sampling activation", out.Reason)
}
