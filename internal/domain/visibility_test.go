package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibilityForState(t *testing.T) {
	for _, state := range []MerchantState{StateNew, StateSampling, StateGraduated, StatePaid} {
		rules := VisibilityForState(state)

		// Basic observability is never gated.
		assert.True(t, rules.ViewParticipations, state)
		assert.True(t, rules.ViewRedemptions, state)
		assert.True(t, rules.ViewBasicMetrics, state)

		assert.Equal(t, state == StateNew, rules.CreateActivation, state)
		assert.Equal(t, state == StateGraduated, rules.ShowUpgradeOptions, state)
		assert.Equal(t, state == StatePaid, rules.ShowPaidFeatures, state)

		advanced := state == StateGraduated || state == StatePaid
		assert.Equal(t, advanced, rules.ShowAnalytics, state)
		assert.Equal(t, advanced, rules.ShowForecasting, state)
		assert.Equal(t, advanced, rules.ShowOptimization, state)
		assert.Equal(t, advanced, rules.ShowTargeting, state)
		assert.Equal(t, advanced, rules.ShowScaling, state)
		assert.Equal(t, advanced, rules.ShowMultipleCampaigns, state)
	}
}

func TestEntryUser(t *testing.T) {
	assert.True(t, (&SamplingParticipation{UserMaturityState: 0}).EntryUser())
	assert.True(t, (&SamplingParticipation{UserMaturityState: 2}).EntryUser())
	assert.False(t, (&SamplingParticipation{UserMaturityState: 3}).EntryUser())
}
