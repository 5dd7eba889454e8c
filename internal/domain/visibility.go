package domain

// VisibilityRules is the UI-facing feature flag set derived from merchant
// state. Pure projection, no I/O.
type VisibilityRules struct {
	CreateActivation   bool `json:"create_activation"`
	ViewParticipations bool `json:"view_participations"`
	ViewRedemptions    bool `json:"view_redemptions"`
	ViewBasicMetrics   bool `json:"view_basic_metrics"`

	ShowAnalytics         bool `json:"show_analytics"`
	ShowForecasting       bool `json:"show_forecasting"`
	ShowOptimization      bool `json:"show_optimization"`
	ShowTargeting         bool `json:"show_targeting"`
	ShowScaling           bool `json:"show_scaling"`
	ShowMultipleCampaigns bool `json:"show_multiple_campaigns"`

	ShowUpgradeOptions bool `json:"show_upgrade_options"`
	ShowPaidFeatures   bool `json:"show_paid_features"`
}

func VisibilityForState(state MerchantState) VisibilityRules {
	advanced := state != StateNew && state != StateSampling
	return VisibilityRules{
		CreateActivation:   state == StateNew,
		ViewParticipations: true,
		ViewRedemptions:    true,
		ViewBasicMetrics:   true,

		ShowAnalytics:         advanced,
		ShowForecasting:       advanced,
		ShowOptimization:      advanced,
		ShowTargeting:         advanced,
		ShowScaling:           advanced,
		ShowMultipleCampaigns: advanced,

		ShowUpgradeOptions: state == StateGraduated,
		ShowPaidFeatures:   state == StatePaid,
	}
}
