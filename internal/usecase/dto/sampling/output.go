package samplingdto

import "github.com/promorang/sampling-service/internal/domain"

type StateOutput struct {
	MerchantState domain.MerchantState    `json:"merchant_state"`
	Profile       *domain.MerchantProfile `json:"profile"`
	Visibility    domain.VisibilityRules  `json:"visibility"`
}

type EligibilityOutput struct {
	Allowed bool                  `json:"allowed"`
	Reason  string                `json:"reason,omitempty"`
	Limits  domain.SamplingLimits `json:"limits"`
}

type ActivationMetricsOutput struct {
	HasActivation bool                       `json:"has_activation"`
	Activation    *domain.SamplingActivation `json:"activation,omitempty"`

	Participants          int     `json:"participants"`
	VerifiedActions       int     `json:"verified_actions"`
	EntryUserParticipants int     `json:"entry_user_participants"`
	RedemptionRate        float64 `json:"redemption_rate"`
	DaysRemaining         int     `json:"days_remaining"`
}

type GraduationResult struct {
	Graduated bool   `json:"graduated"`
	Reason    string `json:"reason,omitempty"`
}

type RequestGraduationOutput struct {
	Message   string   `json:"message"`
	NextSteps []string `json:"next_steps"`
}

type UpgradeOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	MonthlyUSD  float64 `json:"monthly_usd"`
}

type GraduationOptionsOutput struct {
	SamplingResults ActivationMetricsOutput `json:"sampling_results"`
	Options         []UpgradeOption         `json:"options"`
}
