package domain

const (
	ConfigKeyLimits             = "limits"
	ConfigKeyGraduationTriggers = "graduation_triggers"
)

type SamplingLimits struct {
	MaxActivationsPerMerchant int     `json:"max_activations_per_merchant"`
	MinDurationDays           int32   `json:"min_duration_days"`
	MaxDurationDays           int32   `json:"max_duration_days"`
	MaxProductUnits           int32   `json:"max_product_units"`
	MaxVoucherRedemptions     int32   `json:"max_voucher_redemptions"`
	MaxCashPrizeUSD           float64 `json:"max_cash_prize_usd"`
}

type GraduationTriggers struct {
	RedemptionRateThreshold  float64 `json:"redemption_rate_threshold"`
	VerifiedActionsThreshold int     `json:"verified_actions_threshold"`
	// Computed and reported in graduation metadata only. Not a gate.
	EntryUserRatioThreshold float64 `json:"entry_user_ratio_threshold"`
}

func DefaultSamplingLimits() SamplingLimits {
	return SamplingLimits{
		MaxActivationsPerMerchant: 1,
		MinDurationDays:           7,
		MaxDurationDays:           14,
		MaxProductUnits:           50,
		MaxVoucherRedemptions:     20,
		MaxCashPrizeUSD:           500,
	}
}

func DefaultGraduationTriggers() GraduationTriggers {
	return GraduationTriggers{
		RedemptionRateThreshold:  0.30,
		VerifiedActionsThreshold: 10,
		EntryUserRatioThreshold:  0.60,
	}
}

type ConfigRepository interface {
	// GetValue returns the raw JSON document stored under key, or (nil, nil)
	// when the key is absent.
	GetValue(key string) ([]byte, error)
}
