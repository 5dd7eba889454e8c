package httpapi

type createActivationRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`

	ValueType   string  `json:"value_type" binding:"required"`
	ValueAmount float64 `json:"value_amount"`
	ValueUnit   string  `json:"value_unit"`

	MaxRedemptions int32 `json:"max_redemptions"`
	DurationDays   int32 `json:"duration_days" binding:"required"`

	IncludeInDeals     bool `json:"include_in_deals"`
	IncludeInEvents    bool `json:"include_in_events"`
	IncludeInPostProof bool `json:"include_in_post_proof"`
}

type participateRequest struct {
	ActivationID      string         `json:"activation_id" binding:"required"`
	ActionType        string         `json:"action_type" binding:"required"`
	UserMaturityState int32          `json:"user_maturity_state"`
	Metadata          map[string]any `json:"metadata"`
}

type verifyRequest struct {
	ParticipationID    string `json:"participation_id" binding:"required"`
	VerificationMethod string `json:"verification_method" binding:"required"`
}

type redeemRequest struct {
	ParticipationID string  `json:"participation_id" binding:"required"`
	RedemptionValue float64 `json:"redemption_value"`
}

type requestGraduationRequest struct {
	RequestType string `json:"request_type" binding:"required"`
}

type upgradeRequest struct {
	PlanID      string         `json:"plan_id" binding:"required"`
	PlanDetails map[string]any `json:"plan_details"`
}
