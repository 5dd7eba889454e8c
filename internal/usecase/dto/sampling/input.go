package samplingdto

type CreateActivationInput struct {
	AdvertiserID string
	Name         string
	Description  string

	ValueType   string
	ValueAmount float64
	ValueUnit   string

	MaxRedemptions int32
	DurationDays   int32

	IncludeInDeals     bool
	IncludeInEvents    bool
	IncludeInPostProof bool
}

type RecordParticipationInput struct {
	ActivationID      string
	UserID            string
	ActionType        string
	UserMaturityState int32
	Metadata          map[string]any
}

type UpgradeToPaidInput struct {
	AdvertiserID string
	PlanID       string
	PlanDetails  map[string]any
}
