package domain

import "time"

// EntryUserMaxMaturity is the highest maturity tier still counted as an
// entry user in graduation metrics.
const EntryUserMaxMaturity = 2

type SamplingParticipation struct {
	ID           string
	ActivationID string
	UserID       string
	ActionType   string

	UserMaturityState int32
	MetadataJSON      string

	Verified           bool
	VerifiedAt         *time.Time
	VerificationMethod string

	Redeemed        bool
	RedeemedAt      *time.Time
	RedemptionValue float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *SamplingParticipation) EntryUser() bool {
	return p.UserMaturityState <= EntryUserMaxMaturity
}

type ParticipationRepository interface {
	// UpsertParticipation inserts or, on the (activation_id, user_id,
	// action_type) key, refreshes metadata and maturity in place. Never
	// produces a duplicate row.
	UpsertParticipation(p *SamplingParticipation) (*SamplingParticipation, error)
	// GetParticipationByID returns (nil, nil) when no such row exists.
	GetParticipationByID(id string) (*SamplingParticipation, error)
	GetParticipationsByActivationID(activationID string) ([]*SamplingParticipation, error)
	MarkVerified(id, method string, at time.Time) (*SamplingParticipation, error)
	MarkRedeemed(id string, value float64, at time.Time) (*SamplingParticipation, error)
}
