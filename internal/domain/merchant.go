package domain

import "time"

type MerchantState string

const (
	StateNew       MerchantState = "NEW"
	StateSampling  MerchantState = "SAMPLING"
	StateGraduated MerchantState = "GRADUATED"
	StatePaid      MerchantState = "PAID"
)

var stateRank = map[MerchantState]int{
	StateNew:       0,
	StateSampling:  1,
	StateGraduated: 2,
	StatePaid:      3,
}

// CanAdvanceTo reports whether a transition moves exactly one step forward.
// Merchant state never regresses and never skips a state.
func (s MerchantState) CanAdvanceTo(to MerchantState) bool {
	from, ok := stateRank[s]
	if !ok {
		return false
	}
	target, ok := stateRank[to]
	if !ok {
		return false
	}
	return target == from+1
}

type MerchantProfile struct {
	AdvertiserID      string
	MerchantState     MerchantState
	SamplingStartedAt *time.Time
	GraduatedAt       *time.Time
	PaidAt            *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// StateTransition is one row of the append-only merchant audit log.
type StateTransition struct {
	ID              string
	AdvertiserID    string
	FromState       MerchantState
	ToState         MerchantState
	TriggerReason   string
	TriggerMetadata map[string]any
	CreatedAt       time.Time
}

type MerchantRepository interface {
	// GetProfile returns (nil, nil) when no profile row exists yet.
	GetProfile(advertiserID string) (*MerchantProfile, error)
	// EnsureProfile creates the NEW-state row on first touch and returns it.
	EnsureProfile(advertiserID string) (*MerchantProfile, error)
	// Transition applies a conditional update (merchant_state must still equal
	// FromState) and appends the audit row in the same transaction.
	// Returns ErrStateConflict when the stored state moved underneath us.
	Transition(t *StateTransition) error
	GetTransitions(advertiserID string) ([]*StateTransition, error)
}
