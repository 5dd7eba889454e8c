package domain

// TransitionEvent is what downstream consumers (analytics, CRM) receive on
// every merchant state change.
type TransitionEvent struct {
	AdvertiserID  string         `json:"advertiser_id"`
	FromState     string         `json:"from_state"`
	ToState       string         `json:"to_state"`
	TriggerReason string         `json:"trigger_reason"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

type EventPublisher interface {
	PublishTransition(event TransitionEvent) error
}

// RewardsPort credits platform points to a user. Backed by the points
// service over HTTP; failures are best-effort.
type RewardsPort interface {
	Credit(userID, activationID string, amount float64) error
}
