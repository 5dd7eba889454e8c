package domain

// SamplingStore bundles the repositories touched by a single sampling
// operation. InTx runs fn against transaction-scoped repositories; any error
// rolls the whole unit back.
type SamplingStore interface {
	Merchants() MerchantRepository
	Activations() ActivationRepository
	Participations() ParticipationRepository
	InTx(fn func(tx SamplingStore) error) error
}
