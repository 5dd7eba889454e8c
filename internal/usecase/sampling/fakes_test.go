package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/promorang/sampling-service/internal/domain"
)

// In-memory SamplingStore mirroring the relational semantics the usecases
// rely on: conditional state updates, participation upserts, bounded
// redemption increments.

type fakeStore struct {
	mu             sync.Mutex
	profiles       map[string]*domain.MerchantProfile
	transitions    []*domain.StateTransition
	activations    map[string]*domain.SamplingActivation
	participations map[string]*domain.SamplingParticipation
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles:       make(map[string]*domain.MerchantProfile),
		activations:    make(map[string]*domain.SamplingActivation),
		participations: make(map[string]*domain.SamplingParticipation),
	}
}

func (s *fakeStore) Merchants() domain.MerchantRepository           { return &fakeMerchantRepo{s} }
func (s *fakeStore) Activations() domain.ActivationRepository       { return &fakeActivationRepo{s} }
func (s *fakeStore) Participations() domain.ParticipationRepository { return &fakeParticipationRepo{s} }

// Rollback is not simulated; tests only exercise committed paths.
func (s *fakeStore) InTx(fn func(tx domain.SamplingStore) error) error {
	return fn(s)
}

type fakeMerchantRepo struct{ s *fakeStore }

func (r *fakeMerchantRepo) GetProfile(advertiserID string) (*domain.MerchantProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[advertiserID]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakeMerchantRepo) EnsureProfile(advertiserID string) (*domain.MerchantProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.profiles[advertiserID]; ok {
		copied := *p
		return &copied, nil
	}
	now := time.Now()
	p := &domain.MerchantProfile{
		AdvertiserID:  advertiserID,
		MerchantState: domain.StateNew,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.s.profiles[advertiserID] = p
	copied := *p
	return &copied, nil
}

func (r *fakeMerchantRepo) Transition(t *domain.StateTransition) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[t.AdvertiserID]
	if !ok || p.MerchantState != t.FromState {
		return domain.ErrStateConflict
	}
	now := time.Now()
	p.MerchantState = t.ToState
	p.UpdatedAt = now
	switch t.ToState {
	case domain.StateSampling:
		p.SamplingStartedAt = &now
	case domain.StateGraduated:
		p.GraduatedAt = &now
	case domain.StatePaid:
		p.PaidAt = &now
	}
	r.s.transitions = append(r.s.transitions, t)
	return nil
}

func (r *fakeMerchantRepo) GetTransitions(advertiserID string) ([]*domain.StateTransition, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.StateTransition
	for _, t := range r.s.transitions {
		if t.AdvertiserID == advertiserID {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeActivationRepo struct{ s *fakeStore }

func (r *fakeActivationRepo) CreateActivation(a *domain.SamplingActivation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	copied := *a
	r.s.activations[a.ID] = &copied
	return nil
}

func (r *fakeActivationRepo) GetActivationByID(id string) (*domain.SamplingActivation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.activations[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *fakeActivationRepo) GetActivationsByAdvertiserID(advertiserID string) ([]*domain.SamplingActivation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.SamplingActivation
	for _, a := range r.s.activations {
		if a.AdvertiserID == advertiserID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeActivationRepo) CountActivationsByAdvertiserID(advertiserID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, a := range r.s.activations {
		if a.AdvertiserID == advertiserID {
			count++
		}
	}
	return count, nil
}

func (r *fakeActivationRepo) UpdateStatus(id string, status domain.ActivationStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if a, ok := r.s.activations[id]; ok {
		a.Status = status
		a.UpdatedAt = time.Now()
	}
	return nil
}

func (r *fakeActivationRepo) IncrementRedemptions(id string) (int32, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.activations[id]
	if !ok {
		return 0, domain.ErrActivationNotFound
	}
	if a.CurrentRedemptions >= a.MaxRedemptions {
		return 0, domain.ErrRedemptionLimitReached
	}
	a.CurrentRedemptions++
	return a.CurrentRedemptions, nil
}

func (r *fakeActivationRepo) MarkGraduationTriggered(id, reason string, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.activations[id]
	if !ok || a.GraduationTriggered {
		return false, nil
	}
	a.GraduationTriggered = true
	a.GraduationReason = reason
	a.GraduationTriggeredAt = &at
	return true, nil
}

func (r *fakeActivationRepo) FindActiveForSurface(surface domain.Surface, now time.Time) ([]*domain.SamplingActivation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.SamplingActivation
	for _, a := range r.s.activations {
		included := false
		switch surface {
		case domain.SurfaceDeals:
			included = a.IncludeInDeals
		case domain.SurfaceEvents:
			included = a.IncludeInEvents
		case domain.SurfacePost:
			included = a.IncludeInPostProof
		}
		if included &&
			a.Status == domain.ActivationActive &&
			a.CurrentRedemptions < a.MaxRedemptions &&
			a.ExpiresAt.After(now) {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeActivationRepo) FindExpiredActive(now time.Time) ([]*domain.SamplingActivation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.SamplingActivation
	for _, a := range r.s.activations {
		if a.Status == domain.ActivationActive && a.ExpiresAt.Before(now) {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeParticipationRepo struct{ s *fakeStore }

func (r *fakeParticipationRepo) UpsertParticipation(p *domain.SamplingParticipation) (*domain.SamplingParticipation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.participations {
		if existing.ActivationID == p.ActivationID &&
			existing.UserID == p.UserID &&
			existing.ActionType == p.ActionType {
			existing.UserMaturityState = p.UserMaturityState
			existing.MetadataJSON = p.MetadataJSON
			existing.UpdatedAt = time.Now()
			copied := *existing
			return &copied, nil
		}
	}
	copied := *p
	r.s.participations[p.ID] = &copied
	result := copied
	return &result, nil
}

func (r *fakeParticipationRepo) GetParticipationByID(id string) (*domain.SamplingParticipation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.participations[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakeParticipationRepo) GetParticipationsByActivationID(activationID string) ([]*domain.SamplingParticipation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.SamplingParticipation
	for _, p := range r.s.participations {
		if p.ActivationID == activationID {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeParticipationRepo) MarkVerified(id, method string, at time.Time) (*domain.SamplingParticipation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.participations[id]
	if !ok {
		return nil, domain.ErrParticipationNotFound
	}
	p.Verified = true
	p.VerifiedAt = &at
	p.VerificationMethod = method
	p.UpdatedAt = at
	copied := *p
	return &copied, nil
}

func (r *fakeParticipationRepo) MarkRedeemed(id string, value float64, at time.Time) (*domain.SamplingParticipation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.participations[id]
	if !ok {
		return nil, domain.ErrParticipationNotFound
	}
	p.Redeemed = true
	p.RedeemedAt = &at
	p.RedemptionValue = value
	p.UpdatedAt = at
	copied := *p
	return &copied, nil
}

type stubConfig struct {
	limits   domain.SamplingLimits
	triggers domain.GraduationTriggers
}

func (c *stubConfig) Limits() domain.SamplingLimits                 { return c.limits }
func (c *stubConfig) GraduationTriggers() domain.GraduationTriggers { return c.triggers }

type fakePublisher struct {
	mu     sync.Mutex
	events []domain.TransitionEvent
}

func (p *fakePublisher) PublishTransition(event domain.TransitionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) published() []domain.TransitionEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.TransitionEvent, len(p.events))
	copy(out, p.events)
	return out
}

type fakeRewards struct {
	mu      sync.Mutex
	credits []float64
}

func (r *fakeRewards) Credit(userID, activationID string, amount float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.credits = append(r.credits, amount)
	return nil
}

func seedMerchant(store *fakeStore, advertiserID string, state domain.MerchantState) {
	now := time.Now()
	p := &domain.MerchantProfile{
		AdvertiserID:  advertiserID,
		MerchantState: state,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if state != domain.StateNew {
		p.SamplingStartedAt = &now
	}
	if state == domain.StateGraduated || state == domain.StatePaid {
		p.GraduatedAt = &now
	}
	store.profiles[advertiserID] = p
}

func seedActivation(store *fakeStore, advertiserID string, maxRedemptions int32) *domain.SamplingActivation {
	now := time.Now()
	a := &domain.SamplingActivation{
		ID:                   uuid.New().String(),
		AdvertiserID:         advertiserID,
		Name:                 "Free tasting voucher",
		ValueType:            domain.ValueTypeVoucher,
		ValueAmount:          10,
		MaxRedemptions:       maxRedemptions,
		DurationDays:         7,
		StartsAt:             now,
		ExpiresAt:            now.Add(7 * 24 * time.Hour),
		Status:               domain.ActivationActive,
		IncludeInDeals:       true,
		PromoshareEnabled:    true,
		SocialShieldRequired: true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	store.activations[a.ID] = a
	return a
}

func newTestUsecase() (*DefaultSamplingUsecase, *fakeStore, *fakePublisher) {
	store := newFakeStore()
	publisher := &fakePublisher{}
	uc := NewDefaultSamplingUsecase(
		store,
		&stubConfig{
			limits:   domain.DefaultSamplingLimits(),
			triggers: domain.DefaultGraduationTriggers(),
		},
		publisher,
		&fakeRewards{},
		nil,
	)
	return uc, store, publisher
}
