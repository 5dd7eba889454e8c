package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jaevor/go-nanoid"

	"github.com/promorang/sampling-service/internal/domain"
	samplingdto "github.com/promorang/sampling-service/internal/usecase/dto/sampling"
)

// GetState never returns a storage error for the happy read path: an absent
// or unreadable profile degrades to NEW so demo and first-touch merchants
// always get a usable answer.
func (uc *DefaultSamplingUsecase) GetState(advertiserID string) (*samplingdto.StateOutput, error) {
	if advertiserID == "" {
		return stateOutput(domain.StateNew, nil), nil
	}

	profile, err := uc.Store.Merchants().GetProfile(advertiserID)
	if err != nil {
		slog.Error("merchant state read failed, defaulting to NEW", "advertiser_id", advertiserID, "error", err.Error())
		return stateOutput(domain.StateNew, nil), nil
	}

	if profile == nil {
		// First query implicitly creates the NEW-state profile.
		profile, err = uc.Store.Merchants().EnsureProfile(advertiserID)
		if err != nil {
			slog.Error("merchant profile create failed, defaulting to NEW", "advertiser_id", advertiserID, "error", err.Error())
			return stateOutput(domain.StateNew, nil), nil
		}
	}

	return stateOutput(profile.MerchantState, profile), nil
}

func stateOutput(state domain.MerchantState, profile *domain.MerchantProfile) *samplingdto.StateOutput {
	return &samplingdto.StateOutput{
		MerchantState: state,
		Profile:       profile,
		Visibility:    domain.VisibilityForState(state),
	}
}

// transition moves the merchant one state forward through the given store
// (pass a tx-scoped store to hook it into a larger transaction), records
// metrics and publishes the event.
func (uc *DefaultSamplingUsecase) transition(
	store domain.SamplingStore,
	advertiserID string,
	from, to domain.MerchantState,
	reason string,
	metadata map[string]any,
) error {
	if !from.CanAdvanceTo(to) {
		return fmt.Errorf("illegal merchant transition %s -> %s", from, to)
	}

	t := &domain.StateTransition{
		ID:              newTransitionID(),
		AdvertiserID:    advertiserID,
		FromState:       from,
		ToState:         to,
		TriggerReason:   reason,
		TriggerMetadata: metadata,
		CreatedAt:       time.Now(),
	}
	if err := store.Merchants().Transition(t); err != nil {
		return err
	}

	uc.Metrics.RecordStateTransition(string(to))
	uc.publishTransition(t)

	return nil
}

func (uc *DefaultSamplingUsecase) publishTransition(t *domain.StateTransition) {
	if uc.Publisher == nil {
		return
	}
	if err := uc.Publisher.PublishTransition(domain.TransitionEvent{
		AdvertiserID:  t.AdvertiserID,
		FromState:     string(t.FromState),
		ToState:       string(t.ToState),
		TriggerReason: t.TriggerReason,
		Metadata:      t.TriggerMetadata,
	}); err != nil {
		slog.Error("failed to publish TransitionEvent", "advertiser_id", t.AdvertiserID, "to_state", t.ToState, "error", err.Error())
	}
}

func newTransitionID() string {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		panic(err)
	}
	return idGenerator()
}
