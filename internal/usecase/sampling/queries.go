package usecase

import (
	"fmt"
	"time"

	"github.com/promorang/sampling-service/internal/domain"
	samplingdto "github.com/promorang/sampling-service/internal/usecase/dto/sampling"
)

// GetActivationMetrics summarizes the latest activation for the merchant
// dashboard. A merchant without an activation gets an empty summary, not an
// error.
func (uc *DefaultSamplingUsecase) GetActivationMetrics(advertiserID string) (*samplingdto.ActivationMetricsOutput, error) {
	activations, err := uc.Store.Activations().GetActivationsByAdvertiserID(advertiserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load activations: %w", err)
	}
	if len(activations) == 0 {
		return &samplingdto.ActivationMetricsOutput{HasActivation: false}, nil
	}

	activation := activations[0]
	computed, err := uc.computeGraduationMetrics(activation)
	if err != nil {
		return nil, err
	}

	daysRemaining := 0
	if remaining := time.Until(activation.ExpiresAt); remaining > 0 {
		daysRemaining = int(remaining.Hours() / 24)
	}

	return &samplingdto.ActivationMetricsOutput{
		HasActivation:         true,
		Activation:            activation,
		Participants:          computed.Participants,
		VerifiedActions:       computed.VerifiedActions,
		EntryUserParticipants: computed.EntryUserParticipants,
		RedemptionRate:        computed.RedemptionRate,
		DaysRemaining:         daysRemaining,
	}, nil
}

// GetActiveForSurface feeds the deals/events/post-proof pages. An unknown
// surface yields an empty list.
func (uc *DefaultSamplingUsecase) GetActiveForSurface(surface string) ([]*domain.SamplingActivation, error) {
	return uc.Store.Activations().FindActiveForSurface(domain.Surface(surface), time.Now())
}

var upgradeOptions = []samplingdto.UpgradeOption{
	{
		ID:          "starter",
		Name:        "Starter",
		Description: "Run up to 3 concurrent activations with basic analytics",
		MonthlyUSD:  99,
	},
	{
		ID:          "growth",
		Name:        "Growth",
		Description: "Unlimited activations, targeting, scheduling and full analytics",
		MonthlyUSD:  299,
	},
	{
		ID:          "scale",
		Name:        "Scale",
		Description: "Everything in Growth plus optimization tools and priority support",
		MonthlyUSD:  799,
	},
}

func (uc *DefaultSamplingUsecase) GetGraduationOptions(advertiserID string) (*samplingdto.GraduationOptionsOutput, error) {
	state, err := uc.GetState(advertiserID)
	if err != nil {
		return nil, err
	}
	if state.MerchantState != domain.StateGraduated {
		return nil, domain.NewValidationError("Merchant has not graduated from sampling")
	}

	results, err := uc.GetActivationMetrics(advertiserID)
	if err != nil {
		return nil, err
	}

	return &samplingdto.GraduationOptionsOutput{
		SamplingResults: *results,
		Options:         upgradeOptions,
	}, nil
}
