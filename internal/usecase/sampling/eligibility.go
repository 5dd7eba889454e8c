package usecase

import (
	"fmt"

	"github.com/promorang/sampling-service/internal/domain"
	samplingdto "github.com/promorang/sampling-service/internal/usecase/dto/sampling"
)

var ineligibleStateReasons = map[domain.MerchantState]string{
	domain.StateSampling:  "Merchant already has an active sampling period",
	domain.StateGraduated: "Merchant has already graduated from sampling",
	domain.StatePaid:      "Merchant is already on a paid plan",
}

// CheckEligibility gates activation creation. Only NEW merchants qualify,
// and even a NEW merchant is refused once an activation has ever existed —
// the one-activation-per-merchant rule survives any state inconsistency.
func (uc *DefaultSamplingUsecase) CheckEligibility(advertiserID string) (*samplingdto.EligibilityOutput, error) {
	limits := uc.ConfigUC.Limits()

	state, err := uc.GetState(advertiserID)
	if err != nil {
		return nil, err
	}

	if reason, ok := ineligibleStateReasons[state.MerchantState]; ok {
		return &samplingdto.EligibilityOutput{Allowed: false, Reason: reason, Limits: limits}, nil
	}

	count, err := uc.Store.Activations().CountActivationsByAdvertiserID(advertiserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count activations: %w", err)
	}
	if count >= int64(limits.MaxActivationsPerMerchant) {
		return &samplingdto.EligibilityOutput{
			Allowed: false,
			Reason:  "Merchant has already used their sampling activation",
			Limits:  limits,
		}, nil
	}

	return &samplingdto.EligibilityOutput{Allowed: true, Limits: limits}, nil
}
