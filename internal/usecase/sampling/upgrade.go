package usecase

import (
	"github.com/promorang/sampling-service/internal/domain"
	samplingdto "github.com/promorang/sampling-service/internal/usecase/dto/sampling"
)

// UpgradeToPaid is the final, merchant-initiated step of the funnel.
func (uc *DefaultSamplingUsecase) UpgradeToPaid(input *samplingdto.UpgradeToPaidInput) error {
	if input.PlanID == "" {
		return domain.NewValidationError("plan_id is required")
	}

	state, err := uc.GetState(input.AdvertiserID)
	if err != nil {
		return err
	}
	if state.MerchantState != domain.StateGraduated {
		return domain.NewValidationError("Merchant must graduate from sampling before upgrading")
	}

	metadata := map[string]any{"plan_id": input.PlanID}
	for k, v := range input.PlanDetails {
		metadata[k] = v
	}

	return uc.transition(uc.Store, input.AdvertiserID,
		domain.StateGraduated, domain.StatePaid,
		"upgraded_to_paid",
		metadata,
	)
}
