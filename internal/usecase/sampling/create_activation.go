package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/promorang/sampling-service/internal/domain"
	samplingdto "github.com/promorang/sampling-service/internal/usecase/dto/sampling"
)

// CreateActivation validates the offer against configured limits, then
// persists the activation and moves the merchant NEW -> SAMPLING in one
// transaction. Checks run in order; the first failure wins.
func (uc *DefaultSamplingUsecase) CreateActivation(input *samplingdto.CreateActivationInput) (*domain.SamplingActivation, error) {
	eligibility, err := uc.CheckEligibility(input.AdvertiserID)
	if err != nil {
		return nil, err
	}
	if !eligibility.Allowed {
		return nil, &domain.ValidationError{Message: eligibility.Reason}
	}

	limits := uc.ConfigUC.Limits()

	if input.DurationDays < limits.MinDurationDays || input.DurationDays > limits.MaxDurationDays {
		return nil, domain.NewValidationError(
			"Sampling duration must be between %d and %d days",
			limits.MinDurationDays, limits.MaxDurationDays,
		)
	}

	valueType := domain.ActivationValueType(input.ValueType)
	if !valueType.Valid() {
		return nil, domain.NewValidationError("Invalid activation value type: %s", input.ValueType)
	}

	switch valueType {
	case domain.ValueTypeProduct:
		if input.MaxRedemptions > limits.MaxProductUnits {
			return nil, domain.NewValidationError(
				"Maximum %d product units allowed for sampling", limits.MaxProductUnits)
		}
	case domain.ValueTypeVoucher:
		if input.MaxRedemptions > limits.MaxVoucherRedemptions {
			return nil, domain.NewValidationError(
				"Maximum %d voucher redemptions allowed for sampling", limits.MaxVoucherRedemptions)
		}
	case domain.ValueTypeCashPrize:
		if input.ValueAmount > limits.MaxCashPrizeUSD {
			return nil, domain.NewValidationError(
				"Maximum $%.0f cash prize allowed for sampling", limits.MaxCashPrizeUSD)
		}
	}

	now := time.Now()
	activation := &domain.SamplingActivation{
		ID:           uuid.New().String(),
		AdvertiserID: input.AdvertiserID,
		Name:         input.Name,
		Description:  input.Description,

		ValueType:   valueType,
		ValueAmount: input.ValueAmount,
		ValueUnit:   input.ValueUnit,

		MaxRedemptions:     input.MaxRedemptions,
		CurrentRedemptions: 0,

		DurationDays: input.DurationDays,
		StartsAt:     now,
		ExpiresAt:    now.Add(time.Duration(input.DurationDays) * 24 * time.Hour),
		Status:       domain.ActivationActive,

		IncludeInDeals:     input.IncludeInDeals,
		IncludeInEvents:    input.IncludeInEvents,
		IncludeInPostProof: input.IncludeInPostProof,

		// Mandatory platform policy, not merchant-configurable.
		PromoshareEnabled:    true,
		SocialShieldRequired: true,

		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.Store.InTx(func(tx domain.SamplingStore) error {
		if err := tx.Activations().CreateActivation(activation); err != nil {
			return fmt.Errorf("failed to create activation: %w", err)
		}
		return uc.transition(tx, input.AdvertiserID,
			domain.StateNew, domain.StateSampling,
			"sampling_activation_created",
			map[string]any{"activation_id": activation.ID},
		)
	})
	if err != nil {
		return nil, err
	}

	uc.Metrics.RecordActivationCreated(string(activation.ValueType))
	slog.Info("sampling activation created",
		"advertiser_id", input.AdvertiserID,
		"activation_id", activation.ID,
		"value_type", activation.ValueType,
		"expires_at", activation.ExpiresAt,
	)

	return activation, nil
}
