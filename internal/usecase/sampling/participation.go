package usecase

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/promorang/sampling-service/internal/domain"
	samplingdto "github.com/promorang/sampling-service/internal/usecase/dto/sampling"
)

// RecordParticipation upserts one user action against an active activation.
// Expiry is discovered lazily here: an interaction against a past-window
// activation marks it expired, runs the graduation check and fails the call.
func (uc *DefaultSamplingUsecase) RecordParticipation(input *samplingdto.RecordParticipationInput) (*domain.SamplingParticipation, error) {
	activation, err := uc.Store.Activations().GetActivationByID(input.ActivationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get activation: %w", err)
	}
	if activation == nil {
		return nil, domain.ErrActivationNotFound
	}

	if activation.Status != domain.ActivationActive {
		return nil, domain.NewValidationError("Activation is not active")
	}

	now := time.Now()
	if activation.Expired(now) {
		if err := uc.expireActivation(activation); err != nil {
			slog.Error("failed to expire activation", "activation_id", activation.ID, "error", err.Error())
		}
		return nil, domain.NewValidationError("Activation has expired")
	}

	metadata := ""
	if len(input.Metadata) > 0 {
		if raw, err := json.Marshal(input.Metadata); err == nil {
			metadata = string(raw)
		}
	}

	participation, err := uc.Store.Participations().UpsertParticipation(&domain.SamplingParticipation{
		ID:                uuid.New().String(),
		ActivationID:      input.ActivationID,
		UserID:            input.UserID,
		ActionType:        input.ActionType,
		UserMaturityState: input.UserMaturityState,
		MetadataJSON:      metadata,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record participation: %w", err)
	}

	uc.Metrics.RecordParticipation(input.ActionType)

	if _, err := uc.CheckGraduationTriggers(activation.AdvertiserID, activation.ID); err != nil {
		slog.Error("graduation check failed after participation", "activation_id", activation.ID, "error", err.Error())
	}

	return participation, nil
}

func (uc *DefaultSamplingUsecase) VerifyParticipation(participationID, method string) (*domain.SamplingParticipation, error) {
	participation, err := uc.Store.Participations().GetParticipationByID(participationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participation: %w", err)
	}
	if participation == nil {
		return nil, domain.ErrParticipationNotFound
	}

	participation, err = uc.Store.Participations().MarkVerified(participationID, method, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to verify participation: %w", err)
	}

	uc.Metrics.RecordVerification(method)

	activation, err := uc.Store.Activations().GetActivationByID(participation.ActivationID)
	if err == nil && activation != nil {
		if _, err := uc.CheckGraduationTriggers(activation.AdvertiserID, activation.ID); err != nil {
			slog.Error("graduation check failed after verification", "activation_id", activation.ID, "error", err.Error())
		}
	}

	return participation, nil
}

// RecordRedemption marks the participation redeemed and bumps the parent
// activation's redemption counter; hitting the cap completes the activation.
// The redeem + increment + complete steps share one transaction.
func (uc *DefaultSamplingUsecase) RecordRedemption(participationID string, redemptionValue float64) (*domain.SamplingParticipation, error) {
	participation, err := uc.Store.Participations().GetParticipationByID(participationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participation: %w", err)
	}
	if participation == nil {
		return nil, domain.ErrParticipationNotFound
	}
	if participation.Redeemed {
		// Re-redeeming must not double-count.
		return participation, nil
	}

	activation, err := uc.Store.Activations().GetActivationByID(participation.ActivationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get activation: %w", err)
	}
	if activation == nil {
		return nil, domain.ErrActivationNotFound
	}

	now := time.Now()
	err = uc.Store.InTx(func(tx domain.SamplingStore) error {
		updated, err := tx.Participations().MarkRedeemed(participationID, redemptionValue, now)
		if err != nil {
			return fmt.Errorf("failed to mark redeemed: %w", err)
		}
		participation = updated

		newCount, err := tx.Activations().IncrementRedemptions(activation.ID)
		if err != nil {
			return err
		}
		if newCount >= activation.MaxRedemptions && activation.Status == domain.ActivationActive {
			if err := tx.Activations().UpdateStatus(activation.ID, domain.ActivationCompleted); err != nil {
				return fmt.Errorf("failed to complete activation: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.Metrics.RecordRedemption(string(activation.ValueType))

	if uc.Rewards != nil {
		if err := uc.Rewards.Credit(participation.UserID, activation.ID, redemptionValue); err != nil {
			slog.Error("rewards credit failed", "user_id", participation.UserID, "activation_id", activation.ID, "error", err.Error())
		}
	}

	if _, err := uc.CheckGraduationTriggers(activation.AdvertiserID, activation.ID); err != nil {
		slog.Error("graduation check failed after redemption", "activation_id", activation.ID, "error", err.Error())
	}

	return participation, nil
}
