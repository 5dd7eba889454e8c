package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/promorang/sampling-service/internal/domain"
)

// expireActivation closes out one past-window activation and gives the
// window_expired trigger a chance to graduate the merchant.
func (uc *DefaultSamplingUsecase) expireActivation(activation *domain.SamplingActivation) error {
	if err := uc.Store.Activations().UpdateStatus(activation.ID, domain.ActivationExpired); err != nil {
		return fmt.Errorf("failed to mark activation expired: %w", err)
	}
	uc.Metrics.RecordActivationExpired()

	activation.Status = domain.ActivationExpired
	if _, err := uc.CheckGraduationTriggers(activation.AdvertiserID, activation.ID); err != nil {
		return err
	}

	return nil
}

// ExpireDueActivations sweeps activations whose window ended without any
// further user traffic. Same code path as lazy discovery, just driven by a
// ticker instead of a request.
func (uc *DefaultSamplingUsecase) ExpireDueActivations(ctx context.Context) error {
	expired, err := uc.Store.Activations().FindExpiredActive(time.Now())
	if err != nil {
		return fmt.Errorf("failed to find expired activations: %w", err)
	}

	for _, activation := range expired {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := uc.expireActivation(activation); err != nil {
			slog.Error("failed to expire activation", "activation_id", activation.ID, "error", err.Error())
		}
	}

	return nil
}
