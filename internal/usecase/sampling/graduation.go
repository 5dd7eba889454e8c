package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/promorang/sampling-service/internal/domain"
	samplingdto "github.com/promorang/sampling-service/internal/usecase/dto/sampling"
)

type graduationMetrics struct {
	VerifiedActions       int
	EntryUserParticipants int
	Participants          int
	RedemptionRate        float64
}

type graduationTrigger struct {
	name  string
	fired func(a *domain.SamplingActivation, m graduationMetrics, triggers domain.GraduationTriggers, now time.Time) bool
}

// Ordered by priority; the first trigger that fires names the graduation
// reason.
var graduationTriggers = []graduationTrigger{
	{
		name: "redemption_rate_threshold",
		fired: func(_ *domain.SamplingActivation, m graduationMetrics, t domain.GraduationTriggers, _ time.Time) bool {
			return m.RedemptionRate >= t.RedemptionRateThreshold
		},
	},
	{
		name: "verified_actions_threshold",
		fired: func(_ *domain.SamplingActivation, m graduationMetrics, t domain.GraduationTriggers, _ time.Time) bool {
			return m.VerifiedActions >= t.VerifiedActionsThreshold
		},
	},
	{
		name: "window_expired",
		fired: func(a *domain.SamplingActivation, _ graduationMetrics, _ domain.GraduationTriggers, now time.Time) bool {
			return a.Expired(now)
		},
	},
}

// CheckGraduationTriggers recomputes aggregate metrics from scratch and
// graduates the merchant when a trigger fires. Idempotent: once an
// activation has graduated, every later check returns the stored reason.
func (uc *DefaultSamplingUsecase) CheckGraduationTriggers(advertiserID, activationID string) (*samplingdto.GraduationResult, error) {
	start := time.Now()
	result, err := uc.checkGraduationTriggers(advertiserID, activationID)
	if err == nil {
		uc.Metrics.RecordGraduationCheck(time.Since(start).Seconds(), result.Graduated)
	}
	return result, err
}

func (uc *DefaultSamplingUsecase) checkGraduationTriggers(advertiserID, activationID string) (*samplingdto.GraduationResult, error) {
	activation, err := uc.Store.Activations().GetActivationByID(activationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get activation: %w", err)
	}
	if activation == nil {
		return nil, domain.ErrActivationNotFound
	}
	if activation.GraduationTriggered {
		return &samplingdto.GraduationResult{Graduated: true, Reason: activation.GraduationReason}, nil
	}

	state, err := uc.GetState(advertiserID)
	if err != nil {
		return nil, err
	}
	if state.MerchantState != domain.StateSampling {
		return &samplingdto.GraduationResult{Graduated: false}, nil
	}

	computed, err := uc.computeGraduationMetrics(activation)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	thresholds := uc.ConfigUC.GraduationTriggers()

	reason := ""
	for _, trigger := range graduationTriggers {
		if trigger.fired(activation, computed, thresholds, now) {
			reason = trigger.name
			break
		}
	}
	if reason == "" {
		return &samplingdto.GraduationResult{Graduated: false}, nil
	}

	return uc.graduate(activation, reason, computed, now)
}

func (uc *DefaultSamplingUsecase) computeGraduationMetrics(activation *domain.SamplingActivation) (graduationMetrics, error) {
	participations, err := uc.Store.Participations().GetParticipationsByActivationID(activation.ID)
	if err != nil {
		return graduationMetrics{}, fmt.Errorf("failed to load participations: %w", err)
	}

	m := graduationMetrics{Participants: len(participations)}
	for _, p := range participations {
		if p.Verified {
			m.VerifiedActions++
		}
		if p.EntryUser() {
			m.EntryUserParticipants++
		}
	}
	if activation.MaxRedemptions > 0 {
		m.RedemptionRate = float64(activation.CurrentRedemptions) / float64(activation.MaxRedemptions)
	}

	return m, nil
}

// graduate flips the activation's one-shot graduation flag and moves the
// merchant to GRADUATED in a single transaction. Losing either race means
// another request already graduated this merchant; resolve to its reason.
func (uc *DefaultSamplingUsecase) graduate(
	activation *domain.SamplingActivation,
	reason string,
	computed graduationMetrics,
	now time.Time,
) (*samplingdto.GraduationResult, error) {
	var raced bool
	err := uc.Store.InTx(func(tx domain.SamplingStore) error {
		flipped, err := tx.Activations().MarkGraduationTriggered(activation.ID, reason, now)
		if err != nil {
			return fmt.Errorf("failed to mark graduation: %w", err)
		}
		if !flipped {
			raced = true
			return nil
		}

		if activation.Status == domain.ActivationActive {
			if err := tx.Activations().UpdateStatus(activation.ID, domain.ActivationCompleted); err != nil {
				return fmt.Errorf("failed to complete activation: %w", err)
			}
		}

		return uc.transition(tx, activation.AdvertiserID,
			domain.StateSampling, domain.StateGraduated,
			reason,
			map[string]any{
				"activation_id":           activation.ID,
				"redemption_rate":         computed.RedemptionRate,
				"verified_actions":        computed.VerifiedActions,
				"entry_user_participants": computed.EntryUserParticipants,
			},
		)
	})
	if err != nil {
		if errors.Is(err, domain.ErrStateConflict) {
			raced = true
		} else {
			return nil, err
		}
	}

	if raced {
		current, err := uc.Store.Activations().GetActivationByID(activation.ID)
		if err != nil || current == nil {
			return &samplingdto.GraduationResult{Graduated: true, Reason: reason}, nil
		}
		return &samplingdto.GraduationResult{Graduated: true, Reason: current.GraduationReason}, nil
	}

	uc.Metrics.RecordGraduation(reason)
	slog.Info("merchant graduated from sampling",
		"advertiser_id", activation.AdvertiserID,
		"activation_id", activation.ID,
		"reason", reason,
	)

	return &samplingdto.GraduationResult{Graduated: true, Reason: reason}, nil
}

var graduationRequestSteps = map[string][]string{
	"another_activation": {
		"Review your sampling results",
		"Choose a paid plan to run more activations",
	},
	"higher_limits": {
		"Review your sampling results",
		"Upgrade to raise redemption and budget limits",
	},
	"targeting": {
		"Upgrade to unlock audience targeting",
		"Define your first audience segment",
	},
	"scheduling": {
		"Upgrade to unlock campaign scheduling",
		"Plan your first scheduled campaign",
	},
	"scaling": {
		"Review which surface performed best",
		"Upgrade to scale winning placements",
	},
	"analytics": {
		"Upgrade to unlock full analytics",
		"Connect your conversion tracking",
	},
	"optimization": {
		"Upgrade to unlock optimization tools",
		"Enable automatic budget reallocation",
	},
}

// RequestGraduation is the merchant-initiated shortcut out of SAMPLING. It
// bypasses metric thresholds but still requires an active activation.
func (uc *DefaultSamplingUsecase) RequestGraduation(advertiserID, requestType string) (*samplingdto.RequestGraduationOutput, error) {
	nextSteps, ok := graduationRequestSteps[requestType]
	if !ok {
		return nil, domain.NewValidationError("Unknown graduation request type: %s", requestType)
	}

	state, err := uc.GetState(advertiserID)
	if err != nil {
		return nil, err
	}
	if state.MerchantState != domain.StateSampling {
		return nil, domain.NewValidationError("Merchant is not in a sampling period")
	}

	activations, err := uc.Store.Activations().GetActivationsByAdvertiserID(advertiserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load activations: %w", err)
	}
	var active *domain.SamplingActivation
	for _, a := range activations {
		if a.Status == domain.ActivationActive {
			active = a
			break
		}
	}
	if active == nil {
		return nil, domain.ErrNoActiveActivation
	}

	computed, err := uc.computeGraduationMetrics(active)
	if err != nil {
		return nil, err
	}

	reason := "merchant_request_" + requestType
	if _, err := uc.graduate(active, reason, computed, time.Now()); err != nil {
		return nil, err
	}

	return &samplingdto.RequestGraduationOutput{
		Message:   "Sampling period ended at your request",
		NextSteps: nextSteps,
	}, nil
}
