package mappers

import (
	"encoding/json"

	"github.com/promorang/sampling-service/internal/domain"
	"github.com/promorang/sampling-service/internal/infrastructure/postgres/models"
)

func ToDomainProfile(model *models.AdvertiserProfileModel) *domain.MerchantProfile {
	return &domain.MerchantProfile{
		AdvertiserID:      model.AdvertiserID,
		MerchantState:     model.MerchantState,
		SamplingStartedAt: model.SamplingStartedAt,
		GraduatedAt:       model.GraduatedAt,
		PaidAt:            model.PaidAt,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func ToGORMTransition(t *domain.StateTransition) *models.MerchantStateTransitionModel {
	metadata := ""
	if len(t.TriggerMetadata) > 0 {
		if raw, err := json.Marshal(t.TriggerMetadata); err == nil {
			metadata = string(raw)
		}
	}
	return &models.MerchantStateTransitionModel{
		ID:              t.ID,
		AdvertiserID:    t.AdvertiserID,
		FromState:       string(t.FromState),
		ToState:         string(t.ToState),
		TriggerReason:   t.TriggerReason,
		TriggerMetadata: metadata,
		CreatedAt:       t.CreatedAt,
	}
}

func ToDomainTransition(model *models.MerchantStateTransitionModel) *domain.StateTransition {
	var metadata map[string]any
	if model.TriggerMetadata != "" {
		_ = json.Unmarshal([]byte(model.TriggerMetadata), &metadata)
	}
	return &domain.StateTransition{
		ID:              model.ID,
		AdvertiserID:    model.AdvertiserID,
		FromState:       domain.MerchantState(model.FromState),
		ToState:         domain.MerchantState(model.ToState),
		TriggerReason:   model.TriggerReason,
		TriggerMetadata: metadata,
		CreatedAt:       model.CreatedAt,
	}
}
