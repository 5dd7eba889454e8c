package mappers

import (
	"github.com/promorang/sampling-service/internal/domain"
	"github.com/promorang/sampling-service/internal/infrastructure/postgres/models"
)

func ToDomainActivation(model *models.SamplingActivationModel) *domain.SamplingActivation {
	return &domain.SamplingActivation{
		ID:                    model.ID,
		AdvertiserID:          model.AdvertiserID,
		Name:                  model.Name,
		Description:           model.Description,
		ValueType:             domain.ActivationValueType(model.ValueType),
		ValueAmount:           model.ValueAmount,
		ValueUnit:             model.ValueUnit,
		MaxRedemptions:        model.MaxRedemptions,
		CurrentRedemptions:    model.CurrentRedemptions,
		DurationDays:          model.DurationDays,
		StartsAt:              model.StartsAt,
		ExpiresAt:             model.ExpiresAt,
		Status:                domain.ActivationStatus(model.Status),
		IncludeInDeals:        model.IncludeInDeals,
		IncludeInEvents:       model.IncludeInEvents,
		IncludeInPostProof:    model.IncludeInPostProof,
		PromoshareEnabled:     model.PromoshareEnabled,
		SocialShieldRequired:  model.SocialShieldRequired,
		GraduationTriggered:   model.GraduationTriggered,
		GraduationReason:      model.GraduationReason,
		GraduationTriggeredAt: model.GraduationTriggeredAt,
		CreatedAt:             model.CreatedAt,
		UpdatedAt:             model.UpdatedAt,
	}
}

func ToGORMActivation(a *domain.SamplingActivation) *models.SamplingActivationModel {
	return &models.SamplingActivationModel{
		ID:                    a.ID,
		AdvertiserID:          a.AdvertiserID,
		Name:                  a.Name,
		Description:           a.Description,
		ValueType:             string(a.ValueType),
		ValueAmount:           a.ValueAmount,
		ValueUnit:             a.ValueUnit,
		MaxRedemptions:        a.MaxRedemptions,
		CurrentRedemptions:    a.CurrentRedemptions,
		DurationDays:          a.DurationDays,
		StartsAt:              a.StartsAt,
		ExpiresAt:             a.ExpiresAt,
		Status:                string(a.Status),
		IncludeInDeals:        a.IncludeInDeals,
		IncludeInEvents:       a.IncludeInEvents,
		IncludeInPostProof:    a.IncludeInPostProof,
		PromoshareEnabled:     a.PromoshareEnabled,
		SocialShieldRequired:  a.SocialShieldRequired,
		GraduationTriggered:   a.GraduationTriggered,
		GraduationReason:      a.GraduationReason,
		GraduationTriggeredAt: a.GraduationTriggeredAt,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

func ToDomainActivationList(activationModels []*models.SamplingActivationModel) []*domain.SamplingActivation {
	activations := make([]*domain.SamplingActivation, len(activationModels))
	for i, model := range activationModels {
		activations[i] = ToDomainActivation(model)
	}
	return activations
}
