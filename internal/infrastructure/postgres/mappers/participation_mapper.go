package mappers

import (
	"github.com/promorang/sampling-service/internal/domain"
	"github.com/promorang/sampling-service/internal/infrastructure/postgres/models"
)

func ToDomainParticipation(model *models.SamplingParticipationModel) *domain.SamplingParticipation {
	return &domain.SamplingParticipation{
		ID:                 model.ID,
		ActivationID:       model.ActivationID,
		UserID:             model.UserID,
		ActionType:         model.ActionType,
		UserMaturityState:  model.UserMaturityState,
		MetadataJSON:       model.Metadata,
		Verified:           model.Verified,
		VerifiedAt:         model.VerifiedAt,
		VerificationMethod: model.VerificationMethod,
		Redeemed:           model.Redeemed,
		RedeemedAt:         model.RedeemedAt,
		RedemptionValue:    model.RedemptionValue,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

func ToGORMParticipation(p *domain.SamplingParticipation) *models.SamplingParticipationModel {
	return &models.SamplingParticipationModel{
		ID:                 p.ID,
		ActivationID:       p.ActivationID,
		UserID:             p.UserID,
		ActionType:         p.ActionType,
		UserMaturityState:  p.UserMaturityState,
		Metadata:           p.MetadataJSON,
		Verified:           p.Verified,
		VerifiedAt:         p.VerifiedAt,
		VerificationMethod: p.VerificationMethod,
		Redeemed:           p.Redeemed,
		RedeemedAt:         p.RedeemedAt,
		RedemptionValue:    p.RedemptionValue,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func ToDomainParticipationList(participationModels []*models.SamplingParticipationModel) []*domain.SamplingParticipation {
	participations := make([]*domain.SamplingParticipation, len(participationModels))
	for i, model := range participationModels {
		participations[i] = ToDomainParticipation(model)
	}
	return participations
}
