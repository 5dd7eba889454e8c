package usecase

import (
	"context"

	"github.com/promorang/sampling-service/internal/domain"
	"github.com/promorang/sampling-service/internal/infrastructure/metrics"
	"github.com/promorang/sampling-service/internal/usecase"
	samplingdto "github.com/promorang/sampling-service/internal/usecase/dto/sampling"
)

type SamplingUsecase interface {
	GetState(advertiserID string) (*samplingdto.StateOutput, error)
	CheckEligibility(advertiserID string) (*samplingdto.EligibilityOutput, error)
	CreateActivation(input *samplingdto.CreateActivationInput) (*domain.SamplingActivation, error)
	GetActivationMetrics(advertiserID string) (*samplingdto.ActivationMetricsOutput, error)

	RecordParticipation(input *samplingdto.RecordParticipationInput) (*domain.SamplingParticipation, error)
	VerifyParticipation(participationID, method string) (*domain.SamplingParticipation, error)
	RecordRedemption(participationID string, redemptionValue float64) (*domain.SamplingParticipation, error)

	CheckGraduationTriggers(advertiserID, activationID string) (*samplingdto.GraduationResult, error)
	RequestGraduation(advertiserID, requestType string) (*samplingdto.RequestGraduationOutput, error)
	GetGraduationOptions(advertiserID string) (*samplingdto.GraduationOptionsOutput, error)
	UpgradeToPaid(input *samplingdto.UpgradeToPaidInput) error

	GetActiveForSurface(surface string) ([]*domain.SamplingActivation, error)
	ExpireDueActivations(ctx context.Context) error
}

type DefaultSamplingUsecase struct {
	Store     domain.SamplingStore
	ConfigUC  usecase.SamplingConfigUsecase
	Publisher domain.EventPublisher
	Rewards   domain.RewardsPort
	Metrics   *metrics.SamplingMetrics
}

func NewDefaultSamplingUsecase(
	store domain.SamplingStore,
	configUC usecase.SamplingConfigUsecase,
	publisher domain.EventPublisher,
	rewards domain.RewardsPort,
	samplingMetrics *metrics.SamplingMetrics) *DefaultSamplingUsecase {

	return &DefaultSamplingUsecase{
		Store:     store,
		ConfigUC:  configUC,
		Publisher: publisher,
		Rewards:   rewards,
		Metrics:   samplingMetrics,
	}
}
