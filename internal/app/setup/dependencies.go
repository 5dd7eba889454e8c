package setup

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/promorang/sampling-service/internal/config"
	"github.com/promorang/sampling-service/internal/domain"
	"github.com/promorang/sampling-service/internal/infrastructure/cache"
	"github.com/promorang/sampling-service/internal/infrastructure/kafka"
	"github.com/promorang/sampling-service/internal/infrastructure/metrics"
	"github.com/promorang/sampling-service/internal/infrastructure/postgres/repository"
	"github.com/promorang/sampling-service/internal/infrastructure/rewards"
	"github.com/promorang/sampling-service/internal/usecase"
	samplinguc "github.com/promorang/sampling-service/internal/usecase/sampling"
)

type Dependencies struct {
	Store      domain.SamplingStore
	ConfigUC   usecase.SamplingConfigUsecase
	SamplingUC samplinguc.SamplingUsecase
	Metrics    *metrics.SamplingMetrics
}

func Build(cfg *config.SamplingConfig, db *gorm.DB) (*Dependencies, error) {
	store := repository.NewGormSamplingStore(db)

	configUC := usecase.NewDefaultSamplingConfigUsecase(
		repository.NewDefaultConfigRepository(db),
		cache.New(30*time.Second),
	)

	var publisher domain.EventPublisher
	if cfg.KafkaService.Host != "" {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
		publisher = kafka.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)
	}

	var rewardsPort domain.RewardsPort
	if cfg.RewardsService.Host != "" {
		client, err := rewards.NewHTTPRewardsClient(
			fmt.Sprintf("http://%s:%s", cfg.RewardsService.Host, cfg.RewardsService.Port))
		if err != nil {
			return nil, fmt.Errorf("failed to init rewards client: %w", err)
		}
		rewardsPort = client
	}

	samplingMetrics := metrics.NewSamplingMetrics()

	samplingUC := samplinguc.NewDefaultSamplingUsecase(
		store,
		configUC,
		publisher,
		rewardsPort,
		samplingMetrics,
	)

	return &Dependencies{
		Store:      store,
		ConfigUC:   configUC,
		SamplingUC: samplingUC,
		Metrics:    samplingMetrics,
	}, nil
}
