package usecase

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/promorang/sampling-service/internal/domain"
	"github.com/promorang/sampling-service/internal/infrastructure/cache"
)

const configCacheTTL = 30 * time.Second

// SamplingConfigUsecase resolves tunable sampling rules. Reads never fail:
// a missing row or a broken store falls back to the compiled defaults.
type SamplingConfigUsecase interface {
	Limits() domain.SamplingLimits
	GraduationTriggers() domain.GraduationTriggers
}

type DefaultSamplingConfigUsecase struct {
	ConfigRepo domain.ConfigRepository
	Cache      *cache.TTLCache
}

func NewDefaultSamplingConfigUsecase(configRepo domain.ConfigRepository, c *cache.TTLCache) *DefaultSamplingConfigUsecase {
	if c == nil {
		c = cache.New(configCacheTTL)
	}
	return &DefaultSamplingConfigUsecase{
		ConfigRepo: configRepo,
		Cache:      c,
	}
}

func (uc *DefaultSamplingConfigUsecase) Limits() domain.SamplingLimits {
	value, err := uc.Cache.GetOrCompute(domain.ConfigKeyLimits, func() (any, error) {
		limits := domain.DefaultSamplingLimits()
		uc.overlay(domain.ConfigKeyLimits, &limits)
		return limits, nil
	})
	if err != nil {
		return domain.DefaultSamplingLimits()
	}
	return value.(domain.SamplingLimits)
}

func (uc *DefaultSamplingConfigUsecase) GraduationTriggers() domain.GraduationTriggers {
	value, err := uc.Cache.GetOrCompute(domain.ConfigKeyGraduationTriggers, func() (any, error) {
		triggers := domain.DefaultGraduationTriggers()
		uc.overlay(domain.ConfigKeyGraduationTriggers, &triggers)
		return triggers, nil
	})
	if err != nil {
		return domain.DefaultGraduationTriggers()
	}
	return value.(domain.GraduationTriggers)
}

// overlay merges the stored JSON document over defaults already present in
// target. Any read or decode failure leaves the defaults untouched.
func (uc *DefaultSamplingConfigUsecase) overlay(key string, target any) {
	if uc.ConfigRepo == nil {
		return
	}
	raw, err := uc.ConfigRepo.GetValue(key)
	if err != nil {
		slog.Error("sampling config read failed, using defaults", "key", key, "error", err.Error())
		return
	}
	if raw == nil {
		return
	}
	if err := json.Unmarshal(raw, target); err != nil {
		slog.Error("sampling config decode failed, using defaults", "key", key, "error", err.Error())
	}
}
