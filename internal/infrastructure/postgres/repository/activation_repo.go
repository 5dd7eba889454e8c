package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/promorang/sampling-service/internal/domain"
	"github.com/promorang/sampling-service/internal/infrastructure/postgres/mappers"
	"github.com/promorang/sampling-service/internal/infrastructure/postgres/models"
)

type DefaultActivationRepository struct {
	db *gorm.DB
}

func NewDefaultActivationRepository(db *gorm.DB) *DefaultActivationRepository {
	return &DefaultActivationRepository{db: db}
}

func (r *DefaultActivationRepository) CreateActivation(a *domain.SamplingActivation) error {
	return r.db.Create(mappers.ToGORMActivation(a)).Error
}

func (r *DefaultActivationRepository) GetActivationByID(id string) (*domain.SamplingActivation, error) {
	var model models.SamplingActivationModel
	if err := r.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return mappers.ToDomainActivation(&model), nil
}

func (r *DefaultActivationRepository) GetActivationsByAdvertiserID(advertiserID string) ([]*domain.SamplingActivation, error) {
	var activationModels []*models.SamplingActivationModel
	if err := r.db.Where("advertiser_id = ?", advertiserID).
		Order("created_at DESC").
		Find(&activationModels).Error; err != nil {
		return nil, err
	}

	return mappers.ToDomainActivationList(activationModels), nil
}

func (r *DefaultActivationRepository) CountActivationsByAdvertiserID(advertiserID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.SamplingActivationModel{}).
		Where("advertiser_id = ?", advertiserID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *DefaultActivationRepository) UpdateStatus(id string, status domain.ActivationStatus) error {
	return r.db.Model(&models.SamplingActivationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

// IncrementRedemptions is guarded in SQL so two concurrent redemptions can
// never push current_redemptions past max_redemptions.
func (r *DefaultActivationRepository) IncrementRedemptions(id string) (int32, error) {
	res := r.db.Model(&models.SamplingActivationModel{}).
		Where("id = ? AND current_redemptions < max_redemptions", id).
		Updates(map[string]any{
			"current_redemptions": gorm.Expr("current_redemptions + 1"),
			"updated_at":          time.Now(),
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, domain.ErrRedemptionLimitReached
	}

	var model models.SamplingActivationModel
	if err := r.db.Select("current_redemptions").First(&model, "id = ?", id).Error; err != nil {
		return 0, err
	}
	return model.CurrentRedemptions, nil
}

func (r *DefaultActivationRepository) MarkGraduationTriggered(id, reason string, at time.Time) (bool, error) {
	res := r.db.Model(&models.SamplingActivationModel{}).
		Where("id = ? AND graduation_triggered = ?", id, false).
		Updates(map[string]any{
			"graduation_triggered":    true,
			"graduation_reason":       reason,
			"graduation_triggered_at": at,
			"updated_at":              at,
		})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

var surfaceColumns = map[domain.Surface]string{
	domain.SurfaceDeals:  "include_in_deals",
	domain.SurfaceEvents: "include_in_events",
	domain.SurfacePost:   "include_in_post_proof",
}

func (r *DefaultActivationRepository) FindActiveForSurface(surface domain.Surface, now time.Time) ([]*domain.SamplingActivation, error) {
	column, ok := surfaceColumns[surface]
	if !ok {
		// Unknown surface is not an error, just nothing to show.
		return []*domain.SamplingActivation{}, nil
	}

	var activationModels []*models.SamplingActivationModel
	if err := r.db.Where(column+" = ?", true).
		Where("status = ?", domain.ActivationActive).
		Where("current_redemptions < max_redemptions").
		Where("expires_at > ?", now).
		Find(&activationModels).Error; err != nil {
		return nil, err
	}

	return mappers.ToDomainActivationList(activationModels), nil
}

func (r *DefaultActivationRepository) FindExpiredActive(now time.Time) ([]*domain.SamplingActivation, error) {
	var activationModels []*models.SamplingActivationModel
	if err := r.db.Where("status = ? AND expires_at < ?", domain.ActivationActive, now).
		Find(&activationModels).Error; err != nil {
		return nil, err
	}

	return mappers.ToDomainActivationList(activationModels), nil
}
