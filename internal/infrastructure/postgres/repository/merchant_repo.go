package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/promorang/sampling-service/internal/domain"
	"github.com/promorang/sampling-service/internal/infrastructure/postgres/mappers"
	"github.com/promorang/sampling-service/internal/infrastructure/postgres/models"
)

type DefaultMerchantRepository struct {
	db *gorm.DB
}

func NewDefaultMerchantRepository(db *gorm.DB) *DefaultMerchantRepository {
	return &DefaultMerchantRepository{db: db}
}

func (r *DefaultMerchantRepository) GetProfile(advertiserID string) (*domain.MerchantProfile, error) {
	var model models.AdvertiserProfileModel
	if err := r.db.First(&model, "advertiser_id = ?", advertiserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return mappers.ToDomainProfile(&model), nil
}

func (r *DefaultMerchantRepository) EnsureProfile(advertiserID string) (*domain.MerchantProfile, error) {
	now := time.Now()
	model := models.AdvertiserProfileModel{
		AdvertiserID:  advertiserID,
		MerchantState: domain.StateNew,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	// Insert-if-absent; a concurrent first touch is a harmless no-op.
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&model).Error; err != nil {
		return nil, err
	}

	return r.GetProfile(advertiserID)
}

// Transition is the single write path for merchant state. The profile update
// is conditional on the stored state still matching FromState, and the audit
// row lands in the same transaction, so a lost race changes nothing.
func (r *DefaultMerchantRepository) Transition(t *domain.StateTransition) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		updates := map[string]any{
			"merchant_state": t.ToState,
			"updated_at":     now,
		}
		switch t.ToState {
		case domain.StateSampling:
			updates["sampling_started_at"] = now
		case domain.StateGraduated:
			updates["graduated_at"] = now
		case domain.StatePaid:
			updates["paid_at"] = now
		}

		res := tx.Model(&models.AdvertiserProfileModel{}).
			Where("advertiser_id = ? AND merchant_state = ?", t.AdvertiserID, t.FromState).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrStateConflict
		}

		return tx.Create(mappers.ToGORMTransition(t)).Error
	})
}

func (r *DefaultMerchantRepository) GetTransitions(advertiserID string) ([]*domain.StateTransition, error) {
	var transitionModels []*models.MerchantStateTransitionModel
	if err := r.db.Where("advertiser_id = ?", advertiserID).
		Order("created_at ASC").
		Find(&transitionModels).Error; err != nil {
		return nil, err
	}

	transitions := make([]*domain.StateTransition, len(transitionModels))
	for i, model := range transitionModels {
		transitions[i] = mappers.ToDomainTransition(model)
	}
	return transitions, nil
}
