package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/promorang/sampling-service/internal/domain"
	"github.com/promorang/sampling-service/internal/infrastructure/postgres/mappers"
	"github.com/promorang/sampling-service/internal/infrastructure/postgres/models"
)

type DefaultParticipationRepository struct {
	db *gorm.DB
}

func NewDefaultParticipationRepository(db *gorm.DB) *DefaultParticipationRepository {
	return &DefaultParticipationRepository{db: db}
}

// UpsertParticipation relies on the unique index over (activation_id,
// user_id, action_type); a repeat of the same action refreshes metadata in
// place instead of inserting a second row.
func (r *DefaultParticipationRepository) UpsertParticipation(p *domain.SamplingParticipation) (*domain.SamplingParticipation, error) {
	model := mappers.ToGORMParticipation(p)
	if err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "activation_id"},
			{Name: "user_id"},
			{Name: "action_type"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"user_maturity_state", "metadata", "updated_at"}),
	}).Create(model).Error; err != nil {
		return nil, err
	}

	return r.getByKey(p.ActivationID, p.UserID, p.ActionType)
}

func (r *DefaultParticipationRepository) getByKey(activationID, userID, actionType string) (*domain.SamplingParticipation, error) {
	var model models.SamplingParticipationModel
	if err := r.db.First(&model,
		"activation_id = ? AND user_id = ? AND action_type = ?",
		activationID, userID, actionType,
	).Error; err != nil {
		return nil, err
	}

	return mappers.ToDomainParticipation(&model), nil
}

func (r *DefaultParticipationRepository) GetParticipationByID(id string) (*domain.SamplingParticipation, error) {
	var model models.SamplingParticipationModel
	if err := r.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return mappers.ToDomainParticipation(&model), nil
}

func (r *DefaultParticipationRepository) GetParticipationsByActivationID(activationID string) ([]*domain.SamplingParticipation, error) {
	var participationModels []*models.SamplingParticipationModel
	if err := r.db.Where("activation_id = ?", activationID).
		Find(&participationModels).Error; err != nil {
		return nil, err
	}

	return mappers.ToDomainParticipationList(participationModels), nil
}

func (r *DefaultParticipationRepository) MarkVerified(id, method string, at time.Time) (*domain.SamplingParticipation, error) {
	if err := r.db.Model(&models.SamplingParticipationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"verified":            true,
			"verified_at":         at,
			"verification_method": method,
			"updated_at":          at,
		}).Error; err != nil {
		return nil, err
	}

	return r.GetParticipationByID(id)
}

func (r *DefaultParticipationRepository) MarkRedeemed(id string, value float64, at time.Time) (*domain.SamplingParticipation, error) {
	if err := r.db.Model(&models.SamplingParticipationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"redeemed":         true,
			"redeemed_at":      at,
			"redemption_value": value,
			"updated_at":       at,
		}).Error; err != nil {
		return nil, err
	}

	return r.GetParticipationByID(id)
}
