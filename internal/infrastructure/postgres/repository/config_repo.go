package repository

import (
	"gorm.io/gorm"

	"github.com/promorang/sampling-service/internal/infrastructure/postgres/models"
)

type DefaultConfigRepository struct {
	db *gorm.DB
}

func NewDefaultConfigRepository(db *gorm.DB) *DefaultConfigRepository {
	return &DefaultConfigRepository{db: db}
}

func (r *DefaultConfigRepository) GetValue(key string) ([]byte, error) {
	var model models.SamplingConfigModel
	if err := r.db.First(&model, "config_key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return []byte(model.ConfigValue), nil
}
