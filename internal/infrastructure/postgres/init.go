package postgres

import (
	"log"

	"github.com/promorang/sampling-service/internal/config"
	"github.com/promorang/sampling-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.SamplingConfig) *gorm.DB {
	dsn := cfg.SamplingDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.AdvertiserProfileModel{},
		&models.MerchantStateTransitionModel{},
		&models.SamplingActivationModel{},
		&models.SamplingParticipationModel{},
		&models.SamplingConfigModel{},
	)

	return db
}
