package models

import (
	"time"

	"github.com/promorang/sampling-service/internal/domain"
)

type AdvertiserProfileModel struct {
	AdvertiserID      string               `gorm:"primaryKey"`
	MerchantState     domain.MerchantState `gorm:"not null;default:'NEW';index:idx_profiles_state"`
	SamplingStartedAt *time.Time
	GraduatedAt       *time.Time
	PaidAt            *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (AdvertiserProfileModel) TableName() string {
	return "advertiser_profiles"
}
