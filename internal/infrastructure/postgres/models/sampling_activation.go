package models

import "time"

type SamplingActivationModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	AdvertiserID string `gorm:"index:idx_activations_advertiser;not null"`
	Name         string `gorm:"not null"`
	Description  string

	ValueType   string `gorm:"not null"`
	ValueAmount float64
	ValueUnit   string

	MaxRedemptions     int32 `gorm:"not null;default:0"`
	CurrentRedemptions int32 `gorm:"not null;default:0"`

	DurationDays int32
	StartsAt     time.Time
	ExpiresAt    time.Time `gorm:"index:idx_activations_status_expires"`
	Status       string    `gorm:"not null;default:'active';index:idx_activations_status_expires"`

	IncludeInDeals     bool `gorm:"default:false"`
	IncludeInEvents    bool `gorm:"default:false"`
	IncludeInPostProof bool `gorm:"default:false"`

	PromoshareEnabled    bool `gorm:"default:true"`
	SocialShieldRequired bool `gorm:"default:true"`

	GraduationTriggered   bool `gorm:"default:false"`
	GraduationReason      string
	GraduationTriggeredAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SamplingActivationModel) TableName() string {
	return "sampling_activations"
}
