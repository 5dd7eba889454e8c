package models

import "time"

// Append-only. Rows are never updated or deleted.
type MerchantStateTransitionModel struct {
	ID              string `gorm:"primaryKey"`
	AdvertiserID    string `gorm:"index:idx_transitions_advertiser;not null"`
	FromState       string `gorm:"not null"`
	ToState         string `gorm:"not null"`
	TriggerReason   string `gorm:"not null"`
	TriggerMetadata string `gorm:"type:jsonb"`
	CreatedAt       time.Time
}

func (MerchantStateTransitionModel) TableName() string {
	return "merchant_state_transitions"
}
