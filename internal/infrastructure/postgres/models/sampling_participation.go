package models

import "time"

type SamplingParticipationModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	ActivationID string `gorm:"uniqueIndex:idx_participation_key;not null;type:uuid"`
	UserID       string `gorm:"uniqueIndex:idx_participation_key;not null"`
	ActionType   string `gorm:"uniqueIndex:idx_participation_key;not null"`

	UserMaturityState int32
	Metadata          string `gorm:"type:jsonb"`

	Verified           bool `gorm:"default:false"`
	VerifiedAt         *time.Time
	VerificationMethod string

	Redeemed        bool `gorm:"default:false"`
	RedeemedAt      *time.Time
	RedemptionValue float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SamplingParticipationModel) TableName() string {
	return "sampling_participations"
}
