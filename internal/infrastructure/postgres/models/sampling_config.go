package models

import "time"

type SamplingConfigModel struct {
	ConfigKey   string `gorm:"primaryKey"`
	ConfigValue string `gorm:"type:jsonb;not null"`
	UpdatedAt   time.Time
}

func (SamplingConfigModel) TableName() string {
	return "sampling_config"
}
