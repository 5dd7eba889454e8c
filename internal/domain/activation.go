package domain

import "time"

type ActivationValueType string

const (
	ValueTypeCoupon     ActivationValueType = "coupon"
	ValueTypeProduct    ActivationValueType = "product"
	ValueTypeVoucher    ActivationValueType = "voucher"
	ValueTypeExperience ActivationValueType = "experience"
	ValueTypeCashPrize  ActivationValueType = "cash_prize"
)

func (t ActivationValueType) Valid() bool {
	switch t {
	case ValueTypeCoupon, ValueTypeProduct, ValueTypeVoucher, ValueTypeExperience, ValueTypeCashPrize:
		return true
	}
	return false
}

type ActivationStatus string

const (
	ActivationActive    ActivationStatus = "active"
	ActivationExpired   ActivationStatus = "expired"
	ActivationCompleted ActivationStatus = "completed"
)

type Surface string

const (
	SurfaceDeals  Surface = "deals"
	SurfaceEvents Surface = "events"
	SurfacePost   Surface = "post"
)

type SamplingActivation struct {
	ID           string
	AdvertiserID string
	Name         string
	Description  string

	ValueType   ActivationValueType
	ValueAmount float64
	ValueUnit   string

	MaxRedemptions     int32
	CurrentRedemptions int32

	DurationDays int32
	StartsAt     time.Time
	ExpiresAt    time.Time
	Status       ActivationStatus

	IncludeInDeals     bool
	IncludeInEvents    bool
	IncludeInPostProof bool

	// Platform policy, forced true at creation.
	PromoshareEnabled    bool
	SocialShieldRequired bool

	GraduationTriggered   bool
	GraduationReason      string
	GraduationTriggeredAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *SamplingActivation) Expired(now time.Time) bool {
	return a.ExpiresAt.Before(now)
}

type ActivationRepository interface {
	CreateActivation(a *SamplingActivation) error
	// GetActivationByID returns (nil, nil) when no such activation exists.
	GetActivationByID(id string) (*SamplingActivation, error)
	GetActivationsByAdvertiserID(advertiserID string) ([]*SamplingActivation, error)
	// CountActivationsByAdvertiserID counts every activation the merchant ever
	// had, regardless of status. The one-activation-ever rule hangs off this.
	CountActivationsByAdvertiserID(advertiserID string) (int64, error)
	UpdateStatus(id string, status ActivationStatus) error
	// IncrementRedemptions adds one redemption while current < max and returns
	// the new count. Returns ErrRedemptionLimitReached at the cap.
	IncrementRedemptions(id string) (int32, error)
	// MarkGraduationTriggered flips graduation_triggered once. Returns false
	// without error when another request already flipped it.
	MarkGraduationTriggered(id, reason string, at time.Time) (bool, error)
	FindActiveForSurface(surface Surface, now time.Time) ([]*SamplingActivation, error)
	FindExpiredActive(now time.Time) ([]*SamplingActivation, error)
}
