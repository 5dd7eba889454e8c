package repository

import (
	"gorm.io/gorm"

	"github.com/promorang/sampling-service/internal/domain"
)

// GormSamplingStore hands out repositories bound to one gorm handle. InTx
// rebinds them to a transaction so multi-step writes (activation create +
// state transition, redemption + completion) commit or roll back together.
type GormSamplingStore struct {
	db *gorm.DB
}

func NewGormSamplingStore(db *gorm.DB) *GormSamplingStore {
	return &GormSamplingStore{db: db}
}

func (s *GormSamplingStore) Merchants() domain.MerchantRepository {
	return NewDefaultMerchantRepository(s.db)
}

func (s *GormSamplingStore) Activations() domain.ActivationRepository {
	return NewDefaultActivationRepository(s.db)
}

func (s *GormSamplingStore) Participations() domain.ParticipationRepository {
	return NewDefaultParticipationRepository(s.db)
}

func (s *GormSamplingStore) InTx(fn func(tx domain.SamplingStore) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGormSamplingStore(tx))
	})
}
