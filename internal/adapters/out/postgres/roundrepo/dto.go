package roundrepo

import (
	"time"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/round"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoundDTO is the GORM model of the rounds table. The partial unique index on
// is_active allows at most one active round.
type RoundDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date     time.Time       `gorm:"type:date;not null;index"`
	TravelKm decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	IsActive bool            `gorm:"not null;uniqueIndex:idx_rounds_single_active,where:is_active"`
}

func (RoundDTO) TableName() string {
	return "rounds"
}

func fromDomain(aggregate *round.Round) RoundDTO {
	return RoundDTO{
		ID:       aggregate.ID().Bytes(),
		Date:     aggregate.Date(),
		TravelKm: aggregate.TravelKm(),
		IsActive: aggregate.IsActive(),
	}
}

func toDomain(dto RoundDTO) (*round.Round, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return round.RestoreRound(id, dto.Date, dto.TravelKm, dto.IsActive)
}
