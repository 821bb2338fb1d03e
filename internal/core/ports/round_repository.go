package ports

import (
	"context"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/round"
)

type RoundRepository interface {
	Add(ctx context.Context, aggregate *round.Round) error

	Get(ctx context.Context, id kernel.UUID) (*round.Round, error)

	// Activate deactivates every other round and activates id. It must run
	// inside a unit of work so that both steps commit together.
	Activate(ctx context.Context, id kernel.UUID) error
}
