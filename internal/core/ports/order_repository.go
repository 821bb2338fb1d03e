package ports

import (
	"context"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/order"
)

type OrderRepository interface {
	// Add stores a new order with its items. Empty orders are rejected.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores the order fields and reconciles its items. Existing items
	// only get their quantity written; prices are never updated.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	Delete(ctx context.Context, id kernel.UUID) error

	// MarkAllPaid sets paid on every order of the round in one statement.
	MarkAllPaid(ctx context.Context, roundID kernel.UUID) error

	// MarkAllPickedUp sets picked_up on every order of the round in one statement.
	MarkAllPickedUp(ctx context.Context, roundID kernel.UUID) error
}
