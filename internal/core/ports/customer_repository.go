package ports

import (
	"context"

	"meatmanager/internal/core/domain/model/customer"
	"meatmanager/internal/core/domain/model/kernel"
)

type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error

	Update(ctx context.Context, aggregate *customer.Customer) error

	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
