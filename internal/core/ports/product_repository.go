package ports

import (
	"context"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/product"
)

type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error

	Update(ctx context.Context, aggregate *product.Product) error

	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll returns products ordered by name, only active ones when activeOnly is set.
	GetAll(ctx context.Context, activeOnly bool) ([]*product.Product, error)

	// Delete fails with errs.ErrObjectIsReferenced while order items point at the product.
	Delete(ctx context.Context, id kernel.UUID) error
}
