package productrepo

import (
	"context"
	"errors"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/product"
	"meatmanager/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// foreignKeyViolation is the SQLSTATE postgres reports when a delete would
// orphan referencing rows.
const foreignKeyViolation = "23503"

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the catalogue row. Order items keep their own price snapshot,
// so nothing else is touched.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":       dto.Name,
			"unit":       dto.Unit,
			"sell_price": dto.SellPrice,
			"buy_price":  dto.BuyPrice,
			"active":     dto.Active,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormProductRepository) GetAll(ctx context.Context, activeOnly bool) ([]*product.Product, error) {
	query := r.db.WithContext(ctx).Order("name").Order("id")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var dtos []ProductDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// Delete removes a product that no order item refers to.
//
// Example:
//
//	err := repo.Delete(ctx, id)
//	if errors.Is(err, errs.ErrObjectIsReferenced) {
//	    // deactivate the product instead
//	}
func (r *GormProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	var references int64
	if err := db.Table("order_items").Where("product_id = ?", id.Bytes()).Count(&references).Error; err != nil {
		return err
	}
	if references > 0 {
		return errs.NewObjectIsReferencedError("product", id.String(), "order items")
	}

	result := db.Where("id = ?", id.Bytes()).Delete(&ProductDTO{})
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == foreignKeyViolation {
			return errs.NewObjectIsReferencedErrorWithCause("product", id.String(), "order items", result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}

	return nil
}
