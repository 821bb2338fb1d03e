// Package commands contains the use cases that change state. Every handler
// validates its command, opens a unit of work, loads and mutates aggregates
// through the repositories of that unit of work and commits.
package commands

import (
	"context"

	"meatmanager/internal/core/ports"
)

// Narrow unit-of-work views, one per group of handlers. The GORM unit of work
// satisfies all of them.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	RoundRepoFactory interface {
		RoundRepository() ports.RoundRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	RoundUoW interface {
		TxManager
		RoundRepoFactory
	}

	RoundUoWFactory interface {
		Create() RoundUoW
	}

	// OrderUoW spans every aggregate an order touches: the round and customer
	// it belongs to and the products it snapshots.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   r, err := uow.RoundRepository().Get(ctx, roundID)
	//   products, err := uow.ProductRepository().GetAll(ctx, true)
	//   // ... build the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		CustomerRepoFactory
		ProductRepoFactory
		RoundRepoFactory
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
