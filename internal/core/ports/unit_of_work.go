package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	CustomerRepository() CustomerRepository

	ProductRepository() ProductRepository

	RoundRepository() RoundRepository

	OrderRepository() OrderRepository
}
