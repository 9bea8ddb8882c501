package repository

import "context"

// TransactionManager composes repository calls into one atomic unit.
// The persistence adapter guarantees per-statement atomicity only; resolvers
// that touch more than one document wrap the calls in WithTransaction.
type TransactionManager interface {
	// WithTransaction runs fn inside a transaction. The transaction is
	// committed when fn returns nil and rolled back otherwise. Repositories
	// pick the transaction up from the context passed to fn.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
