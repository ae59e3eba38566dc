package repository

import "context"

// TransactionManager runs multi-step local store work atomically.
type TransactionManager interface {
	// Execute runs fn within a single local transaction.
	// If fn returns an error, the transaction is rolled back. Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// NewLocationRepository returns a LocationRepository bound to the current transaction.
	NewLocationRepository() LocationRepository

	// NewTripRepository returns a TripRepository bound to the current transaction.
	NewTripRepository() TripRepository
}
