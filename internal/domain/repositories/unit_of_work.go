package repositories

import (
	"context"
)

// UnitOfWork coordinates one persistence session shared by every repository
// it hands out. Repositories are constructed lazily on first access and are
// bound to the session for the lifetime of the unit of work, so a write
// through one repository is visible to reads through another before commit.
//
// A unit of work is owned by a single logical caller and is not safe for
// concurrent use by multiple requests.
type UnitOfWork interface {
	Users() UserRepository
	Players() PlayerRepository
	Games() GameRepository
	Teams() TeamRepository
	Tournaments() TournamentRepository
	Registrations() RegistrationRepository
	Matches() MatchRepository
	News() NewsRepository
	Achievements() AchievementRepository
	Products() ProductRepository

	// Begin opens an explicit transaction on the session. Beginning while a
	// transaction is already active is an error, not a silent nesting.
	Begin(ctx context.Context) error

	// SaveChanges flushes writes issued since the previous SaveChanges (or
	// Begin) and returns the number of affected records.
	SaveChanges(ctx context.Context) (int64, error)

	// Commit flushes pending writes and finalizes the active transaction.
	// On any failure the transaction is rolled back and the failure returned.
	Commit(ctx context.Context) error

	// Rollback reverts the active transaction. Calling it with no active
	// transaction is a no-op.
	Rollback(ctx context.Context) error

	// Execute runs fn inside a transaction: commit on nil return, rollback
	// and propagate on error. This is the contract callers should prefer
	// over manual Begin/Commit/Rollback.
	Execute(ctx context.Context, fn func(ctx context.Context) error) error

	// Close releases the session. It is idempotent; every operation after
	// Close fails with ErrUnitOfWorkClosed.
	Close() error
}

// UnitOfWorkFactory creates one unit of work per logical operation.
type UnitOfWorkFactory interface {
	New() UnitOfWork
}
