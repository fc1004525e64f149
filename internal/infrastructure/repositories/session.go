package repositories

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"

	domainerrors "arena.backend/internal/domain/errors"
)

var commitTx = func(tx *gorm.DB) error {
	return tx.Commit().Error
}

// uowSession is the single persistence handle a unit of work owns. Every
// repository bound to the session routes reads and writes through it, so
// writes land on the active transaction when one is open and on the base
// connection otherwise. At most one transaction is active at a time.
type uowSession struct {
	mu       sync.Mutex
	db       *gorm.DB
	tx       *gorm.DB
	closed   bool
	affected int64
}

func newSession(db *gorm.DB) *uowSession {
	return &uowSession{db: db}
}

// handle returns the gorm handle operations should go through.
func (s *uowSession) handle(ctx context.Context) (*gorm.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, domainerrors.ErrUnitOfWorkClosed
	}
	if s.tx != nil {
		return s.tx.WithContext(ctx), nil
	}
	return s.db.WithContext(ctx), nil
}

func (s *uowSession) begin(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domainerrors.ErrUnitOfWorkClosed
	}
	if s.tx != nil {
		return domainerrors.ErrTransactionActive
	}
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	s.tx = tx
	s.affected = 0
	return nil
}

func (s *uowSession) commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domainerrors.ErrUnitOfWorkClosed
	}
	if s.tx == nil {
		return domainerrors.ErrNoTransaction
	}
	tx := s.tx
	s.tx = nil
	if err := commitTx(tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// rollback reverts the active transaction. With no transaction active it is
// a deliberate no-op.
func (s *uowSession) rollback() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domainerrors.ErrUnitOfWorkClosed
	}
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	s.affected = 0
	if err := tx.Rollback().Error; err != nil {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// record accumulates affected-row counts so SaveChanges can report how many
// records the flushed writes touched.
func (s *uowSession) record(n int64) {
	s.mu.Lock()
	s.affected += n
	s.mu.Unlock()
}

func (s *uowSession) flush() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, domainerrors.ErrUnitOfWorkClosed
	}
	n := s.affected
	s.affected = 0
	return n, nil
}

// close releases the session, rolling back any transaction still open.
// Closing twice is safe.
func (s *uowSession) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	if s.tx != nil {
		s.tx.Rollback()
		s.tx = nil
	}
	s.closed = true
	return nil
}
