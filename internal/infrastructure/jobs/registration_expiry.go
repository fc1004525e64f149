package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"arena.backend/internal/domain/entities"
	"arena.backend/pkg/logger"
)

// registrationExpirer is the slice of the registration repository the job needs.
type registrationExpirer interface {
	ListExpiredPending(ctx context.Context, before time.Time, limit int) ([]*entities.Registration, error)
	MarkExpired(ctx context.Context, ids []uint) error
}

// RegistrationExpiryJob marks pending tournament registrations as expired
// once they sit unconfirmed past the TTL.
type RegistrationExpiryJob struct {
	repo     registrationExpirer
	ttl      time.Duration
	interval time.Duration
	stop     chan struct{}
}

func NewRegistrationExpiryJob(repo registrationExpirer, ttl, interval time.Duration) *RegistrationExpiryJob {
	return &RegistrationExpiryJob{
		repo:     repo,
		ttl:      ttl,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *RegistrationExpiryJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting registration expiry job",
		zap.Duration("ttl", j.ttl), zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "registration expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "registration expiry job stopped")
			return
		case <-ticker.C:
			j.processExpired(ctx)
		}
	}
}

func (j *RegistrationExpiryJob) Stop() {
	close(j.stop)
}

func (j *RegistrationExpiryJob) processExpired(ctx context.Context) {
	cutoff := time.Now().Add(-j.ttl)
	expired, err := j.repo.ListExpiredPending(ctx, cutoff, 100)
	if err != nil {
		logger.Error(ctx, "failed to fetch expired registrations", zap.Error(err))
		return
	}

	if len(expired) == 0 {
		return
	}

	ids := make([]uint, 0, len(expired))
	for _, reg := range expired {
		ids = append(ids, reg.ID)
	}

	if err := j.repo.MarkExpired(ctx, ids); err != nil {
		logger.Error(ctx, "failed to expire registrations", zap.Error(err))
		return
	}

	logger.Info(ctx, "expired stale registrations", zap.Int("count", len(ids)))
}
