package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"arena.backend/internal/domain/entities"
	"arena.backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("development")
	m.Run()
}

type registrationExpiryRepoStub struct {
	expired    []*entities.Registration
	listErr    error
	markErr    error
	markCalls  int
	lastIDs    []uint
	lastCutoff time.Time
}

func (s *registrationExpiryRepoStub) ListExpiredPending(_ context.Context, before time.Time, _ int) ([]*entities.Registration, error) {
	s.lastCutoff = before
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.expired, nil
}

func (s *registrationExpiryRepoStub) MarkExpired(_ context.Context, ids []uint) error {
	s.markCalls++
	s.lastIDs = ids
	return s.markErr
}

func newTestJob(repo registrationExpirer) *RegistrationExpiryJob {
	return &RegistrationExpiryJob{
		repo:     repo,
		ttl:      time.Hour,
		interval: time.Millisecond,
		stop:     make(chan struct{}),
	}
}

func TestProcessExpired_NoItems(t *testing.T) {
	repo := &registrationExpiryRepoStub{expired: []*entities.Registration{}}
	job := newTestJob(repo)

	job.processExpired(context.Background())
	require.Equal(t, 0, repo.markCalls)
	require.WithinDuration(t, time.Now().Add(-time.Hour), repo.lastCutoff, time.Minute)
}

func TestProcessExpired_Success(t *testing.T) {
	repo := &registrationExpiryRepoStub{expired: []*entities.Registration{{ID: 3}, {ID: 8}}}
	job := newTestJob(repo)

	job.processExpired(context.Background())
	require.Equal(t, 1, repo.markCalls)
	require.ElementsMatch(t, []uint{3, 8}, repo.lastIDs)
}

func TestProcessExpired_ListError(t *testing.T) {
	repo := &registrationExpiryRepoStub{listErr: errors.New("db down")}
	job := newTestJob(repo)

	job.processExpired(context.Background())
	require.Equal(t, 0, repo.markCalls)
}

func TestProcessExpired_MarkError(t *testing.T) {
	repo := &registrationExpiryRepoStub{expired: []*entities.Registration{{ID: 5}}, markErr: errors.New("update failed")}
	job := newTestJob(repo)

	job.processExpired(context.Background())
	require.Equal(t, 1, repo.markCalls)
	require.Equal(t, []uint{5}, repo.lastIDs)
}

func TestStartStop_StopsByContext(t *testing.T) {
	repo := &registrationExpiryRepoStub{expired: []*entities.Registration{}}
	job := newTestJob(repo)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not stop on context cancel")
	}
}

func TestStartStop_StopsByStopChannel(t *testing.T) {
	repo := &registrationExpiryRepoStub{expired: []*entities.Registration{}}
	job := newTestJob(repo)

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()
	job.Stop()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not stop on Stop()")
	}
}
