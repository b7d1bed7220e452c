package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pokedex/internal/logging"
)

// TurnScheduler runs at most one delayed action per trainer. Scheduling a new
// action or cancelling drops the pending one.
type TurnScheduler struct {
	mu      sync.Mutex
	pending map[uuid.UUID]*pendingTurn
	wg      sync.WaitGroup
	logger  *zap.Logger
}

type pendingTurn struct {
	cancel context.CancelFunc
}

func NewTurnScheduler(logger *zap.Logger) *TurnScheduler {
	return &TurnScheduler{
		pending: make(map[uuid.UUID]*pendingTurn),
		logger:  logging.Component(logger, "turn-scheduler"),
	}
}

// Schedule runs fn after delay unless it is cancelled first. fn receives a
// context that is cancelled when the action is superseded.
func (s *TurnScheduler) Schedule(trainerID uuid.UUID, delay time.Duration, fn func(ctx context.Context)) {
	s.mu.Lock()
	if p, exists := s.pending[trainerID]; exists {
		p.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	turn := &pendingTurn{cancel: cancel}
	s.pending[trainerID] = turn
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			if s.pending[trainerID] == turn {
				delete(s.pending, trainerID)
			}
			s.mu.Unlock()
			cancel()
		}()

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			s.logger.Debug("turn cancelled", zap.String("trainer_id", trainerID.String()))
			return
		case <-timer.C:
			fn(ctx)
		}
	}()
}

// Cancel drops the trainer's pending action, if any.
func (s *TurnScheduler) Cancel(trainerID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, exists := s.pending[trainerID]; exists {
		p.cancel()
		delete(s.pending, trainerID)
	}
}

func (s *TurnScheduler) Pending(trainerID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.pending[trainerID]
	return exists
}

// Stop cancels every pending action and waits for running ones to return.
func (s *TurnScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	for id, p := range s.pending {
		p.cancel()
		delete(s.pending, id)
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
