package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"pokedex/internal/api/dto"
	"pokedex/internal/api/ws"
	"pokedex/internal/config"
	"pokedex/internal/domain"
	"pokedex/internal/logging"
	"pokedex/internal/metrics"
	r "pokedex/internal/redis"
)

// FeedbackDelay is the hit feedback played before the opponent acts: four
// 50ms shake steps.
const FeedbackDelay = 4 * 50 * time.Millisecond

var (
	ErrBattleInProgress = errors.New("battle already in progress")
	ErrInvalidOpponent  = errors.New("invalid opponent id")
)

// TurnScheduler runs one delayed action per trainer.
type TurnScheduler interface {
	Schedule(trainerID uuid.UUID, delay time.Duration, fn func(ctx context.Context))
	Cancel(trainerID uuid.UUID)
	Pending(trainerID uuid.UUID) bool
}

// BattleNotifier pushes battle changes to connected trainers.
type BattleNotifier interface {
	SendBattleUpdate(trainerID uuid.UUID, arena interface{}) error
	SendBattleEvent(trainerID uuid.UUID, event ws.BattleEventData) error
}

type StartBattleInput struct {
	Player     string
	OpponentID int
}

type BattleService struct {
	catalog   Catalog
	arenas    r.Cache[domain.Arena]
	scheduler TurnScheduler
	notifier  BattleNotifier
	cfg       config.BattleConfig
	logger    *zap.Logger

	factor       func() float64
	randOpponent func(max int) int
	now          func() time.Time

	mu    sync.Mutex
	locks map[uuid.UUID]*trainerLock
}

// trainerLock is dropped from the map once nobody holds or waits for it.
type trainerLock struct {
	mu   sync.Mutex
	refs int
}

func NewBattleService(
	catalog Catalog,
	rdb *goredis.Client,
	scheduler TurnScheduler,
	notifier BattleNotifier,
	cfg config.BattleConfig,
	logger *zap.Logger,
) *BattleService {
	return &BattleService{
		catalog:      catalog,
		arenas:       r.NewJSONCache[domain.Arena](rdb, "arena", cfg.ArenaTTL),
		scheduler:    scheduler,
		notifier:     notifier,
		cfg:          cfg,
		logger:       logging.Component(logger, "battle"),
		factor:       randomFactor,
		randOpponent: func(max int) int { return rand.Intn(max) + 1 },
		now:          time.Now,
		locks:        make(map[uuid.UUID]*trainerLock),
	}
}

func randomFactor() float64 {
	return domain.MinRollFactor + rand.Float64()*(domain.MaxRollFactor-domain.MinRollFactor)
}

func (s *BattleService) lock(trainerID uuid.UUID) func() {
	s.mu.Lock()
	l, ok := s.locks[trainerID]
	if !ok {
		l = &trainerLock{}
		s.locks[trainerID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, trainerID)
		}
		s.mu.Unlock()
	}
}

// Get returns the trainer's arena, creating one with a random opponent on
// first use.
func (s *BattleService) Get(ctx context.Context, trainerID uuid.UUID) (*domain.Arena, error) {
	unlock := s.lock(trainerID)
	defer unlock()

	arena, err := s.loadOrCreate(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	s.resumeOpponent(trainerID, arena)
	return arena, nil
}

// Start fetches both creatures and begins a battle. On any fetch failure the
// arena is left untouched.
func (s *BattleService) Start(ctx context.Context, trainerID uuid.UUID, input StartBattleInput) (*domain.Arena, error) {
	unlock := s.lock(trainerID)
	defer unlock()

	arena, err := s.loadOrCreate(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if arena.Battle.Status == domain.BattleStatusInProgress {
		s.resumeOpponent(trainerID, arena)
		return nil, ErrBattleInProgress
	}
	if input.OpponentID < 0 || input.OpponentID > s.cfg.MaxOpponentID {
		return nil, ErrInvalidOpponent
	}

	opponentID := input.OpponentID
	if opponentID == 0 {
		opponentID = arena.Battle.OpponentID
	}
	if opponentID <= 0 {
		opponentID = s.randOpponent(s.cfg.MaxOpponentID)
	}

	player, err := s.catalog.GetPokemon(ctx, strings.TrimSpace(input.Player))
	if err != nil {
		return nil, fmt.Errorf("fetch player: %w", err)
	}
	opponent, err := s.catalog.GetPokemon(ctx, strconv.Itoa(opponentID))
	if err != nil {
		return nil, fmt.Errorf("fetch opponent: %w", err)
	}

	battle := domain.NewSelection(opponentID, s.now())
	first := battle.Begin(domain.NewParticipant(player), domain.NewParticipant(opponent))
	arena.Battle = battle
	arena.UpdatedAt = s.now()

	if err := s.save(ctx, arena); err != nil {
		return nil, err
	}

	s.logger.Info("battle started",
		zap.String("trainer_id", trainerID.String()),
		zap.String("battle_id", battle.ID.String()),
		zap.String("player", player.Name),
		zap.String("opponent", opponent.Name),
		zap.String("first", string(first)))

	if first == domain.SideOpponent {
		s.scheduleOpponent(trainerID, battle.ID, s.cfg.OpponentDelay)
	}
	s.notifyArena(trainerID, arena)
	return arena, nil
}

// Attack performs the player's hit and schedules the opponent's reply.
func (s *BattleService) Attack(ctx context.Context, trainerID uuid.UUID) (*domain.Arena, error) {
	unlock := s.lock(trainerID)
	defer unlock()

	arena, err := s.loadOrCreate(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	damage, err := arena.PlayerAttack(s.factor())
	if err != nil {
		s.resumeOpponent(trainerID, arena)
		return nil, err
	}
	arena.UpdatedAt = s.now()
	battle := arena.Battle

	if err := s.save(ctx, arena); err != nil {
		return nil, err
	}

	metrics.BattleHit(string(domain.SidePlayer), damage)
	s.notifyHit(trainerID, battle, battle.Player, battle.Opponent, damage)

	if battle.Ended() {
		s.finished(trainerID, arena)
	} else {
		s.scheduleOpponent(trainerID, battle.ID, FeedbackDelay+s.cfg.OpponentDelay)
	}
	s.notifyArena(trainerID, arena)
	return arena, nil
}

// SelectOpponent replaces the current battle with a selection for the given
// opponent. It is rejected while an action is animating.
func (s *BattleService) SelectOpponent(ctx context.Context, trainerID uuid.UUID, opponentID int) (*domain.Arena, error) {
	if opponentID <= 0 || opponentID > s.cfg.MaxOpponentID {
		return nil, ErrInvalidOpponent
	}

	unlock := s.lock(trainerID)
	defer unlock()

	arena, err := s.loadOrCreate(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if arena.Battle.Animating {
		s.resumeOpponent(trainerID, arena)
		return nil, domain.ErrActionInProgress
	}

	if _, err := s.catalog.GetPokemon(ctx, strconv.Itoa(opponentID)); err != nil {
		return nil, fmt.Errorf("fetch opponent: %w", err)
	}

	s.scheduler.Cancel(trainerID)
	arena.Reset(opponentID, s.now())
	if err := s.save(ctx, arena); err != nil {
		return nil, err
	}

	s.notifyArena(trainerID, arena)
	return arena, nil
}

// Reset abandons the current battle and rolls a new random opponent. Score
// and wins are kept.
func (s *BattleService) Reset(ctx context.Context, trainerID uuid.UUID) (*domain.Arena, error) {
	unlock := s.lock(trainerID)
	defer unlock()

	s.scheduler.Cancel(trainerID)

	arena, err := s.loadOrCreate(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	arena.Reset(s.randOpponent(s.cfg.MaxOpponentID), s.now())
	if err := s.save(ctx, arena); err != nil {
		return nil, err
	}

	s.notifyArena(trainerID, arena)
	return arena, nil
}

// Opponents lists catalog entries to pick an opponent from.
func (s *BattleService) Opponents(ctx context.Context, offset, limit int) (*domain.PokemonPage, error) {
	return s.catalog.ListPage(ctx, offset, limit)
}

func (s *BattleService) scheduleOpponent(trainerID, battleID uuid.UUID, delay time.Duration) {
	s.scheduler.Schedule(trainerID, delay, func(ctx context.Context) {
		s.opponentTurn(ctx, trainerID, battleID)
	})
}

// resumeOpponent reschedules the opponent's turn when the stored battle waits
// on it but no turn is pending, e.g. after a restart or a failed save.
func (s *BattleService) resumeOpponent(trainerID uuid.UUID, arena *domain.Arena) {
	b := arena.Battle
	if b == nil || b.Status != domain.BattleStatusInProgress || b.Turn != domain.SideOpponent {
		return
	}
	if s.scheduler.Pending(trainerID) {
		return
	}
	s.logger.Info("resuming opponent turn",
		zap.String("trainer_id", trainerID.String()),
		zap.String("battle_id", b.ID.String()))
	s.scheduleOpponent(trainerID, b.ID, s.cfg.OpponentDelay)
}

// opponentTurn applies the automatic opponent hit. Actions for a battle that
// has since been replaced are dropped.
func (s *BattleService) opponentTurn(ctx context.Context, trainerID, battleID uuid.UUID) {
	if ctx.Err() != nil {
		return
	}

	unlock := s.lock(trainerID)
	defer unlock()

	if ctx.Err() != nil {
		return
	}

	arena, err := s.arenas.Get(ctx, trainerID.String())
	if err != nil {
		s.logger.Error("load arena for opponent turn failed", zap.String("trainer_id", trainerID.String()), zap.Error(err))
		return
	}
	if arena == nil || arena.Battle == nil || arena.Battle.ID != battleID {
		return
	}
	if arena.Battle.Status != domain.BattleStatusInProgress || arena.Battle.Turn != domain.SideOpponent {
		return
	}

	damage, err := arena.OpponentAttack(s.factor())
	if err != nil {
		s.logger.Warn("opponent turn rejected", zap.String("trainer_id", trainerID.String()), zap.Error(err))
		return
	}
	arena.UpdatedAt = s.now()
	battle := arena.Battle

	if err := s.save(ctx, arena); err != nil {
		s.logger.Error("save arena after opponent turn failed", zap.String("trainer_id", trainerID.String()), zap.Error(err))
		return
	}

	metrics.BattleHit(string(domain.SideOpponent), damage)
	s.notifyHit(trainerID, battle, battle.Opponent, battle.Player, damage)
	if battle.Ended() {
		s.finished(trainerID, arena)
	}
	s.notifyArena(trainerID, arena)
}

func (s *BattleService) finished(trainerID uuid.UUID, arena *domain.Arena) {
	metrics.BattleFinished(string(arena.Battle.Outcome))
	s.logger.Info("battle finished",
		zap.String("trainer_id", trainerID.String()),
		zap.String("battle_id", arena.Battle.ID.String()),
		zap.String("outcome", string(arena.Battle.Outcome)),
		zap.Int("score", arena.Score))
}

func (s *BattleService) loadOrCreate(ctx context.Context, trainerID uuid.UUID) (*domain.Arena, error) {
	arena, err := s.arenas.Get(ctx, trainerID.String())
	if err != nil {
		return nil, fmt.Errorf("load arena: %w", err)
	}
	if arena != nil && arena.Battle != nil {
		return arena, nil
	}

	arena = domain.NewArena(trainerID, s.randOpponent(s.cfg.MaxOpponentID), s.now())
	if err := s.save(ctx, arena); err != nil {
		return nil, err
	}
	return arena, nil
}

func (s *BattleService) save(ctx context.Context, arena *domain.Arena) error {
	if err := s.arenas.Set(ctx, arena.TrainerID.String(), arena); err != nil {
		return fmt.Errorf("save arena: %w", err)
	}
	return nil
}

func (s *BattleService) notifyHit(trainerID uuid.UUID, battle *domain.Battle, attacker, target *domain.Participant, damage int) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.SendBattleEvent(trainerID, ws.BattleEventData{
		BattleID: battle.ID.String(),
		Attacker: attacker.Name,
		Target:   target.Name,
		Damage:   damage,
	})
	if err != nil {
		s.logger.Debug("push battle event failed", zap.String("trainer_id", trainerID.String()), zap.Error(err))
	}
}

func (s *BattleService) notifyArena(trainerID uuid.UUID, arena *domain.Arena) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SendBattleUpdate(trainerID, dto.ArenaFromDomain(arena)); err != nil {
		s.logger.Debug("push arena failed", zap.String("trainer_id", trainerID.String()), zap.Error(err))
	}
}
