package domain

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultHp   = 100
	DefaultStat = 50

	MinDamage     = 5
	DamageScale   = 20.0
	MinRollFactor = 0.85
	MaxRollFactor = 1.15

	VictoryPoints = 100
)

var (
	ErrBattleNotInProgress = errors.New("battle is not in progress")
	ErrBattleEnded         = errors.New("battle has ended")
	ErrNotPlayerTurn       = errors.New("not player turn")
	ErrNotOpponentTurn     = errors.New("not opponent turn")
	ErrActionInProgress    = errors.New("action in progress")
)

type Side string

const (
	SidePlayer   Side = "PLAYER"
	SideOpponent Side = "OPPONENT"
)

type BattleStatus string

const (
	BattleStatusSelectingOpponent BattleStatus = "SELECTING_OPPONENT"
	BattleStatusInProgress        BattleStatus = "IN_PROGRESS"
	BattleStatusEnded             BattleStatus = "ENDED"
)

type BattleOutcome string

const (
	BattleOutcomeNone    BattleOutcome = ""
	BattleOutcomeVictory BattleOutcome = "VICTORY"
	BattleOutcomeDefeat  BattleOutcome = "DEFEAT"
)

// Participant is the mutable battle projection of a creature record. Only
// Hp changes during a battle and it stays within [0, MaxHp].
type Participant struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Hp         int      `json:"hp"`
	MaxHp      int      `json:"max_hp"`
	Attack     int      `json:"attack"`
	Defense    int      `json:"defense"`
	Speed      int      `json:"speed"`
	Sprite     string   `json:"sprite"`
	SpriteBack string   `json:"sprite_back"`
	Types      []string `json:"types"`
}

func NewParticipant(p *Pokemon) *Participant {
	hp := p.BaseStat(StatHp, DefaultHp)
	types := make([]string, len(p.Types))
	copy(types, p.Types)

	return &Participant{
		ID:         p.ID,
		Name:       p.Name,
		Hp:         hp,
		MaxHp:      hp,
		Attack:     p.BaseStat(StatAttack, DefaultStat),
		Defense:    p.BaseStat(StatDefense, DefaultStat),
		Speed:      p.BaseStat(StatSpeed, DefaultStat),
		Sprite:     SpriteURL(p.ID),
		SpriteBack: BackSpriteURL(p.ID),
		Types:      types,
	}
}

func (p *Participant) TakeDamage(damage int) int {
	if damage < 0 {
		damage = 0
	}
	p.Hp -= damage
	if p.Hp < 0 {
		p.Hp = 0
	}
	if p.Hp > p.MaxHp {
		p.Hp = p.MaxHp
	}
	return p.Hp
}

func (p *Participant) Fainted() bool {
	return p.Hp <= 0
}

// CalculateDamage applies max(floor(attack/defense * 20 * factor), 5).
// Types do not affect damage.
func CalculateDamage(attacker, defender *Participant, factor float64) int {
	defense := defender.Defense
	if defense <= 0 {
		defense = 1
	}
	raw := math.Floor(float64(attacker.Attack) / float64(defense) * DamageScale * factor)
	if raw < MinDamage || math.IsNaN(raw) {
		return MinDamage
	}
	if raw > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(raw)
}

// FirstMover gives the first turn to the faster side; ties go to the player.
func FirstMover(player, opponent *Participant) Side {
	if player.Speed >= opponent.Speed {
		return SidePlayer
	}
	return SideOpponent
}

type Battle struct {
	ID         uuid.UUID     `json:"id"`
	Status     BattleStatus  `json:"status"`
	Outcome    BattleOutcome `json:"outcome,omitempty"`
	Turn       Side          `json:"turn,omitempty"`
	Animating  bool          `json:"animating"`
	OpponentID int           `json:"opponent_id"`
	Player     *Participant  `json:"player,omitempty"`
	Opponent   *Participant  `json:"opponent,omitempty"`
	Log        []string      `json:"log"`
	CreatedAt  time.Time     `json:"created_at"`
}

// NewSelection returns a battle waiting for its participants.
func NewSelection(opponentID int, now time.Time) *Battle {
	return &Battle{
		ID:         uuid.New(),
		Status:     BattleStatusSelectingOpponent,
		OpponentID: opponentID,
		Log:        []string{},
		CreatedAt:  now,
	}
}

// Begin moves a selection into IN_PROGRESS. When the opponent is faster the
// battle starts animating because the opponent's action is pending.
func (b *Battle) Begin(player, opponent *Participant) Side {
	b.Player = player
	b.Opponent = opponent
	b.OpponentID = opponent.ID
	b.Status = BattleStatusInProgress
	b.Outcome = BattleOutcomeNone
	b.Log = []string{}
	b.Turn = FirstMover(player, opponent)
	b.Animating = b.Turn == SideOpponent
	return b.Turn
}

func (b *Battle) PlayerAttack(factor float64) (int, error) {
	switch {
	case b.Status == BattleStatusEnded:
		return 0, ErrBattleEnded
	case b.Status != BattleStatusInProgress:
		return 0, ErrBattleNotInProgress
	case b.Animating:
		return 0, ErrActionInProgress
	case b.Turn != SidePlayer:
		return 0, ErrNotPlayerTurn
	}

	damage := CalculateDamage(b.Player, b.Opponent, factor)
	b.Opponent.TakeDamage(damage)
	b.Log = append(b.Log, hitLine(b.Player.Name, damage))

	if b.Opponent.Fainted() {
		b.end(BattleOutcomeVictory)
		return damage, nil
	}

	b.Turn = SideOpponent
	b.Animating = true
	return damage, nil
}

func (b *Battle) OpponentAttack(factor float64) (int, error) {
	switch {
	case b.Status == BattleStatusEnded:
		return 0, ErrBattleEnded
	case b.Status != BattleStatusInProgress:
		return 0, ErrBattleNotInProgress
	case b.Turn != SideOpponent:
		return 0, ErrNotOpponentTurn
	}

	damage := CalculateDamage(b.Opponent, b.Player, factor)
	b.Player.TakeDamage(damage)
	b.Log = append(b.Log, hitLine(b.Opponent.Name, damage))

	if b.Player.Fainted() {
		b.end(BattleOutcomeDefeat)
		return damage, nil
	}

	b.Turn = SidePlayer
	b.Animating = false
	return damage, nil
}

func (b *Battle) Ended() bool {
	return b.Status == BattleStatusEnded
}

func (b *Battle) end(outcome BattleOutcome) {
	b.Status = BattleStatusEnded
	b.Outcome = outcome
	b.Animating = false
	b.Turn = ""
	switch outcome {
	case BattleOutcomeVictory:
		b.Log = append(b.Log, fmt.Sprintf("Victory! +%d points!", VictoryPoints))
	case BattleOutcomeDefeat:
		b.Log = append(b.Log, "Defeat!")
	}
}

func hitLine(name string, damage int) string {
	return fmt.Sprintf("%s dealt %d damage!", name, damage)
}

// Arena is a trainer's session-scoped battle state: the running score and
// the current battle.
type Arena struct {
	TrainerID uuid.UUID `json:"trainer_id"`
	Score     int       `json:"score"`
	Wins      int       `json:"wins"`
	Battle    *Battle   `json:"battle"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewArena(trainerID uuid.UUID, opponentID int, now time.Time) *Arena {
	return &Arena{
		TrainerID: trainerID,
		Battle:    NewSelection(opponentID, now),
		UpdatedAt: now,
	}
}

// Reset discards the current battle and waits for a new opponent.
func (a *Arena) Reset(opponentID int, now time.Time) {
	a.Battle = NewSelection(opponentID, now)
	a.UpdatedAt = now
}

func (a *Arena) PlayerAttack(factor float64) (int, error) {
	if a.Battle == nil {
		return 0, ErrBattleNotInProgress
	}
	damage, err := a.Battle.PlayerAttack(factor)
	if err != nil {
		return 0, err
	}
	if a.Battle.Outcome == BattleOutcomeVictory {
		a.Score += VictoryPoints
		a.Wins++
	}
	return damage, nil
}

func (a *Arena) OpponentAttack(factor float64) (int, error) {
	if a.Battle == nil {
		return 0, ErrBattleNotInProgress
	}
	return a.Battle.OpponentAttack(factor)
}
