package dto

import (
	"pokedex/internal/domain"
)

type Participant struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Hp          int      `json:"hp"`
	MaxHp       int      `json:"maxHp"`
	Attack      int      `json:"attack"`
	Defense     int      `json:"defense"`
	Speed       int      `json:"speed"`
	Sprite      string   `json:"sprite"`
	SpriteBack  string   `json:"spriteBack"`
	Types       []string `json:"types"`
}

type Battle struct {
	ID         string       `json:"id"`
	Status     string       `json:"status"`
	Outcome    string       `json:"outcome,omitempty"`
	Turn       string       `json:"turn,omitempty"`
	Animating  bool         `json:"animating"`
	OpponentID int          `json:"opponentId"`
	Player     *Participant `json:"player,omitempty"`
	Opponent   *Participant `json:"opponent,omitempty"`
	Log        []string     `json:"log"`
}

type Arena struct {
	TrainerID string  `json:"trainerId"`
	Score     int     `json:"score"`
	Wins      int     `json:"wins"`
	Battle    *Battle `json:"battle"`
}

func ParticipantFromDomain(p *domain.Participant) *Participant {
	if p == nil {
		return nil
	}

	types := make([]string, len(p.Types))
	copy(types, p.Types)

	return &Participant{
		ID:          p.ID,
		Name:        p.Name,
		DisplayName: DisplayName(p.Name),
		Hp:          p.Hp,
		MaxHp:       p.MaxHp,
		Attack:      p.Attack,
		Defense:     p.Defense,
		Speed:       p.Speed,
		Sprite:      p.Sprite,
		SpriteBack:  p.SpriteBack,
		Types:       types,
	}
}

func BattleFromDomain(b *domain.Battle) *Battle {
	if b == nil {
		return nil
	}

	log := make([]string, len(b.Log))
	copy(log, b.Log)

	return &Battle{
		ID:         b.ID.String(),
		Status:     string(b.Status),
		Outcome:    string(b.Outcome),
		Turn:       string(b.Turn),
		Animating:  b.Animating,
		OpponentID: b.OpponentID,
		Player:     ParticipantFromDomain(b.Player),
		Opponent:   ParticipantFromDomain(b.Opponent),
		Log:        log,
	}
}

func ArenaFromDomain(a *domain.Arena) *Arena {
	if a == nil {
		return nil
	}

	return &Arena{
		TrainerID: a.TrainerID.String(),
		Score:     a.Score,
		Wins:      a.Wins,
		Battle:    BattleFromDomain(a.Battle),
	}
}
