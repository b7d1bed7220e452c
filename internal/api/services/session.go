package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionTTL = 72 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// SessionService issues the anonymous trainer tokens that scope an arena.
type SessionService struct {
	jwtKey string
	now    func() time.Time
}

func NewSessionService(jwtKey string) *SessionService {
	return &SessionService{jwtKey: jwtKey, now: time.Now}
}

type Session struct {
	TrainerID uuid.UUID
	Token     string
	ExpiresAt time.Time
}

func (s *SessionService) Issue() (*Session, error) {
	id := uuid.New()
	expiresAt := s.now().Add(sessionTTL)

	claims := jwt.MapClaims{
		"id":  id.String(),
		"exp": expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtKey))
	if err != nil {
		return nil, err
	}

	return &Session{TrainerID: id, Token: signed, ExpiresAt: expiresAt}, nil
}

// Parse validates a token and returns the trainer id it carries.
func (s *SessionService) Parse(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.jwtKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	idStr, ok := claims["id"].(string)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}
