package auth

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/t-rethnee/restaurant-console/models"
)

// SessionState tracks where a login session is in its lifecycle.
type SessionState int

const (
	AwaitingCredentials SessionState = iota
	Authenticated
	Locked
)

const maxLoginAttempts = 3

// Session is one continuous sequence of login attempts. The third
// consecutive failure locks the session for good; callers build a new one
// to try again. Locking is per session, not per account.
type Session struct {
	svc      *Service
	id       uuid.UUID
	state    SessionState
	attempts int
}

// NewSession starts a fresh login session with a zeroed attempt counter.
func (s *Service) NewSession() *Session {
	return &Session{svc: s, id: uuid.New()}
}

func (s *Session) State() SessionState { return s.state }

func (s *Session) Attempts() int { return s.attempts }

// ShouldOfferReset reports whether the inline password-reset offer is due.
// It is shown once, right after the second failed attempt.
func (s *Session) ShouldOfferReset() bool {
	return s.state == AwaitingCredentials && s.attempts == 2
}

// Login verifies the credentials. On success it returns the user and a
// signed session token. A locked session refuses further attempts.
func (s *Session) Login(username, password string) (models.User, string, error) {
	if s.state == Locked {
		return models.User{}, "", models.ErrSessionLocked
	}

	user, err := s.svc.verifyCredentials(username, password)
	if err != nil {
		s.attempts++
		log.WithFields(log.Fields{
			"session":  s.id,
			"username": username,
			"attempt":  s.attempts,
		}).Warn("Login failed")
		if s.attempts >= maxLoginAttempts {
			s.state = Locked
			return models.User{}, "", models.ErrSessionLocked
		}
		return models.User{}, "", models.ErrInvalidCredentials
	}

	token, err := s.svc.GenerateToken(user, s.id)
	if err != nil {
		return models.User{}, "", err
	}
	s.state = Authenticated
	log.WithFields(log.Fields{
		"session":  s.id,
		"username": user.Username,
		"role":     user.Role,
	}).Info("Login successful")
	return user, token, nil
}
