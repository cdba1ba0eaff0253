// Package auth implements registration, login sessions and the password
// reset flow on top of the record store.
package auth

import (
	"github.com/juju/clock"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/t-rethnee/restaurant-console/models"
	"github.com/t-rethnee/restaurant-console/store"
	"github.com/t-rethnee/restaurant-console/validation"
)

// Service verifies credentials and admits new users. It never prompts; all
// interaction stays in the console layer.
type Service struct {
	store  *store.Store
	secret []byte
	clk    clock.Clock
}

func NewService(st *store.Store, secret []byte, clk clock.Clock) *Service {
	return &Service{store: st, secret: secret, clk: clk}
}

// Register creates a new user account. Capacity is checked before anything
// else; field checks then run in the order the registration flow collects
// them: username, email, phone, password. The first failing check is
// reported and nothing is written.
func (s *Service) Register(role models.UserRole, username, email, phone, password string) (models.User, error) {
	if s.store.UsersFull() {
		return models.User{}, models.ErrCapacityExceeded
	}
	if !models.ValidRole(role) {
		return models.User{}, &models.ValidationError{
			Field:  "role",
			Reason: "must be Admin, Customer or Chef",
		}
	}

	in := validation.RegisterInput{Username: username, Email: email, Phone: phone, Password: password}

	if err := validation.CheckField(in, "Username"); err != nil {
		return models.User{}, err
	}
	if s.store.IsUsernameTaken(username) {
		return models.User{}, models.ErrUsernameTaken
	}
	if err := validation.CheckField(in, "Email"); err != nil {
		return models.User{}, err
	}
	if s.store.IsEmailTaken(email) {
		return models.User{}, models.ErrEmailTaken
	}
	if err := validation.CheckField(in, "Phone"); err != nil {
		return models.User{}, err
	}
	if s.store.IsPhoneTaken(phone) {
		return models.User{}, models.ErrPhoneTaken
	}
	if err := validation.CheckField(in, "Password"); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, errors.Wrap(err, "hash password")
	}

	user := models.User{
		Username:     username,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.store.AppendUser(user); err != nil {
		return models.User{}, err
	}

	log.WithFields(log.Fields{"username": username, "role": role}).Info("User registered")
	return user, nil
}

// verifyCredentials looks the user up and compares the password against the
// stored bcrypt hash. Unknown usernames and wrong passwords are reported
// identically.
func (s *Service) verifyCredentials(username, password string) (models.User, error) {
	user, err := s.store.FindUser(username)
	if err != nil {
		return models.User{}, models.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, models.ErrInvalidCredentials
	}
	return user, nil
}
