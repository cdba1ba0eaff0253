package auth

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/t-rethnee/restaurant-console/models"
	"github.com/t-rethnee/restaurant-console/validation"
)

// Notifier delivers one-time codes to users. The console wires in a demo
// implementation that prints the "email"; nothing leaves the process.
type Notifier interface {
	SendOTP(email, otp string) error
}

// ResetRequest is a pending password reset holding a live one-time code.
// The code is generated fresh per request and dies with the request.
type ResetRequest struct {
	svc  *Service
	user models.User
	otp  string
}

const otpLength = 6

// BeginPasswordReset matches the username/email pair and issues a fresh
// 6-digit code through the notifier. Whether the username or the email was
// wrong is not distinguished.
func (s *Service) BeginPasswordReset(username, email string, notifier Notifier) (*ResetRequest, error) {
	user, err := s.store.FindUser(username)
	if err != nil || user.Email != email {
		return nil, models.ErrNotFound
	}

	otp, err := generateOTP()
	if err != nil {
		return nil, errors.Wrap(err, "generate one-time code")
	}
	if err := notifier.SendOTP(user.Email, otp); err != nil {
		return nil, errors.Wrap(err, "deliver one-time code")
	}

	log.WithField("username", username).Info("Password reset requested")
	return &ResetRequest{svc: s, user: user, otp: otp}, nil
}

// Complete commits the new password once the code matches, the password
// passes the strength check and both entries agree. The stored record is
// replaced and the whole user file rewritten.
func (r *ResetRequest) Complete(otp, newPassword, confirm string) error {
	if otp != r.otp {
		return models.ErrInvalidOTP
	}
	if !validation.IsPasswordValid(newPassword) {
		return &models.ValidationError{
			Field:  "password",
			Reason: "must be at least 8 characters with a digit and a special character",
		}
	}
	if newPassword != confirm {
		return models.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}

	updated := r.user
	updated.PasswordHash = string(hash)
	if err := r.svc.store.ReplaceUser(updated); err != nil {
		return err
	}

	log.WithField("username", r.user.Username).Info("Password reset completed")
	return nil
}

func generateOTP() (string, error) {
	digits := make([]byte, otpLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = '0' + byte(n.Int64())
	}
	return string(digits), nil
}
