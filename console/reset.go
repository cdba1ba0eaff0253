package console

import (
	"github.com/pkg/errors"

	"github.com/t-rethnee/restaurant-console/models"
	"github.com/t-rethnee/restaurant-console/validation"
)

// demoMailer prints the "email" carrying the one-time code, the way the
// original demo did. Nothing leaves the process.
type demoMailer struct {
	c *Console
}

func (m demoMailer) SendOTP(email, otp string) error {
	m.c.infof("\nDemo Email Sent to: %s", email)
	m.c.infof("Subject: Password Reset OTP")
	m.c.infof("Message: Your OTP for password reset is: %s", otp)
	m.c.infof("(In a real system, this would be sent via email)\n")
	return nil
}

func (c *Console) forgotPassword() error {
	c.infof("\nForgot Password")
	username, err := c.promptLine("Enter your username: ")
	if err != nil {
		return err
	}
	email, err := c.promptLine("Enter your registered email: ")
	if err != nil {
		return err
	}

	req, err := c.auth.BeginPasswordReset(username, email, demoMailer{c: c})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.errorf("No account found with that username and email combination.")
			return nil
		}
		return err
	}

	otp, err := c.promptLine("Enter the OTP sent to your email: ")
	if err != nil {
		return err
	}

	var newPassword string
	for {
		newPassword, err = c.readSecret("Enter new password: ")
		if err != nil {
			return err
		}
		if validation.IsPasswordValid(newPassword) {
			break
		}
		c.errorf("Password must be at least 8 characters long, contain a digit and a special character.")
	}

	confirm, err := c.readSecret("Confirm new password: ")
	if err != nil {
		return err
	}

	if err := req.Complete(otp, newPassword, confirm); err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidOTP):
			c.errorf("Invalid OTP. Password reset failed.")
			return nil
		case errors.Is(err, models.ErrPasswordMismatch):
			c.errorf("Passwords do not match. Password reset failed.")
			return nil
		case isOperatorError(err):
			c.errorf("%v", err)
			return nil
		}
		return err
	}
	c.successf("Password reset successfully!")
	return nil
}
