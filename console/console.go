// Package console implements the interactive terminal surface: role
// selection, registration and login, and the per-role menus. All business
// rules live in the services; the console only prompts, dispatches and
// renders.
package console

import (
	"bufio"
	"io"

	"github.com/juju/ansiterm"
	"github.com/pkg/errors"

	"github.com/t-rethnee/restaurant-console/auth"
	"github.com/t-rethnee/restaurant-console/models"
	"github.com/t-rethnee/restaurant-console/service"
)

type Console struct {
	in     *bufio.Reader
	out    *ansiterm.Writer
	secret SecretReader

	auth   *auth.Service
	orders *service.OrderService
	menu   *service.MenuService
}

// New builds a console over the given streams. A nil secret reader falls
// back to plain echoed input, which keeps the console usable when stdin is
// not a terminal.
func New(in io.Reader, out io.Writer, secret SecretReader, authSvc *auth.Service, orderSvc *service.OrderService, menuSvc *service.MenuService) *Console {
	return &Console{
		in:     bufio.NewReader(in),
		out:    ansiterm.NewWriter(out),
		secret: secret,
		auth:   authSvc,
		orders: orderSvc,
		menu:   menuSvc,
	}
}

// Run drives the top-level role selection loop until the operator exits or
// input ends.
func (c *Console) Run() error {
	c.banner()

	roles := []models.UserRole{models.RoleAdmin, models.RoleCustomer, models.RoleChef}
	for {
		c.infof("\nSelect your role:")
		c.printf("1. Admin\n2. Customer\n3. Chef/Kitchen Staff\n4. Exit\n")
		choice, err := c.promptInt(1, 4, "Enter your choice: ")
		if err != nil {
			return err
		}
		if choice == 4 {
			c.warnf("\nExiting the system. Goodbye!")
			return nil
		}
		if err := c.authLoop(roles[choice-1]); err != nil {
			return err
		}
	}
}

// authLoop runs the register/login menu for a selected role. The role picks
// what a registration creates; a login always lands in the menu of the
// stored role.
func (c *Console) authLoop(role models.UserRole) error {
	for {
		c.headerf("\n1. Register\n2. Login\n3. Back to Role Selection")
		choice, err := c.promptInt(1, 3, "Enter your choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			if err := c.register(role); err != nil {
				return err
			}
		case 2:
			if err := c.login(); err != nil {
				return err
			}
		case 3:
			return nil
		}
	}
}

func (c *Console) register(role models.UserRole) error {
	username, err := c.promptLine("Enter username: ")
	if err != nil {
		return err
	}
	email, err := c.promptLine("Enter email: ")
	if err != nil {
		return err
	}
	phone, err := c.promptLine("Enter phone (11 digits): ")
	if err != nil {
		return err
	}
	password, err := c.readSecret("Enter password: ")
	if err != nil {
		return err
	}

	if _, err := c.auth.Register(role, username, email, phone, password); err != nil {
		if isOperatorError(err) {
			c.errorf("%v", err)
			return nil
		}
		return err
	}
	c.successf("Registration successful as %s!", role)
	return nil
}

func (c *Console) login() error {
	session := c.auth.NewSession()
	for session.State() == auth.AwaitingCredentials {
		username, err := c.promptLine("Enter username: ")
		if err != nil {
			return err
		}
		password, err := c.readSecret("Enter password: ")
		if err != nil {
			return err
		}

		user, token, err := session.Login(username, password)
		switch {
		case err == nil:
			return c.enterRoleMenu(user, token)
		case errors.Is(err, models.ErrSessionLocked):
			c.errorf("Too many failed attempts. Please try again later.")
			return nil
		case errors.Is(err, models.ErrInvalidCredentials):
			c.errorf("Login failed. Invalid username or password.")
			if session.ShouldOfferReset() {
				answer, perr := c.promptLine("Forgot password? Press '1' to reset password: ")
				if perr != nil {
					return perr
				}
				if answer == "1" {
					if rerr := c.forgotPassword(); rerr != nil {
						return rerr
					}
				}
			}
		default:
			return err
		}
	}
	return nil
}

func (c *Console) enterRoleMenu(user models.User, token string) error {
	claims, err := c.auth.VerifyToken(token)
	if err != nil {
		return err
	}
	c.successf("\nLogin successful as %s!", user.Role)

	switch user.Role {
	case models.RoleAdmin:
		return c.adminMenu(claims)
	case models.RoleCustomer:
		return c.customerMenu(claims)
	case models.RoleChef:
		return c.chefMenu(claims)
	}
	c.errorf("Unknown role %q on record; contact an administrator.", user.Role)
	return nil
}

// isOperatorError reports whether the error is something the operator can
// fix by re-entering input, as opposed to a persistence failure.
func isOperatorError(err error) bool {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return true
	}
	switch {
	case errors.Is(err, models.ErrUsernameTaken),
		errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, models.ErrPhoneTaken),
		errors.Is(err, models.ErrCapacityExceeded),
		errors.Is(err, models.ErrNotFound),
		errors.Is(err, models.ErrInvalidOTP),
		errors.Is(err, models.ErrPasswordMismatch):
		return true
	}
	return false
}
