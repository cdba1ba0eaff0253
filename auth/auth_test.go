package auth_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t-rethnee/restaurant-console/auth"
	"github.com/t-rethnee/restaurant-console/config"
	"github.com/t-rethnee/restaurant-console/models"
	"github.com/t-rethnee/restaurant-console/store"
)

type fakeNotifier struct {
	email string
	otp   string
	sends int
}

func (f *fakeNotifier) SendOTP(email, otp string) error {
	f.email = email
	f.otp = otp
	f.sends++
	return nil
}

func setup(t *testing.T) (*auth.Service, *store.Store, config.Config) {
	dir := t.TempDir()
	cfg := config.Config{
		UsersFile:    filepath.Join(dir, "users.txt"),
		OrdersFile:   filepath.Join(dir, "orders.txt"),
		MaxUsers:     100,
		MaxMenuItems: 50,
		MaxOrders:    50,
		JWTSecret:    "test-secret",
	}
	st := store.New(cfg)
	require.NoError(t, st.Load())
	clk := testclock.NewClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	return auth.NewService(st, []byte(cfg.JWTSecret), clk), st, cfg
}

const goodPassword = "abcdefg1!"

func register(t *testing.T, svc *auth.Service, username string) models.User {
	user, err := svc.Register(models.RoleCustomer, username, username+"@example.com", "01712345678", goodPassword)
	require.NoError(t, err)
	return user
}

func TestRegister(t *testing.T) {
	svc, st, cfg := setup(t)

	t.Run("success and round trip", func(t *testing.T) {
		user := register(t, svc, "rahim")
		assert.Equal(t, models.RoleCustomer, user.Role)
		assert.NotEqual(t, goodPassword, user.PasswordHash, "password must be stored hashed")

		assert.True(t, st.IsUsernameTaken("rahim"))
		assert.True(t, st.IsEmailTaken("rahim@example.com"))
		assert.True(t, st.IsPhoneTaken("01712345678"))

		reloaded := store.New(cfg)
		require.NoError(t, reloaded.Load())
		require.Len(t, reloaded.Users(), 1)
		assert.Equal(t, user, reloaded.Users()[0])
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Register(models.RoleChef, "rahim", "other@example.com", "01798765432", goodPassword)
		assert.ErrorIs(t, err, models.ErrUsernameTaken)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(models.RoleChef, "karim", "rahim@example.com", "01798765432", goodPassword)
		assert.ErrorIs(t, err, models.ErrEmailTaken)
	})

	t.Run("duplicate phone", func(t *testing.T) {
		_, err := svc.Register(models.RoleChef, "karim", "karim@example.com", "01712345678", goodPassword)
		assert.ErrorIs(t, err, models.ErrPhoneTaken)
	})

	t.Run("invalid email reported before invalid phone", func(t *testing.T) {
		_, err := svc.Register(models.RoleChef, "karim", "broken", "123", goodPassword)
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "email", verr.Field)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := svc.Register(models.RoleChef, "karim", "karim@example.com", "01798765432", "weak")
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "password", verr.Field)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := svc.Register("Waiter", "karim", "karim@example.com", "01798765432", goodPassword)
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "role", verr.Field)
	})

	t.Run("over-width email refused before write", func(t *testing.T) {
		_, err := svc.Register(models.RoleCustomer, "karim", strings.Repeat("a", 110)+"@example.com", "01798765432", goodPassword)
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "email", verr.Field)

		reloaded := store.New(cfg)
		require.NoError(t, reloaded.Load())
		assert.False(t, reloaded.IsUsernameTaken("karim"), "nothing may reach the file")
	})

	t.Run("multibyte username wider than its column refused", func(t *testing.T) {
		_, err := svc.Register(models.RoleCustomer, strings.Repeat("ü", 49), "wide@example.com", "01798765433", goodPassword)
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "username", verr.Field)
	})

	t.Run("widest accepted username survives reload", func(t *testing.T) {
		name := strings.Repeat("x", 49)
		_, err := svc.Register(models.RoleCustomer, name, "widest@example.com", "01798765434", goodPassword)
		require.NoError(t, err)

		reloaded := store.New(cfg)
		require.NoError(t, reloaded.Load())
		_, err = reloaded.FindUser(name)
		assert.NoError(t, err)
	})
}

func TestRegisterCapacityCheckedFirst(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		UsersFile:    filepath.Join(dir, "users.txt"),
		OrdersFile:   filepath.Join(dir, "orders.txt"),
		MaxUsers:     1,
		MaxMenuItems: 50,
		MaxOrders:    50,
		JWTSecret:    "test-secret",
	}
	st := store.New(cfg)
	require.NoError(t, st.Load())
	clk := testclock.NewClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := auth.NewService(st, []byte(cfg.JWTSecret), clk)

	register(t, svc, "rahim")

	// a full store refuses even a malformed registration up front
	_, err := svc.Register("Waiter", "", "broken", "123", "weak")
	assert.ErrorIs(t, err, models.ErrCapacityExceeded)
}

func TestSessionLogin(t *testing.T) {
	svc, _, _ := setup(t)
	register(t, svc, "rahim")

	t.Run("success issues verifiable token", func(t *testing.T) {
		session := svc.NewSession()
		user, token, err := session.Login("rahim", goodPassword)
		require.NoError(t, err)
		assert.Equal(t, "rahim", user.Username)
		assert.Equal(t, auth.Authenticated, session.State())

		claims, err := svc.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, "rahim", claims.Username)
		assert.Equal(t, models.RoleCustomer, claims.Role)

		assert.NoError(t, auth.RequireRole(claims, models.RoleCustomer))
		assert.Error(t, auth.RequireRole(claims, models.RoleAdmin, models.RoleChef))
	})

	t.Run("unknown user and wrong password look identical", func(t *testing.T) {
		session := svc.NewSession()
		_, _, err1 := session.Login("nobody", goodPassword)
		_, _, err2 := session.Login("rahim", "wrong-pass1!")
		assert.ErrorIs(t, err1, models.ErrInvalidCredentials)
		assert.ErrorIs(t, err2, models.ErrInvalidCredentials)
	})
}

func TestSessionLockout(t *testing.T) {
	svc, _, _ := setup(t)
	register(t, svc, "rahim")

	session := svc.NewSession()

	_, _, err := session.Login("rahim", "wrong1!")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	assert.False(t, session.ShouldOfferReset())

	_, _, err = session.Login("rahim", "wrong2!")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	assert.True(t, session.ShouldOfferReset(), "reset offered after second failure")

	_, _, err = session.Login("rahim", "wrong3!")
	assert.ErrorIs(t, err, models.ErrSessionLocked)
	assert.Equal(t, auth.Locked, session.State())

	// even the right password is refused once locked
	_, _, err = session.Login("rahim", goodPassword)
	assert.ErrorIs(t, err, models.ErrSessionLocked)
	assert.Equal(t, 3, session.Attempts())

	// a fresh session starts clean
	fresh := svc.NewSession()
	_, _, err = fresh.Login("rahim", goodPassword)
	assert.NoError(t, err)
}

func TestPasswordReset(t *testing.T) {
	svc, _, cfg := setup(t)
	register(t, svc, "rahim")

	t.Run("unknown pair", func(t *testing.T) {
		notifier := &fakeNotifier{}
		_, err := svc.BeginPasswordReset("rahim", "wrong@example.com", notifier)
		assert.ErrorIs(t, err, models.ErrNotFound)
		_, err = svc.BeginPasswordReset("ghost", "rahim@example.com", notifier)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Zero(t, notifier.sends)
	})

	t.Run("wrong otp", func(t *testing.T) {
		notifier := &fakeNotifier{}
		req, err := svc.BeginPasswordReset("rahim", "rahim@example.com", notifier)
		require.NoError(t, err)
		require.Len(t, notifier.otp, 6)
		wrong := "000000"
		if notifier.otp == wrong {
			wrong = "000001"
		}
		assert.ErrorIs(t, req.Complete(wrong, "newpass1!", "newpass1!"), models.ErrInvalidOTP)
	})

	t.Run("weak new password", func(t *testing.T) {
		notifier := &fakeNotifier{}
		req, err := svc.BeginPasswordReset("rahim", "rahim@example.com", notifier)
		require.NoError(t, err)
		var verr *models.ValidationError
		require.ErrorAs(t, req.Complete(notifier.otp, "weak", "weak"), &verr)
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		notifier := &fakeNotifier{}
		req, err := svc.BeginPasswordReset("rahim", "rahim@example.com", notifier)
		require.NoError(t, err)
		assert.ErrorIs(t, req.Complete(notifier.otp, "newpass1!", "different1!"), models.ErrPasswordMismatch)
	})

	t.Run("success persists the new password", func(t *testing.T) {
		notifier := &fakeNotifier{}
		req, err := svc.BeginPasswordReset("rahim", "rahim@example.com", notifier)
		require.NoError(t, err)
		assert.Equal(t, "rahim@example.com", notifier.email)
		require.NoError(t, req.Complete(notifier.otp, "newpass1!", "newpass1!"))

		// fresh service over a reloaded store sees the new password
		reloaded := store.New(cfg)
		require.NoError(t, reloaded.Load())
		clk := testclock.NewClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
		fresh := auth.NewService(reloaded, []byte(cfg.JWTSecret), clk)

		session := fresh.NewSession()
		_, _, err = session.Login("rahim", goodPassword)
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)

		session = fresh.NewSession()
		_, _, err = session.Login("rahim", "newpass1!")
		assert.NoError(t, err)
	})

	t.Run("fresh otp per request", func(t *testing.T) {
		n1 := &fakeNotifier{}
		n2 := &fakeNotifier{}
		_, err := svc.BeginPasswordReset("rahim", "rahim@example.com", n1)
		require.NoError(t, err)
		_, err = svc.BeginPasswordReset("rahim", "rahim@example.com", n2)
		require.NoError(t, err)
		assert.Len(t, n1.otp, 6)
		assert.Len(t, n2.otp, 6)
	})
}
