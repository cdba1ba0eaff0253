package service_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t-rethnee/restaurant-console/config"
	"github.com/t-rethnee/restaurant-console/models"
	"github.com/t-rethnee/restaurant-console/service"
	"github.com/t-rethnee/restaurant-console/statemachine"
	"github.com/t-rethnee/restaurant-console/store"
)

var placedAt = time.Date(2024, 6, 1, 19, 30, 0, 0, time.UTC)

func setup(t *testing.T) (*service.OrderService, *store.Store, config.Config) {
	dir := t.TempDir()
	cfg := config.Config{
		UsersFile:    filepath.Join(dir, "users.txt"),
		OrdersFile:   filepath.Join(dir, "orders.txt"),
		MaxUsers:     100,
		MaxMenuItems: 50,
		MaxOrders:    50,
	}
	st := store.New(cfg)
	require.NoError(t, st.Load())
	return service.NewOrderService(st, testclock.NewClock(placedAt)), st, cfg
}

func TestPlaceOrder(t *testing.T) {
	svc, st, _ := setup(t)

	t.Run("prices from a snapshot of the menu", func(t *testing.T) {
		// default catalog index 1 is Biryani at 180.0
		order, err := svc.PlaceOrder("rahim", 1, 3)
		require.NoError(t, err)
		assert.Equal(t, "Biryani", order.ItemName)
		assert.Equal(t, 540.0, order.TotalAmount)
		assert.Equal(t, models.StatusProcessing, order.Status)
		assert.Equal(t, placedAt, order.OrderTime)
		require.Len(t, st.Orders(), 1, "order persisted before being returned")
	})

	t.Run("menu edits never reprice placed orders", func(t *testing.T) {
		require.NoError(t, st.RemoveMenuItem(1))
		orders := st.Orders()
		require.Len(t, orders, 1)
		assert.Equal(t, 540.0, orders[0].TotalAmount)
	})

	t.Run("quantity bounds", func(t *testing.T) {
		for _, q := range []int{0, -1, 101} {
			_, err := svc.PlaceOrder("rahim", 0, q)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr, "quantity %d", q)
			assert.Equal(t, "quantity", verr.Field)
		}
	})

	t.Run("unknown menu index", func(t *testing.T) {
		_, err := svc.PlaceOrder("rahim", 42, 1)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	svc, _, cfg := setup(t)
	_, err := svc.PlaceOrder("rahim", 0, 2)
	require.NoError(t, err)

	t.Run("chef moves forward and the change survives reload", func(t *testing.T) {
		updated, err := svc.UpdateOrderStatus(0, models.StatusReady, statemachine.ActorChef)
		require.NoError(t, err)
		assert.Equal(t, models.StatusReady, updated.Status)

		reloaded := store.New(cfg)
		require.NoError(t, reloaded.Load())
		orders := reloaded.Orders()
		require.Len(t, orders, 1)
		assert.Equal(t, models.StatusReady, orders[0].Status)
		assert.Equal(t, "rahim", orders[0].CustomerName)
		assert.Equal(t, 2, orders[0].Quantity)
		assert.Equal(t, placedAt.Unix(), orders[0].OrderTime.Unix())
	})

	t.Run("chef cannot go backward", func(t *testing.T) {
		_, err := svc.UpdateOrderStatus(0, models.StatusProcessing, statemachine.ActorChef)
		assert.Error(t, err)
	})

	t.Run("admin can force backward", func(t *testing.T) {
		updated, err := svc.UpdateOrderStatus(0, models.StatusProcessing, statemachine.ActorAdmin)
		require.NoError(t, err)
		assert.Equal(t, models.StatusProcessing, updated.Status)
	})

	t.Run("unrecognized status", func(t *testing.T) {
		_, err := svc.UpdateOrderStatus(0, "Burnt", statemachine.ActorChef)
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := svc.UpdateOrderStatus(9, models.StatusReady, statemachine.ActorChef)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestOrdersFor(t *testing.T) {
	svc, _, _ := setup(t)
	_, err := svc.PlaceOrder("rahim", 0, 1)
	require.NoError(t, err)
	_, err = svc.PlaceOrder("karim", 1, 2)
	require.NoError(t, err)
	_, err = svc.PlaceOrder("rahim", 2, 1)
	require.NoError(t, err)

	assert.Len(t, svc.OrdersFor(models.RoleAdmin, "whoever"), 3)
	assert.Len(t, svc.OrdersFor(models.RoleChef, "whoever"), 3)

	own := svc.OrdersFor(models.RoleCustomer, "rahim")
	require.Len(t, own, 2)
	for _, o := range own {
		assert.Equal(t, "rahim", o.CustomerName)
	}
	assert.Empty(t, svc.OrdersFor(models.RoleCustomer, "nobody"))
}

func TestStatusSummary(t *testing.T) {
	svc, _, _ := setup(t)
	_, err := svc.PlaceOrder("rahim", 0, 1)
	require.NoError(t, err)
	_, err = svc.PlaceOrder("rahim", 1, 1)
	require.NoError(t, err)
	_, err = svc.UpdateOrderStatus(0, models.StatusReady, statemachine.ActorChef)
	require.NoError(t, err)

	summary := svc.StatusSummary()
	assert.Equal(t, 1, summary[models.StatusProcessing])
	assert.Equal(t, 1, summary[models.StatusReady])
	assert.Zero(t, summary[models.StatusDelivered])
}

func TestCustomerHistory(t *testing.T) {
	svc, st, _ := setup(t)
	require.NoError(t, st.AppendUser(models.User{
		Username:     "rahim",
		Email:        "rahim@example.com",
		Phone:        "01712345678",
		PasswordHash: "hash",
		Role:         models.RoleCustomer,
	}))

	_, err := svc.PlaceOrder("rahim", 0, 2)
	require.NoError(t, err)
	_, err = svc.PlaceOrder("stranger", 1, 1)
	require.NoError(t, err)

	rows := svc.CustomerHistory()
	require.Len(t, rows, 2)

	assert.Equal(t, "rahim", rows[0].Customer)
	assert.Equal(t, "rahim@example.com", rows[0].Email)
	assert.Equal(t, "01712345678", rows[0].Phone)
	assert.Equal(t, 100.0, rows[0].Amount)

	assert.Equal(t, "stranger", rows[1].Customer)
	assert.Equal(t, "N/A", rows[1].Email)
	assert.Equal(t, "N/A", rows[1].Phone)
}
