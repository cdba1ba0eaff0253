// Package service drives the order lifecycle and menu catalog against the
// record store.
package service

import (
	"fmt"

	"github.com/juju/clock"
	log "github.com/sirupsen/logrus"

	"github.com/t-rethnee/restaurant-console/models"
	"github.com/t-rethnee/restaurant-console/statemachine"
	"github.com/t-rethnee/restaurant-console/store"
)

const (
	minQuantity = 1
	maxQuantity = 100
)

// OrderService owns order placement, status transitions and the read-only
// order views.
type OrderService struct {
	store *store.Store
	clk   clock.Clock
}

func NewOrderService(st *store.Store, clk clock.Clock) *OrderService {
	return &OrderService{store: st, clk: clk}
}

// PlaceOrder prices and persists a new order. The total is a snapshot of
// the current menu price; later menu edits never touch placed orders. The
// order is durably appended before it is returned to the caller.
func (s *OrderService) PlaceOrder(customerName string, menuIndex, quantity int) (models.Order, error) {
	if quantity < minQuantity || quantity > maxQuantity {
		return models.Order{}, &models.ValidationError{
			Field:  "quantity",
			Reason: fmt.Sprintf("must be between %d and %d", minQuantity, maxQuantity),
		}
	}
	item, err := s.store.MenuItem(menuIndex)
	if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		CustomerName: customerName,
		ItemName:     item.Name,
		Quantity:     quantity,
		Status:       models.StatusProcessing,
		TotalAmount:  float64(quantity) * item.Price,
		OrderTime:    s.clk.Now(),
	}
	if err := s.store.AppendOrder(order); err != nil {
		return models.Order{}, err
	}

	log.WithFields(log.Fields{
		"customer": customerName,
		"item":     item.Name,
		"quantity": quantity,
		"total":    order.TotalAmount,
	}).Info("Order placed")
	return order, nil
}

// UpdateOrderStatus validates the transition for the given actor and
// persists the whole order log.
func (s *OrderService) UpdateOrderStatus(index int, newStatus models.OrderStatus, actor string) (models.Order, error) {
	orders := s.store.Orders()
	if index < 0 || index >= len(orders) {
		return models.Order{}, models.ErrNotFound
	}
	current := orders[index]
	if err := statemachine.CanTransition(current.Status, newStatus, actor); err != nil {
		return models.Order{}, err
	}

	updated := current
	updated.Status = newStatus
	if err := s.store.ReplaceOrder(index, updated); err != nil {
		return models.Order{}, err
	}

	log.WithFields(log.Fields{
		"customer": updated.CustomerName,
		"item":     updated.ItemName,
		"from":     current.Status,
		"to":       newStatus,
		"actor":    actor,
	}).Info("Order status updated")
	return updated, nil
}

// OrdersFor returns the orders a caller may see. Admin and chef see the
// whole log; customers only their own.
func (s *OrderService) OrdersFor(role models.UserRole, username string) []models.Order {
	orders := s.store.Orders()
	if role == models.RoleAdmin || role == models.RoleChef {
		return orders
	}
	var own []models.Order
	for _, o := range orders {
		if o.CustomerName == username {
			own = append(own, o)
		}
	}
	return own
}

// StatusSummary aggregates the order log by status for the admin dashboard.
func (s *OrderService) StatusSummary() map[models.OrderStatus]int {
	summary := map[models.OrderStatus]int{}
	for _, o := range s.store.Orders() {
		summary[o.Status]++
	}
	return summary
}
