package console

import (
	"github.com/pkg/errors"

	"github.com/t-rethnee/restaurant-console/auth"
	"github.com/t-rethnee/restaurant-console/models"
	"github.com/t-rethnee/restaurant-console/statemachine"
)

func (c *Console) chefMenu(claims *auth.Claims) error {
	if err := auth.RequireRole(claims, models.RoleChef); err != nil {
		c.errorf("%v", err)
		return nil
	}

	for {
		c.headerf("\nChef Menu:")
		c.printf("1. View Orders\n2. Update Order Status\n3. Logout\n")
		choice, err := c.promptInt(1, 3, "Enter your choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			c.renderOrders(c.orders.OrdersFor(models.RoleChef, claims.Username))
		case 2:
			if err := c.updateOrderStatus(claims); err != nil {
				return err
			}
		case 3:
			return nil
		}
	}
}

func (c *Console) updateOrderStatus(claims *auth.Claims) error {
	orders := c.orders.OrdersFor(models.RoleChef, claims.Username)
	c.renderOrders(orders)
	if len(orders) == 0 {
		return nil
	}

	orderNum, err := c.promptInt(1, len(orders), "Enter order number to update status: ")
	if err != nil {
		return err
	}
	current := orders[orderNum-1]
	c.printf("Current status: %s\n", current.Status)

	raw, err := c.promptLine("Enter new status (Processing/Ready/Delivered): ")
	if err != nil {
		return err
	}
	newStatus, perr := statemachine.ParseStatus(raw)
	if perr != nil {
		c.errorf("Invalid status! Status remains unchanged.")
		return nil
	}

	if _, err := c.orders.UpdateOrderStatus(orderNum-1, newStatus, statemachine.ActorChef); err != nil {
		var perr *models.PersistenceError
		if errors.As(err, &perr) {
			return err
		}
		// transition rejected; nothing was written
		c.errorf("%v", err)
		return nil
	}
	c.successf("Order status updated!")
	return nil
}
