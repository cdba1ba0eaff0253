package console

import (
	"github.com/t-rethnee/restaurant-console/auth"
	"github.com/t-rethnee/restaurant-console/models"
)

func (c *Console) customerMenu(claims *auth.Claims) error {
	if err := auth.RequireRole(claims, models.RoleCustomer); err != nil {
		c.errorf("%v", err)
		return nil
	}

	for {
		c.headerf("\nCustomer Menu:")
		c.printf("1. View Menu\n2. Place Order\n3. View Orders\n4. Logout\n")
		choice, err := c.promptInt(1, 4, "Enter your choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			c.renderMenu(c.menu.Items())
		case 2:
			if err := c.placeOrder(claims.Username); err != nil {
				return err
			}
		case 3:
			c.renderOrders(c.orders.OrdersFor(models.RoleCustomer, claims.Username))
		case 4:
			return nil
		}
	}
}

func (c *Console) placeOrder(customerName string) error {
	items := c.menu.Items()
	c.renderMenu(items)
	if len(items) == 0 {
		c.errorf("No items available to order.")
		return nil
	}

	itemNum, err := c.promptInt(1, len(items), "Enter item number to order: ")
	if err != nil {
		return err
	}
	quantity, err := c.promptInt(1, 100, "Enter quantity: ")
	if err != nil {
		return err
	}

	order, err := c.orders.PlaceOrder(customerName, itemNum-1, quantity)
	if err != nil {
		if isOperatorError(err) {
			c.errorf("%v", err)
			return nil
		}
		return err
	}
	return c.processPayment(order.TotalAmount)
}
