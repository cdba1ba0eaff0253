package console

import (
	"github.com/t-rethnee/restaurant-console/auth"
	"github.com/t-rethnee/restaurant-console/models"
)

func (c *Console) adminMenu(claims *auth.Claims) error {
	if err := auth.RequireRole(claims, models.RoleAdmin); err != nil {
		c.errorf("%v", err)
		return nil
	}

	for {
		c.headerf("\nAdmin Menu:")
		c.printf("1. Add Menu Item\n2. Delete Menu Item\n3. View Menu\n4. View Orders\n5. View Customer Order History\n6. Logout\n")
		choice, err := c.promptInt(1, 6, "Enter your choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			if err := c.addMenuItem(); err != nil {
				return err
			}
		case 2:
			if err := c.deleteMenuItem(); err != nil {
				return err
			}
		case 3:
			c.renderMenu(c.menu.Items())
		case 4:
			c.renderOrders(c.orders.OrdersFor(models.RoleAdmin, claims.Username))
			c.renderSummary(c.orders.StatusSummary())
		case 5:
			c.renderHistory(c.orders.CustomerHistory())
		case 6:
			return nil
		}
	}
}

func (c *Console) addMenuItem() error {
	name, err := c.promptLine("Enter item name: ")
	if err != nil {
		return err
	}

	c.printf("Select category:\n")
	for i, category := range models.Categories {
		c.printf("%d. %s\n", i+1, category)
	}
	catChoice, err := c.promptInt(1, len(models.Categories), "Enter category number: ")
	if err != nil {
		return err
	}

	price, err := c.promptFloat("Enter item price: ")
	if err != nil {
		return err
	}

	if _, err := c.menu.Add(name, models.Categories[catChoice-1], price); err != nil {
		if isOperatorError(err) {
			c.errorf("%v", err)
			return nil
		}
		return err
	}
	c.successf("Menu item added successfully!")
	return nil
}

func (c *Console) deleteMenuItem() error {
	items := c.menu.Items()
	c.renderMenu(items)
	if len(items) == 0 {
		return nil
	}

	itemNum, err := c.promptInt(1, len(items), "Enter item number to delete: ")
	if err != nil {
		return err
	}
	if err := c.menu.Delete(itemNum - 1); err != nil {
		if isOperatorError(err) {
			c.errorf("%v", err)
			return nil
		}
		return err
	}
	c.successf("Menu item deleted successfully!")
	return nil
}
