package console

import (
	"fmt"

	"github.com/gosuri/uitable"

	"github.com/t-rethnee/restaurant-console/models"
	"github.com/t-rethnee/restaurant-console/service"
)

func (c *Console) banner() {
	headerf := headerColor.Fprintf
	headerf(c.out, "=====================================\n")
	headerf(c.out, "||     RESTAURANT MANAGEMENT       ||\n")
	headerf(c.out, "||           SYSTEM                ||\n")
	headerf(c.out, "=====================================\n")
}

func (c *Console) renderMenu(items []models.MenuItem) {
	c.headerf("\nMenu Items:")
	if len(items) == 0 {
		c.warnf("The menu is empty.")
		return
	}
	table := uitable.New()
	table.AddRow("No.", "Category", "Item Name", "Price")
	for i, item := range items {
		table.AddRow(i+1, item.Category, item.Name, fmt.Sprintf("%.2ftk", item.Price))
	}
	fmt.Fprintln(c.out, table)
}

func (c *Console) renderOrders(orders []models.Order) {
	c.headerf("\nCurrent Orders:")
	if len(orders) == 0 {
		c.warnf("No orders have been placed yet.")
		return
	}
	table := uitable.New()
	table.AddRow("No.", "Customer", "Item", "Quantity", "Status", "Amount", "Time")
	for i, o := range orders {
		table.AddRow(i+1, o.CustomerName, o.ItemName, o.Quantity, string(o.Status),
			fmt.Sprintf("%.2ftk", o.TotalAmount), o.OrderTime.Local().Format("15:04:05"))
	}
	fmt.Fprintln(c.out, table)
}

func (c *Console) renderHistory(rows []service.HistoryRow) {
	c.headerf("\nCustomer Order History:")
	if len(rows) == 0 {
		c.warnf("No orders have been placed yet.")
		return
	}
	table := uitable.New()
	table.AddRow("Customer", "Email", "Phone", "Item", "Quantity", "Amount")
	for _, r := range rows {
		table.AddRow(r.Customer, r.Email, r.Phone, r.Item, r.Quantity, fmt.Sprintf("%.2ftk", r.Amount))
	}
	fmt.Fprintln(c.out, table)
}

func (c *Console) renderSummary(summary map[models.OrderStatus]int) {
	table := uitable.New()
	table.AddRow("Status", "Orders")
	for _, status := range []models.OrderStatus{models.StatusProcessing, models.StatusReady, models.StatusDelivered} {
		if n := summary[status]; n > 0 {
			table.AddRow(string(status), n)
		}
	}
	fmt.Fprintln(c.out, table)
}
