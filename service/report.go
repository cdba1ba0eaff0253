package service

import "github.com/t-rethnee/restaurant-console/models"

// HistoryRow is one line of the customer order history report: an order
// joined with the customer's contact details.
type HistoryRow struct {
	Customer string
	Email    string
	Phone    string
	Item     string
	Quantity int
	Amount   float64
}

// CustomerHistory joins the order log against user records by exact
// username match. Contact columns fall back to "N/A" when no matching user
// exists; the join is by name, not an enforced foreign key.
func (s *OrderService) CustomerHistory() []HistoryRow {
	users := s.store.Users()
	byName := make(map[string]models.User, len(users))
	for _, u := range users {
		byName[u.Username] = u
	}

	orders := s.store.Orders()
	rows := make([]HistoryRow, 0, len(orders))
	for _, o := range orders {
		row := HistoryRow{
			Customer: o.CustomerName,
			Email:    "N/A",
			Phone:    "N/A",
			Item:     o.ItemName,
			Quantity: o.Quantity,
			Amount:   o.TotalAmount,
		}
		if u, ok := byName[o.CustomerName]; ok {
			row.Email = u.Email
			row.Phone = u.Phone
		}
		rows = append(rows, row)
	}
	return rows
}
