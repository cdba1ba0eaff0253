package store

import (
	log "github.com/sirupsen/logrus"

	"github.com/t-rethnee/restaurant-console/models"
)

// LoadOrders replaces the in-memory order log with the file contents.
func (s *Store) LoadOrders() error {
	s.orders = s.orders[:0]
	return readLines(s.ordersPath, func(line string) error {
		o, err := decodeOrder(line)
		if err != nil {
			return err
		}
		if len(s.orders) >= s.maxOrders {
			log.WithField("file", s.ordersPath).Warn("Order capacity reached, ignoring remaining rows")
			return nil
		}
		s.orders = append(s.orders, o)
		return nil
	})
}

// AppendOrder persists the record, then admits it to memory.
func (s *Store) AppendOrder(o models.Order) error {
	if len(s.orders) >= s.maxOrders {
		return models.ErrCapacityExceeded
	}
	if err := appendLine(s.ordersPath, encodeOrder(o)); err != nil {
		return err
	}
	s.orders = append(s.orders, o)
	return nil
}

// RewriteAllOrders replaces the entire backing file with the given log.
func (s *Store) RewriteAllOrders(orders []models.Order) error {
	lines := make([]string, 0, len(orders))
	for _, o := range orders {
		lines = append(lines, encodeOrder(o))
	}
	if err := rewriteFile(s.ordersPath, lines); err != nil {
		return err
	}
	s.orders = append(s.orders[:0], orders...)
	return nil
}

// ReplaceOrder writes back a mutated copy of the order at the given
// position in the log.
func (s *Store) ReplaceOrder(index int, updated models.Order) error {
	if index < 0 || index >= len(s.orders) {
		return models.ErrNotFound
	}
	next := append([]models.Order(nil), s.orders...)
	next[index] = updated
	return s.RewriteAllOrders(next)
}

// Orders returns a copy of the order log in insertion order.
func (s *Store) Orders() []models.Order {
	return append([]models.Order(nil), s.orders...)
}
