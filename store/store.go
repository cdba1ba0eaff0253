// Package store owns the in-memory collections of users, menu items and
// orders, and their flat-file backing. It is the only component that touches
// the database files.
//
// The on-disk format is one record per line, comma-separated, no header and
// no escaping. Fields must not contain commas; admission-time validation
// refuses values that would not survive a reload.
package store

import (
	"github.com/t-rethnee/restaurant-console/config"
	"github.com/t-rethnee/restaurant-console/models"
)

// Store holds all three collections. Capacity bounds are enforced at the API
// boundary; an insert past a bound is refused, never silently dropped or
// overwritten.
//
// The store is built for exactly one in-process reader and writer; there is
// no locking.
type Store struct {
	usersPath  string
	ordersPath string

	maxUsers     int
	maxMenuItems int
	maxOrders    int

	users  []models.User
	menu   []models.MenuItem
	orders []models.Order
}

// New builds an empty store with the menu seeded from the default catalog.
// Call Load to read the backing files.
func New(cfg config.Config) *Store {
	return &Store{
		usersPath:    cfg.UsersFile,
		ordersPath:   cfg.OrdersFile,
		maxUsers:     cfg.MaxUsers,
		maxMenuItems: cfg.MaxMenuItems,
		maxOrders:    cfg.MaxOrders,
		menu:         models.DefaultMenu(),
	}
}

// Load reads both backing files. Missing files leave the collections empty.
func (s *Store) Load() error {
	if err := s.LoadUsers(); err != nil {
		return err
	}
	return s.LoadOrders()
}
