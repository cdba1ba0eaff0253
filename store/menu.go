package store

import "github.com/t-rethnee/restaurant-console/models"

// The menu catalog is memory-only; it resets to the default catalog on every
// start. Insertion order is display order.

// AddMenuItem admits a new catalog entry.
func (s *Store) AddMenuItem(item models.MenuItem) error {
	if len(s.menu) >= s.maxMenuItems {
		return models.ErrCapacityExceeded
	}
	s.menu = append(s.menu, item)
	return nil
}

// RemoveMenuItem deletes the entry at the given position, shifting the rest
// down.
func (s *Store) RemoveMenuItem(index int) error {
	if index < 0 || index >= len(s.menu) {
		return models.ErrNotFound
	}
	s.menu = append(s.menu[:index], s.menu[index+1:]...)
	return nil
}

// MenuItem returns the entry at the given position.
func (s *Store) MenuItem(index int) (models.MenuItem, error) {
	if index < 0 || index >= len(s.menu) {
		return models.MenuItem{}, models.ErrNotFound
	}
	return s.menu[index], nil
}

// Menu returns a copy of the catalog in display order.
func (s *Store) Menu() []models.MenuItem {
	return append([]models.MenuItem(nil), s.menu...)
}
