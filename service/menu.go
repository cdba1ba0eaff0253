package service

import (
	log "github.com/sirupsen/logrus"

	"github.com/t-rethnee/restaurant-console/models"
	"github.com/t-rethnee/restaurant-console/store"
	"github.com/t-rethnee/restaurant-console/validation"
)

// MenuService owns the admin-facing catalog operations.
type MenuService struct {
	store *store.Store
}

func NewMenuService(st *store.Store) *MenuService {
	return &MenuService{store: st}
}

// Items returns the catalog in display order.
func (s *MenuService) Items() []models.MenuItem {
	return s.store.Menu()
}

// Add admits a new catalog entry after format checks.
func (s *MenuService) Add(name, category string, price float64) (models.MenuItem, error) {
	if name == "" {
		return models.MenuItem{}, &models.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !validation.FitsColumn(name, models.MaxItemNameLen) {
		return models.MenuItem{}, &models.ValidationError{
			Field:  "name",
			Reason: "must be at most 49 characters without commas",
		}
	}
	if !models.ValidCategory(category) {
		return models.MenuItem{}, &models.ValidationError{
			Field:  "category",
			Reason: "must be Bengali, Pakistani or Turkish",
		}
	}
	if price < 0 {
		return models.MenuItem{}, &models.ValidationError{Field: "price", Reason: "must not be negative"}
	}

	item := models.MenuItem{Name: name, Category: category, Price: price}
	if err := s.store.AddMenuItem(item); err != nil {
		return models.MenuItem{}, err
	}
	log.WithFields(log.Fields{"item": name, "category": category, "price": price}).Info("Menu item added")
	return item, nil
}

// Delete removes the entry at the given position.
func (s *MenuService) Delete(index int) error {
	if err := s.store.RemoveMenuItem(index); err != nil {
		return err
	}
	log.WithField("index", index).Info("Menu item deleted")
	return nil
}
