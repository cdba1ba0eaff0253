package models

// Categories is the fixed set of cuisine categories, in display order.
var Categories = []string{"Bengali", "Pakistani", "Turkish"}

// ValidCategory reports whether the category is one of the recognized set.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type MenuItem struct {
	Name     string
	Category string
	Price    float64
}

// DefaultMenu returns the catalog the system starts with when no admin has
// touched it yet. The menu lives in memory only and is never persisted.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{Name: "Plain Rice", Category: "Bengali", Price: 50.0},
		{Name: "Biryani", Category: "Pakistani", Price: 180.0},
		{Name: "Doner", Category: "Turkish", Price: 200.0},
	}
}
