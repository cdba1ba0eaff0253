package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config carries all runtime settings, read from RESTAURANT_* environment
// variables. Defaults match the original deployment: flat files in the
// working directory and the legacy capacity bounds.
type Config struct {
	UsersFile    string `envconfig:"USERS_FILE" default:"users.txt"`
	OrdersFile   string `envconfig:"ORDERS_FILE" default:"orders.txt"`
	MaxUsers     int    `envconfig:"MAX_USERS" default:"100"`
	MaxMenuItems int    `envconfig:"MAX_MENU_ITEMS" default:"50"`
	MaxOrders    int    `envconfig:"MAX_ORDERS" default:"50"`
	// JWTSecret signs session tokens. Override it outside of demos.
	JWTSecret string `envconfig:"JWT_SECRET" default:"restaurant_console_super_secret_2024"`
	LogFile   string `envconfig:"LOG_FILE" default:""`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("restaurant", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "read environment")
	}
	return cfg, nil
}
