package main

import (
	"os"

	"github.com/juju/clock"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/t-rethnee/restaurant-console/auth"
	"github.com/t-rethnee/restaurant-console/config"
	"github.com/t-rethnee/restaurant-console/console"
	"github.com/t-rethnee/restaurant-console/service"
	"github.com/t-rethnee/restaurant-console/store"
)

func main() {
	app := &cli.App{
		Name:  "restaurant-console",
		Usage: "terminal restaurant management system (Admin/Customer/Chef)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "users-file", Usage: "path to the users database file"},
			&cli.StringFlag{Name: "orders-file", Usage: "path to the orders database file"},
			&cli.StringFlag{Name: "log-file", Usage: "append structured logs to this file instead of stderr"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("Exiting on error")
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	// flags win over environment
	if v := c.String("users-file"); v != "" {
		cfg.UsersFile = v
	}
	if v := c.String("orders-file"); v != "" {
		cfg.OrdersFile = v
	}
	if v := c.String("log-file"); v != "" {
		cfg.LogFile = v
	}
	setupLogging(cfg.LogFile)

	st := store.New(cfg)
	if err := st.Load(); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"users":  len(st.Users()),
		"orders": len(st.Orders()),
	}).Info("Record store loaded")

	authSvc := auth.NewService(st, []byte(cfg.JWTSecret), clock.WallClock)
	orderSvc := service.NewOrderService(st, clock.WallClock)
	menuSvc := service.NewMenuService(st)

	var secret console.SecretReader
	if term.IsTerminal(int(os.Stdin.Fd())) {
		secret = console.TerminalSecretReader{Out: os.Stdout}
	}

	ui := console.New(os.Stdin, os.Stdout, secret, authSvc, orderSvc, menuSvc)
	return ui.Run()
}

func setupLogging(path string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if path == "" {
		return
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.WithError(err).Warn("Could not open log file, logging to stderr")
		return
	}
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(file)
}
