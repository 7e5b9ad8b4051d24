package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/parrilleros/kiosk/config"
	"github.com/parrilleros/kiosk/database"
	"github.com/parrilleros/kiosk/database/dbhelper"
	"github.com/parrilleros/kiosk/handlers"
	"github.com/parrilleros/kiosk/order"
	"github.com/parrilleros/kiosk/server"
)

const shutdownTimeOut = 10 * time.Second

func main() {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	cfg := config.Load()

	db, err := database.ConnectAndMigrate(cfg.Database, cfg.MigrationsURL)
	if err != nil {
		logrus.Panicf("failed to initialize database, error: %v", err)
	}
	logrus.Println("migration is successful")

	engine := order.NewEngine(dbhelper.NewOrderNumbers(db))
	store := database.NewStore(db)
	api := handlers.NewAPI(store, store, engine, cfg.CheckoutDelay)

	svr := server.SetupRoutes(api)
	go func() {
		logrus.Printf("kiosk listening on :%s", cfg.Port)
		if err := svr.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server stopped unexpectedly")
		}
	}()

	<-done

	logrus.Info("shutting down...")
	var errs *multierror.Error
	if err := svr.Shutdown(shutdownTimeOut); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := db.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		logrus.WithError(err).Error("shutdown finished with errors")
		return
	}
	logrus.Info("system is shut ..zzz")
}
