package main

import (
	"context"
	"fmt"

	"whey/config"
	"whey/di"
	"whey/driver/storedb"
	"whey/job"
	"whey/rest"
	"whey/utils/logger"

	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.InitLogger(cfg.Logging.Level)
	log.Info("starting server", "port", cfg.Server.Port)

	ctx := context.Background()

	pool, err := storedb.InitDBConnection(ctx)
	if err != nil {
		logger.Logger.Error("failed to connect to database", "error", err)
		panic(err)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool, cfg)

	job.StartCacheSweeper(ctx, container.Store, container.ControllerRegistry, cfg.Cache.SweepInterval, cfg.Cache.StaleMaxAge)

	e := echo.New()
	e.HideBanner = true
	rest.RegisterRoutes(e, container, cfg, log)

	if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.Logger.Error("error starting server", "error", err)
		panic(err)
	}
}
