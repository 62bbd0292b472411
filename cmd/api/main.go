package main

import (
	"afclean/internal/adapter/http/routes"
	"afclean/internal/infrastructure/config"
	"afclean/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// @title           AF Clean API
// @version         1.0
// @description     Field-service jobs with photo evidence, client sign-off and a cash ledger.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("[app] invalid configuration")
	}
	if err := logger.Setup(cfg.Log); err != nil {
		logrus.WithError(err).Fatal("[app] invalid log configuration")
	}

	if err := routes.Run(cfg); err != nil {
		logrus.WithError(err).Fatal("[app] server stopped")
	}
}
