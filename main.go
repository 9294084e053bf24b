package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tasteofindiazambia/backend/configs"
	"github.com/tasteofindiazambia/backend/pkg/logger"
	"github.com/tasteofindiazambia/backend/routes"
)

func main() {
	logger.Setup()
	cfg := configs.LoadConfig()

	if err := configs.ConnectDB(cfg); err != nil {
		logrus.WithError(err).Fatal("failed to connect database")
	}
	if err := configs.SetupDatabase(); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}
	if err := configs.SeedAdmin(); err != nil {
		logrus.WithError(err).Fatal("seed admin failed")
	}

	r := gin.Default()
	routes.RegisterRoutes(r, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.WithField("addr", addr).Info("server running")
	if err := r.Run(addr); err != nil {
		logrus.Fatal(err)
	}
}
