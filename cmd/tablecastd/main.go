package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/datasight/tablecast/configs"
	"github.com/datasight/tablecast/httpapi"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug("no .env file loaded")
	}

	cfg := configs.Load()
	gin.SetMode(cfg.GinMode)

	r := httpapi.NewRouter(cfg, log)

	log.WithField("port", cfg.Port).Info("starting tablecastd")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
