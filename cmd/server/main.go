package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wailsba22/arabic-explainer/internal/api"
	"github.com/wailsba22/arabic-explainer/internal/config"
	"github.com/wailsba22/arabic-explainer/internal/logging"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	logging.Init(cfg.Logging)

	switch cfg.Server.Mode {
	case "":
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		logrus.Warnf("unknown gin mode %q, keeping %s", cfg.Server.Mode, gin.Mode())
	}

	server, err := api.NewServer(api.Config{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AIConfig:       cfg.AI(),
	})
	if err != nil {
		logrus.Fatalf("create server: %v", err)
	}

	router, err := server.Router()
	if err != nil {
		logrus.Fatalf("configure router: %v", err)
	}

	logrus.WithField("timeout", cfg.Timeout).Infof("starting arabic-explainer gateway on :%s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
