package main

import (
	"time"

	"shift-tracker/internal/app"
	"shift-tracker/internal/bootstrap"
	"shift-tracker/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	cfg, err := app.LoadConfig()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery())

	resources, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer resources.Close()

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		bootstrap.NewZapAuditLogger(logger),
	)
}
