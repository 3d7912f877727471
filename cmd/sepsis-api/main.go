package main

import (
	"fmt"
	"os"

	"github.com/getsentry/raven-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"mlplayground/cache"
	"mlplayground/config"
	"mlplayground/handlers"
	"mlplayground/logging"
	"mlplayground/predict"
	"mlplayground/routes"
)

const version = "1.0.0"

func main() {
	_ = godotenv.Load()

	config.ParseArgs()
	if config.CliArgs.Version {
		fmt.Println("sepsis-api", version)
		return
	}

	if config.CliArgs.Debug {
		logging.InitLogger(logrus.DebugLevel)
	} else {
		logging.InitLogger(logrus.InfoLevel)
	}
	log := logging.GetLogger()

	cfg, err := config.LoadConfig(config.CliArgs.ConfigFile, config.SepsisDefaults())
	if err != nil {
		log.Fatal("[Main] Couldn't load config: ", err.Error())
	}

	if cfg.SentryDSN != "" {
		if err := raven.SetDSN(cfg.SentryDSN); err != nil {
			log.Warn("[Main] Couldn't configure sentry: ", err.Error())
		}
	}

	if config.CliArgs.Release {
		log.Info("[Main] Starting gin in release mode!")
		gin.SetMode(gin.ReleaseMode)
	}

	predictor := predict.NewSepsisPredictor()
	if err := predictor.Load(cfg.ArtifactDir); err != nil {
		raven.CaptureErrorAndWait(err, nil)
		log.Fatal("[Main] Couldn't load model artifact: ", err.Error())
	}
	log.Info("[Main] Model loaded - labels: ", predictor.Labels())
	log.Info("[Main] Model loaded - build: ", predictor.ModelInfo().Build, ", based on: ", predictor.ModelInfo().BasedOn)

	var resultCache *cache.ResultCache
	if cfg.RedisAddress != "" {
		resultCache = cache.New(cfg.RedisAddress, cfg.RedisMaxConnections, cfg.CacheTTLSeconds)
		defer resultCache.Close()
		if err := resultCache.Ping(); err != nil {
			log.Warn("[Main] Redis not reachable, caching degrades to plain inference: ", err.Error())
		}
	}

	handler := handlers.NewClassifyHandler(predictor, resultCache, cfg.MaxBatchSize)
	router := routes.SetupSepsisRoutes(handler)

	addr := cfg.ListenAddress
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	log.Info("[Main] Sepsis prediction API listening on ", addr)
	log.Fatal(router.Run(addr))
}
