package main

import (
	"fmt"
	"os"

	"github.com/getsentry/raven-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

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
		fmt.Println("sentiment-demo", version)
		return
	}

	if config.CliArgs.Debug {
		logging.InitLogger(logrus.DebugLevel)
	} else {
		logging.InitLogger(logrus.InfoLevel)
	}
	log := logging.GetLogger()

	cfg, err := config.LoadConfig(config.CliArgs.ConfigFile, config.SentimentDefaults())
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

	predictor := predict.NewSentimentPredictor()
	if err := predictor.Load(cfg.ArtifactDir); err != nil {
		raven.CaptureErrorAndWait(err, nil)
		log.Fatal("[Main] Couldn't load model artifact: ", err.Error())
	}
	log.Info("[Main] Model loaded - labels: ", predictor.Labels())

	handler := handlers.NewSentimentHandler(predictor)
	router := routes.SetupSentimentRoutes(handler, cfg.WebDir)

	addr := cfg.ListenAddress
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	log.Info("[Main] Sentiment demo listening on ", addr)
	log.Fatal(router.Run(addr))
}
