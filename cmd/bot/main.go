package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boubertbot/boubert/internal/app"
	"github.com/boubertbot/boubert/internal/calendar"
	"github.com/boubertbot/boubert/internal/gateway"
	"github.com/boubertbot/boubert/internal/logger"
	"github.com/boubertbot/boubert/internal/scanner"
	internalhttp "github.com/boubertbot/boubert/internal/server/http"
	"github.com/boubertbot/boubert/internal/storage"
	"github.com/boubertbot/boubert/internal/storagebuilder"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "config", "./configs/config.yaml", "Path to configuration file")
	log.SetFormatter(&log.TextFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.WarnLevel)
}

func main() {
	flag.Parse()
	_ = godotenv.Load()

	config, err := NewConfig(configFile)
	if err != nil {
		log.Errorf("failed to start %v", err)
		return
	}
	err = logger.PrepareLogger(config.Logger)
	if err != nil {
		log.Errorf("failed to start %v", err)
		return
	}
	stor, err := storagebuilder.New(config.Storage)
	if err != nil {
		log.Errorf("failed to start %v", err)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	var bridge calendar.Bridge
	if config.Calendar.CredentialsJSON != "" {
		google, err := calendar.NewGoogle(ctx, config.Calendar)
		if err != nil {
			log.Errorf("failed to start %v", err)
			return
		}
		bridge = google
	}

	bot := app.New(stor, bridge)
	server := internalhttp.NewServer(config.Server, bot)

	if config.Scanner.Enabled {
		var gw gateway.Gateway = gateway.Log{}
		if config.Twilio.AccountSID != "" {
			gw = gateway.NewTwilio(config.Twilio)
		}
		go scanner.New(stor, scanner.NewGatewayNotifier(gw), config.Scanner.Interval).Run(ctx)
	}

	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()

		if err := server.Stop(ctx); err != nil {
			log.Error("failed to stop http server: " + err.Error())
		}
	}()

	log.Info("boubert is running...")

	if err := server.Start(ctx); err != nil {
		log.Error("failed to start http server: " + err.Error())
		cancel()
		closeStorage(stor)
		os.Exit(1) //nolint:gocritic
	}
	closeStorage(stor)
}

func closeStorage(stor storage.Storage) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	if err := stor.Close(ctx); err != nil {
		log.Errorf("failed to close storage: %v", err)
	}
}
