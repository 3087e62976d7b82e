package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boubertbot/boubert/internal/logger"
	"github.com/boubertbot/boubert/internal/rabbit"
	"github.com/boubertbot/boubert/internal/scanner"
	"github.com/boubertbot/boubert/internal/storage"
	"github.com/boubertbot/boubert/internal/storagebuilder"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "config", "./configs/scheduler_config.yaml", "Path to configuration file")
	log.SetFormatter(&log.TextFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.WarnLevel)
}

func newMessage(event storage.Event) rabbit.Message {
	return rabbit.Message{
		ID:      event.ID,
		OwnerID: event.OwnerID,
		Title:   event.Title,
		Date:    event.Date,
		Time:    event.Time,
	}
}

// rabbitNotifier publishes claimed reminders to the queue; cmd/sender
// consumes them and talks to the messaging gateway.
type rabbitNotifier struct {
	provider *rabbit.Provider
}

func (n rabbitNotifier) Notify(_ context.Context, e storage.Event) error {
	data, err := json.Marshal(newMessage(e))
	if err != nil {
		return err
	}
	return n.provider.Publish(data)
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

	r := rabbit.New(config.Rabbit)
	if err := r.Connect(); err != nil {
		log.Errorf("failed to connect to rabbit: %v", err)
		return
	}
	defer r.Close()

	stor, err := storagebuilder.New(config.Storage)
	if err != nil {
		log.Errorf("failed to start %v", err)
		return
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()
		if err := stor.Close(ctx); err != nil {
			log.Errorf("failed to close storage: %v", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	log.Info("scheduler is running...")
	scanner.New(stor, rabbitNotifier{provider: r}, config.Scanner.Interval).Run(ctx)
}
