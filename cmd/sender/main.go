package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boubertbot/boubert/internal/gateway"
	"github.com/boubertbot/boubert/internal/logger"
	"github.com/boubertbot/boubert/internal/rabbit"
	"github.com/boubertbot/boubert/internal/scanner"
	"github.com/boubertbot/boubert/internal/storage"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

var configFile string

const sendTimeout = 10 * time.Second

func init() {
	flag.StringVar(&configFile, "config", "./configs/sender_config.yaml", "Path to configuration file")
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

	r := rabbit.New(config.Rabbit)
	if err := r.Connect(); err != nil {
		log.Errorf("failed to connect to rabbit: %v", err)
		return
	}
	defer r.Close()

	var gw gateway.Gateway = gateway.Log{}
	if config.Twilio.AccountSID != "" {
		gw = gateway.NewTwilio(config.Twilio)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	log.Info("sender is running...")
	err = r.Consume(ctx, func(msg amqp.Delivery) {
		m := rabbit.Message{}
		if err := json.Unmarshal(msg.Body, &m); err != nil {
			log.Errorf("failed to parse bytes: %s", err)
			return
		}
		e := storage.Event{ID: m.ID, OwnerID: m.OwnerID, Title: m.Title, Date: m.Date, Time: m.Time}

		sendCtx, cancelSend := context.WithTimeout(ctx, sendTimeout)
		defer cancelSend()
		if err := gw.Send(sendCtx, e.OwnerID, scanner.ReminderText(e)); err != nil {
			log.Errorf("failed to send reminder for event %q: %v", e.ID, err)
			return
		}
		log.Debugf("sent reminder for event %q to %q", e.ID, e.OwnerID)
	})
	if err != nil {
		log.Errorf("failed to consume: %v", err)
	}
}
