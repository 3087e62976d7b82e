package gateway

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Log writes outbound messages to the log instead of a real transport.
// Used when no Twilio credentials are configured.
type Log struct{}

func (Log) Send(_ context.Context, recipient string, text string) error {
	log.WithField("to", recipient).Infof("sending message: %s", text)
	return nil
}
