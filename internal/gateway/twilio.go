package gateway

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	// From is the sending number, e.g. "whatsapp:+14155238886".
	From string
}

type Twilio struct {
	client *twilio.RestClient
	from   string
}

func NewTwilio(config TwilioConfig) *Twilio {
	return &Twilio{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: config.AccountSID,
			Password: config.AuthToken,
		}),
		from: config.From,
	}
}

// Send issues the API call with the caller's context, so the per-delivery
// timeouts on the scanner and webhook paths bound a hung gateway call.
func (t *Twilio) Send(ctx context.Context, recipient string, text string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(t.from)
	params.SetTo(recipient)
	params.SetBody(text)
	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send message to %q: %w", recipient, err)
	}
	return nil
}
