package gateway

import "context"

// Gateway delivers outbound messages to a chat recipient.
type Gateway interface {
	Send(ctx context.Context, recipient string, text string) error
}
