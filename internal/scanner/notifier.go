package scanner

import (
	"context"

	"github.com/boubertbot/boubert/internal/gateway"
	"github.com/boubertbot/boubert/internal/storage"
)

// GatewayNotifier sends reminders straight through the messaging gateway.
type GatewayNotifier struct {
	gateway gateway.Gateway
}

func NewGatewayNotifier(gw gateway.Gateway) *GatewayNotifier {
	return &GatewayNotifier{gateway: gw}
}

func (n *GatewayNotifier) Notify(ctx context.Context, e storage.Event) error {
	return n.gateway.Send(ctx, e.OwnerID, ReminderText(e))
}
