package internalhttp

import "net/http"

// WebhookHandler exposes the webhook handler to the external test package.
func WebhookHandler(handler MessageHandler) http.Handler {
	return webhookHandler(handler)
}
