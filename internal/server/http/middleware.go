package internalhttp

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		ip, err := getIP(r)
		if err != nil {
			log.Debugf("could not resolve client IP: %v", err)
		}
		log.WithFields(log.Fields{
			"ip":      ip,
			"method":  r.Method,
			"path":    r.URL.Path,
			"latency": time.Since(start),
		}).Info("webhook request handled")
	})
}
