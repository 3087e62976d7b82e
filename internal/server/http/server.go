package internalhttp

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type Config struct {
	Host string
	Port int
}

// MessageHandler turns one inbound message into a reply body.
type MessageHandler interface {
	Handle(ctx context.Context, owner string, body string) string
}

type Server struct {
	srv  *http.Server
	addr string
}

// twimlResponse is the synchronous webhook reply the gateway renders back
// to the sender.
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

func NewServer(config Config, handler MessageHandler) *Server {
	addr := net.JoinHostPort(config.Host, strconv.Itoa(config.Port))
	mux := http.NewServeMux()
	mux.Handle("/whatsapp", webhookHandler(handler))
	return &Server{
		addr: addr,
		srv:  &http.Server{Addr: addr, Handler: loggingMiddleware(mux)},
	}
}

func webhookHandler(handler MessageHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "malformed form data", http.StatusBadRequest)
			return
		}
		body := r.FormValue("Body")
		from := r.FormValue("From")

		reply := handler.Handle(r.Context(), from, body)

		out, err := xml.Marshal(twimlResponse{Message: reply})
		if err != nil {
			log.Errorf("failed to render reply: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/xml")
		w.Write([]byte(xml.Header))
		w.Write(out)
	})
}

func (s *Server) Start(_ context.Context) error {
	log.Printf("starting http server on %s", s.addr)
	err := s.srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func getIP(req *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return "", fmt.Errorf("userip: %q is not IP:port", req.RemoteAddr)
	}

	if parsed := net.ParseIP(ip); parsed == nil {
		return "", fmt.Errorf("userip: %q is not IP:port", req.RemoteAddr)
	}
	return ip, nil
}
