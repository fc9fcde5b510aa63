package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	waDelivery "kazileo/internal/dialogue/delivery/whatsapp"
	"kazileo/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	whatsappHandler waDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	WhatsAppHandler waDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		whatsappHandler: cfg.WhatsAppHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("httpserver: logger is required")
	}
	if srv.port <= 0 {
		return errors.New("httpserver: port is required")
	}
	if srv.whatsappHandler == nil {
		return errors.New("httpserver: whatsapp handler is required")
	}
	return nil
}
