package whatsapp

import (
	"github.com/gin-gonic/gin"

	"kazileo/internal/dialogue"
	pkgLog "kazileo/pkg/log"
	pkgWhatsApp "kazileo/pkg/whatsapp"
)

// Handler is the interface for the WhatsApp delivery handler.
type Handler interface {
	HandleVerification(c *gin.Context)
	HandleWebhook(c *gin.Context)
}

// New creates a new WhatsApp delivery handler.
func New(
	l pkgLog.Logger,
	uc dialogue.UseCase,
	client *pkgWhatsApp.Client,
	validator *SecurityValidator,
	verifyToken string,
) Handler {
	return &handler{
		l:           l,
		uc:          uc,
		client:      client,
		validator:   validator,
		verifyToken: verifyToken,
	}
}
