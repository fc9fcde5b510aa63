package whatsapp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kazileo/internal/dialogue"
	"kazileo/internal/model"
	pkgLog "kazileo/pkg/log"
	pkgResponse "kazileo/pkg/response"
	pkgWhatsApp "kazileo/pkg/whatsapp"
)

const apologyReply = "Sorry, something went wrong on our side. Please try again in a moment."

type handler struct {
	l           pkgLog.Logger
	uc          dialogue.UseCase
	client      *pkgWhatsApp.Client
	validator   *SecurityValidator
	verifyToken string
}

// HandleVerification answers Meta's webhook verification handshake: echo the
// challenge when the verify token matches, 403 otherwise.
func (h *handler) HandleVerification(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		h.l.Info(c.Request.Context(), "whatsapp handler: webhook verified")
		c.String(http.StatusOK, challenge)
		return
	}
	h.l.Warn(c.Request.Context(), "whatsapp handler: webhook verification failed")
	c.String(http.StatusForbidden, "Verification failed")
}

// HandleWebhook is the Gin handler for incoming WhatsApp events. It responds
// with HTTP 200 immediately and processes each message in a background
// goroutine: Meta retries deliveries that take too long, and a turn can
// involve an AI call of several seconds.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "whatsapp handler: failed to read body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.validator.ValidateSignature(body, c.GetHeader("X-Hub-Signature-256")); err != nil {
		h.l.Warnf(ctx, "whatsapp handler: signature rejected: %v", err)
		pkgResponse.Forbidden(c)
		return
	}

	var payload pkgWhatsApp.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		h.l.Errorf(ctx, "whatsapp handler: failed to parse payload: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	for _, msg := range textMessages(payload) {
		if err := h.validator.CheckRateLimit(msg.from); err != nil {
			h.l.Warnf(ctx, "whatsapp handler: %v", err)
			continue
		}

		// Snapshot before spawning; the request context dies with the ACK.
		m := msg
		go h.processMessage(context.Background(), m)
	}

	// Meta acknowledged immediately
	pkgResponse.OK(c, map[string]string{"status": "received"})
}

type inboundMessage struct {
	from        string
	displayName string
	text        string
}

// textMessages flattens the webhook payload into the text messages it
// carries. Status updates and non-text messages are dropped.
func textMessages(payload pkgWhatsApp.WebhookPayload) []inboundMessage {
	var msgs []inboundMessage
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			names := map[string]string{}
			for _, contact := range change.Value.Contacts {
				names[contact.WaID] = contact.Profile.Name
			}
			for _, msg := range change.Value.Messages {
				if msg.From == "" || msg.Type != "text" || msg.Text == nil {
					continue
				}
				msgs = append(msgs, inboundMessage{
					from:        msg.From,
					displayName: names[msg.From],
					text:        msg.Text.Body,
				})
			}
		}
	}
	return msgs
}

// processMessage runs one dialogue turn and delivers the replies.
func (h *handler) processMessage(ctx context.Context, msg inboundMessage) {
	traceID := uuid.NewString()
	h.l.Infof(ctx, "whatsapp handler [%s]: message from %s", traceID, msg.from)

	sc := model.Scope{UserID: msg.from, DisplayName: msg.displayName}
	output, err := h.uc.HandleMessage(ctx, sc, dialogue.HandleMessageInput{Text: msg.text})
	if err != nil {
		h.l.Errorf(ctx, "whatsapp handler [%s]: HandleMessage failed: %v", traceID, err)
		// Best-effort apology; the session was not persisted.
		if sendErr := h.client.SendText(msg.from, apologyReply); sendErr != nil {
			h.l.Errorf(ctx, "whatsapp handler [%s]: apology send failed: %v", traceID, sendErr)
		}
		return
	}

	for _, reply := range output.Replies {
		if err := h.client.SendText(msg.from, reply); err != nil {
			h.l.Errorf(ctx, "whatsapp handler [%s]: send failed: %v", traceID, err)
			return
		}
	}
}
