package whatsapp_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"kazileo/internal/dialogue"
	delivery "kazileo/internal/dialogue/delivery/whatsapp"
	"kazileo/internal/model"
	pkgWhatsApp "kazileo/pkg/whatsapp"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockUseCase struct {
	mu      sync.Mutex
	inputs  []dialogue.HandleMessageInput
	scopes  []model.Scope
	replies []string
	err     error
	done    chan struct{}
}

func (m *mockUseCase) HandleMessage(ctx context.Context, sc model.Scope, input dialogue.HandleMessageInput) (dialogue.HandleMessageOutput, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.scopes = append(m.scopes, sc)
	m.mu.Unlock()
	if m.done != nil {
		defer close(m.done)
	}
	return dialogue.HandleMessageOutput{Replies: m.replies}, m.err
}

type testEnv struct {
	engine *gin.Engine
	muc    *mockUseCase
	server *httptest.Server

	mu   sync.Mutex
	sent []string
}

func newTestEnv(t *testing.T, muc *mockUseCase, cfg delivery.SecurityConfig) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{muc: muc}
	env.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req pkgWhatsApp.SendMessageRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		env.mu.Lock()
		env.sent = append(env.sent, req.Text.Body)
		env.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(env.server.Close)

	client := pkgWhatsApp.NewClient("test-token", "12345")
	client.SetAPIURL(env.server.URL)

	h := delivery.New(&mockLogger{}, muc, client, delivery.NewSecurityValidator(cfg), "verify-me")

	env.engine = gin.New()
	env.engine.GET("/webhook/whatsapp", h.HandleVerification)
	env.engine.POST("/webhook/whatsapp", h.HandleWebhook)
	return env
}

func (e *testEnv) sentMessages() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string{}, e.sent...)
}

func textPayload(from, name, text string) []byte {
	payload := pkgWhatsApp.WebhookPayload{
		Object: "whatsapp_business_account",
		Entry: []pkgWhatsApp.Entry{{
			ID: "entry-1",
			Changes: []pkgWhatsApp.Change{{
				Field: "messages",
				Value: pkgWhatsApp.Value{
					MessagingProduct: "whatsapp",
					Contacts: []pkgWhatsApp.Contact{
						{WaID: from, Profile: pkgWhatsApp.Profile{Name: name}},
					},
					Messages: []pkgWhatsApp.Message{
						{ID: "msg-1", From: from, Type: "text", Text: &pkgWhatsApp.TextBody{Body: text}},
					},
				},
			}},
		}},
	}
	raw, _ := json.Marshal(payload)
	return raw
}

func waitDone(t *testing.T, done chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("background processing did not finish")
	}
}

func TestHandleVerification(t *testing.T) {
	env := newTestEnv(t, &mockUseCase{}, delivery.SecurityConfig{})

	t.Run("Valid Token Echoes Challenge", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/webhook/whatsapp?hub.mode=subscribe&hub.verify_token=verify-me&hub.challenge=12345", nil)
		env.engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "12345" {
			t.Errorf("expected the challenge back, got %q", w.Body.String())
		}
	})

	t.Run("Wrong Token Is Rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/webhook/whatsapp?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345", nil)
		env.engine.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})
}

func TestHandleWebhook(t *testing.T) {
	t.Run("Text Message Is Processed And Replies Sent", func(t *testing.T) {
		muc := &mockUseCase{replies: []string{"first", "second"}, done: make(chan struct{})}
		env := newTestEnv(t, muc, delivery.SecurityConfig{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhook/whatsapp",
			bytes.NewReader(textPayload("254700000001", "Jane", "hi")))
		env.engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 ack, got %d", w.Code)
		}
		waitDone(t, muc.done)

		if len(muc.scopes) != 1 || muc.scopes[0].UserID != "254700000001" || muc.scopes[0].DisplayName != "Jane" {
			t.Errorf("unexpected scope: %+v", muc.scopes)
		}
		if len(muc.inputs) != 1 || muc.inputs[0].Text != "hi" {
			t.Errorf("unexpected input: %+v", muc.inputs)
		}

		// Both replies must go out in order.
		deadline := time.After(2 * time.Second)
		for len(env.sentMessages()) < 2 {
			select {
			case <-deadline:
				t.Fatalf("replies not sent: %v", env.sentMessages())
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
		sent := env.sentMessages()
		if sent[0] != "first" || sent[1] != "second" {
			t.Errorf("unexpected sends: %v", sent)
		}
	})

	t.Run("Status Update Is Ignored", func(t *testing.T) {
		muc := &mockUseCase{}
		env := newTestEnv(t, muc, delivery.SecurityConfig{})

		body := []byte(`{"object":"whatsapp_business_account","entry":[{"id":"e","changes":[{"field":"messages","value":{"messaging_product":"whatsapp","statuses":[{"id":"s1"}]}}]}]}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhook/whatsapp", bytes.NewReader(body))
		env.engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		time.Sleep(50 * time.Millisecond)
		muc.mu.Lock()
		defer muc.mu.Unlock()
		if len(muc.inputs) != 0 {
			t.Errorf("status update must not reach the usecase: %+v", muc.inputs)
		}
	})

	t.Run("Usecase Error Sends Apology", func(t *testing.T) {
		muc := &mockUseCase{err: context.DeadlineExceeded, done: make(chan struct{})}
		env := newTestEnv(t, muc, delivery.SecurityConfig{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhook/whatsapp",
			bytes.NewReader(textPayload("254700000001", "Jane", "hi")))
		env.engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("turn failures must still ack 200, got %d", w.Code)
		}
		waitDone(t, muc.done)

		deadline := time.After(2 * time.Second)
		for len(env.sentMessages()) < 1 {
			select {
			case <-deadline:
				t.Fatal("apology not sent")
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
	})

	t.Run("Invalid Signature Is Rejected", func(t *testing.T) {
		muc := &mockUseCase{}
		env := newTestEnv(t, muc, delivery.SecurityConfig{AppSecret: "app-secret"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhook/whatsapp",
			bytes.NewReader(textPayload("254700000001", "Jane", "hi")))
		req.Header.Set("X-Hub-Signature-256", "sha256=deadbeef")
		env.engine.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})

	t.Run("Valid Signature Is Accepted", func(t *testing.T) {
		muc := &mockUseCase{done: make(chan struct{})}
		env := newTestEnv(t, muc, delivery.SecurityConfig{AppSecret: "app-secret"})

		body := textPayload("254700000001", "Jane", "hi")
		mac := hmac.New(sha256.New, []byte("app-secret"))
		mac.Write(body)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhook/whatsapp", bytes.NewReader(body))
		req.Header.Set("X-Hub-Signature-256", "sha256="+hex.EncodeToString(mac.Sum(nil)))
		env.engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		waitDone(t, muc.done)
	})

	t.Run("Rate Limited Sender Is Dropped", func(t *testing.T) {
		muc := &mockUseCase{}
		env := newTestEnv(t, muc, delivery.SecurityConfig{RateLimitPerMin: 1})

		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/webhook/whatsapp",
				bytes.NewReader(textPayload("254700000001", "Jane", "hi")))
			env.engine.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("rate limited requests still ack 200, got %d", w.Code)
			}
		}
		time.Sleep(100 * time.Millisecond)

		muc.mu.Lock()
		processed := len(muc.inputs)
		muc.mu.Unlock()
		if processed >= 5 {
			t.Errorf("expected the limiter to drop messages, processed %d", processed)
		}
	})
}
