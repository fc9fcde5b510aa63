package whatsapp_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"kazileo/pkg/whatsapp"
)

func TestClient(t *testing.T) {
	var received []whatsapp.SendMessageRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/messages") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("unexpected Authorization header: %s", auth)
		}

		var req whatsapp.SendMessageRequest
		json.NewDecoder(r.Body).Decode(&req)
		received = append(received, req)

		if req.Text.Body == "cause_error" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"message": "bad request"}}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"messages": [{"id": "wamid.1"}]}`))
	}))
	defer ts.Close()

	client := whatsapp.NewClient("test-token", "12345")
	client.SetAPIURL(ts.URL)

	t.Run("Send Text", func(t *testing.T) {
		received = nil
		if err := client.SendText("254700000001", "habari"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(received) != 1 {
			t.Fatalf("expected 1 request, got %d", len(received))
		}
		if received[0].To != "254700000001" || received[0].Text.Body != "habari" {
			t.Errorf("unexpected payload: %+v", received[0])
		}
		if received[0].MessagingProduct != "whatsapp" || received[0].Type != "text" {
			t.Errorf("unexpected envelope fields: %+v", received[0])
		}
	})

	t.Run("Long Message Is Chunked", func(t *testing.T) {
		received = nil
		long := strings.Repeat("a", whatsapp.CharLimit+10)
		if err := client.SendText("254700000001", long); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(received) != 2 {
			t.Fatalf("expected 2 chunks, got %d", len(received))
		}
		if got := len(received[0].Text.Body) + len(received[1].Text.Body); got != len(long) {
			t.Errorf("chunks lost content: %d != %d", got, len(long))
		}
		if len(received[0].Text.Body) != whatsapp.CharLimit {
			t.Errorf("first chunk should be at the limit, got %d", len(received[0].Text.Body))
		}
	})

	t.Run("Chunks Never Split A Rune", func(t *testing.T) {
		received = nil
		// 3-byte runes never divide the 4096-byte limit evenly, so a naive
		// byte split would sever one at the boundary.
		long := strings.Repeat("€", 1500)
		if err := client.SendText("254700000001", long); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(received) != 2 {
			t.Fatalf("expected 2 chunks, got %d", len(received))
		}
		var rebuilt string
		for i, req := range received {
			if !utf8.ValidString(req.Text.Body) {
				t.Errorf("chunk %d is not valid UTF-8", i)
			}
			if len(req.Text.Body) > whatsapp.CharLimit {
				t.Errorf("chunk %d exceeds the limit: %d bytes", i, len(req.Text.Body))
			}
			rebuilt += req.Text.Body
		}
		if rebuilt != long {
			t.Error("chunks must reassemble into the original message")
		}
	})

	t.Run("API Error", func(t *testing.T) {
		received = nil
		err := client.SendText("254700000001", "cause_error")
		if err == nil {
			t.Fatal("expected error for 400 response")
		}
		if !strings.Contains(err.Error(), "400") {
			t.Errorf("error should carry the status code: %v", err)
		}
	})
}
