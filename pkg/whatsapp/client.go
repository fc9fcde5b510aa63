package whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"
)

// CharLimit is the WhatsApp Cloud API limit for a single text message body.
// Longer replies are split into sequential chunks.
const CharLimit = 4096

// Client is the WhatsApp Cloud (Graph) API client.
type Client struct {
	token      string
	phoneID    string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new WhatsApp client for the given access token and
// business phone number id.
func NewClient(token, phoneID string) *Client {
	return &Client{
		token:      token,
		phoneID:    phoneID,
		apiURL:     "https://graph.facebook.com/v22.0",
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default Graph API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// SendText sends a plain text message to the given wa_id, splitting bodies
// longer than CharLimit into sequential chunks.
func (c *Client) SendText(to string, text string) error {
	for _, chunk := range chunkText(text, CharLimit) {
		if err := c.sendChunk(to, chunk); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) sendChunk(to string, body string) error {
	url := fmt.Sprintf("%s/%s/messages", c.apiURL, c.phoneID)
	payload := SendMessageRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             TextBody{Body: body},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(raw))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		rawBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("whatsapp messages API error %d: %s", resp.StatusCode, string(rawBody))
	}

	return nil
}

// chunkText splits s into pieces of at most limit bytes, preserving order.
// Cuts back off to the nearest rune boundary so no chunk carries a severed
// multi-byte character.
func chunkText(s string, limit int) []string {
	if len(s) <= limit {
		return []string{s}
	}
	var chunks []string
	for len(s) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		if cut == 0 {
			cut = limit
		}
		chunks = append(chunks, s[:cut])
		s = s[cut:]
	}
	return append(chunks, s)
}
