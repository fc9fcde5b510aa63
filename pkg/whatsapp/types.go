package whatsapp

// WebhookPayload is the top-level body WhatsApp posts to the webhook.
type WebhookPayload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry is one webhook entry; WhatsApp batches changes under it.
type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

// Change wraps a single value change (messages, statuses, ...).
type Change struct {
	Value Value  `json:"value"`
	Field string `json:"field"`
}

// Value carries the messages and contact metadata of a change.
type Value struct {
	MessagingProduct string    `json:"messaging_product"`
	Contacts         []Contact `json:"contacts,omitempty"`
	Messages         []Message `json:"messages,omitempty"`
}

// Contact identifies the sender of a message.
type Contact struct {
	Profile Profile `json:"profile"`
	WaID    string  `json:"wa_id"`
}

// Profile is the sender's public profile.
type Profile struct {
	Name string `json:"name"`
}

// Message is a single inbound message. Only type "text" carries Text.
type Message struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	Timestamp string    `json:"timestamp"`
	Type      string    `json:"type"`
	Text      *TextBody `json:"text,omitempty"`
}

// TextBody is the body of a text message, inbound or outbound.
type TextBody struct {
	Body string `json:"body"`
}

// SendMessageRequest is the payload for the Graph /messages endpoint.
type SendMessageRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             TextBody `json:"text"`
}
