package dialogue

// HandleMessageInput is one inbound user message.
type HandleMessageInput struct {
	Text string
}

// HandleMessageOutput is the ordered list of replies for one turn.
type HandleMessageOutput struct {
	Replies []string
}
