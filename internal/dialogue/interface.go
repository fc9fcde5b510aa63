package dialogue

import (
	"context"

	"kazileo/internal/model"
)

// UseCase defines the business logic interface for the dialogue domain.
type UseCase interface {
	// HandleMessage runs one dialogue turn for the user identified by the
	// scope: load session, route the message, persist the updated session.
	// Turns for the same user are serialized.
	HandleMessage(ctx context.Context, sc model.Scope, input HandleMessageInput) (HandleMessageOutput, error)
}
