package usecase

import (
	"context"

	"kazileo/internal/dialogue"
	"kazileo/internal/model"
)

// HandleMessage runs one dialogue turn. The per-user lock makes the
// load-route-persist sequence atomic with respect to other messages from the
// same number; messages from different numbers proceed in parallel.
func (uc *implUseCase) HandleMessage(ctx context.Context, sc model.Scope, input dialogue.HandleMessageInput) (dialogue.HandleMessageOutput, error) {
	mu := uc.lockFor(sc.UserID)
	mu.Lock()
	defer mu.Unlock()

	sess, isNew, err := uc.store.GetOrCreate(ctx, sc.UserID, sc.DisplayName)
	if err != nil {
		uc.l.Errorf(ctx, "dialogue.HandleMessage load session: %v", err)
		return dialogue.HandleMessageOutput{}, err
	}

	var replies []string
	if isNew {
		replies = uc.greetNewUser(&sess)
	} else {
		replies = uc.route(ctx, &sess, input.Text)
	}

	if err := uc.store.Persist(ctx, &sess); err != nil {
		uc.l.Errorf(ctx, "dialogue.HandleMessage persist session: %v", err)
		return dialogue.HandleMessageOutput{}, err
	}
	return dialogue.HandleMessageOutput{Replies: replies}, nil
}

func (uc *implUseCase) greetNewUser(sess *model.UserSession) []string {
	name := sess.DisplayName
	if name == "" {
		name = "there"
	}
	greeting := uc.pick(newUserGreetings(name))
	return []string{greeting + "\n\n" + newUserIntroduction, mainMenu}
}
