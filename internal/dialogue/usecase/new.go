package usecase

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"kazileo/internal/provider"
	"kazileo/internal/session"
	pkgLog "kazileo/pkg/log"
)

// Generator produces AI completions for the CV optimizer and skills gap
// flows. *gemini.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, systemInstructions, userContent string) (string, error)
}

type implUseCase struct {
	l         pkgLog.Logger
	store     *session.Store
	jobs      provider.Provider
	training  provider.Provider
	mentors   provider.Provider
	business  provider.Provider
	gen       Generator
	aiTimeout time.Duration

	locks sync.Map // phone number -> *sync.Mutex

	// test seams for the randomized copy
	pick    func(options []string) string
	shuffle func(items []string)
}

// New creates a new dialogue UseCase instance.
func New(
	l pkgLog.Logger,
	store *session.Store,
	jobs provider.Provider,
	training provider.Provider,
	mentors provider.Provider,
	business provider.Provider,
	gen Generator,
	aiTimeout time.Duration,
) *implUseCase {
	return &implUseCase{
		l:         l,
		store:     store,
		jobs:      jobs,
		training:  training,
		mentors:   mentors,
		business:  business,
		gen:       gen,
		aiTimeout: aiTimeout,
		pick: func(options []string) string {
			return options[rand.Intn(len(options))]
		},
		shuffle: func(items []string) {
			rand.Shuffle(len(items), func(i, j int) {
				items[i], items[j] = items[j], items[i]
			})
		},
	}
}

// lockFor returns the per-user mutex, creating it on first use. Locks are
// never evicted; one mutex per active user is cheap.
func (uc *implUseCase) lockFor(userID string) *sync.Mutex {
	v, _ := uc.locks.LoadOrStore(userID, &sync.Mutex{})
	return v.(*sync.Mutex)
}
