package usecases

import (
	"sync"

	"github.com/vigiehq/vigie-backend/models"
	"github.com/vigiehq/vigie-backend/repositories"
	"github.com/vigiehq/vigie-backend/usecases/matching"
	"github.com/vigiehq/vigie-backend/usecases/watchlists"
)

// Usecases is the dependency root: it owns the process-wide matching engine
// and hands out usecase values wired to it. Usecase values are cheap and
// built per call; shared state lives here.
type Usecases struct {
	Repositories repositories.Repositories

	watchlistsBucketUrl string

	engine       *matching.Engine
	refreshState *refreshState
}

// refreshState remembers the content hashes of the last successful index
// load, so an unchanged bucket does not trigger a full re-parse.
type refreshState struct {
	m           sync.Mutex
	knownHashes map[string]string
}

type Option func(*options)

type options struct {
	watchlistsBucketUrl string
	matchingPolicy      models.MatchingPolicy
}

func WithWatchlistsBucketUrl(bucket string) Option {
	return func(o *options) {
		o.watchlistsBucketUrl = bucket
	}
}

func WithMatchingPolicy(policy models.MatchingPolicy) Option {
	return func(o *options) {
		o.matchingPolicy = policy
	}
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	o := &options{
		matchingPolicy: models.DefaultMatchingPolicy(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return Usecases{
		Repositories:        repositories,
		watchlistsBucketUrl: o.watchlistsBucketUrl,
		engine:              matching.NewEngine(o.matchingPolicy),
		refreshState:        &refreshState{knownHashes: make(map[string]string)},
	}
}

func (usecases *Usecases) NewScreeningUsecase() ScreeningUsecase {
	return ScreeningUsecase{
		engine: usecases.engine,
	}
}

func (usecases *Usecases) NewWatchlistUsecase() WatchlistUsecase {
	return WatchlistUsecase{
		documentRepository: usecases.Repositories.WatchlistDocumentRepository,
		parser:             watchlists.NewParser(),
		engine:             usecases.engine,
		bucketUrl:          usecases.watchlistsBucketUrl,
		state:              usecases.refreshState,
	}
}
