package repositories

// Repositories groups every repository the usecases depend on.
type Repositories struct {
	WatchlistDocumentRepository WatchlistDocumentRepository
}

func NewRepositories() Repositories {
	return Repositories{
		WatchlistDocumentRepository: NewWatchlistDocumentRepository(),
	}
}
