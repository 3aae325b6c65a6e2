package pool

// Store defines the persistence interface required by the prize pool.
// The concrete implementation is storage.Storage, but this interface allows
// alternative backends (in-memory, failing) for testing.
type Store interface {
	ReadPrizes() ([]string, error)
	WritePrizes(entries []string) error
}
