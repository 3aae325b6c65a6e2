// Package pool implements the prize pool: an ordered list of prize labels
// that is written back to its Store after every mutation.
package pool

import (
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/jacksmith/pz/internal/model"
)

// Pool owns the in-memory prize list.
//
// Storage failures never escape a Pool: a failed read leaves the pool empty,
// a failed write is logged and kept in SaveErr while the in-memory change
// stands.
type Pool struct {
	mu      sync.Mutex
	store   Store
	entries []string
	rng     *rand.Rand
	logger  *slog.Logger
	saveErr error
}

// Option configures a Pool.
type Option func(*Pool)

// WithRand sets the random source used by Draw.
func WithRand(r *rand.Rand) Option {
	return func(p *Pool) { p.rng = r }
}

// WithLogger sets the logger for swallowed storage errors.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pool) { p.logger = l }
}

// New returns an empty Pool backed by store. Call Load to populate it.
func New(store Store, opts ...Option) *Pool {
	p := &Pool{store: store}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Open returns a Pool loaded from store, with the default prizes installed
// if the store holds none.
func Open(store Store, opts ...Option) *Pool {
	p := New(store, opts...)
	p.Load()
	p.EnsureDefaults()
	return p
}

// Load replaces the in-memory list with the store's content.
// A read error is logged and leaves the pool empty.
func (p *Pool) Load() {
	p.mu.Lock()
	defer p.mu.Unlock()

	entries, err := p.store.ReadPrizes()
	if err != nil {
		p.logger.Warn("failed to load prizes", "error", err)
		p.entries = nil
		return
	}
	p.entries = entries
	p.logger.Debug("loaded prizes", "count", len(entries))
}

// EnsureDefaults installs the default prizes if the pool is empty and
// persists them. It reports whether the defaults were installed.
func (p *Pool) EnsureDefaults() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.entries) > 0 {
		return false
	}
	p.entries = model.DefaultPrizes()
	p.save()
	p.logger.Info("installed default prizes", "count", len(p.entries))
	return true
}

// Draw picks one entry uniformly at random without removing it.
// It returns false if the pool is empty.
func (p *Pool) Draw() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.entries) == 0 {
		return "", false
	}
	return p.entries[p.rng.IntN(len(p.entries))], true
}

// DrawN performs n independent draws with replacement.
// It returns nil if the pool is empty or n is not positive.
func (p *Pool) DrawN(n int) []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.entries) == 0 || n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = p.entries[p.rng.IntN(len(p.entries))]
	}
	return out
}

// Add appends prize verbatim and persists.
func (p *Pool) Add(prize string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.entries = append(p.entries, prize)
	p.save()
}

// RemoveAt removes the entry at index and persists.
// An out-of-range index is a no-op and nothing is written.
func (p *Pool) RemoveAt(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index < 0 || index >= len(p.entries) {
		return
	}
	p.entries = append(p.entries[:index:index], p.entries[index+1:]...)
	p.save()
}

// Clear empties the pool and persists, leaving an empty file.
func (p *Pool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.entries = nil
	p.save()
}

// ImportJSON replaces the pool with a JSON array of strings and persists.
// On any parse failure, or if the payload is not an array of strings, the
// pool is left untouched and false is returned.
func (p *Pool) ImportJSON(text string) bool {
	_, err := p.importJSON(text)
	return err == nil
}

func (p *Pool) importJSON(text string) (int, error) {
	entries, err := model.DecodeJSON([]byte(text))
	if err != nil {
		p.logger.Debug("rejected JSON import", "error", err)
		return 0, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.entries = entries
	p.save()
	return len(p.entries), nil
}

// ImportText replaces the pool with the non-blank lines of text, using the
// prize file rules, and persists. It returns the new pool size.
func (p *Pool) ImportText(text string) int {
	entries := model.DecodeLines([]byte(text))

	p.mu.Lock()
	defer p.mu.Unlock()

	p.entries = entries
	p.save()
	return len(p.entries)
}

// Entries returns a copy of the current list in display order.
func (p *Pool) Entries() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, len(p.entries))
	copy(out, p.entries)
	return out
}

// Len returns the number of entries.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

// SaveErr returns the error from the most recent write, or nil if it
// succeeded.
func (p *Pool) SaveErr() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saveErr
}

// save writes the current entries. Caller must hold mu.
func (p *Pool) save() {
	p.saveErr = p.store.WritePrizes(p.entries)
	if p.saveErr != nil {
		p.logger.Warn("failed to save prizes", "error", p.saveErr)
	}
}
