package pool

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"sync"
	"testing"

	"github.com/jacksmith/pz/internal/model"
	"github.com/jacksmith/pz/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store that records writes.
type memStore struct {
	entries  []string
	writes   int
	readErr  error
	writeErr error
}

func (m *memStore) ReadPrizes() ([]string, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	out := make([]string, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *memStore) WritePrizes(entries []string) error {
	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.entries = make([]string, len(entries))
	copy(m.entries, entries)
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPool(store Store) *Pool {
	return New(store, WithLogger(quietLogger()), WithRand(rand.New(rand.NewPCG(1, 2))))
}

// openFileStorage returns a Storage over a fresh temp directory.
func openFileStorage(t *testing.T) *storage.Storage {
	t.Helper()
	s, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestLoad(t *testing.T) {
	t.Run("loads entries in order", func(t *testing.T) {
		store := &memStore{entries: []string{"B", "A", "B"}}
		p := newTestPool(store)
		p.Load()

		assert.Equal(t, []string{"B", "A", "B"}, p.Entries())
		assert.Equal(t, 0, store.writes)
	})

	t.Run("read error leaves pool empty", func(t *testing.T) {
		store := &memStore{entries: []string{"A"}}
		p := newTestPool(store)
		p.Load()
		require.Equal(t, 1, p.Len())

		store.readErr = errors.New("permission denied")
		p.Load()
		assert.Equal(t, 0, p.Len())
	})

	t.Run("read error is logged", func(t *testing.T) {
		var buf bytes.Buffer
		store := &memStore{readErr: errors.New("permission denied")}
		p := New(store, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
		p.Load()

		assert.Contains(t, buf.String(), "failed to load prizes")
		assert.Contains(t, buf.String(), "permission denied")
	})
}

func TestEnsureDefaults(t *testing.T) {
	t.Run("empty pool gets defaults and persists them", func(t *testing.T) {
		store := &memStore{}
		p := newTestPool(store)
		p.Load()

		assert.True(t, p.EnsureDefaults())
		assert.Equal(t, model.DefaultPrizes(), p.Entries())
		assert.Equal(t, model.DefaultPrizes(), store.entries)
		assert.Equal(t, 1, store.writes)
	})

	t.Run("non-empty pool is left alone", func(t *testing.T) {
		store := &memStore{entries: []string{"A"}}
		p := newTestPool(store)
		p.Load()

		assert.False(t, p.EnsureDefaults())
		assert.Equal(t, []string{"A"}, p.Entries())
		assert.Equal(t, 0, store.writes)
	})

	t.Run("first run from nonexistent file", func(t *testing.T) {
		s := openFileStorage(t)

		p := Open(s, WithLogger(quietLogger()))
		assert.Equal(t, model.DefaultPrizes(), p.Entries())

		// A second load without mutation sees the persisted defaults
		again := New(s, WithLogger(quietLogger()))
		again.Load()
		assert.Equal(t, model.DefaultPrizes(), again.Entries())
		assert.False(t, again.EnsureDefaults())
	})
}

func TestDraw(t *testing.T) {
	t.Run("empty pool has no result", func(t *testing.T) {
		p := newTestPool(&memStore{})

		prize, ok := p.Draw()
		assert.False(t, ok)
		assert.Equal(t, "", prize)
	})

	t.Run("empty string prize is a result", func(t *testing.T) {
		store := &memStore{entries: []string{""}}
		p := newTestPool(store)
		p.Load()

		prize, ok := p.Draw()
		assert.True(t, ok)
		assert.Equal(t, "", prize)
	})

	t.Run("every entry is reachable", func(t *testing.T) {
		store := &memStore{entries: model.DefaultPrizes()}
		p := newTestPool(store)
		p.Load()

		seen := make(map[string]int)
		for i := 0; i < 2000; i++ {
			prize, ok := p.Draw()
			require.True(t, ok)
			seen[prize]++
		}
		assert.Len(t, seen, 6)
		for prize, n := range seen {
			assert.Greater(t, n, 200, "prize %q drawn too rarely", prize)
		}
	})

	t.Run("draw does not deplete the pool", func(t *testing.T) {
		store := &memStore{entries: []string{"A", "B"}}
		p := newTestPool(store)
		p.Load()

		for i := 0; i < 10; i++ {
			_, ok := p.Draw()
			require.True(t, ok)
		}
		assert.Equal(t, []string{"A", "B"}, p.Entries())
		assert.Equal(t, 0, store.writes)
	})
}

func TestDrawN(t *testing.T) {
	p := newTestPool(&memStore{})
	assert.Nil(t, p.DrawN(3))

	p.Add("A")
	assert.Nil(t, p.DrawN(0))
	assert.Nil(t, p.DrawN(-1))
	assert.Equal(t, []string{"A", "A", "A"}, p.DrawN(3))
}

func TestAdd(t *testing.T) {
	store := &memStore{}
	p := newTestPool(store)

	p.Add("A")
	p.Add("")
	p.Add("A")
	p.Add("  padded  ")

	assert.Equal(t, []string{"A", "", "A", "  padded  "}, p.Entries())
	assert.Equal(t, p.Entries(), store.entries)
	assert.Equal(t, 4, store.writes)
}

func TestAddReloadRoundTrip(t *testing.T) {
	s := openFileStorage(t)
	adds := []string{"一等奖", "", "B", "   ", "B", " C "}

	p := New(s, WithLogger(quietLogger()))
	for _, a := range adds {
		p.Add(a)
	}

	reloaded := New(s, WithLogger(quietLogger()))
	reloaded.Load()
	// Blank-only entries do not survive the flat file
	assert.Equal(t, []string{"一等奖", "B", "B", " C "}, reloaded.Entries())
}

func TestRemoveAt(t *testing.T) {
	t.Run("removes the entry at index", func(t *testing.T) {
		store := &memStore{entries: []string{"A", "B", "C"}}
		p := newTestPool(store)
		p.Load()

		p.RemoveAt(1)
		assert.Equal(t, []string{"A", "C"}, p.Entries())
		assert.Equal(t, []string{"A", "C"}, store.entries)
		assert.Equal(t, 1, store.writes)

		p.RemoveAt(1)
		p.RemoveAt(0)
		assert.Empty(t, p.Entries())
		assert.Equal(t, 3, store.writes)
	})

	t.Run("out of range is a no-op", func(t *testing.T) {
		store := &memStore{entries: []string{"A", "B"}}
		p := newTestPool(store)
		p.Load()

		for _, i := range []int{-1, 2, 100} {
			p.RemoveAt(i)
		}
		assert.Equal(t, []string{"A", "B"}, p.Entries())
		assert.Equal(t, []string{"A", "B"}, store.entries)
		assert.Equal(t, 0, store.writes)
	})

	t.Run("out of range leaves the file unchanged", func(t *testing.T) {
		s := openFileStorage(t)
		require.NoError(t, os.WriteFile(s.PrizePath(), []byte("A\n\nB\n"), 0644))

		p := New(s, WithLogger(quietLogger()))
		p.Load()
		p.RemoveAt(5)

		data, err := os.ReadFile(s.PrizePath())
		require.NoError(t, err)
		assert.Equal(t, "A\n\nB\n", string(data))
	})

	t.Run("snapshots taken before removal are unaffected", func(t *testing.T) {
		store := &memStore{entries: []string{"A", "B", "C"}}
		p := newTestPool(store)
		p.Load()

		before := p.Entries()
		p.RemoveAt(0)
		assert.Equal(t, []string{"A", "B", "C"}, before)
	})
}

func TestClear(t *testing.T) {
	s := openFileStorage(t)
	p := Open(s, WithLogger(quietLogger()))
	require.Equal(t, 6, p.Len())

	p.Clear()
	assert.Equal(t, 0, p.Len())

	info, err := os.Stat(s.PrizePath())
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())

	reloaded := New(s, WithLogger(quietLogger()))
	reloaded.Load()
	assert.Empty(t, reloaded.Entries())
}

func TestImportJSON(t *testing.T) {
	t.Run("replaces entries and persists", func(t *testing.T) {
		s := openFileStorage(t)
		p := New(s, WithLogger(quietLogger()))
		p.Add("Z")

		ok := p.ImportJSON(`["X","Y"]`)
		require.True(t, ok)
		assert.Equal(t, []string{"X", "Y"}, p.Entries())

		data, err := os.ReadFile(s.PrizePath())
		require.NoError(t, err)
		assert.Equal(t, "X\nY", string(data))
	})

	t.Run("keeps order duplicates and empty strings", func(t *testing.T) {
		p := newTestPool(&memStore{})

		require.True(t, p.ImportJSON(`["B","","B","A"]`))
		assert.Equal(t, []string{"B", "", "B", "A"}, p.Entries())
	})

	t.Run("empty array empties the pool", func(t *testing.T) {
		store := &memStore{entries: []string{"Z"}}
		p := newTestPool(store)
		p.Load()

		require.True(t, p.ImportJSON(`[]`))
		assert.Empty(t, p.Entries())
		assert.Empty(t, store.entries)
	})

	for _, payload := range []string{`{"a":1}`, `not json`, `["A", 1]`, `["A", null]`, `[["A"]]`, `null`, ``, `["A"]]`, `["A"] }`} {
		t.Run("rejects "+payload, func(t *testing.T) {
			store := &memStore{entries: []string{"Z"}}
			p := newTestPool(store)
			p.Load()

			assert.False(t, p.ImportJSON(payload))
			assert.Equal(t, []string{"Z"}, p.Entries())
			assert.Equal(t, 0, store.writes)
		})
	}
}

func TestImportText(t *testing.T) {
	store := &memStore{entries: []string{"Z"}}
	p := newTestPool(store)
	p.Load()

	n := p.ImportText("A\r\n\n  \nB\n")
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"A", "B"}, p.Entries())
	assert.Equal(t, []string{"A", "B"}, store.entries)
}

func TestEntriesIsACopy(t *testing.T) {
	store := &memStore{entries: []string{"A", "B"}}
	p := newTestPool(store)
	p.Load()

	view := p.Entries()
	view[0] = "mutated"
	_ = append(view, "extra")

	assert.Equal(t, []string{"A", "B"}, p.Entries())
	assert.Equal(t, 0, store.writes)
}

func TestSaveFailure(t *testing.T) {
	var buf bytes.Buffer
	store := &memStore{writeErr: errors.New("disk full")}
	p := New(store, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	p.Add("A")

	// The in-memory change stands even though the write failed
	assert.Equal(t, []string{"A"}, p.Entries())
	require.Error(t, p.SaveErr())
	assert.Contains(t, buf.String(), "failed to save prizes")
	assert.Contains(t, buf.String(), "disk full")

	store.writeErr = nil
	p.Add("B")
	assert.NoError(t, p.SaveErr())
	assert.Equal(t, []string{"A", "B"}, store.entries)
}

func TestConcurrentAddAndDraw(t *testing.T) {
	store := &memStore{}
	p := newTestPool(store)
	p.Add("seed")

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			p.Add(fmt.Sprintf("prize-%d", i))
		}(i)
		go func() {
			defer wg.Done()
			_, ok := p.Draw()
			assert.True(t, ok)
		}()
	}
	wg.Wait()

	entries := p.Entries()
	assert.Equal(t, n+1, p.Len())
	assert.Len(t, entries, n+1)
	// Each write happened under the same lock as its mutation, so the last
	// write holds the final list
	assert.Equal(t, entries, store.entries)
	assert.Equal(t, n+1, store.writes)

	seen := make(map[string]bool)
	for _, e := range entries {
		seen[e] = true
	}
	for i := 0; i < n; i++ {
		assert.True(t, seen[fmt.Sprintf("prize-%d", i)], "prize-%d missing", i)
	}
}
