// Package clientstate models the storefront's browser-side state: the
// shopping cart and the current-user session, kept as JSON snapshots in a
// key-value storage with change notification. Stores are injectable so tests
// and embedders can supply their own storage.
package clientstate

import "sync"

// Storage is the persistence boundary for client state. In a browser this is
// localStorage or sessionStorage; tests use MemoryStorage.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// MemoryStorage is a thread-safe in-memory Storage.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

func (ms *MemoryStorage) Get(key string) (string, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	value, ok := ms.items[key]
	return value, ok
}

func (ms *MemoryStorage) Set(key, value string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.items[key] = value
}

func (ms *MemoryStorage) Delete(key string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.items, key)
}

// broadcaster fans change notifications out to subscribers. Storage change
// events do not reach the writer itself, so stores notify explicitly after
// every mutation.
type broadcaster struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[int]func())}
}

// subscribe registers fn and returns an unsubscribe function.
func (b *broadcaster) subscribe(fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	b.subs[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

func (b *broadcaster) notify() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
