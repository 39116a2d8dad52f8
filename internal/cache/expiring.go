package cache

import (
	"sync"
	"time"

	"github.com/apptime/portal-server/internal/task"
)

type entry[V any] struct {
	value   V
	expires time.Time
}

// ExpiringMap provides a thread safe map whose entries vanish after a fixed
// lifetime. Expired entries are hidden from lookups immediately and removed
// for good by a janitor task running in the given cleanup interval.
type ExpiringMap[K comparable, V any] struct {
	mtx      sync.RWMutex
	entries  map[K]entry[V]
	lifetime time.Duration
	janitor  *task.Repeating
}

// NewExpiring creates a new expiring map and starts its janitor task.
// Call Close as soon as the map is no longer needed; it would not be garbage
// collected otherwise.
func NewExpiring[K comparable, V any](lifetime, cleanupInterval time.Duration) *ExpiringMap[K, V] {
	obj := &ExpiringMap[K, V]{
		entries:  make(map[K]entry[V]),
		lifetime: lifetime,
	}
	obj.janitor = task.NewRepeating(obj.evict, cleanupInterval)
	obj.janitor.Start()
	return obj
}

// Lookup returns the value assigned to the given key and whether a non-expired one was present
func (obj *ExpiringMap[K, V]) Lookup(key K) (V, bool) {
	obj.mtx.RLock()
	defer obj.mtx.RUnlock()
	val, ok := obj.entries[key]
	if !ok || time.Now().After(val.expires) {
		var zero V
		return zero, false
	}
	return val.value, true
}

// Set sets a key-value pair, resetting the entry's lifetime
func (obj *ExpiringMap[K, V]) Set(key K, value V) {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	obj.entries[key] = entry[V]{
		value:   value,
		expires: time.Now().Add(obj.lifetime),
	}
}

// Unset deletes the value assigned to the given key
func (obj *ExpiringMap[K, V]) Unset(key K) {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	delete(obj.entries, key)
}

// Clear clears the whole map
func (obj *ExpiringMap[K, V]) Clear() {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	obj.entries = make(map[K]entry[V])
}

// Close stops the janitor task
func (obj *ExpiringMap[K, V]) Close() {
	obj.janitor.Stop()
}

func (obj *ExpiringMap[K, V]) evict() {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	now := time.Now()
	for key, val := range obj.entries {
		if now.After(val.expires) {
			delete(obj.entries, key)
		}
	}
}
