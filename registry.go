// File: lixenwraith/promconf/registry.go
package promconf

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"
)

// MaxValueSize limits the raw string form of a single setting value.
const MaxValueSize = 64 * 1024

// entry is the live state of one registered setting. The current value is
// kept in an atomic.Value so readers never block; the mutex serializes
// updates to the same key (parse, store, handler, watch notification).
type entry struct {
	def     *Setting
	value   atomic.Value
	mu      sync.Mutex
	handler func(any)
}

// Registry holds registered settings and their current values. It supports
// concurrent reads and per-key serialized updates.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry

	watchMu       sync.Mutex
	watchers      map[int64]chan Change
	nextWatcherID atomic.Int64
	maxWatchers   int
}

// NewRegistry creates an empty settings registry.
func NewRegistry() *Registry {
	return &Registry{
		entries:     make(map[string]*entry),
		watchers:    make(map[int64]chan Change),
		maxWatchers: DefaultMaxWatchers,
	}
}

// Register adds setting definitions to the registry. Each setting starts at
// its default value. Registering a key twice fails with ErrDuplicateKey, and
// a failed call leaves the registry unchanged.
func (r *Registry) Register(defs ...*Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(defs))
	for _, def := range defs {
		if def == nil {
			return fmt.Errorf("cannot register nil setting")
		}
		if !validKey(def.key) {
			return fmt.Errorf("invalid setting key: %s", def.key)
		}
		if _, exists := r.entries[def.key]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, def.key)
		}
		if _, dup := seen[def.key]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, def.key)
		}
		seen[def.key] = struct{}{}
	}

	for _, def := range defs {
		e := &entry{def: def}
		e.value.Store(def.Default())
		r.entries[def.key] = e
	}
	return nil
}

// MustRegister is like Register but panics on error. Settings are fixed at
// startup, so a registration failure is a programming error.
func (r *Registry) MustRegister(defs ...*Setting) {
	if err := r.Register(defs...); err != nil {
		panic(fmt.Sprintf("promconf: %v", err))
	}
}

// Initialize reads initial values for registered settings from the source.
// Both dynamic and static scalar settings are read; a static setting takes
// its value here and is fixed afterwards. List settings publish fixed
// documentation and take no startup value. Keys absent from the source keep
// their defaults. All provided values are validated before any is stored, so
// a source with one bad value changes nothing. Handlers and watchers are not
// notified; Initialize establishes the starting state rather than updating
// it.
//
// A nil source is valid and leaves every setting at its default.
func (r *Registry) Initialize(src Source) error {
	if src == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	type staged struct {
		e      *entry
		parsed any
	}

	var errs []error
	var pending []staged
	for _, key := range r.sortedKeysLocked() {
		e := r.entries[key]
		if e.def.kind == KindStringList {
			continue
		}
		raw, found := src.Lookup(key)
		if !found {
			continue
		}
		if len(raw) > MaxValueSize {
			errs = append(errs, fmt.Errorf("%w: %s exceeds %d bytes", ErrValueSize, key, MaxValueSize))
			continue
		}
		parsed, err := e.def.parse(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		pending = append(pending, staged{e: e, parsed: parsed})
	}
	if len(errs) > 0 {
		return fmt.Errorf("failed to initialize settings: %w", errors.Join(errs...))
	}

	for _, s := range pending {
		s.e.mu.Lock()
		s.e.value.Store(s.parsed)
		s.e.mu.Unlock()
	}
	return nil
}

// Subscribe attaches the update handler for a dynamic setting. The handler
// runs after each accepted value change, receiving the new parsed value, and
// updates to that key are serialized around it. At most one handler may be
// attached per key.
//
// Handlers must not update registry settings themselves; doing so deadlocks
// on the key's update lock.
func (r *Registry) Subscribe(key string, handler func(newValue any)) error {
	if handler == nil {
		return fmt.Errorf("cannot subscribe nil handler for key %s", key)
	}
	e, ok := r.lookup(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if !e.def.dynamic {
		return fmt.Errorf("%w: %s", ErrNotDynamic, key)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handler != nil {
		return fmt.Errorf("%w: %s", ErrAlreadySubscribed, key)
	}
	e.handler = handler
	return nil
}

// Update applies a new raw value to a dynamic setting. The value is parsed
// and validated first; a rejected value returns an error and leaves the
// current value untouched. On an accepted change the new value becomes
// visible to readers before the subscribed handler and watchers run.
//
// Updating to the value a setting already holds is a no-op: no handler call,
// no watch event, nil error.
func (r *Registry) Update(key, raw string) error {
	e, ok := r.lookup(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if !e.def.dynamic {
		return fmt.Errorf("%w: %s", ErrNotDynamic, key)
	}
	if len(raw) > MaxValueSize {
		return fmt.Errorf("%w: %s exceeds %d bytes", ErrValueSize, key, MaxValueSize)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	parsed, err := e.def.parse(raw)
	if err != nil {
		return err
	}
	r.applyLocked(e, parsed)
	return nil
}

// applyLocked stores a parsed value and fires the handler and watchers.
// Caller holds e.mu. Unchanged values are dropped without side effects.
func (r *Registry) applyLocked(e *entry, parsed any) {
	old := e.value.Load()
	if reflect.DeepEqual(old, parsed) {
		return
	}
	e.value.Store(parsed)
	if e.handler != nil {
		e.handler(parsed)
	}
	r.notifyWatchers(Change{Key: e.def.key, Old: old, New: parsed})
}

// UpdateBatch applies several raw values. Every value is validated before
// any is applied; if validation fails the registry is unchanged and the
// returned error covers all rejected keys. Application order is by key, and
// each key behaves exactly as a single Update.
func (r *Registry) UpdateBatch(values map[string]string) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	type staged struct {
		e      *entry
		parsed any
	}

	var errs []error
	pending := make([]staged, 0, len(keys))
	for _, key := range keys {
		raw := values[key]
		e, ok := r.lookup(key)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrKeyNotFound, key))
			continue
		}
		if !e.def.dynamic {
			errs = append(errs, fmt.Errorf("%w: %s", ErrNotDynamic, key))
			continue
		}
		if len(raw) > MaxValueSize {
			errs = append(errs, fmt.Errorf("%w: %s exceeds %d bytes", ErrValueSize, key, MaxValueSize))
			continue
		}
		parsed, err := e.def.parse(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		pending = append(pending, staged{e: e, parsed: parsed})
	}
	if len(errs) > 0 {
		return fmt.Errorf("failed to apply settings batch: %w", errors.Join(errs...))
	}

	for _, s := range pending {
		s.e.mu.Lock()
		r.applyLocked(s.e, s.parsed)
		s.e.mu.Unlock()
	}
	return nil
}

// Get returns the current value of a setting. It never blocks on in-flight
// updates; readers see either the previous or the new value.
func (r *Registry) Get(key string) (any, bool) {
	e, ok := r.lookup(key)
	if !ok {
		return nil, false
	}
	return e.value.Load(), true
}

// Definition returns the registered definition for a key.
func (r *Registry) Definition(key string) (*Setting, bool) {
	e, ok := r.lookup(key)
	if !ok {
		return nil, false
	}
	return e.def, true
}

// Keys returns all registered setting keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedKeysLocked()
}

// Snapshot returns the current value of every registered setting. The
// snapshot is not atomic across keys; each value is individually current at
// the time it is read.
func (r *Registry) Snapshot() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := make(map[string]any, len(r.entries))
	for key, e := range r.entries {
		snap[key] = e.value.Load()
	}
	return snap
}

func (r *Registry) lookup(key string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	return e, ok
}

func (r *Registry) sortedKeysLocked() []string {
	keys := make([]string, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
