package localeurl

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// LoadSource names where the cached mapping table came from.
type LoadSource string

const (
	// LoadSourceRemote means the sheet-backed resource supplied the table.
	LoadSourceRemote LoadSource = "remote"
	// LoadSourceFallback means the local fallback file supplied the table.
	LoadSourceFallback LoadSource = "fallback"
	// LoadSourceEmpty means every source failed and the table is empty.
	LoadSourceEmpty LoadSource = "empty"
)

// LoadStatus records why the cached table came from where it did. Loader
// failures never reach Load callers, so the status is the only place tests
// and diagnostics can see them.
type LoadStatus struct {
	Source      LoadSource
	Rows        int
	RemoteErr   error
	FallbackErr error
}

// MappingStore lazily populates and memoizes the mapping table for the life
// of the process. Concurrent first loads share one in-flight fetch through
// singleflight; once resolved the table is immutable until Reset.
//
// Load never returns an error: the worst case is an empty table, and the
// mapper's fallback ladder takes over from there.
type MappingStore struct {
	remote   MappingLoader
	fallback MappingLoader
	logger   Logger

	group  singleflight.Group
	mu     sync.RWMutex
	table  Mappings
	status LoadStatus
	loaded bool
}

// MappingStoreOption mutates a MappingStore during construction.
type MappingStoreOption func(*MappingStore)

// WithStoreLogger sets the logger used to report swallowed load failures.
func WithStoreLogger(logger Logger) MappingStoreOption {
	return func(s *MappingStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewMappingStore builds a store over the remote loader and its local
// fallback. Either loader may be nil.
func NewMappingStore(remote, fallback MappingLoader, opts ...MappingStoreOption) *MappingStore {
	store := &MappingStore{
		remote:   remote,
		fallback: fallback,
		logger:   NoopLogger(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(store)
	}
	return store
}

const loadKey = "url-mappings"

// Load returns the cached mapping table, loading it on first use. All
// concurrent callers during the initial load await the same fetch.
func (s *MappingStore) Load(ctx context.Context) Mappings {
	if s == nil {
		return Mappings{}
	}

	s.mu.RLock()
	if s.loaded {
		table := s.table
		s.mu.RUnlock()
		return table
	}
	s.mu.RUnlock()

	value, _, _ := s.group.Do(loadKey, func() (any, error) {
		// Re-check under the flight: a caller that raced past the fast
		// path must not trigger a second load after the first completed.
		s.mu.RLock()
		if s.loaded {
			table := s.table
			s.mu.RUnlock()
			return table, nil
		}
		s.mu.RUnlock()

		table, status := s.loadOnce(ctx)

		s.mu.Lock()
		s.table = table
		s.status = status
		s.loaded = true
		s.mu.Unlock()

		return table, nil
	})

	table, ok := value.(Mappings)
	if !ok || table == nil {
		return Mappings{}
	}
	return table
}

// loadOnce runs the remote-then-fallback ladder. The fallback is consulted
// only when the remote fails or yields zero usable rows; it is merged in
// wholesale, never row by row.
func (s *MappingStore) loadOnce(ctx context.Context) (Mappings, LoadStatus) {
	status := LoadStatus{Source: LoadSourceEmpty}

	if s.remote != nil {
		table, err := s.remote.Load(ctx)
		if err == nil && table.Len() > 0 {
			status.Source = LoadSourceRemote
			status.Rows = table.Len()
			return table, status
		}
		if err == nil {
			err = ErrNoMappings
		}
		status.RemoteErr = err
		s.logger.Warn("localeurl: remote mappings unavailable", "error", err)
	}

	if s.fallback != nil {
		table, err := s.fallback.Load(ctx)
		if err == nil && table.Len() > 0 {
			status.Source = LoadSourceFallback
			status.Rows = table.Len()
			return table, status
		}
		if err == nil {
			err = ErrNoMappings
		}
		status.FallbackErr = err
		s.logger.Warn("localeurl: fallback mappings unavailable", "error", err)
	}

	return Mappings{}, status
}

// LastStatus reports the outcome of the most recent load cycle. The zero
// value is returned before the first load completes.
func (s *MappingStore) LastStatus() LoadStatus {
	if s == nil {
		return LoadStatus{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Loaded reports whether a load cycle has completed since construction or
// the last Reset.
func (s *MappingStore) Loaded() bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Reset clears the cached table so the next Load triggers a fresh cycle.
func (s *MappingStore) Reset() {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.table = nil
	s.status = LoadStatus{}
	s.loaded = false
	s.mu.Unlock()
	s.group.Forget(loadKey)
}
