package app

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf16"
)

// WildcardKey is the association consulted when an extension has no entry.
const WildcardKey = "*"

// AssociationStore is the system registry of open-command templates.
//
// Queries follow a size-then-fill protocol. QueryLength reports the number of
// UTF-16 code units needed for the template, or ErrNoAssociation. QueryFill
// copies the template into buf and returns the number of units written; when
// the value no longer fits it must fail with ErrBufferTooSmall instead of
// truncating. Both queries fall back to the "*" entry.
type AssociationStore interface {
	QueryLength(key string) (int, error)
	QueryFill(key string, buf []uint16) (int, error)
}

// QueryTemplate retrieves the open-command template for an extension.
// The fill buffer holds exactly the length the first query reported. A
// template that no longer fits means the registration changed in between;
// that is reported, never retried.
func QueryTemplate(store AssociationStore, key string) (string, error) {
	n, err := store.QueryLength(key)
	if err != nil {
		return "", fmt.Errorf("query length for %q: %w", key, err)
	}
	if n < 0 {
		return "", fmt.Errorf("%w: negative length %d for %q", ErrStoreInconsistent, n, key)
	}

	buf := make([]uint16, n)
	got, err := store.QueryFill(key, buf)
	if err != nil {
		if errors.Is(err, ErrBufferTooSmall) {
			return "", fmt.Errorf("%w: %q grew past %d characters", ErrStoreInconsistent, key, n)
		}
		return "", fmt.Errorf("query template for %q: %w", key, err)
	}
	if got < 0 || got > n {
		return "", fmt.Errorf("%w: %q reported %d characters, length query said %d", ErrStoreInconsistent, key, got, n)
	}

	return decodeUTF16(buf[:got]), nil
}

// decodeUTF16 decodes up to the first NUL terminator.
func decodeUTF16(buf []uint16) string {
	for i, c := range buf {
		if c == 0 {
			buf = buf[:i]
			break
		}
	}
	return string(utf16.Decode(buf))
}

// TableStore is an in-memory association table keyed by extension.
// Keys compare case-insensitively, as the Windows registry does.
type TableStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewTableStore creates a store from an extension -> template map.
func NewTableStore(entries map[string]string) *TableStore {
	s := &TableStore{entries: make(map[string]string, len(entries))}
	for ext, tmpl := range entries {
		s.entries[normalizeKey(ext)] = tmpl
	}
	return s
}

// Set registers or replaces a template.
func (s *TableStore) Set(ext, template string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[normalizeKey(ext)] = template
}

// Delete removes a registration.
func (s *TableStore) Delete(ext string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, normalizeKey(ext))
}

// Len returns the number of registrations.
func (s *TableStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *TableStore) lookup(key string) ([]uint16, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tmpl, ok := s.entries[normalizeKey(key)]
	if !ok {
		tmpl, ok = s.entries[WildcardKey]
	}
	if !ok {
		return nil, fmt.Errorf("%w for %q", ErrNoAssociation, key)
	}
	return utf16.Encode([]rune(tmpl)), nil
}

// QueryLength implements AssociationStore.
func (s *TableStore) QueryLength(key string) (int, error) {
	units, err := s.lookup(key)
	if err != nil {
		return 0, err
	}
	return len(units), nil
}

// QueryFill implements AssociationStore. The written value is NUL-terminated
// when there is room for the terminator.
func (s *TableStore) QueryFill(key string, buf []uint16) (int, error) {
	units, err := s.lookup(key)
	if err != nil {
		return 0, err
	}
	if len(units) > len(buf) {
		return len(units), ErrBufferTooSmall
	}
	n := copy(buf, units)
	if n < len(buf) {
		buf[n] = 0
	}
	return n, nil
}

func normalizeKey(ext string) string {
	if ext == WildcardKey {
		return ext
	}
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// ChainStore consults stores in order. The first store that does not report
// ErrNoAssociation answers the length query, and the fill query goes to that
// same store.
type ChainStore struct {
	Stores []AssociationStore
}

// NewChainStore creates a ChainStore, skipping nil stores.
func NewChainStore(stores ...AssociationStore) *ChainStore {
	c := &ChainStore{}
	for _, s := range stores {
		if s != nil {
			c.Stores = append(c.Stores, s)
		}
	}
	return c
}

// QueryLength implements AssociationStore.
func (c *ChainStore) QueryLength(key string) (int, error) {
	_, n, err := c.first(key)
	return n, err
}

// QueryFill implements AssociationStore.
func (c *ChainStore) QueryFill(key string, buf []uint16) (int, error) {
	store, _, err := c.first(key)
	if err != nil {
		return 0, err
	}
	return store.QueryFill(key, buf)
}

func (c *ChainStore) first(key string) (AssociationStore, int, error) {
	for _, s := range c.Stores {
		n, err := s.QueryLength(key)
		if errors.Is(err, ErrNoAssociation) {
			continue
		}
		return s, n, err
	}
	return nil, 0, fmt.Errorf("%w for %q", ErrNoAssociation, key)
}
