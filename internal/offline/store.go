package offline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/krishirakshak/backend/internal/domain/entities"
	"github.com/krishirakshak/backend/internal/domain/providers"
)

const (
	qaCacheKey = "kr_qa_cache"

	// minWordLen drops stop-word-sized tokens from overlap scoring
	minWordLen = 2

	// matchThreshold is the minimum overlap ratio for a cache hit
	matchThreshold = 0.4
)

// Store is the bounded offline Q&A cache. Entries live newest first; writing
// an existing question moves it to the front, the oldest entry falls off when
// the store is full, and entries expire after MaxAge.
type Store struct {
	kv       providers.KeyValueStore
	maxItems int
	maxAge   time.Duration

	mu  sync.Mutex
	now func() time.Time
}

// StoreConfig bounds a Store.
type StoreConfig struct {
	MaxItems int
	MaxAge   time.Duration
}

// DefaultStoreConfig matches the product limits: 50 entries, 30 days.
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		MaxItems: 50,
		MaxAge:   30 * 24 * time.Hour,
	}
}

// NewStore creates a Store over the given key-value backend.
func NewStore(kv providers.KeyValueStore, cfg StoreConfig) *Store {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultStoreConfig().MaxItems
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = DefaultStoreConfig().MaxAge
	}
	return &Store{
		kv:       kv,
		maxItems: cfg.MaxItems,
		maxAge:   cfg.MaxAge,
		now:      time.Now,
	}
}

// Put stores a Q&A pair. Questions are deduplicated case-insensitively; the
// new entry goes to the front and the list is truncated to the size bound.
func (s *Store) Put(ctx context.Context, question, answer, language string, sources []string, confidence float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read(ctx)
	if err != nil {
		return err
	}

	filtered := make([]entities.CacheEntry, 0, len(entries)+1)
	filtered = append(filtered, entities.CacheEntry{
		Question:   question,
		Answer:     answer,
		Language:   language,
		Sources:    sources,
		Confidence: confidence,
		CachedAt:   s.now().UnixMilli(),
	})
	for _, e := range entries {
		if strings.EqualFold(e.Question, question) {
			continue
		}
		filtered = append(filtered, e)
	}

	if len(filtered) > s.maxItems {
		filtered = filtered[:s.maxItems]
	}

	return s.write(ctx, filtered)
}

// Search finds the cached entry with the best word-overlap ratio against the
// query. Words of two characters or fewer are ignored; an entry qualifies at
// a ratio of 0.4 and a later entry replaces the best only with a strictly
// greater ratio. Returns nil when nothing qualifies.
func (s *Store) Search(ctx context.Context, query string) (*entities.CacheEntry, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	words := splitWords(query)
	if len(words) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	var best *entities.CacheEntry
	bestScore := 0.0

	for i := range entries {
		target := strings.ToLower(entries[i].Question + " " + entries[i].Answer)
		matches := 0
		for _, w := range words {
			if strings.Contains(target, w) {
				matches++
			}
		}
		ratio := float64(matches) / float64(len(words))
		if ratio > bestScore && ratio >= matchThreshold {
			bestScore = ratio
			best = &entries[i]
		}
	}

	return best, nil
}

// History returns cached entries newest first, capped at limit. A limit of 0
// or less returns everything.
func (s *Store) History(ctx context.Context, limit int) ([]entities.CacheEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// PruneExpired removes entries older than MaxAge and reports how many fell.
func (s *Store) PruneExpired(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := s.now().Add(-s.maxAge).UnixMilli()
	fresh := entries[:0]
	for _, e := range entries {
		if e.CachedAt > cutoff {
			fresh = append(fresh, e)
		}
	}

	removed := len(entries) - len(fresh)
	if removed == 0 {
		return 0, nil
	}
	return removed, s.write(ctx, fresh)
}

// SizeInfo describes current cache occupancy.
type SizeInfo struct {
	Bytes     int    `json:"bytes"`
	Formatted string `json:"formatted"`
	ItemCount int    `json:"item_count"`
}

// Size reports the serialized size and entry count of the cache.
func (s *Store) Size(ctx context.Context) (*SizeInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}

	return &SizeInfo{
		Bytes:     len(raw),
		Formatted: formatBytes(len(raw)),
		ItemCount: len(entries),
	}, nil
}

func (s *Store) read(ctx context.Context) ([]entities.CacheEntry, error) {
	raw, err := s.kv.Get(ctx, qaCacheKey)
	if err != nil {
		if err == providers.ErrKeyNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("reading qa cache: %w", err)
	}

	var entries []entities.CacheEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		// Corrupt payloads are dropped rather than poisoning every call
		return nil, nil
	}
	return entries, nil
}

func (s *Store) write(ctx context.Context, entries []entities.CacheEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding qa cache: %w", err)
	}
	if err := s.kv.Set(ctx, qaCacheKey, raw); err != nil {
		return fmt.Errorf("writing qa cache: %w", err)
	}
	return nil
}

func splitWords(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	words := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) > minWordLen {
			words = append(words, f)
		}
	}
	return words
}

func formatBytes(n int) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
	}
}
