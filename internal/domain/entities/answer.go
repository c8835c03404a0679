package entities

// AnswerRecord is one curated entry in the canned answer tables. Keywords
// are matched against the question text to score candidates.
type AnswerRecord struct {
	Keywords   []string
	Answer     string
	Sources    []string
	Confidence float64
}

// Answer is the normalized result of resolving a safety question, whatever
// path produced it (greeting, cache, canned table, remote model, fallback).
type Answer struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Sources    []string `json:"sources"`
	Confidence float64  `json:"confidence"`
	Language   string   `json:"language"`
	FromCache  bool     `json:"from_cache"`
	IsOffline  bool     `json:"is_offline"`
	IsError    bool     `json:"is_error"`
	// Timestamp is epoch milliseconds at resolution time
	Timestamp int64 `json:"timestamp"`
}

// CacheEntry is one stored Q&A pair in the offline cache.
type CacheEntry struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Language   string   `json:"language"`
	Sources    []string `json:"sources"`
	Confidence float64  `json:"confidence"`
	// CachedAt is epoch milliseconds at insertion time
	CachedAt int64 `json:"cached_at"`
}
