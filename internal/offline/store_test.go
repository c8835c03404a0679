package offline

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/krishirakshak/backend/internal/adapters/cache"
	"github.com/krishirakshak/backend/internal/domain/entities"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(cache.NewMemoryAdapter(), DefaultStoreConfig())
}

func TestStore_PutAndSearch(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.Put(ctx, "How to spray pesticides safely?",
		"Wear gloves, mask and goggles. Spray downwind.",
		"en", []string{"ICAR"}, 0.95)
	assert.NoError(t, err)

	hit, err := s.Search(ctx, "spray pesticides")
	assert.NoError(t, err)
	assert.NotNil(t, hit)
	assert.Equal(t, "How to spray pesticides safely?", hit.Question)
	assert.Equal(t, 0.95, hit.Confidence)
}

func TestStore_SearchMiss(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	assert.NoError(t, s.Put(ctx, "Tractor safety?", "Wear a seatbelt.", "en", nil, 0.9))

	// One of four significant words matches: ratio 0.25 is below threshold
	hit, err := s.Search(ctx, "tractor insurance premium rates")
	assert.NoError(t, err)
	assert.Nil(t, hit)
}

func TestStore_SearchIgnoresShortWords(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	assert.NoError(t, s.Put(ctx, "Snake bite first aid", "Stay calm, go to hospital.", "en", nil, 0.94))

	// "to" and "do" are dropped; "snake" and "bite" both match
	hit, err := s.Search(ctx, "to do snake bite")
	assert.NoError(t, err)
	assert.NotNil(t, hit)

	// Query of only short words never matches
	hit, err = s.Search(ctx, "a an is")
	assert.NoError(t, err)
	assert.Nil(t, hit)
}

func TestStore_SearchEmptyQuery(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	hit, err := s.Search(ctx, "   ")
	assert.NoError(t, err)
	assert.Nil(t, hit)
}

func TestStore_PutDeduplicatesCaseInsensitively(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	assert.NoError(t, s.Put(ctx, "Tractor Safety?", "old answer", "en", nil, 0.8))
	assert.NoError(t, s.Put(ctx, "other question about crops", "other", "en", nil, 0.8))
	assert.NoError(t, s.Put(ctx, "tractor safety?", "new answer", "en", nil, 0.9))

	entries, err := s.History(ctx, 0)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "tractor safety?", entries[0].Question)
	assert.Equal(t, "new answer", entries[0].Answer)
}

func TestStore_PutEnforcesSizeBound(t *testing.T) {
	ctx := context.Background()
	s := NewStore(cache.NewMemoryAdapter(), StoreConfig{MaxItems: 3, MaxAge: time.Hour})

	for i := 0; i < 5; i++ {
		q := fmt.Sprintf("question number %d about farming", i)
		assert.NoError(t, s.Put(ctx, q, "answer", "en", nil, 0.8))
	}

	entries, err := s.History(ctx, 0)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	// Newest first, oldest two evicted
	assert.Equal(t, "question number 4 about farming", entries[0].Question)
	assert.Equal(t, "question number 2 about farming", entries[2].Question)
}

func TestStore_PruneExpired(t *testing.T) {
	ctx := context.Background()
	s := NewStore(cache.NewMemoryAdapter(), StoreConfig{MaxItems: 10, MaxAge: 30 * 24 * time.Hour})

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	assert.NoError(t, s.Put(ctx, "stale question about storage", "answer", "en", nil, 0.8))

	s.now = func() time.Time { return base.Add(20 * 24 * time.Hour) }
	assert.NoError(t, s.Put(ctx, "fresh question about spraying", "answer", "en", nil, 0.9))

	s.now = func() time.Time { return base.Add(35 * 24 * time.Hour) }
	removed, err := s.PruneExpired(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, removed)

	entries, err := s.History(ctx, 0)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "fresh question about spraying", entries[0].Question)
}

func TestStore_Size(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	info, err := s.Size(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, info.ItemCount)

	assert.NoError(t, s.Put(ctx, "question about wheat dust", "wear a mask", "en", nil, 0.9))

	info, err = s.Size(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, info.ItemCount)
	assert.Greater(t, info.Bytes, 0)
	assert.NotEmpty(t, info.Formatted)
}

func TestHazardHistory_SaveAndList(t *testing.T) {
	ctx := context.Background()
	h := NewHazardHistory(cache.NewMemoryAdapter(), 2)

	for i := 0; i < 3; i++ {
		report := &entities.HazardReport{
			OverallRisk: entities.SeverityHigh,
			HazardCount: i,
			Source:      "rules",
		}
		assert.NoError(t, h.Save(ctx, report))
	}

	records, err := h.List(ctx, 0)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	// Newest first
	assert.Equal(t, 2, records[0].Report.HazardCount)
	assert.Equal(t, 1, records[1].Report.HazardCount)
}

func TestHazardHistory_Stats(t *testing.T) {
	ctx := context.Background()
	h := NewHazardHistory(cache.NewMemoryAdapter(), 10)

	assert.NoError(t, h.Save(ctx, &entities.HazardReport{OverallRisk: entities.SeverityCritical}))
	assert.NoError(t, h.Save(ctx, &entities.HazardReport{OverallRisk: entities.SeverityCritical}))
	assert.NoError(t, h.Save(ctx, &entities.HazardReport{OverallRisk: entities.SeverityLow}))

	stats, err := h.Stats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, stats[entities.SeverityCritical])
	assert.Equal(t, 1, stats[entities.SeverityLow])
}
