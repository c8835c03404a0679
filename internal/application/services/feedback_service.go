package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/krishirakshak/backend/internal/domain/entities"
	"github.com/krishirakshak/backend/internal/domain/providers"
)

const (
	feedbackKey      = "kr_feedback"
	maxFeedbackItems = 100
)

// FeedbackService handles answer feedback submissions.
type FeedbackService struct {
	kv providers.KeyValueStore

	mu  sync.Mutex
	now func() time.Time
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(kv providers.KeyValueStore) *FeedbackService {
	return &FeedbackService{
		kv:  kv,
		now: time.Now,
	}
}

// Create stores feedback, newest first, capped at the size bound.
func (s *FeedbackService) Create(ctx context.Context, feedback *entities.Feedback) error {
	if feedback.ID == "" {
		feedback.ID = uuid.New().String()
	}
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = s.now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read(ctx)
	if err != nil {
		return err
	}

	items = append([]entities.Feedback{*feedback}, items...)
	if len(items) > maxFeedbackItems {
		items = items[:maxFeedbackItems]
	}

	return s.write(ctx, items)
}

// List returns stored feedback newest first, capped at limit. A limit of 0
// or less returns everything.
func (s *FeedbackService) List(ctx context.Context, limit int) ([]entities.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *FeedbackService) read(ctx context.Context) ([]entities.Feedback, error) {
	raw, err := s.kv.Get(ctx, feedbackKey)
	if err != nil {
		if err == providers.ErrKeyNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("reading feedback: %w", err)
	}

	var items []entities.Feedback
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, nil
	}
	return items, nil
}

func (s *FeedbackService) write(ctx context.Context, items []entities.Feedback) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding feedback: %w", err)
	}
	if err := s.kv.Set(ctx, feedbackKey, raw); err != nil {
		return fmt.Errorf("writing feedback: %w", err)
	}
	return nil
}
