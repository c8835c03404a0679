package offline

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/krishirakshak/backend/internal/domain/entities"
	"github.com/krishirakshak/backend/internal/domain/providers"
)

const hazardHistoryKey = "kr_hazard_history"

// HazardRecord is one stored hazard analysis with its save time.
type HazardRecord struct {
	Report  entities.HazardReport `json:"report"`
	SavedAt int64                 `json:"saved_at"`
}

// HazardHistory keeps the most recent hazard analyses, newest first, capped
// at a fixed size.
type HazardHistory struct {
	kv       providers.KeyValueStore
	maxItems int

	mu  sync.Mutex
	now func() time.Time
}

// NewHazardHistory creates a history bounded at maxItems (30 when <= 0).
func NewHazardHistory(kv providers.KeyValueStore, maxItems int) *HazardHistory {
	if maxItems <= 0 {
		maxItems = 30
	}
	return &HazardHistory{
		kv:       kv,
		maxItems: maxItems,
		now:      time.Now,
	}
}

// Save prepends a report and truncates to the size bound.
func (h *HazardHistory) Save(ctx context.Context, report *entities.HazardReport) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	records, err := h.read(ctx)
	if err != nil {
		return err
	}

	records = append([]HazardRecord{{
		Report:  *report,
		SavedAt: h.now().UnixMilli(),
	}}, records...)

	if len(records) > h.maxItems {
		records = records[:h.maxItems]
	}

	return h.write(ctx, records)
}

// List returns stored analyses newest first, capped at limit. A limit of 0
// or less returns everything.
func (h *HazardHistory) List(ctx context.Context, limit int) ([]HazardRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	records, err := h.read(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Stats summarizes stored analyses by overall risk.
func (h *HazardHistory) Stats(ctx context.Context) (map[entities.Severity]int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	records, err := h.read(ctx)
	if err != nil {
		return nil, err
	}

	stats := make(map[entities.Severity]int)
	for _, r := range records {
		stats[r.Report.OverallRisk]++
	}
	return stats, nil
}

func (h *HazardHistory) read(ctx context.Context) ([]HazardRecord, error) {
	raw, err := h.kv.Get(ctx, hazardHistoryKey)
	if err != nil {
		if err == providers.ErrKeyNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("reading hazard history: %w", err)
	}

	var records []HazardRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, nil
	}
	return records, nil
}

func (h *HazardHistory) write(ctx context.Context, records []HazardRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding hazard history: %w", err)
	}
	if err := h.kv.Set(ctx, hazardHistoryKey, raw); err != nil {
		return fmt.Errorf("writing hazard history: %w", err)
	}
	return nil
}
