package providers

import (
	"context"

	"github.com/krishirakshak/backend/internal/domain/entities"
)

// VisionProvider defines the interface for image label detection backends.
type VisionProvider interface {
	// DetectLabels returns the labels found in the image bytes, already
	// filtered by the backend's confidence floor
	DetectLabels(ctx context.Context, image []byte) ([]entities.Label, error)
}
