package providers

import (
	"context"

	"github.com/krishirakshak/backend/internal/domain/entities"
)

// AnswerProvider defines the interface for remote text-completion backends
// that answer safety questions.
type AnswerProvider interface {
	// Ask resolves a free-text question in the given language ("hi" or "en")
	Ask(ctx context.Context, question, language string) (*entities.Answer, error)
}

// HazardInterpreter turns detected image labels into a structured hazard
// report using a remote model.
type HazardInterpreter interface {
	InterpretHazards(ctx context.Context, labels []entities.Label, language string) (*entities.HazardReport, error)
}
