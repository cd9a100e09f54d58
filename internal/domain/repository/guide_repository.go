package repository

import (
	"context"

	"github.com/navigation-microservice/internal/domain"
)

// GuideTextRepository turns a checkpoint guide context into user-facing
// Korean guidance text.
type GuideTextRepository interface {
	Render(ctx context.Context, question string, gc domain.GuideContext) (string, error)
}
