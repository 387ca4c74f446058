package session

import (
	"context"
	"errors"

	"github.com/onja-org/w2-scss-lab/internal/models"
)

var ErrSessionNotFound = errors.New("widget session not found")

// Store keeps widget states by session id.
type Store interface {
	Save(ctx context.Context, id string, state models.WidgetState) error
	Load(ctx context.Context, id string) (models.WidgetState, error)
	Delete(ctx context.Context, id string) error
}
