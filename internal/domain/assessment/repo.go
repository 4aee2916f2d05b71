package assessment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Assessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error)
	ListByUser(ctx context.Context, userID uuid.UUID, domain Domain, limit, offset int) ([]*Assessment, int, error)
}
