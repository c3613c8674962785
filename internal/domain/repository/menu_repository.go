package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mekdahl/barkassa-api/internal/domain/entity"
)

// MenuRepository defines persistence for the menu catalog.
type MenuRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	GetByName(ctx context.Context, name string) (*entity.MenuItem, error)
	// List returns the whole catalog ordered by category then name.
	List(ctx context.Context) ([]entity.MenuItem, error)
}
