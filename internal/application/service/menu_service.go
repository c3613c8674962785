package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mekdahl/barkassa-api/internal/domain/entity"
	"github.com/mekdahl/barkassa-api/internal/domain/enum"
	"github.com/mekdahl/barkassa-api/internal/domain/repository"
	"github.com/mekdahl/barkassa-api/pkg/apperror"
)

// MenuService manages the menu catalog, the source of truth for pricing
// at sale time.
type MenuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// MenuItemInput carries the writable fields of a menu item.
type MenuItemInput struct {
	Name      string
	Price     int64
	Category  string
	Available *bool
	Special   bool
}

func (i *MenuItemInput) validate() (enum.Category, error) {
	i.Name = strings.TrimSpace(i.Name)
	if i.Name == "" {
		return "", apperror.NewBadRequestError("Item name is required")
	}
	if i.Price < 0 {
		return "", apperror.NewBadRequestError("Item price cannot be negative")
	}
	category, err := enum.ParseCategory(i.Category)
	if err != nil {
		return "", apperror.NewBadRequestError(err.Error())
	}
	return category, nil
}

// CreateItem adds a new item to the catalog. Names are unique.
func (s *MenuService) CreateItem(ctx context.Context, input *MenuItemInput) (*entity.MenuItem, error) {
	category, err := input.validate()
	if err != nil {
		return nil, err
	}

	existing, err := s.menuRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An item with this name already exists")
	}

	item := &entity.MenuItem{
		Name:      input.Name,
		Price:     input.Price,
		Category:  category,
		Available: input.Available,
		Special:   input.Special,
	}
	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem updates a catalog item. Past sale rows keep their
// snapshots; only future sales see the change.
func (s *MenuService) UpdateItem(ctx context.Context, id uuid.UUID, input *MenuItemInput) (*entity.MenuItem, error) {
	category, err := input.validate()
	if err != nil {
		return nil, err
	}

	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	if item.Name != input.Name {
		existing, err := s.menuRepo.GetByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("An item with this name already exists")
		}
	}

	item.Name = input.Name
	item.Price = input.Price
	item.Category = category
	item.Available = input.Available
	item.Special = input.Special

	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetAvailability flips an item's availability flag.
func (s *MenuService) SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	item.Available = &available
	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes a catalog item. Sale history is unaffected since
// rows carry snapshots.
func (s *MenuService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.menuRepo.Delete(ctx, id)
}

// GetItem retrieves a catalog item by ID.
func (s *MenuService) GetItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// ListItems returns the full catalog.
func (s *MenuService) ListItems(ctx context.Context) ([]entity.MenuItem, error) {
	return s.menuRepo.List(ctx)
}
