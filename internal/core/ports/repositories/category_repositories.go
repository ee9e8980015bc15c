package repositories

import (
	"context"

	"github.com/spendwise/spendwise_backend/internal/core/domain"
)

// CategoryRepository persists display categories. Categories never affect
// aggregation; the engine only hands them back for labelling.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
}
