package services

import (
	"context"

	"github.com/spendwise/spendwise_backend/internal/core/domain"
	"github.com/spendwise/spendwise_backend/internal/dto"
)

// CategorySvcFacade manages display categories. Aggregation never consults
// them; they exist purely for labelling entries in the UI.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}
