package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spendwise/spendwise_backend/internal/apperrors"
	"github.com/spendwise/spendwise_backend/internal/core/domain"
	portssvc "github.com/spendwise/spendwise_backend/internal/core/ports/services"
	"github.com/spendwise/spendwise_backend/internal/core/services"
	"github.com/spendwise/spendwise_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockCategoryRepository is a mock type for the CategoryRepository interface.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  portssvc.CategorySvcFacade
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{Name: "Groceries", Color: "#4caf50", Icon: "🛒"}

	suite.mockRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(category)
	suite.NotEmpty(category.CategoryID)
	suite.Equal("Groceries", category.Name)
	suite.WithinDuration(time.Now(), category.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{Name: "Groceries"}

	suite.mockRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).Return(apperrors.ErrDuplicate).Once()

	category, err := suite.service.CreateCategory(ctx, req)

	suite.Require().Error(err)
	suite.Nil(category)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_PartialUpdate() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	existing := &domain.Category{
		CategoryID: categoryID,
		Name:       "Groceries",
		Color:      "#4caf50",
		Icon:       "🛒",
	}
	newColor := "#ff9800"

	suite.mockRepo.On("FindCategoryByID", ctx, categoryID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "Groceries" && c.Color == newColor && c.Icon == "🛒"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCategory(ctx, categoryID, dto.UpdateCategoryRequest{Color: &newColor})

	suite.Require().NoError(err)
	suite.Equal(newColor, updated.Color)
	suite.Equal("Groceries", updated.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_NotFound() {
	ctx := context.Background()
	categoryID := uuid.NewString()

	suite.mockRepo.On("FindCategoryByID", ctx, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateCategory(ctx, categoryID, dto.UpdateCategoryRequest{})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	suite.mockRepo.On("DeleteCategory", ctx, categoryID).Return(nil).Once()

	err := suite.service.DeleteCategory(ctx, categoryID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
