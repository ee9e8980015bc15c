package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise_backend/internal/apperrors"
	"github.com/spendwise/spendwise_backend/internal/core/domain"
	portssvc "github.com/spendwise/spendwise_backend/internal/core/ports/services"
	"github.com/spendwise/spendwise_backend/internal/dto"
	"github.com/spendwise/spendwise_backend/internal/handlers"
	"github.com/spendwise/spendwise_backend/pkg/config"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}
func (m *MockEntryService) ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.Entry, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}
func (m *MockEntryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*dto.CreateEntryResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreateEntryResult), args.Error(1)
}
func (m *MockEntryService) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}
func (m *MockEntryService) ReplaceAllEntries(ctx context.Context, req dto.ReplaceEntriesRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.EntrySvcFacade = (*MockEntryService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, pin string) (string, error) {
	args := m.Called(ctx, pin)
	return args.String(0), args.Error(1)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)

// --- Test Suite ---
type EntryHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockEntryService *MockEntryService
	mockAuthService  *MockAuthService
	jwtSecret        string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *EntryHandlerTestSuite) generateTestToken() string {
	claims := jwt.RegisteredClaims{
		Issuer:    "spendwise-test",
		Subject:   "owner",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *EntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockEntryService = new(MockEntryService)
	suite.mockAuthService = new(MockAuthService)

	// IsProduction skips swagger registration; the rest of the container can
	// stay nil because routing never touches services until a request hits.
	cfg := &config.Config{
		JWTSecret:      suite.jwtSecret,
		LoginRateLimit: "10-M",
		IsProduction:   true,
	}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Entry: suite.mockEntryService,
		Auth:  suite.mockAuthService,
	})
}

func (suite *EntryHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *EntryHandlerTestSuite) TestCreateEntry_RequiresToken() {
	body := bytes.NewBufferString(`{"amount":"200","type":"expense","date":"2024-01-02"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/entries", body)
	req.Header.Set("Content-Type", "application/json")

	w := suite.serve(req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockEntryService.AssertNotCalled(suite.T(), "CreateEntry")
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_Success() {
	entryDate := domain.MustParseDate("2024-01-02")
	stored := domain.Entry{
		EntryID: uuid.NewString(),
		Amount:  decimal.NewFromInt(200),
		Type:    domain.EntryExpense,
		Mode:    domain.ModeCash,
		Date:    entryDate,
	}
	result := &dto.CreateEntryResult{
		Entry:  stored,
		Streak: domain.Streak{CurrentStreak: 3, LongestStreak: 5, LastEntryDate: entryDate},
		NewlyUnlocked: []domain.AchievementStatus{
			{ID: "first_step", Title: "First Step", Unlocked: true},
		},
	}

	suite.mockEntryService.On("CreateEntry",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(req dto.CreateEntryRequest) bool {
			return req.Type == domain.EntryExpense && req.Mode == domain.ModeCash &&
				req.Amount.Equal(decimal.NewFromInt(200)) && req.Date == entryDate
		}),
	).Return(result, nil).Once()

	body := bytes.NewBufferString(`{"amount":"200","type":"expense","mode":"cash","date":"2024-01-02"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/entries", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())

	w := suite.serve(req)

	suite.Equal(http.StatusCreated, w.Code)

	var responseBody struct {
		Entry         dto.EntryResponse          `json:"entry"`
		Streak        dto.StreakResponse         `json:"streak"`
		NewlyUnlocked []domain.AchievementStatus `json:"newlyUnlocked"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Equal(stored.EntryID, responseBody.Entry.ID)
	suite.Equal(3, responseBody.Streak.CurrentStreak)
	suite.Len(responseBody.NewlyUnlocked, 1)
	suite.Equal("first_step", responseBody.NewlyUnlocked[0].ID)

	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_ValidationError() {
	suite.mockEntryService.On("CreateEntry",
		mock.AnythingOfType("*context.valueCtx"),
		mock.AnythingOfType("dto.CreateEntryRequest"),
	).Return(nil, fmt.Errorf("adjustment entries need a direction: %w", apperrors.ErrValidation)).Once()

	body := bytes.NewBufferString(`{"amount":"50","type":"balance_adjustment","mode":"upi","date":"2024-01-05"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/entries", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())

	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestListEntries_CustomRange() {
	from := domain.MustParseDate("2024-01-01")
	to := domain.MustParseDate("2024-01-31")
	expected := []domain.Entry{
		{EntryID: uuid.NewString(), Amount: decimal.NewFromInt(500), Type: domain.EntryIncome, Mode: domain.ModeUPI, Date: from},
		{EntryID: uuid.NewString(), Amount: decimal.NewFromInt(200), Type: domain.EntryExpense, Mode: domain.ModeCash, Date: from.AddDays(1)},
	}

	suite.mockEntryService.On("ListEntries",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(p dto.ListEntriesParams) bool {
			return p.Range != nil && p.Range.Start == from && p.Range.End == to && p.Period == nil
		}),
	).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/entries?from=2024-01-01&to=2024-01-31", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())

	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody []dto.EntryResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err)
	suite.Len(responseBody, 2)
	suite.Equal(expected[0].EntryID, responseBody[0].ID)
	suite.Equal(expected[1].EntryID, responseBody[1].ID)

	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestListEntries_HalfRangeRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/entries?from=2024-01-01", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())

	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEntryService.AssertNotCalled(suite.T(), "ListEntries")
}

func (suite *EntryHandlerTestSuite) TestGetEntry_NotFound() {
	entryID := uuid.NewString()
	suite.mockEntryService.On("GetEntryByID",
		mock.AnythingOfType("*context.valueCtx"),
		entryID,
	).Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/entries/"+entryID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())

	w := suite.serve(req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestDeleteEntry_Success() {
	entryID := uuid.NewString()
	suite.mockEntryService.On("DeleteEntry",
		mock.AnythingOfType("*context.valueCtx"),
		entryID,
	).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/entries/"+entryID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())

	w := suite.serve(req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestReplaceEntries_ReturnsImportedCount() {
	suite.mockEntryService.On("ReplaceAllEntries",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(req dto.ReplaceEntriesRequest) bool {
			return len(req.Entries) == 2
		}),
	).Return(2, nil).Once()

	body := bytes.NewBufferString(`{"entries":[` +
		`{"id":"e1","amount":"500","type":"income","mode":"upi","date":"2024-01-01"},` +
		`{"amount":"200","type":"expense","mode":"cash","date":"2024-01-02"}]}`)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/entries", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())

	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody map[string]int
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err)
	suite.Equal(2, responseBody["imported"])

	suite.mockEntryService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestEntryHandler(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}
