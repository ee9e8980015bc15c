package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise_backend/internal/core/domain"
	portssvc "github.com/spendwise/spendwise_backend/internal/core/ports/services"
	"github.com/spendwise/spendwise_backend/internal/core/services"
	"github.com/stretchr/testify/suite"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockEntryRepo *MockEntryRepository
	mockStateRepo *MockStateRepository
	service       portssvc.LedgerSvc
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockStateRepo = new(MockStateRepository)
	suite.service = services.NewLedgerService(suite.mockEntryRepo, suite.mockStateRepo)
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestPeriodSummary_MonthlyWindow() {
	ctx := context.Background()
	wantRange := domain.DateRange{
		Start: domain.MustParseDate("2024-06-01"),
		End:   domain.MustParseDate("2024-06-30"),
	}
	suite.mockEntryRepo.On("ListEntriesBetween", ctx, wantRange).Return([]domain.Entry{
		{Amount: decimal.NewFromInt(500), Type: domain.EntryIncome, Mode: domain.ModeUPI, Date: domain.MustParseDate("2024-06-03")},
		{Amount: decimal.NewFromInt(200), Type: domain.EntryExpense, Mode: domain.ModeCash, Date: domain.MustParseDate("2024-06-04")},
	}, nil).Once()

	summary, err := suite.service.PeriodSummary(ctx, domain.PeriodMonthly, domain.MustParseDate("2024-06-12"))

	suite.Require().NoError(err)
	suite.Equal(wantRange, summary.Range)
	suite.True(summary.Totals.Expense.Equal(decimal.NewFromInt(200)))
	suite.True(summary.Totals.Income.Equal(decimal.NewFromInt(500)))
	suite.True(summary.Totals.Balance.Equal(decimal.NewFromInt(300)))
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRangeSummary_RepoError() {
	ctx := context.Background()
	r := domain.DateRange{
		Start: domain.MustParseDate("2024-01-01"),
		End:   domain.MustParseDate("2024-01-31"),
	}
	suite.mockEntryRepo.On("ListEntriesBetween", ctx, r).Return(nil, context.DeadlineExceeded).Once()

	summary, err := suite.service.RangeSummary(ctx, r)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, context.DeadlineExceeded)
}

func (suite *LedgerServiceTestSuite) TestCurrentBalances_BothRails() {
	ctx := context.Background()
	suite.mockStateRepo.On("GetBaseline", ctx).Return(domain.Baseline{
		Bank: decimalPtr(decimal.NewFromInt(1000)),
		Cash: decimalPtr(decimal.NewFromInt(300)),
	}, nil).Once()
	suite.mockEntryRepo.On("ListEntries", ctx).Return([]domain.Entry{
		{Amount: decimal.NewFromInt(500), Type: domain.EntryIncome, Mode: domain.ModeUPI, Date: domain.MustParseDate("2024-06-03")},
		{Amount: decimal.NewFromInt(200), Type: domain.EntryExpense, Mode: domain.ModeCash, Date: domain.MustParseDate("2024-06-04")},
	}, nil).Once()

	balances, err := suite.service.CurrentBalances(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(balances.Bank)
	suite.Require().NotNil(balances.Cash)
	suite.True(balances.Bank.Equal(decimal.NewFromInt(1500)))
	suite.True(balances.Cash.Equal(decimal.NewFromInt(100)))
}

func (suite *LedgerServiceTestSuite) TestCurrentBalances_UnsetBaselineYieldsNil() {
	ctx := context.Background()
	suite.mockStateRepo.On("GetBaseline", ctx).Return(domain.Baseline{
		Cash: decimalPtr(decimal.NewFromInt(300)),
	}, nil).Once()
	suite.mockEntryRepo.On("ListEntries", ctx).Return([]domain.Entry{
		{Amount: decimal.NewFromInt(500), Type: domain.EntryIncome, Mode: domain.ModeUPI, Date: domain.MustParseDate("2024-06-03")},
	}, nil).Once()

	balances, err := suite.service.CurrentBalances(ctx)

	suite.Require().NoError(err)
	suite.Nil(balances.Bank)
	suite.Require().NotNil(balances.Cash)
	suite.True(balances.Cash.Equal(decimal.NewFromInt(300)))
}

func (suite *LedgerServiceTestSuite) TestSetBaseline() {
	ctx := context.Background()
	b := domain.Baseline{Bank: decimalPtr(decimal.NewFromInt(2500))}
	suite.mockStateRepo.On("SaveBaseline", ctx, b).Return(nil).Once()

	err := suite.service.SetBaseline(ctx, b)

	suite.Require().NoError(err)
	suite.mockStateRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetBaseline() {
	ctx := context.Background()
	suite.mockStateRepo.On("GetBaseline", ctx).Return(domain.Baseline{}, nil).Once()

	baseline, err := suite.service.GetBaseline(ctx)

	suite.Require().NoError(err)
	suite.Nil(baseline.Bank)
	suite.Nil(baseline.Cash)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
