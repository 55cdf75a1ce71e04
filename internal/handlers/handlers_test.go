package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	portssvc "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/services"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/dto"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/handlers"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/middleware"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/platform/config"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, input domain.CreateAccountInput, actor string) (*domain.Account, error) {
	args := m.Called(ctx, input, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID string, actor string) error {
	return m.Called(ctx, accountID, actor).Error(0)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var next *string
	if v := args.Get(1); v != nil {
		next = v.(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), next, args.Error(2)
}

func (m *MockJournalService) IterateLines(ctx context.Context, filter domain.LineFilter) iter.Seq2[domain.PostedLine, error] {
	return func(yield func(domain.PostedLine, error) bool) {}
}

func (m *MockJournalService) PostEntry(ctx context.Context, input domain.PostEntryInput, actor string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, input, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) DeleteEntry(ctx context.Context, entryID string, actor string) error {
	return m.Called(ctx, entryID, actor).Error(0)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock KPIService ---
type MockKPIService struct {
	mock.Mock
}

func (m *MockKPIService) Recalculate(ctx context.Context, year, month int, notes *string, actor string) (*domain.MonthlyKPI, error) {
	args := m.Called(ctx, year, month, notes, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyKPI), args.Error(1)
}

func (m *MockKPIService) GetKPI(ctx context.Context, year, month int) (*domain.MonthlyKPI, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyKPI), args.Error(1)
}

func (m *MockKPIService) ListKPIs(ctx context.Context) ([]domain.MonthlyKPI, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyKPI), args.Error(1)
}

var _ portssvc.KPISvcFacade = (*MockKPIService)(nil)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	mockJournalService *MockJournalService
	mockKPIService     *MockKPIService
	jwtSecret          string
	token              string
}

const testActor = "controller@carewave.test"

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	token, err := middleware.IssueToken(suite.jwtSecret, "carewave-test", testActor, time.Hour)
	suite.Require().NoError(err)
	suite.token = token

	suite.mockAccountService = new(MockAccountService)
	suite.mockJournalService = new(MockJournalService)
	suite.mockKPIService = new(MockKPIService)

	cfg := &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true}
	services := &portssvc.ServiceContainer{
		Account: suite.mockAccountService,
		Journal: suite.mockJournalService,
		KPI:     suite.mockKPIService,
	}

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.DiscardHandler)))
	handlers.RegisterRoutes(suite.router, cfg, services, nil)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockAccountService.AssertExpectations(suite.T())
	suite.mockJournalService.AssertExpectations(suite.T())
	suite.mockKPIService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, handlers.APIBasePath+path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealth() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestMissingToken() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, handlers.APIBasePath+"/accounts", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestCreateAccount_Success() {
	now := time.Now().UTC()
	created := &domain.Account{
		AccountID:   "acc-1",
		Code:        "572",
		Name:        "Bank",
		AccountType: domain.Asset,
		Scheme:      "ES",
		IsCash:      true,
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: testActor},
	}
	suite.mockAccountService.On("CreateAccount", mock.Anything, mock.MatchedBy(func(in domain.CreateAccountInput) bool {
		return in.Code == "572" && in.AccountType == domain.Asset && in.IsCash
	}), testActor).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/accounts", dto.CreateAccountRequest{Code: "572", Name: "Bank", AccountType: "Asset", IsCash: true})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("acc-1", resp.AccountID)
	suite.Equal(testActor, resp.CreatedBy)
	suite.True(resp.IsCash)
}

func (suite *HandlerTestSuite) TestCreateAccount_BindingFailure() {
	w := suite.do(http.MethodPost, "/accounts", map[string]any{"name": "No code", "accountType": "asset"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w), "Validation failed")
	suite.Contains(suite.errorBody(w), "Code")
}

func (suite *HandlerTestSuite) TestCreateAccount_Duplicate() {
	suite.mockAccountService.On("CreateAccount", mock.Anything, mock.Anything, testActor).
		Return(nil, fmt.Errorf("%w: 572", apperrors.ErrDuplicateCode)).Once()

	w := suite.do(http.MethodPost, "/accounts", dto.CreateAccountRequest{Code: "572", Name: "Bank", AccountType: "asset"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.errorBody(w), "572")
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountService.On("GetAccountByID", mock.Anything, "missing").
		Return(nil, fmt.Errorf("account missing: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/accounts/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListAccounts_StorageFailureHidesCause() {
	storageErr := apperrors.NewAppError(http.StatusServiceUnavailable, "list accounts", fmt.Errorf("disk I/O error"))
	suite.mockAccountService.On("ListAccounts", mock.Anything).Return(nil, storageErr).Once()

	w := suite.do(http.MethodGet, "/accounts", nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Equal("Failed to list accounts", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestDeleteAccount_InUse() {
	suite.mockAccountService.On("DeleteAccount", mock.Anything, "acc-1", testActor).
		Return(apperrors.ErrAccountInUse).Once()

	w := suite.do(http.MethodDelete, "/accounts/acc-1", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestPostEntry_Success() {
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	entry := &domain.JournalEntry{
		EntryID:     "e-1",
		EntryDate:   date,
		Description: "Capital contribution",
		Journal:     domain.DefaultJournal,
		Scheme:      "ES",
		Lines: []domain.JournalLine{
			{LineID: "l-1", EntryID: "e-1", AccountID: "bank", Position: 0, Debit: decimal.RequireFromString("1000.50")},
			{LineID: "l-2", EntryID: "e-1", AccountID: "capital", Position: 1, Credit: decimal.RequireFromString("1000.50")},
		},
		AuditFields: domain.AuditFields{CreatedBy: testActor},
	}
	suite.mockJournalService.On("PostEntry", mock.Anything, mock.MatchedBy(func(in domain.PostEntryInput) bool {
		return in.Date.Equal(date) && len(in.Lines) == 2 &&
			in.Lines[0].Debit.Equal(decimal.RequireFromString("1000.50")) &&
			in.Lines[1].Credit.Equal(decimal.RequireFromString("1000.50"))
	}), testActor).Return(entry, nil).Once()

	w := suite.do(http.MethodPost, "/entries", dto.PostEntryRequest{
		Date:        "2025-03-14",
		Description: "Capital contribution",
		Lines: []dto.LineRequest{
			{AccountID: "bank", Debit: "1000,50"},
			{AccountID: "capital", Credit: "1000.50"},
		},
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("e-1", resp.EntryID)
	suite.Equal("2025-03-14", resp.Date)
	suite.Equal("1000.50", resp.TotalDebit)
	suite.Equal("1000.50", resp.TotalCredit)
}

func (suite *HandlerTestSuite) TestPostEntry_Unbalanced() {
	suite.mockJournalService.On("PostEntry", mock.Anything, mock.Anything, testActor).
		Return(nil, fmt.Errorf("%w: debits (100.00) != credits (90.00)", apperrors.ErrUnbalancedEntry)).Once()

	w := suite.do(http.MethodPost, "/entries", dto.PostEntryRequest{
		Date: "2025-03-14",
		Lines: []dto.LineRequest{
			{AccountID: "bank", Debit: "100"},
			{AccountID: "capital", Credit: "90"},
		},
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(suite.errorBody(w), "debits (100.00) != credits (90.00)")
}

func (suite *HandlerTestSuite) TestPostEntry_MalformedAmount() {
	w := suite.do(http.MethodPost, "/entries", dto.PostEntryRequest{
		Date: "2025-03-14",
		Lines: []dto.LineRequest{
			{AccountID: "bank", Debit: "ten"},
			{AccountID: "capital", Credit: "10"},
		},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJournalService.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestPostEntry_MalformedDate() {
	w := suite.do(http.MethodPost, "/entries", dto.PostEntryRequest{
		Date: "14/03/2025",
		Lines: []dto.LineRequest{
			{AccountID: "bank", Debit: "10"},
			{AccountID: "capital", Credit: "10"},
		},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestPostEntry_SingleLineRejectedByBinding() {
	w := suite.do(http.MethodPost, "/entries", dto.PostEntryRequest{
		Date:  "2025-03-14",
		Lines: []dto.LineRequest{{AccountID: "bank", Debit: "10"}},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w), "min=2")
}

func (suite *HandlerTestSuite) TestListEntries_PassesPaging() {
	next := "token-2"
	suite.mockJournalService.On("ListEntries", mock.Anything, 10, (*string)(nil)).
		Return([]domain.JournalEntry{{EntryID: "e-2"}}, &next, nil).Once()

	w := suite.do(http.MethodGet, "/entries?limit=10", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Entries, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
}

func (suite *HandlerTestSuite) TestListEntries_LimitOutOfRange() {
	w := suite.do(http.MethodGet, "/entries?limit=1000", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestReport_InvertedPeriod() {
	w := suite.do(http.MethodGet, "/reports/trial-balance?from=2025-02-01&to=2025-01-01", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w), "after")
}

func (suite *HandlerTestSuite) TestRecalculateKPI_Success() {
	kpi := &domain.MonthlyKPI{
		Year:             2025,
		Month:            3,
		BurnRate:         decimal.RequireFromString("1500"),
		RunwayMonths:     decimal.NewNullDecimal(decimal.RequireFromString("5.07")),
		RecurringRevenue: decimal.RequireFromString("600"),
		CalculatedBy:     testActor,
	}
	suite.mockKPIService.On("Recalculate", mock.Anything, 2025, 3, (*string)(nil), testActor).Return(kpi, nil).Once()

	w := suite.do(http.MethodPost, "/kpis/2025/3", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.KPIResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("1500.00", resp.BurnRate)
	suite.Require().NotNil(resp.RunwayMonths)
	suite.Equal("5.07", *resp.RunwayMonths)
}

func (suite *HandlerTestSuite) TestRecalculateKPI_NonNumericMonth() {
	w := suite.do(http.MethodPost, "/kpis/2025/march", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetKPI_NotFound() {
	suite.mockKPIService.On("GetKPI", mock.Anything, 2024, 12).
		Return(nil, fmt.Errorf("kpi 2024-12: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/kpis/2024/12", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
