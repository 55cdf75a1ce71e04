package dto

import (
	"time"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
)

// CreateAccountRequest defines the data needed to register an account.
type CreateAccountRequest struct {
	Code        string `json:"code" binding:"required,max=20"`
	Name        string `json:"name" binding:"required,max=255"`
	AccountType string `json:"accountType" binding:"required"`
	Scheme      string `json:"scheme" binding:"omitempty,max=10"`
	IsCash      bool   `json:"isCash"`
	IsEquity    bool   `json:"isEquity"`
}

// ToInput converts the request to the core input type.
func (r CreateAccountRequest) ToInput() domain.CreateAccountInput {
	return domain.CreateAccountInput{
		Code:        r.Code,
		Name:        r.Name,
		AccountType: domain.ParseAccountType(r.AccountType),
		Scheme:      r.Scheme,
		IsCash:      r.IsCash,
		IsEquity:    r.IsEquity,
	}
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   string             `json:"accountID"`
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	Scheme      string             `json:"scheme"`
	IsCash      bool               `json:"isCash"`
	IsEquity    bool               `json:"isEquity"`
	CreatedAt   time.Time          `json:"createdAt"`
	CreatedBy   string             `json:"createdBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   acc.AccountID,
		Code:        acc.Code,
		Name:        acc.Name,
		AccountType: acc.AccountType,
		Scheme:      acc.Scheme,
		IsCash:      acc.IsCash,
		IsEquity:    acc.IsEquity,
		CreatedAt:   acc.CreatedAt,
		CreatedBy:   acc.CreatedBy,
	}
}

// ListAccountsResponse wraps the chart of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToListAccountsResponse converts a slice of domain.Account to the list response
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: res}
}
