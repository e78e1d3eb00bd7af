// Package accounting is the client for account and transaction screens.
package accounting

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/stocklane/stocklane/internal/platform/api"
)

// Account mirrors the backend's ledger account record.
type Account struct {
	ID      int64   `json:"accountID"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// Transaction mirrors one account movement.
type Transaction struct {
	ID        int64   `json:"transactionID"`
	AccountID int64   `json:"accountID"`
	Account   string  `json:"account"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Note      string  `json:"note"`
	Date      string  `json:"date"`
}

// SaveTransactionRequest is the body for transaction create calls.
type SaveTransactionRequest struct {
	AccountID int64   `json:"accountID" validate:"required,gt=0"`
	Type      string  `json:"type" validate:"required,oneof=deposit withdraw transfer"`
	ToAccount int64   `json:"toAccountID" validate:"required_if=Type transfer"`
	Amount    float64 `json:"amount" validate:"gt=0"`
	Note      string  `json:"note"`
	Date      string  `json:"date" validate:"required"`
}

type Service struct {
	client   *api.Client
	validate *validator.Validate
}

func NewService(client *api.Client) *Service {
	return &Service{client: client, validate: validator.New()}
}

// ListAccounts fetches one page of ledger accounts.
func (s *Service) ListAccounts(ctx context.Context, page, perPage int, term string) ([]Account, api.Pagination, error) {
	var rows []Account
	total, err := s.client.List(ctx, "account", page, perPage, term, &rows)
	if err != nil {
		return nil, api.Pagination{}, err
	}
	return rows, api.NewPagination(page, perPage, total), nil
}

// ListTransactions fetches one page of account movements.
func (s *Service) ListTransactions(ctx context.Context, page, perPage int, term string) ([]Transaction, api.Pagination, error) {
	var rows []Transaction
	total, err := s.client.List(ctx, "transaction", page, perPage, term, &rows)
	if err != nil {
		return nil, api.Pagination{}, err
	}
	return rows, api.NewPagination(page, perPage, total), nil
}

// CreateTransaction records a movement and returns the server message.
func (s *Service) CreateTransaction(ctx context.Context, req SaveTransactionRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", err
	}
	return s.client.Post(ctx, "transaction/create", req, nil)
}

// DeleteTransaction removes a movement by id.
func (s *Service) DeleteTransaction(ctx context.Context, id int64) (string, error) {
	return s.client.Delete(ctx, fmt.Sprintf("transaction/delete/%d", id))
}
