// Package expenses is the client for the expense entry and list screens.
package expenses

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/stocklane/stocklane/internal/platform/api"
)

// Expense mirrors the backend's expense record.
type Expense struct {
	ID       int64   `json:"expenseID"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note"`
	Date     string  `json:"date"`
}

// SaveExpenseRequest is the body for expense create/update calls.
type SaveExpenseRequest struct {
	ID       int64   `json:"expenseID,omitempty"`
	Name     string  `json:"name" validate:"required"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount" validate:"gt=0"`
	Note     string  `json:"note"`
	Date     string  `json:"date" validate:"required"`
}

type Service struct {
	client   *api.Client
	validate *validator.Validate
}

func NewService(client *api.Client) *Service {
	return &Service{client: client, validate: validator.New()}
}

// List fetches one page of expenses.
func (s *Service) List(ctx context.Context, page, perPage int, term string) ([]Expense, api.Pagination, error) {
	var rows []Expense
	total, err := s.client.List(ctx, "expense", page, perPage, term, &rows)
	if err != nil {
		return nil, api.Pagination{}, err
	}
	return rows, api.NewPagination(page, perPage, total), nil
}

// Create records an expense and returns the server message.
func (s *Service) Create(ctx context.Context, req SaveExpenseRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", err
	}
	return s.client.Post(ctx, "expense/create", req, nil)
}

// Update edits an existing expense.
func (s *Service) Update(ctx context.Context, req SaveExpenseRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", err
	}
	if req.ID <= 0 {
		return "", fmt.Errorf("expense id required for update")
	}
	return s.client.Post(ctx, "expense/update", req, nil)
}

// Delete removes an expense by id.
func (s *Service) Delete(ctx context.Context, id int64) (string, error) {
	return s.client.Delete(ctx, fmt.Sprintf("expense/delete/%d", id))
}
