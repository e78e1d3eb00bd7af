// Package contacts is the client for customer, supplier and dealer
// endpoints.
package contacts

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"

	"github.com/stocklane/stocklane/internal/platform/api"
)

const searchPageSize = 10

// SaveContactRequest is the body for contact create/update calls.
type SaveContactRequest struct {
	ID      int64       `json:"contactID,omitempty"`
	Name    string      `json:"name" validate:"required"`
	Phone   string      `json:"phone" validate:"required"`
	Address string      `json:"address"`
	Type    ContactType `json:"type" validate:"required,oneof=customer supplier dealer"`
}

type Service struct {
	client   *api.Client
	validate *validator.Validate
	search   singleflight.Group
}

func NewService(client *api.Client) *Service {
	return &Service{
		client:   client,
		validate: validator.New(),
	}
}

// List fetches one page of contacts of the given type.
func (s *Service) List(ctx context.Context, typ ContactType, page, perPage int, term string) ([]Contact, api.Pagination, error) {
	var result []Contact
	total, err := s.client.List(ctx, "contact/"+string(typ), page, perPage, term, &result)
	if err != nil {
		return nil, api.Pagination{}, err
	}
	return result, api.NewPagination(page, perPage, total), nil
}

// Search backs contact selection on the transaction screens. Identical
// concurrent terms collapse into one request.
func (s *Service) Search(ctx context.Context, typ ContactType, term string) ([]Contact, error) {
	v, err, _ := s.search.Do(string(typ)+":"+term, func() (any, error) {
		var result []Contact
		if _, err := s.client.List(ctx, "contact/"+string(typ), 1, searchPageSize, term, &result); err != nil {
			return nil, err
		}
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Contact), nil
}

// Get looks up one contact by id, including its current balance.
func (s *Service) Get(ctx context.Context, id int64) (*Contact, error) {
	var contact Contact
	if err := s.client.Get(ctx, fmt.Sprintf("contact/view/%d", id), &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// Create registers a contact and returns the server message.
func (s *Service) Create(ctx context.Context, req SaveContactRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", err
	}
	return s.client.Post(ctx, "contact/create", req, nil)
}

// Update edits an existing contact.
func (s *Service) Update(ctx context.Context, req SaveContactRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", err
	}
	if req.ID <= 0 {
		return "", fmt.Errorf("contact id required for update")
	}
	return s.client.Post(ctx, "contact/update", req, nil)
}

// Delete removes a contact by id.
func (s *Service) Delete(ctx context.Context, id int64) (string, error) {
	return s.client.Delete(ctx, fmt.Sprintf("contact/delete/%d", id))
}
