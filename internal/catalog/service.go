// Package catalog is the client for product, category, brand and unit
// endpoints, including the search backing product selection.
package catalog

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"

	"github.com/stocklane/stocklane/internal/platform/api"
)

const searchPageSize = 10

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

// ListProducts fetches one page of the product list.
func (s *Service) ListProducts(ctx context.Context, page, perPage int, term string) ([]Product, api.Pagination, error) {
	var products []Product
	total, err := s.client.List(ctx, "product", page, perPage, term, &products)
	if err != nil {
		return nil, api.Pagination{}, err
	}
	return products, api.NewPagination(page, perPage, total), nil
}

// SearchProducts backs search-as-you-type product selection. Identical
// terms issued concurrently are collapsed into a single request; distinct
// rapid edits still race and the last response to arrive wins.
func (s *Service) SearchProducts(ctx context.Context, term string) ([]Product, error) {
	v, err, _ := s.search.Do(term, func() (any, error) {
		var products []Product
		if _, err := s.client.List(ctx, "product", 1, searchPageSize, term, &products); err != nil {
			return nil, err
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Product), nil
}

// GetProduct looks up one product by id.
func (s *Service) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var product Product
	if err := s.client.Get(ctx, fmt.Sprintf("product/view/%d", id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct registers a new product and returns the server message.
func (s *Service) CreateProduct(ctx context.Context, req SaveProductRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", err
	}
	return s.client.Post(ctx, "product/create", req, nil)
}

// UpdateProduct edits an existing product.
func (s *Service) UpdateProduct(ctx context.Context, req SaveProductRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", err
	}
	if req.ID <= 0 {
		return "", fmt.Errorf("product id required for update")
	}
	return s.client.Post(ctx, "product/update", req, nil)
}

// DeleteProduct removes a product by id.
func (s *Service) DeleteProduct(ctx context.Context, id int64) (string, error) {
	return s.client.Delete(ctx, fmt.Sprintf("product/delete/%d", id))
}

// ListCategories fetches one page of categories.
func (s *Service) ListCategories(ctx context.Context, page, perPage int, term string) ([]Category, api.Pagination, error) {
	var categories []Category
	total, err := s.client.List(ctx, "category", page, perPage, term, &categories)
	if err != nil {
		return nil, api.Pagination{}, err
	}
	return categories, api.NewPagination(page, perPage, total), nil
}

// SaveCategory creates or renames a category.
func (s *Service) SaveCategory(ctx context.Context, req SaveNameRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", err
	}
	path := "category/create"
	if req.ID > 0 {
		path = "category/update"
	}
	return s.client.Post(ctx, path, req, nil)
}

// DeleteCategory removes a category by id.
func (s *Service) DeleteCategory(ctx context.Context, id int64) (string, error) {
	return s.client.Delete(ctx, fmt.Sprintf("category/delete/%d", id))
}

// ListBrands fetches one page of brands.
func (s *Service) ListBrands(ctx context.Context, page, perPage int, term string) ([]Brand, api.Pagination, error) {
	var brands []Brand
	total, err := s.client.List(ctx, "brand", page, perPage, term, &brands)
	if err != nil {
		return nil, api.Pagination{}, err
	}
	return brands, api.NewPagination(page, perPage, total), nil
}

// SaveBrand creates or renames a brand.
func (s *Service) SaveBrand(ctx context.Context, req SaveNameRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", err
	}
	path := "brand/create"
	if req.ID > 0 {
		path = "brand/update"
	}
	return s.client.Post(ctx, path, req, nil)
}

// DeleteBrand removes a brand by id.
func (s *Service) DeleteBrand(ctx context.Context, id int64) (string, error) {
	return s.client.Delete(ctx, fmt.Sprintf("brand/delete/%d", id))
}

// ListUnits fetches one page of units.
func (s *Service) ListUnits(ctx context.Context, page, perPage int, term string) ([]Unit, api.Pagination, error) {
	var units []Unit
	total, err := s.client.List(ctx, "unit", page, perPage, term, &units)
	if err != nil {
		return nil, api.Pagination{}, err
	}
	return units, api.NewPagination(page, perPage, total), nil
}

// SaveUnit creates or renames a unit of measure.
func (s *Service) SaveUnit(ctx context.Context, req SaveNameRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", err
	}
	path := "unit/create"
	if req.ID > 0 {
		path = "unit/update"
	}
	return s.client.Post(ctx, path, req, nil)
}

// DeleteUnit removes a unit by id.
func (s *Service) DeleteUnit(ctx context.Context, id int64) (string, error) {
	return s.client.Delete(ctx, fmt.Sprintf("unit/delete/%d", id))
}
