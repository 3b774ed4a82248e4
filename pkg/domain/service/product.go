package service

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"inventory/pkg/domain/model"
)

var (
	ErrEmptyProductName = errors.New("product name cannot be empty")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
)

// ProductUpdate carries the fields to overwrite; nil fields keep the stored
// value.
type ProductUpdate struct {
	Name     *string
	Price    *decimal.Decimal
	Quantity *int
	Category *string
}

type ProductService interface {
	Add(name string, price decimal.Decimal, quantity int, category *string) (*model.Product, error)
	Update(productID int64, changes ProductUpdate) (*model.Product, error)
	AdjustQuantity(productID int64, delta int) (int, error)
	Find(productID int64) (*model.Product, error)
	FindByName(name string) (*model.Product, error)
	List() ([]model.Product, error)
}

func NewProductService(repo model.ProductRepository) ProductService {
	return &productService{repo: repo}
}

type productService struct {
	repo model.ProductRepository
}

func (s *productService) Add(name string, price decimal.Decimal, quantity int, category *string) (*model.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyProductName
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	// Friendly fast path; the unique constraint on the name column is the
	// authoritative check.
	if err := s.checkNameFree(name); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &model.Product{
		Name:      name,
		Price:     price,
		Quantity:  quantity,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Store(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Update(productID int64, changes ProductUpdate) (*model.Product, error) {
	product, err := s.repo.Find(productID)
	if err != nil {
		return nil, err
	}

	if changes.Name != nil {
		name := strings.TrimSpace(*changes.Name)
		if name == "" {
			return nil, ErrEmptyProductName
		}
		if name != product.Name {
			if err := s.checkNameFree(name); err != nil {
				return nil, err
			}
		}
		product.Name = name
	}
	if changes.Price != nil {
		if changes.Price.IsNegative() {
			return nil, ErrNegativePrice
		}
		product.Price = *changes.Price
	}
	if changes.Quantity != nil {
		if *changes.Quantity < 0 {
			return nil, ErrNegativeQuantity
		}
		product.Quantity = *changes.Quantity
	}
	if changes.Category != nil {
		product.Category = changes.Category
	}

	product.UpdatedAt = time.Now()

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) AdjustQuantity(productID int64, delta int) (int, error) {
	return s.repo.AdjustQuantity(productID, delta)
}

func (s *productService) Find(productID int64) (*model.Product, error) {
	return s.repo.Find(productID)
}

func (s *productService) FindByName(name string) (*model.Product, error) {
	return s.repo.FindByName(name)
}

func (s *productService) List() ([]model.Product, error) {
	return s.repo.List()
}

func (s *productService) checkNameFree(name string) error {
	_, err := s.repo.FindByName(name)
	switch {
	case err == nil:
		return model.ErrDuplicateName
	case errors.Is(err, model.ErrProductNotFound):
		return nil
	default:
		return err
	}
}
