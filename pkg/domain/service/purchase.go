package service

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"inventory/pkg/domain/model"
)

var (
	ErrEmptyPurchase       = errors.New("cannot process a purchase without items")
	ErrInvalidItemQuantity = errors.New("item quantity must be a positive number")
)

// PurchaseLine is one requested (product, quantity) pair.
type PurchaseLine struct {
	ProductID int64
	Quantity  int
}

type PurchaseService interface {
	// Create validates every line before anything is written, snapshots the
	// current unit prices, and stores the purchase with its items and stock
	// decrements as one atomic operation. customerID nil means an anonymous
	// purchase.
	Create(customerID *int64, lines []PurchaseLine) (*model.Purchase, []model.PurchaseItem, error)
	Find(purchaseID int64) (*model.Purchase, error)
	Items(purchaseID int64) ([]model.PurchaseItem, error)
	History(limit int) ([]model.Purchase, error)
}

func NewPurchaseService(purchases model.PurchaseRepository, products model.ProductRepository, customers model.CustomerRepository) PurchaseService {
	return &purchaseService{
		purchases: purchases,
		products:  products,
		customers: customers,
	}
}

type purchaseService struct {
	purchases model.PurchaseRepository
	products  model.ProductRepository
	customers model.CustomerRepository
}

func (s *purchaseService) Create(customerID *int64, lines []PurchaseLine) (*model.Purchase, []model.PurchaseItem, error) {
	if len(lines) == 0 {
		return nil, nil, ErrEmptyPurchase
	}

	if customerID != nil {
		if _, err := s.customers.Find(*customerID); err != nil {
			return nil, nil, err
		}
	}

	total := decimal.Zero
	items := make([]model.PurchaseItem, 0, len(lines))

	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, nil, ErrInvalidItemQuantity
		}

		product, err := s.products.Find(line.ProductID)
		if err != nil {
			return nil, nil, err
		}
		if product.Quantity < line.Quantity {
			return nil, nil, model.ErrInsufficientStock
		}

		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, model.PurchaseItem{
			ProductID:    product.ID,
			Quantity:     line.Quantity,
			PricePerUnit: product.Price,
			ProductName:  product.Name,
		})
	}

	purchase := &model.Purchase{
		CustomerID:   customerID,
		TotalAmount:  total,
		PurchaseDate: time.Now(),
	}

	if err := s.purchases.Create(purchase, items); err != nil {
		return nil, nil, err
	}
	return purchase, items, nil
}

func (s *purchaseService) Find(purchaseID int64) (*model.Purchase, error) {
	return s.purchases.Find(purchaseID)
}

func (s *purchaseService) Items(purchaseID int64) ([]model.PurchaseItem, error) {
	return s.purchases.FindItems(purchaseID)
}

func (s *purchaseService) History(limit int) ([]model.Purchase, error) {
	return s.purchases.List(limit)
}
