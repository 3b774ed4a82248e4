package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrDuplicateName     = errors.New("a product with this name already exists")
	ErrInsufficientStock = errors.New("insufficient stock quantity")
)

type Product struct {
	ID        int64           `db:"id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	Quantity  int             `db:"quantity"`
	Category  *string         `db:"category"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type ProductRepository interface {
	Store(product *Product) error
	Update(product *Product) error
	Find(id int64) (*Product, error)
	FindByName(name string) (*Product, error)
	List() ([]Product, error)
	// AdjustQuantity applies delta to the stored quantity and returns the
	// new value. The write is conditional: it fails with
	// ErrInsufficientStock when the result would be negative, leaving the
	// row unchanged.
	AdjustQuantity(id int64, delta int) (int, error)
}
