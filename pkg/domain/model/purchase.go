package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrPurchaseNotFound = errors.New("purchase not found")

type Purchase struct {
	ID           int64           `db:"id"`
	CustomerID   *int64          `db:"customer_id"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	PurchaseDate time.Time       `db:"purchase_date"`
	// CustomerName is populated on reads that join the customers table.
	// Nil for anonymous purchases.
	CustomerName *string `db:"customer_name"`
}

type PurchaseItem struct {
	ID           int64           `db:"id"`
	PurchaseID   int64           `db:"purchase_id"`
	ProductID    int64           `db:"product_id"`
	Quantity     int             `db:"quantity"`
	PricePerUnit decimal.Decimal `db:"price_per_unit"`
	// ProductName is populated on reads that join the products table.
	ProductName string `db:"product_name"`
}

type PurchaseRepository interface {
	// Create persists the purchase header, its items and the matching stock
	// decrements as one atomic operation: either everything is applied or
	// nothing is. Item PurchaseID fields and the purchase ID are filled in
	// on success.
	Create(purchase *Purchase, items []PurchaseItem) error
	Find(id int64) (*Purchase, error)
	FindItems(purchaseID int64) ([]PurchaseItem, error)
	List(limit int) ([]Purchase, error)
}
