package tests

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory/pkg/domain/service"
	"inventory/pkg/infrastructure/audit"
)

// Full flow against real services and a real audit repository: add a
// product, sell three units to a fresh customer, and verify the stock, the
// total and the audit trail all line up.
func TestEndToEndPurchaseFlow(t *testing.T) {
	productRepo := newMockProductRepository()
	customerRepo := newMockCustomerRepository()
	purchaseRepo := newMockPurchaseRepository(productRepo)

	products := service.NewProductService(productRepo)
	customers := service.NewCustomerService(customerRepo)
	purchases := service.NewPurchaseService(purchaseRepo, productRepo, customerRepo)

	journal, err := audit.Open(t.TempDir(), audit.Author{Name: "Inventory Manager", Email: "inventory@localhost"})
	require.NoError(t, err)

	mouse, err := products.Add("Mouse", decimal.RequireFromString("24.99"), 50, strPtr("Accessories"))
	require.NoError(t, err)

	customer, err := customers.Add("Alice Example", strPtr("alice@example.com"), nil)
	require.NoError(t, err)

	purchase, items, err := purchases.Create(&customer.ID, []service.PurchaseLine{
		{ProductID: mouse.ID, Quantity: 3},
	})
	require.NoError(t, err)

	assert.True(t, purchase.TotalAmount.Equal(decimal.RequireFromString("74.97")),
		"total %s", purchase.TotalAmount)

	stored, err := products.Find(mouse.ID)
	require.NoError(t, err)
	assert.Equal(t, 47, stored.Quantity)

	entries := make([]audit.PurchaseEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, audit.PurchaseEntry{
			Product:  item.ProductName,
			Quantity: item.Quantity,
			Price:    item.PricePerUnit,
		})
	}
	committed, err := journal.RecordPurchase(customer.Name, entries)
	require.NoError(t, err)
	assert.True(t, committed)

	recorded, err := journal.List(audit.PurchasePrefix, 10)
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.Contains(t, recorded[0], "Mouse x3 @ $24.99")
	assert.Contains(t, recorded[0], "Alice Example")
}
