package app

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"inventory/pkg/domain/model"
	"inventory/pkg/infrastructure/audit"
)

// seedSampleData loads a demonstration catalog and a few customers. Rows
// that already exist are skipped, so seeding twice is harmless.
func (a *App) seedSampleData() {
	opLog := operationLog("seed_sample_data")
	fmt.Fprintln(a.out, "\nAdding sample data for demonstration...")

	type sampleProduct struct {
		name     string
		price    string
		quantity int
		category string
	}
	products := []sampleProduct{
		{"Laptop", "999.99", 10, "Electronics"},
		{"Smartphone", "599.99", 20, "Electronics"},
		{"Headphones", "89.99", 30, "Accessories"},
		{"Mouse", "24.99", 50, "Accessories"},
		{"Keyboard", "49.99", 40, "Accessories"},
		{"Monitor", "299.99", 15, "Electronics"},
		{"USB Drive", "19.99", 100, "Storage"},
		{"External HDD", "79.99", 25, "Storage"},
	}

	var changes []audit.InventoryChange
	for _, p := range products {
		category := p.category
		product, err := a.products.Add(p.name, decimal.RequireFromString(p.price), p.quantity, &category)
		if errors.Is(err, model.ErrDuplicateName) {
			continue
		}
		if err != nil {
			opLog.WithError(err).WithField("product", p.name).Warn("failed to seed product")
			continue
		}
		fmt.Fprintf(a.out, "Added product: %s\n", product.Name)
		changes = append(changes, audit.InventoryChange{Product: product.Name, OldQuantity: 0, NewQuantity: product.Quantity})
	}

	type sampleCustomer struct {
		name  string
		email string
		phone string
	}
	customers := []sampleCustomer{
		{"John Smith", "john@example.com", "555-1234"},
		{"Jane Doe", "jane@example.com", "555-5678"},
		{"Bob Johnson", "bob@example.com", "555-9012"},
	}

	for _, c := range customers {
		email, phone := c.email, c.phone
		customer, err := a.customers.Add(c.name, &email, &phone)
		if errors.Is(err, model.ErrDuplicateEmail) {
			continue
		}
		if err != nil {
			opLog.WithError(err).WithField("customer", c.name).Warn("failed to seed customer")
			continue
		}
		fmt.Fprintf(a.out, "Added customer: %s\n", customer.Name)
	}

	if len(changes) > 0 {
		a.recordInventoryChange(opLog, changes)
	}
	fmt.Fprintln(a.out, "\nSample data added successfully!")
}
