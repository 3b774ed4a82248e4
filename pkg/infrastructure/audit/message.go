package audit

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Recognized title prefixes of journal entries.
const (
	PurchasePrefix  = "Purchase:"
	InventoryPrefix = "Inventory Update:"
)

const timeLayout = "2006-01-02 15:04:05"

// PurchaseEntry is one sold line in a purchase record.
type PurchaseEntry struct {
	Product  string
	Quantity int
	Price    decimal.Decimal
}

// InventoryChange is one product quantity transition.
type InventoryChange struct {
	Product     string
	OldQuantity int
	NewQuantity int
}

func purchaseMessage(customerName string, items []PurchaseEntry, at time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s - %s\n\n", PurchasePrefix, customerName, at.Format(timeLayout))
	for _, item := range items {
		fmt.Fprintf(&b, "* %s x%d @ $%s\n", item.Product, item.Quantity, item.Price.StringFixed(2))
	}
	return b.String()
}

func inventoryMessage(changes []InventoryChange, at time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", InventoryPrefix, at.Format(timeLayout))
	for _, change := range changes {
		fmt.Fprintf(&b, "* %s: %d -> %d\n", change.Product, change.OldQuantity, change.NewQuantity)
	}
	return b.String()
}
