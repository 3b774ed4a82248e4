package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"inventory/pkg/domain/model"
	"inventory/pkg/domain/service"
	"inventory/pkg/infrastructure/audit"
)

const historyLimit = 50

// AuditLog is the side channel that mirrors inventory and purchase events.
// Failures are reported but never abort the underlying data mutation.
type AuditLog interface {
	RecordPurchase(customerName string, items []audit.PurchaseEntry) (bool, error)
	RecordInventoryChange(changes []audit.InventoryChange) (bool, error)
	List(prefix string, limit int) ([]string, error)
}

type App struct {
	products  service.ProductService
	customers service.CustomerService
	purchases service.PurchaseService
	journal   AuditLog

	prompt *prompter
	out    io.Writer
}

func NewApp(
	products service.ProductService,
	customers service.CustomerService,
	purchases service.PurchaseService,
	journal AuditLog,
	in io.Reader,
	out io.Writer,
) *App {
	return &App{
		products:  products,
		customers: customers,
		purchases: purchases,
		journal:   journal,
		prompt:    newPrompter(bufio.NewScanner(in), out),
		out:       out,
	}
}

// Run drives the interactive menu until the user exits or input ends.
func (a *App) Run() {
	fmt.Fprintln(a.out, "\nWelcome to the Inventory Management System!")

	if a.prompt.confirm("Would you like to add sample data for demonstration? (y/n): ") {
		a.seedSampleData()
	}

	for {
		fmt.Fprintln(a.out)
		printBanner(a.out)

		choice := a.prompt.line("\nEnter your choice (1-9): ")
		if a.prompt.closedInput() {
			fmt.Fprintln(a.out, "\nExiting Inventory Management System. Goodbye!")
			return
		}
		switch choice {
		case "1":
			a.viewProducts()
		case "2":
			a.addProduct()
		case "3":
			a.updateProduct()
		case "4":
			a.viewCustomers()
		case "5":
			a.addCustomer()
		case "6":
			a.makePurchase()
		case "7":
			a.viewPurchaseHistory()
		case "8":
			a.viewAuditHistory()
		case "9":
			fmt.Fprintln(a.out, "\nExiting Inventory Management System. Goodbye!")
			return
		default:
			fmt.Fprintln(a.out, "\nInvalid choice. Please try again.")
		}

		a.prompt.line("\nPress Enter to continue...")
	}
}

func (a *App) viewProducts() {
	products, err := a.products.List()
	if err != nil {
		a.report("failed to load products", err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(a.out, "\nNo products found in inventory.")
		return
	}
	fmt.Fprintln(a.out)
	renderProducts(a.out, products)
}

func (a *App) addProduct() {
	opLog := operationLog("add_product")

	fmt.Fprintln(a.out, "\n=== Add New Product ===")
	name := a.prompt.line("Enter product name: ")
	price, err := a.prompt.money("Enter price: $")
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	quantity, err := a.prompt.integer("Enter quantity: ")
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	category := a.prompt.optional("Enter category (optional): ")

	product, err := a.products.Add(name, price, quantity, category)
	if err != nil {
		a.report("failed to add product", err)
		return
	}

	opLog.WithField("product_id", product.ID).Info("product added")
	fmt.Fprintf(a.out, "\nProduct '%s' added successfully.\n", product.Name)

	a.recordInventoryChange(opLog, []audit.InventoryChange{
		{Product: product.Name, OldQuantity: 0, NewQuantity: product.Quantity},
	})
}

func (a *App) updateProduct() {
	opLog := operationLog("update_product")

	a.viewProducts()
	productID, err := a.prompt.identifier("\nEnter product ID to update: ")
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	product, err := a.products.Find(productID)
	if err != nil {
		a.report("failed to load product", err)
		return
	}

	fmt.Fprintf(a.out, "\nUpdating product: %s\n", product.Name)
	fmt.Fprintln(a.out, "(Press Enter to keep current value)")

	changes := service.ProductUpdate{}
	changes.Name = a.prompt.optional(fmt.Sprintf("Name [%s]: ", product.Name))
	changes.Price, err = a.prompt.optionalMoney(fmt.Sprintf("Price [$%s]: ", product.Price.StringFixed(2)))
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	changes.Quantity, err = a.prompt.optionalInteger(fmt.Sprintf("Quantity [%d]: ", product.Quantity))
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	changes.Category = a.prompt.optional(fmt.Sprintf("Category [%s]: ", stringOrEmpty(product.Category)))

	oldQuantity := product.Quantity

	updated, err := a.products.Update(productID, changes)
	if err != nil {
		a.report("failed to update product", err)
		return
	}

	opLog.WithField("product_id", updated.ID).Info("product updated")
	fmt.Fprintf(a.out, "\nProduct #%d updated successfully.\n", updated.ID)

	if updated.Quantity != oldQuantity {
		a.recordInventoryChange(opLog, []audit.InventoryChange{
			{Product: updated.Name, OldQuantity: oldQuantity, NewQuantity: updated.Quantity},
		})
	}
}

func (a *App) viewCustomers() {
	customers, err := a.customers.List()
	if err != nil {
		a.report("failed to load customers", err)
		return
	}
	if len(customers) == 0 {
		fmt.Fprintln(a.out, "\nNo customers found.")
		return
	}
	fmt.Fprintln(a.out)
	renderCustomers(a.out, customers)
}

func (a *App) addCustomer() {
	opLog := operationLog("add_customer")

	fmt.Fprintln(a.out, "\n=== Add New Customer ===")
	name := a.prompt.line("Enter customer name: ")
	email := a.prompt.optional("Enter email (optional): ")
	phone := a.prompt.optional("Enter phone (optional): ")

	customer, err := a.customers.Add(name, email, phone)
	if err != nil {
		a.report("failed to add customer", err)
		return
	}

	opLog.WithField("customer_id", customer.ID).Info("customer added")
	fmt.Fprintf(a.out, "\nCustomer '%s' added successfully.\n", customer.Name)
}

func (a *App) makePurchase() {
	opLog := operationLog("make_purchase")

	a.viewCustomers()
	customerID, customerName, ok := a.selectCustomer()
	if !ok {
		return
	}

	a.viewProducts()
	lines, entries := a.collectPurchaseLines()
	if len(lines) == 0 {
		fmt.Fprintln(a.out, "Purchase cancelled - no items selected.")
		return
	}

	purchase, _, err := a.purchases.Create(customerID, lines)
	if err != nil {
		a.report("purchase failed", err)
		return
	}

	opLog.WithField("purchase_id", purchase.ID).Info("purchase completed")
	fmt.Fprintf(a.out, "\nPurchase completed successfully! Purchase ID: %d (total $%s)\n",
		purchase.ID, purchase.TotalAmount.StringFixed(2))

	if _, err := a.journal.RecordPurchase(customerName, entries); err != nil {
		opLog.WithError(err).Warn("failed to record purchase in audit journal")
	}
}

func (a *App) selectCustomer() (*int64, string, bool) {
	id, err := a.prompt.identifier("\nEnter customer ID (0 for anonymous): ")
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil, "", false
	}
	if id == 0 {
		return nil, "Anonymous", true
	}

	customer, err := a.customers.Find(id)
	if err != nil {
		a.report("failed to load customer", err)
		return nil, "", false
	}
	return &customer.ID, customer.Name, true
}

func (a *App) collectPurchaseLines() ([]service.PurchaseLine, []audit.PurchaseEntry) {
	fmt.Fprintln(a.out, "\n=== Add Products to Purchase ===")
	fmt.Fprintln(a.out, "(Enter 0 for product ID to finish)")

	var lines []service.PurchaseLine
	var entries []audit.PurchaseEntry

	for {
		productID, err := a.prompt.identifier("\nEnter product ID: ")
		if err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		if productID == 0 {
			break
		}

		product, err := a.products.Find(productID)
		if err != nil {
			a.report("failed to load product", err)
			continue
		}

		quantity, err := a.prompt.integer(
			fmt.Sprintf("Enter quantity for %s (available: %d): ", product.Name, product.Quantity))
		if err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		if quantity <= 0 {
			fmt.Fprintln(a.out, "Quantity must be positive.")
			continue
		}
		if quantity > product.Quantity {
			fmt.Fprintf(a.out, "Error: Only %d units available.\n", product.Quantity)
			continue
		}

		lines = append(lines, service.PurchaseLine{ProductID: product.ID, Quantity: quantity})
		entries = append(entries, audit.PurchaseEntry{Product: product.Name, Quantity: quantity, Price: product.Price})
		fmt.Fprintf(a.out, "Added %d x %s to cart.\n", quantity, product.Name)
	}
	return lines, entries
}

func (a *App) viewPurchaseHistory() {
	purchases, err := a.purchases.History(historyLimit)
	if err != nil {
		a.report("failed to load purchase history", err)
		return
	}
	if len(purchases) == 0 {
		fmt.Fprintln(a.out, "\nNo purchase history found.")
		return
	}
	fmt.Fprintln(a.out)
	renderPurchases(a.out, purchases)

	purchaseID, err := a.prompt.identifier("\nEnter purchase ID to view details (0 to cancel): ")
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	if purchaseID == 0 {
		return
	}

	items, err := a.purchases.Items(purchaseID)
	if err != nil {
		a.report("failed to load purchase items", err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintf(a.out, "No items found for purchase #%d.\n", purchaseID)
		return
	}
	fmt.Fprintln(a.out)
	renderPurchaseItems(a.out, items)
}

func (a *App) viewAuditHistory() {
	entries, err := a.journal.List(audit.PurchasePrefix, 10)
	if err != nil {
		a.report("failed to load audit history", err)
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "\nNo audit purchase history found.")
		return
	}
	for i, entry := range entries {
		fmt.Fprintf(a.out, "\n%d. %s\n", i+1, entry)
	}
}

func (a *App) recordInventoryChange(opLog *log.Entry, changes []audit.InventoryChange) {
	if _, err := a.journal.RecordInventoryChange(changes); err != nil {
		opLog.WithError(err).Warn("failed to record inventory change in audit journal")
	}
}

// report prints a human readable error and logs the underlying cause.
// Business rule violations read better without the technical prefix.
func (a *App) report(message string, err error) {
	switch {
	case errors.Is(err, model.ErrInsufficientStock),
		errors.Is(err, model.ErrDuplicateName),
		errors.Is(err, model.ErrDuplicateEmail),
		errors.Is(err, model.ErrProductNotFound),
		errors.Is(err, model.ErrCustomerNotFound),
		errors.Is(err, model.ErrPurchaseNotFound):
		fmt.Fprintf(a.out, "\nError: %s.\n", err)
	default:
		log.WithError(err).Error(message)
		fmt.Fprintf(a.out, "\nError: %s: %s.\n", message, err)
	}
}

func operationLog(operation string) *log.Entry {
	return log.WithFields(log.Fields{
		"op":    operation,
		"op_id": uuid.NewString(),
	})
}
