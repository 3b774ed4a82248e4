package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"inventory/pkg/domain/model"
)

const timeLayout = "2006-01-02 15:04:05"

func renderProducts(w io.Writer, products []model.Product) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Price", "Quantity", "Category", "Created At", "Updated At"})
	for _, p := range products {
		category := ""
		if p.Category != nil {
			category = *p.Category
		}
		table.Append([]string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			"$" + p.Price.StringFixed(2),
			strconv.Itoa(p.Quantity),
			category,
			p.CreatedAt.Format(timeLayout),
			p.UpdatedAt.Format(timeLayout),
		})
	}
	table.Render()
}

func renderCustomers(w io.Writer, customers []model.Customer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Email", "Phone", "Created At"})
	for _, c := range customers {
		table.Append([]string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			stringOrEmpty(c.Email),
			stringOrEmpty(c.Phone),
			c.CreatedAt.Format(timeLayout),
		})
	}
	table.Render()
}

func renderPurchases(w io.Writer, purchases []model.Purchase) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Customer", "Total Amount", "Purchase Date"})
	for _, p := range purchases {
		customer := "Anonymous"
		if p.CustomerName != nil {
			customer = *p.CustomerName
		}
		table.Append([]string{
			strconv.FormatInt(p.ID, 10),
			customer,
			"$" + p.TotalAmount.StringFixed(2),
			p.PurchaseDate.Format(timeLayout),
		})
	}
	table.Render()
}

func renderPurchaseItems(w io.Writer, items []model.PurchaseItem) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Product", "Quantity", "Price Per Unit"})
	for _, item := range items {
		table.Append([]string{
			strconv.FormatInt(item.ID, 10),
			item.ProductName,
			strconv.Itoa(item.Quantity),
			"$" + item.PricePerUnit.StringFixed(2),
		})
	}
	table.Render()
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, "           INVENTORY MANAGEMENT SYSTEM            ")
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, "1. View Products")
	fmt.Fprintln(w, "2. Add Product")
	fmt.Fprintln(w, "3. Update Product")
	fmt.Fprintln(w, "4. View Customers")
	fmt.Fprintln(w, "5. Add Customer")
	fmt.Fprintln(w, "6. Make Purchase")
	fmt.Fprintln(w, "7. View Purchase History")
	fmt.Fprintln(w, "8. View Audit Purchase History")
	fmt.Fprintln(w, "9. Exit")
	fmt.Fprintln(w, "==================================================")
}
