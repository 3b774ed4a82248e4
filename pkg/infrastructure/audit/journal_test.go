package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Journal, string) {
	dir := t.TempDir()
	journal, err := Open(dir, Author{Name: "Inventory Manager", Email: "inventory@localhost"})
	require.NoError(t, err)
	return journal, dir
}

func TestOpenExistingRepository(t *testing.T) {
	journal, dir := setup(t)
	_, err := journal.RecordInventoryChange([]InventoryChange{{Product: "Widget", OldQuantity: 0, NewQuantity: 5}})
	require.NoError(t, err)

	reopened, err := Open(dir, Author{Name: "Inventory Manager", Email: "inventory@localhost"})
	require.NoError(t, err)

	entries, err := reopened.List(InventoryPrefix, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCommitAll(t *testing.T) {
	journal, dir := setup(t)

	t.Run("Nothing to commit on a clean tree", func(t *testing.T) {
		committed, err := journal.CommitAll("empty")
		require.NoError(t, err)
		assert.False(t, committed)
	})

	t.Run("Commits pending changes once", func(t *testing.T) {
		err := os.WriteFile(filepath.Join(dir, "note.txt"), []byte("hello"), 0644)
		require.NoError(t, err)

		committed, err := journal.CommitAll("first change")
		require.NoError(t, err)
		assert.True(t, committed)

		// Immediate second call has nothing new to record.
		committed, err = journal.CommitAll("second call")
		require.NoError(t, err)
		assert.False(t, committed)

		entries, err := journal.List("first change", 10)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestRecordPurchase(t *testing.T) {
	journal, dir := setup(t)

	committed, err := journal.RecordPurchase("John Smith", []PurchaseEntry{
		{Product: "Mouse", Quantity: 3, Price: decimal.RequireFromString("24.99")},
		{Product: "Keyboard", Quantity: 1, Price: decimal.RequireFromString("49.99")},
	})

	require.NoError(t, err)
	assert.True(t, committed)

	entries, err := journal.List(PurchasePrefix, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0], "Purchase: John Smith - "))
	assert.Contains(t, entries[0], "* Mouse x3 @ $24.99")
	assert.Contains(t, entries[0], "* Keyboard x1 @ $49.99")

	ledger, err := os.ReadFile(filepath.Join(dir, ledgerFile))
	require.NoError(t, err)
	assert.Contains(t, string(ledger), "Mouse x3 @ $24.99")
}

func TestRecordInventoryChange(t *testing.T) {
	journal, _ := setup(t)

	committed, err := journal.RecordInventoryChange([]InventoryChange{
		{Product: "Mouse", OldQuantity: 50, NewQuantity: 47},
	})

	require.NoError(t, err)
	assert.True(t, committed)

	entries, err := journal.List(InventoryPrefix, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0], "* Mouse: 50 -> 47")
}

func TestListFiltersByPrefix(t *testing.T) {
	journal, _ := setup(t)

	_, err := journal.RecordPurchase("Anonymous", []PurchaseEntry{
		{Product: "USB Drive", Quantity: 2, Price: decimal.RequireFromString("19.99")},
	})
	require.NoError(t, err)
	_, err = journal.RecordInventoryChange([]InventoryChange{
		{Product: "Monitor", OldQuantity: 15, NewQuantity: 12},
	})
	require.NoError(t, err)
	_, err = journal.RecordPurchase("Jane Doe", []PurchaseEntry{
		{Product: "Laptop", Quantity: 1, Price: decimal.RequireFromString("999.99")},
	})
	require.NoError(t, err)

	entries, err := journal.List(PurchasePrefix, 10)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Newest first.
	assert.Contains(t, entries[0], "Jane Doe")
	assert.Contains(t, entries[1], "Anonymous")

	t.Run("Limit applies to matches", func(t *testing.T) {
		entries, err := journal.List(PurchasePrefix, 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0], "Jane Doe")
	})
}

func TestListOnEmptyRepository(t *testing.T) {
	journal, _ := setup(t)

	entries, err := journal.List(PurchasePrefix, 10)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMessageFormats(t *testing.T) {
	at := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	purchase := purchaseMessage("John Smith", []PurchaseEntry{
		{Product: "Mouse", Quantity: 3, Price: decimal.RequireFromString("24.99")},
	}, at)
	assert.Equal(t, "Purchase: John Smith - 2025-03-14 15:09:26\n\n* Mouse x3 @ $24.99\n", purchase)

	update := inventoryMessage([]InventoryChange{
		{Product: "Mouse", OldQuantity: 50, NewQuantity: 47},
	}, at)
	assert.Equal(t, "Inventory Update: 2025-03-14 15:09:26\n\n* Mouse: 50 -> 47\n", update)
}
