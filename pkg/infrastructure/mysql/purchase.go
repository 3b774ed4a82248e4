package mysql

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"inventory/pkg/domain/model"
)

func NewPurchaseRepository(db *sqlx.DB) model.PurchaseRepository {
	return &purchaseRepository{db: db}
}

type purchaseRepository struct {
	db *sqlx.DB
}

func (r *purchaseRepository) Create(purchase *model.Purchase, items []model.PurchaseItem) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "failed to begin purchase transaction")
	}

	if err := r.createInTx(tx, purchase, items); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrapf(err, "rollback also failed: %v", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit purchase transaction")
	}
	return nil
}

func (r *purchaseRepository) createInTx(tx *sqlx.Tx, purchase *model.Purchase, items []model.PurchaseItem) error {
	res, err := tx.Exec(
		`INSERT INTO purchases (customer_id, total_amount, purchase_date) VALUES (?, ?, ?)`,
		purchase.CustomerID, purchase.TotalAmount, purchase.PurchaseDate,
	)
	if err != nil {
		return errors.Wrap(err, "failed to insert purchase")
	}
	purchaseID, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "failed to read inserted purchase id")
	}
	purchase.ID = purchaseID

	for i := range items {
		items[i].PurchaseID = purchaseID

		res, err := tx.Exec(
			`INSERT INTO purchase_items (purchase_id, product_id, quantity, price_per_unit) VALUES (?, ?, ?, ?)`,
			purchaseID, items[i].ProductID, items[i].Quantity, items[i].PricePerUnit,
		)
		if err != nil {
			return errors.Wrapf(err, "failed to insert purchase item for product %d", items[i].ProductID)
		}
		itemID, err := res.LastInsertId()
		if err != nil {
			return errors.Wrap(err, "failed to read inserted purchase item id")
		}
		items[i].ID = itemID

		// Conditional decrement keeps the stock invariant even if quantity
		// changed between validation and this write.
		upd, err := tx.Exec(
			`UPDATE products SET quantity = quantity - ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND quantity >= ?`,
			items[i].Quantity, items[i].ProductID, items[i].Quantity,
		)
		if err != nil {
			return errors.Wrapf(err, "failed to decrement stock of product %d", items[i].ProductID)
		}
		affected, err := upd.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "failed to read affected rows")
		}
		if affected == 0 {
			return model.ErrInsufficientStock
		}
	}
	return nil
}

func (r *purchaseRepository) Find(id int64) (*model.Purchase, error) {
	var purchase model.Purchase
	err := r.db.Get(&purchase,
		`SELECT p.id, p.customer_id, p.total_amount, p.purchase_date, c.name AS customer_name
		 FROM purchases p
		 LEFT JOIN customers c ON p.customer_id = c.id
		 WHERE p.id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPurchaseNotFound
		}
		return nil, errors.Wrapf(err, "failed to find purchase %d", id)
	}
	return &purchase, nil
}

func (r *purchaseRepository) FindItems(purchaseID int64) ([]model.PurchaseItem, error) {
	var items []model.PurchaseItem
	err := r.db.Select(&items,
		`SELECT pi.id, pi.purchase_id, pi.product_id, pi.quantity, pi.price_per_unit, p.name AS product_name
		 FROM purchase_items pi
		 JOIN products p ON pi.product_id = p.id
		 WHERE pi.purchase_id = ?`, purchaseID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list items of purchase %d", purchaseID)
	}
	return items, nil
}

func (r *purchaseRepository) List(limit int) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.Select(&purchases,
		`SELECT p.id, p.customer_id, p.total_amount, p.purchase_date, c.name AS customer_name
		 FROM purchases p
		 LEFT JOIN customers c ON p.customer_id = c.id
		 ORDER BY p.purchase_date DESC, p.id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}
	return purchases, nil
}
