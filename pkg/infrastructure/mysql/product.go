package mysql

import (
	"database/sql"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"inventory/pkg/domain/model"
)

const duplicateEntryCode = 1062

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == duplicateEntryCode
}

func NewProductRepository(db *sqlx.DB) model.ProductRepository {
	return &productRepository{db: db}
}

type productRepository struct {
	db *sqlx.DB
}

func (r *productRepository) Store(product *model.Product) error {
	res, err := r.db.Exec(
		`INSERT INTO products (name, price, quantity, category, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		product.Name, product.Price, product.Quantity, product.Category, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return model.ErrDuplicateName
		}
		return errors.Wrap(err, "failed to insert product")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "failed to read inserted product id")
	}
	product.ID = id
	return nil
}

func (r *productRepository) Update(product *model.Product) error {
	res, err := r.db.Exec(
		`UPDATE products SET name = ?, price = ?, quantity = ?, category = ?, updated_at = ? WHERE id = ?`,
		product.Name, product.Price, product.Quantity, product.Category, product.UpdatedAt, product.ID,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return model.ErrDuplicateName
		}
		return errors.Wrapf(err, "failed to update product %d", product.ID)
	}
	if _, err := res.RowsAffected(); err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	return nil
}

func (r *productRepository) Find(id int64) (*model.Product, error) {
	var product model.Product
	err := r.db.Get(&product,
		`SELECT id, name, price, quantity, category, created_at, updated_at FROM products WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrProductNotFound
		}
		return nil, errors.Wrapf(err, "failed to find product %d", id)
	}
	return &product, nil
}

func (r *productRepository) FindByName(name string) (*model.Product, error) {
	var product model.Product
	err := r.db.Get(&product,
		`SELECT id, name, price, quantity, category, created_at, updated_at FROM products WHERE name = ?`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrProductNotFound
		}
		return nil, errors.Wrapf(err, "failed to find product %q", name)
	}
	return &product, nil
}

func (r *productRepository) List() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Select(&products,
		`SELECT id, name, price, quantity, category, created_at, updated_at FROM products ORDER BY name`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	return products, nil
}

func (r *productRepository) AdjustQuantity(id int64, delta int) (int, error) {
	if delta != 0 {
		res, err := r.db.Exec(
			`UPDATE products SET quantity = quantity + ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND quantity + ? >= 0`,
			delta, id, delta,
		)
		if err != nil {
			return 0, errors.Wrapf(err, "failed to adjust quantity of product %d", id)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, errors.Wrap(err, "failed to read affected rows")
		}
		if affected == 0 {
			// Either the product is gone or the decrement would go below
			// zero; distinguish via a lookup.
			if _, err := r.Find(id); err != nil {
				return 0, err
			}
			return 0, model.ErrInsufficientStock
		}
	}

	product, err := r.Find(id)
	if err != nil {
		return 0, err
	}
	return product.Quantity, nil
}
