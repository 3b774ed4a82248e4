package mysql

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"inventory/pkg/domain/model"
)

func NewCustomerRepository(db *sqlx.DB) model.CustomerRepository {
	return &customerRepository{db: db}
}

type customerRepository struct {
	db *sqlx.DB
}

func (r *customerRepository) Store(customer *model.Customer) error {
	res, err := r.db.Exec(
		`INSERT INTO customers (name, email, phone, created_at) VALUES (?, ?, ?, ?)`,
		customer.Name, customer.Email, customer.Phone, customer.CreatedAt,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return model.ErrDuplicateEmail
		}
		return errors.Wrap(err, "failed to insert customer")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "failed to read inserted customer id")
	}
	customer.ID = id
	return nil
}

func (r *customerRepository) Find(id int64) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.Get(&customer,
		`SELECT id, name, email, phone, created_at FROM customers WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrCustomerNotFound
		}
		return nil, errors.Wrapf(err, "failed to find customer %d", id)
	}
	return &customer, nil
}

func (r *customerRepository) FindByEmail(email string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.Get(&customer,
		`SELECT id, name, email, phone, created_at FROM customers WHERE email = ?`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrCustomerNotFound
		}
		return nil, errors.Wrapf(err, "failed to find customer by email %q", email)
	}
	return &customer, nil
}

func (r *customerRepository) FindByName(name string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.Get(&customer,
		`SELECT id, name, email, phone, created_at FROM customers WHERE name = ? ORDER BY id LIMIT 1`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrCustomerNotFound
		}
		return nil, errors.Wrapf(err, "failed to find customer by name %q", name)
	}
	return &customer, nil
}

func (r *customerRepository) List() ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.Select(&customers,
		`SELECT id, name, email, phone, created_at FROM customers ORDER BY name`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}
	return customers, nil
}
