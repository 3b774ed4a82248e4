package model

import (
	"errors"
	"time"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrDuplicateEmail   = errors.New("a customer with this email already exists")
)

type Customer struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     *string   `db:"email"`
	Phone     *string   `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
}

type CustomerRepository interface {
	Store(customer *Customer) error
	Find(id int64) (*Customer, error)
	FindByEmail(email string) (*Customer, error)
	FindByName(name string) (*Customer, error)
	List() ([]Customer, error)
}
