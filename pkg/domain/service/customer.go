package service

import (
	"errors"
	"strings"
	"time"

	"inventory/pkg/domain/model"
)

var ErrEmptyCustomerName = errors.New("customer name cannot be empty")

type CustomerService interface {
	Add(name string, email, phone *string) (*model.Customer, error)
	Find(customerID int64) (*model.Customer, error)
	FindByEmail(email string) (*model.Customer, error)
	FindByName(name string) (*model.Customer, error)
	List() ([]model.Customer, error)
}

func NewCustomerService(repo model.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

type customerService struct {
	repo model.CustomerRepository
}

func (s *customerService) Add(name string, email, phone *string) (*model.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCustomerName
	}

	if email != nil {
		_, err := s.repo.FindByEmail(*email)
		switch {
		case err == nil:
			return nil, model.ErrDuplicateEmail
		case errors.Is(err, model.ErrCustomerNotFound):
			// free to use
		default:
			return nil, err
		}
	}

	customer := &model.Customer{
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Store(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Find(customerID int64) (*model.Customer, error) {
	return s.repo.Find(customerID)
}

func (s *customerService) FindByEmail(email string) (*model.Customer, error) {
	return s.repo.FindByEmail(email)
}

func (s *customerService) FindByName(name string) (*model.Customer, error) {
	return s.repo.FindByName(name)
}

func (s *customerService) List() ([]model.Customer, error) {
	return s.repo.List()
}
