package customers

import (
	"context"
	"errors"
	"strings"

	"github.com/mahatoankit/flightbook/internal/domain"
)

type CustomerUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*domain.Customer, error)
	Remove(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Customer, error)
	ListAll(ctx context.Context) ([]domain.Customer, error)
}

// Registry is the slice of the domain registry the customer service drives.
type Registry interface {
	AddCustomer(c *domain.Customer) (*domain.Customer, error)
	CustomerByID(id int64) (*domain.Customer, error)
	UpdateCustomer(id int64, name, phone, email string) (*domain.Customer, error)
	RemoveCustomer(id int64) error
	Customers() []domain.Customer
	AllCustomers() []domain.Customer
}

type RegisterInput struct {
	Name     string
	Phone    string
	Email    string
	Password string
}

type UpdateInput struct {
	Name  string
	Phone string
	Email string
}

type CustomerService struct {
	reg Registry
}

func NewCustomerService(reg Registry) *CustomerService {
	return &CustomerService{reg: reg}
}

func (s *CustomerService) Register(ctx context.Context, input RegisterInput) (*domain.Customer, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.New("name is required")
	}
	if !strings.Contains(input.Email, "@") {
		return nil, errors.New("email is invalid")
	}
	if input.Password == "" {
		return nil, errors.New("password is required")
	}
	return s.reg.AddCustomer(domain.NewCustomer(0, input.Name, input.Phone, input.Email, input.Password))
}

func (s *CustomerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.reg.CustomerByID(id)
}

func (s *CustomerService) Update(ctx context.Context, id int64, input UpdateInput) (*domain.Customer, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.New("name is required")
	}
	if !strings.Contains(input.Email, "@") {
		return nil, errors.New("email is invalid")
	}
	return s.reg.UpdateCustomer(id, input.Name, input.Phone, input.Email)
}

// Remove cancels all of the customer's active bookings without charging a
// cancellation fee, then soft-deletes the account.
func (s *CustomerService) Remove(ctx context.Context, id int64) error {
	return s.reg.RemoveCustomer(id)
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.reg.Customers(), nil
}

func (s *CustomerService) ListAll(ctx context.Context) ([]domain.Customer, error) {
	return s.reg.AllCustomers(), nil
}

var _ CustomerUseCase = (*CustomerService)(nil)
